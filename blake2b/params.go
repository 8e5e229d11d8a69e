package blake2b

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// These are the user-visible parameters of a BLAKE2 hash instance. The
// parameter block is XOR'd with the IV at the beginning of the hash.
// Only sequential mode is supported, so the tree fields are fixed to their
// sequential defaults. They are nevertheless defined for clarity.
type parameterBlock struct {
	DigestSize      byte   // 0
	KeyLength       byte   // 1
	fanout          byte   // 2
	depth           byte   // 3
	leafLength      uint32 // 4-7
	nodeOffset      uint64 // 8-15
	nodeDepth       byte   // 16
	innerLength     byte   // 17
	Salt            []byte // 32-47
	Personalization []byte // 48-63
}

// newParameterBlock validates the configuration of a sequential-mode hash.
// A nil salt or personalization is absent and encodes as zeros; a non-nil one
// must be exactly 16 bytes.
func newParameterBlock(digestSize, keyLength int, salt, personal []byte) (*parameterBlock, error) {
	if digestSize < DigestBytesMin || digestSize > DigestBytesMax {
		return nil, errors.Wrapf(ErrInvalidDigestLength, "got %d, want %d..%d", digestSize, DigestBytesMin, DigestBytesMax)
	}
	if keyLength < KeyBytesMin || keyLength > KeyBytesMax {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "got %d, want %d..%d", keyLength, KeyBytesMin, KeyBytesMax)
	}
	if salt != nil && len(salt) != SaltBytes {
		return nil, errors.Wrapf(ErrInvalidSaltLength, "got %d, want %d", len(salt), SaltBytes)
	}
	if personal != nil && len(personal) != PersonalBytes {
		return nil, errors.Wrapf(ErrInvalidPersonalLength, "got %d, want %d", len(personal), PersonalBytes)
	}
	return &parameterBlock{
		DigestSize:      byte(digestSize),
		KeyLength:       byte(keyLength),
		fanout:          1, // sequential mode
		depth:           1, // sequential mode
		Salt:            salt,
		Personalization: personal,
	}, nil
}

// Packs a BLAKE2 parameter block.
func (p *parameterBlock) Marshal() []byte {
	buf := make([]byte, 64)
	buf[0] = p.DigestSize
	buf[1] = p.KeyLength
	buf[2] = p.fanout
	buf[3] = p.depth
	binary.LittleEndian.PutUint32(buf[4:], p.leafLength)
	binary.LittleEndian.PutUint64(buf[8:], p.nodeOffset)
	buf[16] = p.nodeDepth
	buf[17] = p.innerLength
	// 14 reserved bytes implicitly zero
	copy(buf[32:48], p.Salt)
	copy(buf[48:64], p.Personalization)
	return buf
}

// chainValue returns the initial chaining state h[i] = IV[i] ^ p[8i:8i+8].
// After this function is called, the parameterBlock can be discarded.
func (p *parameterBlock) chainValue() [8]uint64 {
	paramBytes := p.Marshal()
	var h [8]uint64
	for i := range h {
		h[i] = iv[i] ^ binary.LittleEndian.Uint64(paramBytes[i*8:])
	}
	return h
}
