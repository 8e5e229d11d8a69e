package blake2b

import (
	"encoding/binary"
	"math/bits"
)

// The internal BLAKE2b round function. a, b, c and d index the working
// vector; x and y are the two message words selected for this invocation.
func g(v *[16]uint64, a, b, c, d int, x, y uint64) {
	v[a] = v[a] + v[b] + x
	v[d] = bits.RotateLeft64(v[d]^v[a], -32)
	v[c] = v[c] + v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -24)
	v[a] = v[a] + v[b] + y
	v[d] = bits.RotateLeft64(v[d]^v[a], -16)
	v[c] = v[c] + v[d]
	v[b] = bits.RotateLeft64(v[b]^v[c], -63)
}

func round(v *[16]uint64, m *[16]uint64, r uint32) {
	s := &sigma[r%10]
	// Mix the columns.
	g(v, 0, 4, 8, 12, m[s[0]], m[s[1]])
	g(v, 1, 5, 9, 13, m[s[2]], m[s[3]])
	g(v, 2, 6, 10, 14, m[s[4]], m[s[5]])
	g(v, 3, 7, 11, 15, m[s[6]], m[s[7]])
	// Mix the diagonals.
	g(v, 0, 5, 10, 15, m[s[8]], m[s[9]])
	g(v, 1, 6, 11, 12, m[s[10]], m[s[11]])
	g(v, 2, 7, 8, 13, m[s[12]], m[s[13]])
	g(v, 3, 4, 9, 14, m[s[14]], m[s[15]])
}

// fGeneric is the compression transform. v is built fresh on every call, so
// no state survives between blocks except h.
func fGeneric(h *[8]uint64, m *[16]uint64, t0, t1 uint64, last bool, rounds uint32) {
	var v [16]uint64
	copy(v[:8], h[:])
	copy(v[8:], iv[:])
	v[12] ^= t0
	v[13] ^= t1
	if last {
		v[14] = ^v[14]
	}

	for r := uint32(0); r < rounds; r++ {
		round(&v, m, r)
	}

	for i := 0; i < 8; i++ {
		h[i] ^= v[i] ^ v[i+8]
	}
}

// compress folds one 128-byte block into h. t0 and t1 are the low and high
// words of the byte counter including this block.
func compress(h *[8]uint64, block *[BlockSize]byte, t0, t1 uint64, last bool) {
	var m [16]uint64
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(block[i*8:])
	}
	fGeneric(h, &m, t0, t1, last, RoundCount)
}

// F is the BLAKE2b compression function with a caller-chosen number of
// rounds, as used by the EIP-152 precompile. c is the 128-bit byte counter
// (low word first) and final marks the last block.
func F(h *[8]uint64, m [16]uint64, c [2]uint64, final bool, rounds uint32) {
	fGeneric(h, &m, c[0], c[1], final, rounds)
}
