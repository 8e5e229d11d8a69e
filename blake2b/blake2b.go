// Package blake2b implements the BLAKE2b secure hashing algorithm with support
// for keying, salting and personalization. BLAKE2b is optimized for 64-bit
// platforms and produces digests of any size between 1 and 64 bytes.
//
// A Digest is consumed by Finalize exactly once. It also satisfies hash.Hash,
// whose Sum leaves the state untouched so more input can follow.
package blake2b

import (
	"encoding/binary"
	"hash"
	"math/bits"

	"github.com/pkg/errors"
)

// Digest represents the internal state of the BLAKE2b algorithm.
type Digest struct {
	h      [8]uint64
	t0, t1 uint64 // bytes compressed so far, low and high word

	buf    [BlockSize]byte
	offset int // current offset inside the block

	// size is defined in hash.Hash, and returns the number of bytes Sum will
	// return. Since BLAKE2 output length is dynamic, so is this.
	size int

	// Chain value derived from the parameter block and the key, kept so the
	// digest can be Reset without re-validating its configuration.
	ih     [8]uint64
	key    [KeyBytesMax]byte
	keyLen int

	finalized bool
}

var _ hash.Hash = (*Digest)(nil)

// NewDigest constructs a new instance of a BLAKE2b hash with the provided
// configuration. A nil or empty key selects unkeyed hashing; a nil salt or
// personalization is treated as all zeros.
func NewDigest(key, salt, personalization []byte, outputBytes int) (*Digest, error) {
	params, err := newParameterBlock(outputBytes, len(key), salt, personalization)
	if err != nil {
		return nil, err
	}

	d := &Digest{
		ih:     params.chainValue(),
		size:   outputBytes,
		keyLen: len(key),
	}
	copy(d.key[:], key)
	d.Reset()
	return d, nil
}

// Reset resets the Hash to its initial state, including the key block for a
// keyed digest. It also makes a finalized digest usable again.
func (d *Digest) Reset() {
	d.h = d.ih
	d.t0, d.t1 = 0, 0
	d.offset = 0
	d.finalized = false
	clear(d.buf[:])

	if d.keyLen > 0 {
		// The padded key fills the first block. It stays buffered, so an
		// empty message still compresses it exactly once, as the last block.
		var block [BlockSize]byte
		copy(block[:], d.key[:d.keyLen])
		d.Write(block[:])
		clear(block[:])
	}
}

// fits reports whether n more bytes can be absorbed without the total input
// exceeding InputBytesMax.
func (d *Digest) fits(n uint64) bool {
	lo, carry := bits.Add64(d.t0, uint64(d.offset), 0)
	hi, overflow := bits.Add64(d.t1, 0, carry)
	if overflow != 0 {
		return false
	}
	_, carry = bits.Add64(lo, n, 0)
	_, overflow = bits.Add64(hi, 0, carry)
	return overflow == 0
}

// increment adds n to the 128-bit byte counter.
func (d *Digest) increment(n uint64) {
	var carry uint64
	d.t0, carry = bits.Add64(d.t0, n, 0)
	d.t1 += carry
}

// Write adds more data to the running hash. A full block is compressed only
// once more input arrives, so the true final block is always compressed by
// Finalize with the last-block flag set.
func (d *Digest) Write(input []byte) (n int, err error) {
	if d.finalized {
		return 0, ErrAlreadyFinalized
	}
	if !d.fits(uint64(len(input))) {
		return 0, errors.Wrapf(ErrInputTooLarge, "cannot absorb %d more bytes", len(input))
	}

	n = len(input)
	for len(input) > 0 {
		if d.offset == BlockSize {
			d.increment(BlockSize)
			compress(&d.h, &d.buf, d.t0, d.t1, false)
			d.offset = 0
		}

		// With an empty buffer, whole blocks that are known not to be last
		// are compressed straight from the input.
		if d.offset == 0 {
			for len(input) > BlockSize {
				d.increment(BlockSize)
				compress(&d.h, (*[BlockSize]byte)(input[:BlockSize]), d.t0, d.t1, false)
				input = input[BlockSize:]
			}
		}

		copied := copy(d.buf[d.offset:], input)
		d.offset += copied
		input = input[copied:]
	}

	return n, nil
}

// Update is Write without the byte count.
func (d *Digest) Update(input []byte) error {
	_, err := d.Write(input)
	return err
}

// finish pads and compresses the buffered block with the last-block flag and
// writes the first d.size bytes of the chain value to out. It mutates d.
func (d *Digest) finish(out []byte) {
	d.increment(uint64(d.offset))
	clear(d.buf[d.offset:])
	compress(&d.h, &d.buf, d.t0, d.t1, true)

	var sum [Size]byte
	for i, w := range d.h {
		binary.LittleEndian.PutUint64(sum[i*8:], w)
	}
	copy(out, sum[:d.size])
	clear(sum[:])
}

// Finalize writes the digest to out, which must hold at least Size() bytes,
// and scrubs the buffered input and chain value. It may be called only once;
// afterwards Write and Finalize return ErrAlreadyFinalized until Reset.
func (d *Digest) Finalize(out []byte) error {
	if d.finalized {
		return ErrAlreadyFinalized
	}
	if len(out) < d.size {
		return errors.Wrapf(ErrOutputBufferTooSmall, "got %d bytes, want %d", len(out), d.size)
	}

	d.finish(out[:d.size])

	d.finalized = true
	clear(d.buf[:])
	d.h = [8]uint64{}
	d.offset = 0
	return nil
}

// Final finalizes the digest into a newly allocated slice of Size() bytes.
func (d *Digest) Final() ([]byte, error) {
	out := make([]byte, d.size)
	if err := d.Finalize(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Sum appends the current hash to b and returns the resulting slice.
// It does not change the underlying hash state. A finalized digest has no
// state left to sum, so b is returned unchanged.
func (d *Digest) Sum(b []byte) []byte {
	if d.finalized {
		return b
	}

	// make copies of everything
	dCopy := *d
	var out [Size]byte
	dCopy.finish(out[:])
	clear(dCopy.buf[:])
	return append(b, out[:d.size]...)
}

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return d.size }

// BlockSize returns the hash's underlying block size. The Write method must be
// able to accept any amount of data, but it may operate more efficiently if
// all writes are a multiple of the block size.
func (d *Digest) BlockSize() int { return BlockSize }
