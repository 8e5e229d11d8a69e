package blake2b

// The constant values will be different for other BLAKE2 variants. These are
// appropriate for BLAKE2b.
const (
	// Bounds on the digest length, in bytes.
	DigestBytesMin = 1
	DigestBytesMax = 64
	// Bounds on the key length, in bytes. A zero-length key means unkeyed.
	KeyBytesMin = 0
	KeyBytesMax = 64
	// Exact size of the salt, in bytes
	SaltBytes = 16
	// Exact size of the personalization string, in bytes
	PersonalBytes = 16
	// Number of G function rounds for BLAKE2b.
	RoundCount = 12
	// Size of a block buffer in bytes
	BlockSize = 128

	// The hash size of BLAKE2b-512 in bytes.
	Size = DigestBytesMax
	// The hash size of BLAKE2b-256 in bytes.
	Size256 = 32

	// InputBytesMax is the largest message the 128-bit byte counter can
	// describe. It is an untyped constant and does not fit any Go integer type.
	InputBytesMax = 1<<128 - 1
)

// Initialization vector for BLAKE2b
var iv = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b,
	0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f,
	0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// Message word schedule. Rounds 10 and 11 reuse rows 0 and 1.
var sigma = [10][16]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{14, 10, 4, 8, 9, 15, 13, 6, 1, 12, 0, 2, 11, 7, 5, 3},
	{11, 8, 12, 0, 5, 2, 15, 13, 10, 14, 3, 6, 7, 1, 9, 4},
	{7, 9, 3, 1, 13, 12, 11, 14, 2, 6, 5, 10, 4, 0, 15, 8},
	{9, 0, 5, 7, 2, 4, 10, 15, 14, 1, 11, 12, 6, 8, 3, 13},
	{2, 12, 6, 10, 0, 11, 8, 3, 4, 13, 7, 5, 15, 14, 1, 9},
	{12, 5, 1, 15, 14, 13, 4, 10, 0, 7, 6, 3, 9, 2, 8, 11},
	{13, 11, 7, 14, 12, 1, 3, 9, 5, 0, 15, 4, 8, 6, 2, 10},
	{6, 15, 14, 9, 11, 3, 0, 8, 12, 2, 13, 7, 1, 4, 10, 5},
	{10, 2, 8, 4, 7, 6, 1, 5, 15, 11, 9, 14, 3, 12, 13, 0},
}
