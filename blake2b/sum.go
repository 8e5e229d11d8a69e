package blake2b

// Config contains parameters for the hash function that affect its output.
type Config struct {
	// Digest byte length, in the range [1, 64]. If 0, Size is used.
	Size int
	// Key is up to 64 arbitrary bytes, for keyed hashing mode. Can be nil.
	Key []byte
	// Salt is exactly 16 arbitrary bytes, used to randomize the hash. Can be nil.
	Salt []byte
	// Personal is exactly 16 arbitrary bytes, used to make the hash
	// function unique for each application. Can be nil.
	Personal []byte
}

// New returns a new Digest configured by cfg. A nil cfg gives an unkeyed
// 64-byte digest.
func New(cfg *Config) (*Digest, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	size := cfg.Size
	if size == 0 {
		size = Size
	}
	return NewDigest(cfg.Key, cfg.Salt, cfg.Personal, size)
}

// Sum returns the digest of msg under cfg in one call.
func Sum(msg []byte, cfg *Config) ([]byte, error) {
	d, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := d.Update(msg); err != nil {
		return nil, err
	}
	return d.Final()
}

// Sum512 returns the unkeyed BLAKE2b-512 checksum of the data.
func Sum512(data []byte) [Size]byte {
	var sum [Size]byte
	checkSum(sum[:], data)
	return sum
}

// Sum256 returns the unkeyed BLAKE2b-256 checksum of the data.
func Sum256(data []byte) [Size256]byte {
	var sum [Size256]byte
	checkSum(sum[:], data)
	return sum
}

// checkSum hashes data into sum, whose length is the digest size. Unkeyed
// configurations with valid sizes cannot fail.
func checkSum(sum []byte, data []byte) {
	d, err := NewDigest(nil, nil, nil, len(sum))
	if err != nil {
		panic(err)
	}
	d.Write(data)
	d.Finalize(sum)
}
