// Package blake2 implements the BLAKE2b secure hashing algorithm (RFC 7693)
// with support for keying, salting and personalization. BLAKE2b is optimized
// for 64-bit platforms and produces digests of any size between 1 and 64
// bytes. The implementation lives in the blake2b subpackage; cmd/b2sum is a
// command-line front end for it.
package blake2

//go:generate python3 gen_vectors.py testdata/blake2b-kat.json testdata/blake2b-extras.json
