package blake2b

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xblake2b "golang.org/x/crypto/blake2b"
)

func TestSumFixedSizes(t *testing.T) {
	for _, n := range []int{0, 1, 127, 128, 129, 256, 1000} {
		msg := patternBytes(n)
		assert.Equal(t, xblake2b.Sum512(msg), Sum512(msg), "len %d", n)
		assert.Equal(t, xblake2b.Sum256(msg), Sum256(msg), "len %d", n)
	}
}

func TestSumDefaults(t *testing.T) {
	msg := []byte("abc")
	want := Sum512(msg)

	got, err := Sum(msg, nil)
	require.NoError(t, err)
	assert.Equal(t, want[:], got)

	got, err = Sum(msg, &Config{})
	require.NoError(t, err)
	assert.Equal(t, want[:], got)

	d, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, Size, d.Size())
}

func TestSumValidation(t *testing.T) {
	tests := []struct {
		cfg *Config
		err error
	}{
		{&Config{Size: 65}, ErrInvalidDigestLength},
		{&Config{Size: -1}, ErrInvalidDigestLength},
		{&Config{Key: make([]byte, 65)}, ErrInvalidKeyLength},
		{&Config{Salt: make([]byte, 15)}, ErrInvalidSaltLength},
		{&Config{Salt: make([]byte, 17)}, ErrInvalidSaltLength},
		{&Config{Personal: make([]byte, 15)}, ErrInvalidPersonalLength},
		{&Config{Personal: make([]byte, 17)}, ErrInvalidPersonalLength},
	}
	for _, test := range tests {
		out, err := Sum([]byte("abc"), test.cfg)
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, test.err), "got %v, want %v", err, test.err)
	}
}

func TestSaltAndPersonalSeparate(t *testing.T) {
	msg := []byte("domain separated")
	tag := []byte("0123456789abcdef")

	plain, err := Sum(msg, nil)
	require.NoError(t, err)
	salted, err := Sum(msg, &Config{Salt: tag})
	require.NoError(t, err)
	personal, err := Sum(msg, &Config{Personal: tag})
	require.NoError(t, err)

	assert.NotEqual(t, plain, salted)
	assert.NotEqual(t, plain, personal)
	assert.NotEqual(t, salted, personal)

	// An all-zero salt is indistinguishable from no salt.
	zero, err := Sum(msg, &Config{Salt: make([]byte, SaltBytes)})
	require.NoError(t, err)
	assert.Equal(t, plain, zero)
}

func TestAgainstXCrypto(t *testing.T) {
	rng := rand.New(rand.NewSource(7693))
	for i := 0; i < 500; i++ {
		size := 1 + rng.Intn(DigestBytesMax)
		key := make([]byte, rng.Intn(KeyBytesMax+1))
		rng.Read(key)
		msg := make([]byte, rng.Intn(4*BlockSize+2))
		rng.Read(msg)

		ref, err := xblake2b.New(size, key)
		require.NoError(t, err)
		ref.Write(msg)
		want := ref.Sum(nil)

		got, err := Sum(msg, &Config{Size: size, Key: key})
		require.NoError(t, err)
		require.Equal(t, want, got, "size=%d key=%d msg=%d", size, len(key), len(msg))

		// Splitting the input at an arbitrary point must not matter.
		d, err := New(&Config{Size: size, Key: key})
		require.NoError(t, err)
		split := 0
		if len(msg) > 0 {
			split = rng.Intn(len(msg))
		}
		require.NoError(t, d.Update(msg[:split]))
		require.NoError(t, d.Update(msg[split:]))
		require.Equal(t, want, d.Sum(nil))
		got, err = d.Final()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestDeterministic(t *testing.T) {
	cfg := &Config{
		Size:     24,
		Key:      []byte("k"),
		Salt:     []byte("saltsaltsaltsalt"),
		Personal: []byte("personalpersonal"),
	}
	first, err := Sum([]byte("same input"), cfg)
	require.NoError(t, err)
	second, err := Sum([]byte("same input"), cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first, 24)
}
