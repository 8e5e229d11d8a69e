package blake2b

import "github.com/pkg/errors"

// Every failure is a precondition violation at the offending call. Returned
// errors wrap one of these sentinels with detail; match them with errors.Is.
var (
	ErrInvalidDigestLength   = errors.New("blake2b: invalid digest length")
	ErrInvalidKeyLength      = errors.New("blake2b: invalid key length")
	ErrInvalidSaltLength     = errors.New("blake2b: invalid salt length")
	ErrInvalidPersonalLength = errors.New("blake2b: invalid personalization length")
	ErrInputTooLarge         = errors.New("blake2b: input exceeds maximum length")
	ErrInvalidInputLength    = ErrInputTooLarge
	ErrAlreadyFinalized      = errors.New("blake2b: digest already finalized")
	ErrOutputBufferTooSmall  = errors.New("blake2b: output buffer too small")
)
