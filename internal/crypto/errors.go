package crypto

import "errors"

var (
	// ErrActivationFailed wraps the cause of a failed activation attempt.
	ErrActivationFailed = errors.New("transit engine activation failed")

	// ErrPlaintextNotUTF8 is returned when decrypted bytes are not a string.
	ErrPlaintextNotUTF8 = errors.New("decrypted plaintext is not valid utf-8")
)

