package crypto

import "errors"

var (
	// ErrDecode is returned when a ciphertext cannot be decoded or fails
	// authentication: bad base64, truncated input, wrong key or tampering.
	ErrDecode = errors.New("cannot decode ciphertext")

	ErrInvalidKey      = errors.New("encryption key must be 32 bytes")
	ErrEmptyPassphrase = errors.New("empty passphrase")
	ErrEmptyDataKey    = errors.New("empty encrypted data key")
	ErrKeyUnavailable  = errors.New("encryption key is unavailable")
)
