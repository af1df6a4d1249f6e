package crypto

import (
	"context"
	"fmt"
)

type noteCipher struct {
	keys KeyProvider
}

// NewTextCipher returns a [TextCipher] that seals note bodies with the key
// supplied by keys.
func NewTextCipher(keys KeyProvider) TextCipher {
	return &noteCipher{keys: keys}
}

func (c *noteCipher) Encrypt(ctx context.Context, plaintext string) (string, error) {
	key, err := c.keys.Key(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyUnavailable, err)
	}

	return Encrypt(plaintext, key)
}

func (c *noteCipher) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	key, err := c.keys.Key(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrKeyUnavailable, err)
	}

	return Decrypt(ciphertext, key)
}
