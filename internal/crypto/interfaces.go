package crypto

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/kms"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// TextCipher encrypts and decrypts note bodies with the process-wide note key.
// The key itself is obtained from a [KeyProvider] on every call, so callers
// never hold it.
type TextCipher interface {
	// Encrypt returns base64(nonce ‖ AES-256-GCM ciphertext) of plaintext.
	Encrypt(ctx context.Context, plaintext string) (string, error)

	// Decrypt reverses [TextCipher.Encrypt]. Malformed input or a foreign key
	// yields an error wrapping [ErrDecode].
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}

// KeyProvider supplies the 32-byte symmetric key used for note encryption.
// Implementations must be safe for concurrent use.
type KeyProvider interface {
	Key(ctx context.Context) ([]byte, error)
}

// KMSDecrypter is the subset of the AWS KMS client used by [KMSKeyProvider].
// *kms.Client satisfies it.
type KMSDecrypter interface {
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}
