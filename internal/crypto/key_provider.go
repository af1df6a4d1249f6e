// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"golang.org/x/crypto/argon2"
)

// appSalt is the fixed Argon2id salt for the note key. The passphrase is a
// single deployment-wide secret, so a per-record salt would buy nothing.
var appSalt = []byte("greenwall/note-key/v1")

// PassphraseKeyProvider derives the note key from a configured passphrase
// with Argon2id. The derivation runs once, on first use.
type PassphraseKeyProvider struct {
	passphrase string

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	once sync.Once
	key  []byte
}

// NewPassphraseKeyProvider constructs a [PassphraseKeyProvider] with the
// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewPassphraseKeyProvider(passphrase string) (*PassphraseKeyProvider, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	return &PassphraseKeyProvider{
		passphrase:   passphrase,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}, nil
}

// Key implements [KeyProvider].
func (p *PassphraseKeyProvider) Key(_ context.Context) ([]byte, error) {
	p.once.Do(func() {
		p.key = argon2.IDKey([]byte(p.passphrase), appSalt, p.argonTime, p.argonMemory, p.argonThreads, KeySize)
	})

	return p.key, nil
}

// KMSKeyProvider unwraps a KMS-encrypted data key and caches the plaintext
// key in memory. A failed unwrap is not cached; the next call retries.
type KMSKeyProvider struct {
	client           KMSDecrypter
	keyID            string
	encryptedDataKey []byte

	mu  sync.Mutex
	key []byte
}

// NewKMSKeyProvider creates a provider for a base64 encoded data key
// ciphertext (as returned by kms GenerateDataKey). keyID may be a key ID,
// key ARN or alias; it is optional for symmetric keys.
func NewKMSKeyProvider(client KMSDecrypter, keyID, encryptedDataKeyB64 string) (*KMSKeyProvider, error) {
	if encryptedDataKeyB64 == "" {
		return nil, ErrEmptyDataKey
	}

	blob, err := base64.StdEncoding.DecodeString(encryptedDataKeyB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encrypted data key: %w", err)
	}

	return &KMSKeyProvider{
		client:           client,
		keyID:            keyID,
		encryptedDataKey: blob,
	}, nil
}

// Key implements [KeyProvider].
func (p *KMSKeyProvider) Key(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.key != nil {
		return p.key, nil
	}

	input := &kms.DecryptInput{
		CiphertextBlob: p.encryptedDataKey,
	}
	if p.keyID != "" {
		input.KeyId = aws.String(p.keyID)
	}

	result, err := p.client.Decrypt(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt data key: %w", ErrKeyUnavailable, err)
	}
	if len(result.Plaintext) != KeySize {
		return nil, fmt.Errorf("%w: data key is %d bytes", ErrInvalidKey, len(result.Plaintext))
	}

	p.key = result.Plaintext
	return p.key, nil
}
