package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := testKey(0x42)

	cases := []string{
		"",
		"today I watered the ferns",
		"многоязычный текст 🌱 with emoji",
		strings.Repeat("long line ", 2000),
		"trailing whitespace\n\t ",
	}

	for _, plaintext := range cases {
		ciphertext, err := Encrypt(plaintext, key)
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		if plaintext != "" && strings.Contains(ciphertext, plaintext) {
			t.Fatalf("ciphertext contains plaintext")
		}

		got, err := Decrypt(ciphertext, key)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != plaintext {
			t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
		}
	}
}

func TestEncrypt_UsesFreshNonce(t *testing.T) {
	key := testKey(0x01)

	c1, err := Encrypt("same text", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	c2, err := Encrypt("same text", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if c1 == c2 {
		t.Fatalf("expected different ciphertexts for repeated encryption")
	}
}

func TestEncrypt_InvalidKeyLength(t *testing.T) {
	_, err := Encrypt("x", []byte("short"))
	if !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestDecrypt_MalformedInput(t *testing.T) {
	key := testKey(0x07)

	valid, err := Encrypt("hello", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	raw, _ := base64.StdEncoding.DecodeString(valid)

	tampered := append([]byte(nil), raw...)
	tampered[len(tampered)-1] ^= 0xFF

	cases := map[string]string{
		"not base64":      "%%%not-base64%%%",
		"empty":           "",
		"truncated":       base64.StdEncoding.EncodeToString(raw[:10]),
		"nonce only":      base64.StdEncoding.EncodeToString(raw[:12]),
		"tampered tag":    base64.StdEncoding.EncodeToString(tampered),
		"plaintext input": "hello",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decrypt(input, key)
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("expected ErrDecode, got %v", err)
			}
		})
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	ciphertext, err := Encrypt("secret", testKey(0x01))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	_, err = Decrypt(ciphertext, testKey(0x02))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}
