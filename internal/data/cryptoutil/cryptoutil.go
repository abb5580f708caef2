// Package cryptoutil encrypts OAuth tokens before they reach token columns.
// Ciphertexts carry a version prefix so the key or algorithm can rotate
// without a data migration.
package cryptoutil

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Encryptor seals and opens token material stored at rest.
type Encryptor interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(ciphertext string) ([]byte, error)
}

const (
	cipherPrefixV1 = "v1:"
	plainPrefix    = "noop:"
)

// AESGCMEncryptor implements Encryptor with AES-256-GCM.
type AESGCMEncryptor struct {
	aead cipher.AEAD
}

// NewAESGCMEncryptor builds an encryptor from a 32-byte key.
func NewAESGCMEncryptor(key []byte) (*AESGCMEncryptor, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("aes-gcm key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &AESGCMEncryptor{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh nonce and returns a versioned,
// base64 nonce||ciphertext string.
func (e *AESGCMEncryptor) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := e.aead.Seal(nonce, nonce, plaintext, nil)
	return cipherPrefixV1 + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a string produced by Encrypt. Values written while the
// deployment ran without a key (see NoopEncryptor) still decode, so
// configuring a key later does not strand existing rows.
func (e *AESGCMEncryptor) Decrypt(ciphertext string) ([]byte, error) {
	if rest, ok := strings.CutPrefix(ciphertext, plainPrefix); ok {
		return base64.StdEncoding.DecodeString(rest)
	}
	rest, ok := strings.CutPrefix(ciphertext, cipherPrefixV1)
	if !ok {
		n := min(len(ciphertext), 10)
		return nil, fmt.Errorf("unknown ciphertext version (prefix: %s)", ciphertext[:n])
	}
	sealed, err := base64.StdEncoding.DecodeString(rest)
	if err != nil {
		return nil, err
	}
	if len(sealed) < e.aead.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	nonce, ct := sealed[:e.aead.NonceSize()], sealed[e.aead.NonceSize():]
	return e.aead.Open(nil, nonce, ct, nil)
}

// NoopEncryptor stores base64 plaintext behind a marker prefix. Used when no
// encryption key is configured (dev) and by tests.
type NoopEncryptor struct{}

func (NoopEncryptor) Encrypt(plaintext []byte) (string, error) {
	return plainPrefix + base64.StdEncoding.EncodeToString(plaintext), nil
}

func (NoopEncryptor) Decrypt(ciphertext string) ([]byte, error) {
	rest, ok := strings.CutPrefix(ciphertext, plainPrefix)
	if !ok {
		return nil, errors.New("invalid noop ciphertext")
	}
	return base64.StdEncoding.DecodeString(rest)
}
