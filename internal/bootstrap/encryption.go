package bootstrap

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	"github.com/seopulse/seopulse-api/internal/data/cryptoutil"
)

// CreateEncryptor derives the credential-column encryptor from the configured
// key. A 64-char hex key is used directly as 32 bytes; any other non-empty
// string is stretched through sha256. Without a key the tokens are stored
// unencrypted behind a marker prefix, which is only acceptable for dev.
//
//nolint:ireturn // Returning interface is intentional for encryptor abstraction
func CreateEncryptor(key string, logger *slog.Logger) cryptoutil.Encryptor {
	if key == "" {
		if logger != nil {
			logger.Warn("credentials encryption key is empty, google tokens will be stored unencrypted")
		}
		return &cryptoutil.NoopEncryptor{}
	}

	enc, err := cryptoutil.NewAESGCMEncryptor(deriveKey(key))
	if err != nil {
		if logger != nil {
			logger.Warn("failed to create encryptor, google tokens will be stored unencrypted", "error", err)
		}
		return &cryptoutil.NoopEncryptor{}
	}
	return enc
}

func deriveKey(key string) []byte {
	if decoded, err := hex.DecodeString(key); err == nil && len(decoded) == 32 {
		return decoded
	}
	hash := sha256.Sum256([]byte(key))
	return hash[:]
}
