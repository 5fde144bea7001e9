/* pkg/crypto/secrets.go */

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// AppIDLength is the length of a generated instance APP_ID.
	AppIDLength = 32

	// SecretKeyLength is the length of a generated instance secret key.
	SecretKeyLength = 64
)

// GenerateAppID returns a fresh 32-character alphanumeric instance id.
func GenerateAppID() (string, error) {
	return generateAlphanumeric(AppIDLength)
}

// GenerateSecretKey returns a fresh 64-character alphanumeric secret key.
func GenerateSecretKey() (string, error) {
	return generateAlphanumeric(SecretKeyLength)
}

// generateAlphanumeric draws length characters from the alphanumeric
// alphabet using the OS entropy source.
func generateAlphanumeric(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("secret length must be positive, got %d", length)
	}

	out := make([]byte, length)
	for i := range out {
		c, err := randomChar(alphanumeric)
		if err != nil {
			return "", fmt.Errorf("draw random char: %w", err)
		}
		out[i] = c
	}
	return string(out), nil
}

func randomChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// Redact masks a secret for log output.
func Redact(s string) string {
	if s == "" {
		return "(empty)"
	}
	return strings.Repeat("*", 8)
}
