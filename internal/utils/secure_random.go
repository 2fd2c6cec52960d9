package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// referencePrefix marks engine-generated idempotency references.
const referencePrefix = "TXN_"

// GenerateSecureRandomString generates a cryptographically secure random
// string of the specified byte length, hex encoded. For example,
// lengthInBytes=16 results in a 32-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateTransactionReference builds a fresh idempotency reference for
// callers that did not supply one. 16 random bytes makes an accidental
// collision vanishingly unlikely; the unique index still catches it.
func GenerateTransactionReference() (string, error) {
	s, err := GenerateSecureRandomString(16)
	if err != nil {
		return "", err
	}
	return referencePrefix + s, nil
}
