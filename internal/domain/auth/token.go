package auth

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashToken hashes a refresh token for storage using SHA256 and base64.
func HashToken(input string) string {
	hash := sha256.Sum256([]byte(input))
	return base64.StdEncoding.EncodeToString(hash[:])
}
