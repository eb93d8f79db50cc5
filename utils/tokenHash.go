package utils

import (
	"crypto/sha256"
	"crypto/subtle"
)

func TokenHash(token string) []byte {
	h := sha256.New()
	h.Write([]byte(token))
	return h.Sum(nil)
}

// TokenHashEqual compares two token hashes in constant time.
func TokenHashEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
