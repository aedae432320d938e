// Package cryptox implements the password digest used by the account store.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of plaintext.
// The digest is unsalted so it stays comparable with previously stored
// records.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword recomputes the digest of plaintext and compares it to
// storedDigest in constant time.
func VerifyPassword(plaintext, storedDigest string) bool {
	digest := HashPassword(plaintext)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}
