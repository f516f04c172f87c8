// Package auth holds the credential primitives: bcrypt password hashing and signed session tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is bcrypt's input limit. Longer passwords are truncated on both the hash
// and the verify path, so a password and its first 72 bytes are interchangeable.
const MaxPasswordBytes = 72

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}

// HashPassword returns the bcrypt hash of the (truncated) password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. Mismatches and malformed hashes
// are both reported as false.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}
