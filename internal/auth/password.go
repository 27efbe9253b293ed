package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the password's sha256 hex with bcrypt. The sha256
// pre-hash sidesteps bcrypt's 72-byte input limit for long passwords.
func HashPassword(password string) (string, error) {
	pre := sha256.Sum256([]byte(password))
	h, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(pre[:])), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches a hash produced by
// HashPassword.
func VerifyPassword(password, hash string) bool {
	pre := sha256.Sum256([]byte(password))
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(hex.EncodeToString(pre[:]))) == nil
}
