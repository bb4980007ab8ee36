// Package cryptox handles password hashing and strength classification.
// Only the salt and the derived hash are ever persisted.
package cryptox

import (
	"crypto/subtle"

	"calendard/internal/common"
	zxcvbn "github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the number of random bytes used as a per-user salt.
const SaltSize = 32

// MinPasswordScore is the lowest acceptable zxcvbn score (0-4) at signup.
const MinPasswordScore = 3

// RandomSalt returns a fresh per-user salt.
func RandomSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// HashPassword derives a 32-byte argon2id hash of password under salt.
func HashPassword(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
}

// VerifyPassword re-derives the hash for the candidate password and compares
// it against the stored hash in constant time.
func VerifyPassword(password string, salt, hash []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}

// PasswordScore classifies password strength on the zxcvbn 0-4 scale.
func PasswordScore(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}
