package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	salt := RandomSalt()
	a := HashPassword("Str0ngPass!", salt)
	b := HashPassword("Str0ngPass!", salt)
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}

func TestHashPassword_SaltChangesHash(t *testing.T) {
	a := HashPassword("Str0ngPass!", RandomSalt())
	b := HashPassword("Str0ngPass!", RandomSalt())
	assert.NotEqual(t, a, b)
}

func TestHashPassword_NotPlaintext(t *testing.T) {
	password := "Str0ngPass!"
	hash := HashPassword(password, RandomSalt())
	require.False(t, bytes.Contains(hash, []byte(password)))
}

func TestVerifyPassword(t *testing.T) {
	salt := RandomSalt()
	hash := HashPassword("Str0ngPass!", salt)

	assert.True(t, VerifyPassword("Str0ngPass!", salt, hash))
	assert.False(t, VerifyPassword("wrong", salt, hash))
	assert.False(t, VerifyPassword("Str0ngPass!", RandomSalt(), hash))
}

func TestPasswordScore(t *testing.T) {
	assert.Less(t, PasswordScore("password"), MinPasswordScore)
	assert.Less(t, PasswordScore("123456"), MinPasswordScore)
	assert.GreaterOrEqual(t, PasswordScore("c0rrect-horse-battery-st4ple"), MinPasswordScore)
}
