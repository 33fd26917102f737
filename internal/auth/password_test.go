package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("hunter2")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2", hashed)

	assert.True(t, ComparePassword(hashed, "hunter2"))
	assert.False(t, ComparePassword(hashed, "hunter3"))
}

func TestComparePassword_NotAHash(t *testing.T) {
	assert.False(t, ComparePassword("plaintext", "plaintext"))
}
