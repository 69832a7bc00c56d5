package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hashed, err := HashPassword("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hashed)

	assert.NoError(t, ComparePassword(hashed, "123456"))
	assert.Error(t, ComparePassword(hashed, "wrong"))
	assert.Error(t, ComparePassword(hashed, ""))
}
