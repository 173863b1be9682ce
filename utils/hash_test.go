package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	HashCost = bcrypt.MinCost
	t.Cleanup(func() { HashCost = 14 })

	hash, err := HashPassword("wicket-keeper")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "wicket-keeper"))
	assert.False(t, CheckPassword(hash, "wicket"))

	_, err = HashPassword("")
	assert.Error(t, err)
}
