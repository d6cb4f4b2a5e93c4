package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("tajnehaslo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected a bcrypt hash, got %q", hash)
	assert.NotEqual(t, "tajnehaslo", hash)

	assert.NoError(t, hasher.Verify("tajnehaslo", hash))
	assert.Error(t, hasher.Verify("zlehaslo", hash))
	assert.Error(t, hasher.Verify("tajnehaslo", "not-a-hash"))
}

func TestBcryptPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("haslo")
	require.NoError(t, err)
	h2, err := hasher.Hash("haslo")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "bcrypt salts must make identical passwords hash differently")
}

func TestNewBcryptPasswordHasher_CostClamped(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)
	hash, err := hasher.Hash("x")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
