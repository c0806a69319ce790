package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, hasher.Verify("correct horse battery staple", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
}

func TestPasswordHasher_SaltedPerHash(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-password", first))
	assert.True(t, hasher.Verify("same-password", second))
}

func TestPasswordHasher_CostEmbedded(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("some-password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher()

	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-hash"))
}
