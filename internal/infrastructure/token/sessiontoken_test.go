package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenGenerator_Generate(t *testing.T) {
	g := NewSessionTokenGenerator()

	plain, hash, err := g.Generate()
	require.NoError(t, err)

	assert.Len(t, plain, 64)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, plain, hash)
	assert.Equal(t, g.Hash(plain), hash)
}

func TestSessionTokenGenerator_Uniqueness(t *testing.T) {
	g := NewSessionTokenGenerator()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		plain, _, err := g.Generate()
		require.NoError(t, err)
		assert.False(t, seen[plain], "duplicate token generated")
		seen[plain] = true
	}
}

func TestSessionTokenGenerator_GenerateReturnsHashOfToken(t *testing.T) {
	g := NewSessionTokenGenerator()
	plain, hash, err := g.Generate()
	require.NoError(t, err)

	assert.Equal(t, g.Hash(plain), hash)
	assert.NotEqual(t, g.Hash(plain+"x"), hash)
	assert.Len(t, hash, 64)
}

func TestSessionTokenGenerator_HashIsDeterministic(t *testing.T) {
	g := NewSessionTokenGenerator()
	assert.Equal(t, g.Hash("abc"), g.Hash("abc"))
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", g.Hash("abc"))
}
