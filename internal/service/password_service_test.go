package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_RoundTrip(t *testing.T) {
	passwords := NewPasswordService()

	digest, err := passwords.Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, passwords.Verify("secret123", digest))
	assert.False(t, passwords.Verify("secret124", digest))
	assert.False(t, passwords.Verify("", digest))
}

func TestPasswordService_SaltedDigestsDiffer(t *testing.T) {
	passwords := NewPasswordService()

	first, err := passwords.Hash("secret123")
	require.NoError(t, err)
	second, err := passwords.Hash("secret123")
	require.NoError(t, err)

	// Per-call salt randomization: equal plaintexts never hash equal.
	assert.NotEqual(t, first, second)
	assert.True(t, passwords.Verify("secret123", first))
	assert.True(t, passwords.Verify("secret123", second))
}
