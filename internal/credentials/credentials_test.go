package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("digest never equals the plaintext", func(t *testing.T) {
		digest, err := HashPassword("password")

		require.NoError(t, err, "failed to hash password")
		assert.NotEmpty(t, digest, "digest is empty")
		assert.NotEqual(t, "password", digest, "digest equals the plaintext")
	})

	t.Run("same plaintext hashes to different digests", func(t *testing.T) {
		first, err := HashPassword("password")
		require.NoError(t, err)
		second, err := HashPassword("password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "bcrypt salt should vary per call")
	})

	t.Run("empty plaintext is rejected", func(t *testing.T) {
		digest, err := HashPassword("")

		assert.ErrorIs(t, err, ErrEmptyPassword, "should reject empty password")
		assert.Empty(t, digest, "digest should be empty on error")
	})
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("correct horse")
	require.NoError(t, err, "failed to hash password")

	assert.True(t, CheckPassword("correct horse", digest), "correct password should verify")
	assert.False(t, CheckPassword("wrong horse", digest), "wrong password should not verify")
	assert.False(t, CheckPassword("correct horse", "not-a-digest"), "garbage digest should not verify")
}
