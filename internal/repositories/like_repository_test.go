package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warblr-social/backend/internal/models"
)

func TestLikeRepository_LikeMessage(t *testing.T) {
	t.Run("like another user's message", func(t *testing.T) {
		db := setupTestDB(t)
		users := NewPostgresUserRepository(db)
		messages := NewPostgresMessageRepository(db)
		likes := NewPostgresLikeRepository(db)
		seeded := seedUsers(t, users, "alice", "bob")
		a, b := seeded[0], seeded[1]

		m := &models.Message{Text: "hi", UserID: b.ID}
		require.NoError(t, messages.CreateMessage(m))

		require.NoError(t, likes.LikeMessage(a.ID, m.ID))

		liked, err := likes.HasLiked(a.ID, m.ID)
		require.NoError(t, err)
		assert.True(t, liked)

		count, err := likes.GetLikesCount(m.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("own message cannot be liked", func(t *testing.T) {
		db := setupTestDB(t)
		users := NewPostgresUserRepository(db)
		messages := NewPostgresMessageRepository(db)
		likes := NewPostgresLikeRepository(db)
		a := seedUsers(t, users, "alice")[0]

		m := &models.Message{Text: "hi", UserID: a.ID}
		require.NoError(t, messages.CreateMessage(m))

		assert.ErrorIs(t, likes.LikeMessage(a.ID, m.ID), ErrOwnMessageLike)
	})

	t.Run("duplicate like is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		users := NewPostgresUserRepository(db)
		messages := NewPostgresMessageRepository(db)
		likes := NewPostgresLikeRepository(db)
		seeded := seedUsers(t, users, "alice", "bob")
		a, b := seeded[0], seeded[1]

		m := &models.Message{Text: "hi", UserID: b.ID}
		require.NoError(t, messages.CreateMessage(m))

		require.NoError(t, likes.LikeMessage(a.ID, m.ID))
		assert.ErrorIs(t, likes.LikeMessage(a.ID, m.ID), ErrAlreadyLiked)
	})

	t.Run("missing message reports not found", func(t *testing.T) {
		db := setupTestDB(t)
		users := NewPostgresUserRepository(db)
		likes := NewPostgresLikeRepository(db)
		a := seedUsers(t, users, "alice")[0]

		assert.ErrorIs(t, likes.LikeMessage(a.ID, 9999), ErrMessageNotFound)
	})
}

func TestLikeRepository_UnlikeMessage(t *testing.T) {
	db := setupTestDB(t)
	users := NewPostgresUserRepository(db)
	messages := NewPostgresMessageRepository(db)
	likes := NewPostgresLikeRepository(db)
	seeded := seedUsers(t, users, "alice", "bob")
	a, b := seeded[0], seeded[1]

	m := &models.Message{Text: "hi", UserID: b.ID}
	require.NoError(t, messages.CreateMessage(m))
	require.NoError(t, likes.LikeMessage(a.ID, m.ID))

	require.NoError(t, likes.UnlikeMessage(a.ID, m.ID))

	liked, err := likes.HasLiked(a.ID, m.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	// Removing an absent like is a no-op, not an error.
	assert.NoError(t, likes.UnlikeMessage(a.ID, m.ID))
}

func TestLikeRepository_ListLikedMessages(t *testing.T) {
	db := setupTestDB(t)
	users := NewPostgresUserRepository(db)
	messages := NewPostgresMessageRepository(db)
	likes := NewPostgresLikeRepository(db)
	seeded := seedUsers(t, users, "alice", "bob")
	a, b := seeded[0], seeded[1]

	first := &models.Message{Text: "first", UserID: b.ID}
	second := &models.Message{Text: "second", UserID: b.ID}
	require.NoError(t, messages.CreateMessage(first))
	require.NoError(t, messages.CreateMessage(second))

	require.NoError(t, likes.LikeMessage(a.ID, first.ID))

	liked, err := likes.ListLikedMessages(a.ID)
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, "first", liked[0].Text)
}
