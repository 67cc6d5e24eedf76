package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warblr-social/backend/internal/models"
)

func seedUsers(t *testing.T, repo *PostgresUserRepository, usernames ...string) []*models.User {
	t.Helper()

	users := make([]*models.User, len(usernames))
	for i, name := range usernames {
		u, err := repo.Signup(name, name+"@test.com", "password", "")
		require.NoError(t, err, "failed to seed user %s", name)
		users[i] = u
	}
	return users
}

func TestFollowRepository_Follow(t *testing.T) {
	t.Run("following flips both symmetric queries", func(t *testing.T) {
		db := setupTestDB(t)
		users := NewPostgresUserRepository(db)
		follows := NewPostgresFollowRepository(db)
		seeded := seedUsers(t, users, "alice", "bob")
		a, b := seeded[0], seeded[1]

		following, err := follows.IsFollowing(a.ID, b.ID)
		require.NoError(t, err)
		assert.False(t, following, "no edge yet")

		followedBy, err := follows.IsFollowedBy(b.ID, a.ID)
		require.NoError(t, err)
		assert.False(t, followedBy, "no edge yet")

		require.NoError(t, follows.Follow(a.ID, b.ID))

		following, err = follows.IsFollowing(a.ID, b.ID)
		require.NoError(t, err)
		assert.True(t, following, "a should follow b")

		followedBy, err = follows.IsFollowedBy(b.ID, a.ID)
		require.NoError(t, err)
		assert.True(t, followedBy, "b should be followed by a")

		// The edge is directed: b does not follow a.
		reverse, err := follows.IsFollowing(b.ID, a.ID)
		require.NoError(t, err)
		assert.False(t, reverse, "edge must be directed")
	})

	t.Run("duplicate edge fails with integrity error", func(t *testing.T) {
		db := setupTestDB(t)
		users := NewPostgresUserRepository(db)
		follows := NewPostgresFollowRepository(db)
		seeded := seedUsers(t, users, "alice", "bob")

		require.NoError(t, follows.Follow(seeded[0].ID, seeded[1].ID))
		err := follows.Follow(seeded[0].ID, seeded[1].ID)

		assert.ErrorIs(t, err, ErrAlreadyFollowing, "duplicate edge should be rejected")
	})

	t.Run("self follow is rejected", func(t *testing.T) {
		db := setupTestDB(t)
		users := NewPostgresUserRepository(db)
		follows := NewPostgresFollowRepository(db)
		seeded := seedUsers(t, users, "alice")

		err := follows.Follow(seeded[0].ID, seeded[0].ID)

		assert.ErrorIs(t, err, ErrSelfFollow, "self follow should be rejected")
	})

	t.Run("unknown endpoint fails the foreign key", func(t *testing.T) {
		db := setupTestDB(t)
		users := NewPostgresUserRepository(db)
		follows := NewPostgresFollowRepository(db)
		seeded := seedUsers(t, users, "alice")

		err := follows.Follow(seeded[0].ID, 9999)

		assert.ErrorIs(t, err, ErrUserNotFound, "missing followee should be rejected")
	})
}

func TestFollowRepository_Unfollow(t *testing.T) {
	db := setupTestDB(t)
	users := NewPostgresUserRepository(db)
	follows := NewPostgresFollowRepository(db)
	seeded := seedUsers(t, users, "alice", "bob")
	a, b := seeded[0], seeded[1]

	require.NoError(t, follows.Follow(a.ID, b.ID))
	require.NoError(t, follows.Unfollow(a.ID, b.ID))

	following, err := follows.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following, "edge should be removed")

	// Removing an absent edge is a no-op, not an error.
	assert.NoError(t, follows.Unfollow(a.ID, b.ID))
}

func TestFollowRepository_Listings(t *testing.T) {
	db := setupTestDB(t)
	users := NewPostgresUserRepository(db)
	follows := NewPostgresFollowRepository(db)
	seeded := seedUsers(t, users, "alice", "bob", "carol")
	a, b, c := seeded[0], seeded[1], seeded[2]

	require.NoError(t, follows.Follow(a.ID, b.ID))
	require.NoError(t, follows.Follow(c.ID, b.ID))
	require.NoError(t, follows.Follow(b.ID, a.ID))

	followers, err := follows.GetFollowers(b.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2, "bob should have two followers")

	followerIDs := []uint{followers[0].ID, followers[1].ID}
	assert.ElementsMatch(t, []uint{a.ID, c.ID}, followerIDs)

	following, err := follows.GetFollowing(b.ID)
	require.NoError(t, err)
	require.Len(t, following, 1, "bob should follow one user")
	assert.Equal(t, a.ID, following[0].ID)

	count, err := follows.GetFollowersCount(b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = follows.GetFollowingCount(b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	ids, err := follows.GetFollowingIDs(b.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID}, ids)
}

func TestFollowRepository_CascadeOnUserDelete(t *testing.T) {
	db := setupTestDB(t)
	users := NewPostgresUserRepository(db)
	follows := NewPostgresFollowRepository(db)
	seeded := seedUsers(t, users, "alice", "bob")
	a, b := seeded[0], seeded[1]

	require.NoError(t, follows.Follow(a.ID, b.ID))
	require.NoError(t, follows.Follow(b.ID, a.ID))

	require.NoError(t, users.DeleteUser(b.ID))

	// No orphaned edges in either direction.
	count, err := follows.GetFollowingCount(a.ID)
	require.NoError(t, err)
	assert.Zero(t, count, "edges to the deleted user should cascade")

	count, err = follows.GetFollowersCount(a.ID)
	require.NoError(t, err)
	assert.Zero(t, count, "edges from the deleted user should cascade")
}
