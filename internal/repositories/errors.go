package repositories

import "errors"

// Storage-contract errors surfaced by the repositories. Handlers map these
// to HTTP status codes; nothing below is ever wrapped in an HTTP type here.
var (
	// ErrCredentialsRequired is returned by Signup before any storage
	// interaction when username, email or password is missing.
	ErrCredentialsRequired = errors.New("username, email and password are required")

	// ErrUserExists is returned when the users table rejects a duplicate
	// username or email at commit time.
	ErrUserExists = errors.New("username or email already taken")

	// ErrUserNotFound is returned when no user matches the given criteria,
	// including foreign-key failures against the users table.
	ErrUserNotFound = errors.New("user not found")

	// ErrSelfFollow is returned when a user attempts to follow itself.
	ErrSelfFollow = errors.New("users cannot follow themselves")

	// ErrAlreadyFollowing is returned when the follows table rejects a
	// duplicate (follower, following) edge.
	ErrAlreadyFollowing = errors.New("already following this user")

	// ErrMessageTextRequired is returned when a message is persisted with
	// empty text.
	ErrMessageTextRequired = errors.New("message text is required")

	// ErrMessageTooLong is returned when message text exceeds the
	// 140-character column bound.
	ErrMessageTooLong = errors.New("message text exceeds 140 characters")

	// ErrMessageNotFound is returned when no message matches the given id.
	ErrMessageNotFound = errors.New("message not found")

	// ErrNotMessageOwner is returned when a caller tries to delete a
	// message it does not own.
	ErrNotMessageOwner = errors.New("message is owned by another user")

	// ErrAlreadyLiked is returned when the likes table rejects a duplicate
	// (user, message) pair.
	ErrAlreadyLiked = errors.New("message already liked")

	// ErrOwnMessageLike is returned when a user tries to like their own
	// message.
	ErrOwnMessageLike = errors.New("cannot like your own message")
)
