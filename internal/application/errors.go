package application

import "errors"

var (
	// ErrUserExists is returned by signup when the username or email is taken.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned by login when no user matches the username.
	ErrUserNotFound = errors.New("user not found")

	// ErrIncorrectPassword is returned by login when the hash comparison fails.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrDuplicateSubmission is returned by the intake pipeline when a
	// submission collides with an existing record on its duplicate key.
	ErrDuplicateSubmission = errors.New("duplicate submission")
)
