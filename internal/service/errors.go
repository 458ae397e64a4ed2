package service

import "errors"

var (
	// ErrValidation wraps the validator error describing invalid input.
	ErrValidation = errors.New("invalid data provided")

	// ErrNotFound is returned when the requested record does not exist for
	// the calling user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidReference is returned when a record points at a parent
	// record (body part, muscle group) the user does not have.
	ErrInvalidReference = errors.New("referenced record does not exist")

	ErrUsernameTaken    = errors.New("username already taken")
	ErrWrongCredentials = errors.New("incorrect username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
