package auth

import "errors"

var (
	// ErrInvalidPassword is returned when the provided password is incorrect.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrEmptyPassword is returned for an empty input or configured secret.
	ErrEmptyPassword = errors.New("password can not be empty")
)
