// Package login provides HTTP handlers for the admin login.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be parsed.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is returned when the password does not match.
	ErrInvalidCredentials = errors.New("invalid password")

	// ErrInternalServerError is returned for unexpected failures during the login
	// process.
	ErrInternalServerError = errors.New("internal server error")
)
