// Package controller holds what all entity controllers share: sentinel errors and
// the generic row helpers the entity packages are built on.
package controller

import "errors"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned when no row matches the given id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidStatus is returned for a status outside the entity's closed set.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidID is returned for the zero id.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidLimit is returned when a non positive row limit is requested.
	ErrInvalidLimit = errors.New("limit must be positive")
)
