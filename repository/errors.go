package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound signals a stale identifier: the row was deleted from the
	// store, possibly by another admin session.
	ErrNotFound = errors.New("record not found")

	// ErrMissingCategory guards menu-item creation: the target restaurant
	// has no categories yet, so the item would be orphaned.
	ErrMissingCategory = errors.New("restaurant has no categories")

	// ErrCategoryMismatch guards a menu item whose category belongs to a
	// different restaurant.
	ErrCategoryMismatch = errors.New("category belongs to a different restaurant")

	// ErrCodeTaken signals a duplicate offer code.
	ErrCodeTaken = errors.New("offer code already in use")
)

// RemoteError wraps a store fault. The cause is preserved for logs but is
// never shown to the end user.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// remoteErr maps gorm's missing-row sentinel to ErrNotFound and wraps
// everything else.
func remoteErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return &RemoteError{Op: op, Err: err}
}
