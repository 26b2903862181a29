// Package apperr defines the error taxonomy shared by the journal core.
// Closed-day mutations are deliberately NOT errors; they surface as an
// "ignored" status value from the journal service instead.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced day, block, quote or user that does
	// not exist. Lazy day creation is the one sanctioned exception.
	ErrNotFound = errors.New("not found")

	// ErrInvariant marks input rejected at the boundary, e.g. a time
	// block whose end is not after its start.
	ErrInvariant = errors.New("invariant violation")

	// ErrUnauthorized marks a missing or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")
)

// NotFoundf wraps ErrNotFound with context.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Invariantf wraps ErrInvariant with context.
func Invariantf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvariant)...)
}

// Unauthorizedf wraps ErrUnauthorized with context.
func Unauthorizedf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnauthorized)...)
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsInvariant reports whether err is (or wraps) ErrInvariant.
func IsInvariant(err error) bool { return errors.Is(err, ErrInvariant) }
