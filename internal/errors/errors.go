// Package errors provides centralized error definitions for teamsmith:
// sentinel errors for the balancing engine and ratings loader, domain
// error types with context builders, and classification helpers used by
// the CLI to decide how much detail to show the user.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions so callers can import only this
// package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Engine-related sentinel errors
var (
	// ErrInvalidTeamCount indicates a team count below 1.
	ErrInvalidTeamCount = New("team count must be at least 1")
	// ErrEmptyRoster indicates that no players were supplied.
	ErrEmptyRoster = New("roster is empty")
)

// Ratings-related sentinel errors
var (
	// ErrRatingsMissingColumn indicates a ratings header without a required column.
	ErrRatingsMissingColumn = New("ratings file is missing a required column")
	// ErrUnknownPolicy indicates an unrecognized unrated-player policy name.
	ErrUnknownPolicy = New("unknown unrated-player policy")
)

// RatingsError represents a failure while loading or parsing a ratings
// file. Path and Line pinpoint the offending record when known.
//
// Example:
//
//	err := errors.NewRatingsError("invalid skill value", cause).WithPath(path).WithLine(7)
type RatingsError struct {
	message string
	cause   error
	Path    string
	Line    int
}

// NewRatingsError creates a new RatingsError.
func NewRatingsError(message string, cause error) *RatingsError {
	return &RatingsError{message: message, cause: cause, Line: -1}
}

// WithPath adds the ratings file path to the error context.
func (e *RatingsError) WithPath(path string) *RatingsError {
	e.Path = path
	return e
}

// WithLine adds a 1-based line number to the error context.
func (e *RatingsError) WithLine(line int) *RatingsError {
	e.Line = line
	return e
}

// Error returns the formatted error message.
func (e *RatingsError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("file=%s", e.Path))
	}
	if e.Line >= 0 {
		parts = append(parts, fmt.Sprintf("line=%d", e.Line))
	}

	prefix := "ratings error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("ratings error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying error.
func (e *RatingsError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *RatingsError) Is(target error) bool {
	if _, ok := target.(*RatingsError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// ValidationError represents invalid input or configuration.
//
// Example:
//
//	err := errors.NewValidationError("team count must be positive").WithField("balance.team_count").WithValue(0)
type ValidationError struct {
	message string
	cause   error
	Field   string
	Value   any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{message: message}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// NotFoundError represents a resource that could not be found, such as
// a roster player with no entry in the ratings source.
//
// Example:
//
//	err := errors.NewNotFoundError("player", "gunnar")
//	fmt.Println(err) // "player 'gunnar' not found"
type NotFoundError struct {
	cause        error
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{ResourceType: resourceType, ResourceID: resourceID}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Unwrap returns the underlying error.
func (e *NotFoundError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsUserFacing returns true if the error message is safe and useful to
// display to end users without further context. All domain and sentinel
// errors defined here qualify.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var ratings *RatingsError
	var validation *ValidationError
	var notFound *NotFoundError
	if As(err, &ratings) || As(err, &validation) || As(err, &notFound) {
		return true
	}

	return Is(err, ErrInvalidTeamCount) || Is(err, ErrEmptyRoster) ||
		Is(err, ErrRatingsMissingColumn) || Is(err, ErrUnknownPolicy)
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
