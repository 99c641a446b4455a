// Package errors provides the error definitions for tempseries.
//
// This file provides:
// - Sentinel errors for all error conditions
// - Error category checking functions
// - ErrorToCode and CodeName mapping (used for process exit codes)
// - Error wrapping utilities

package errors

import (
	"errors"
	"fmt"
)

// ============================================================================
// Exit codes - returned by the tempseries command
// ============================================================================

const (
	CodeOK            int = 0
	CodeInternal      int = 1
	CodeInvalidInput  int = 2
	CodeEmptySeries   int = 3
	CodeInvalidConfig int = 4
	CodeInvalidQuery  int = 5
)

// CodeName returns a human-readable name for an exit code.
func CodeName(code int) string {
	switch code {
	case CodeOK:
		return "OK"
	case CodeInternal:
		return "Internal"
	case CodeInvalidInput:
		return "InvalidInput"
	case CodeEmptySeries:
		return "EmptySeries"
	case CodeInvalidConfig:
		return "InvalidConfig"
	case CodeInvalidQuery:
		return "InvalidQuery"
	default:
		return fmt.Sprintf("Code(%d)", code)
	}
}

// ============================================================================
// Sentinel errors
// ============================================================================

var (
	// Series errors
	ErrInvalidInput = errors.New("temperature below minimum possible value")
	ErrEmptySeries  = errors.New("series is empty")

	// Query errors
	ErrInvalidQuantile = errors.New("quantile must be within [0, 1]")
	ErrInvalidAccuracy = errors.New("relative accuracy must be within (0, 1)")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingField  = errors.New("missing required field")

	// Command errors
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidNumber  = errors.New("invalid number")

	// Sketch errors
	ErrUntrackableValue = errors.New("reading cannot be tracked by the percentile sketch")
)

// ============================================================================
// Helper functions for error checking
// ============================================================================

// Is is a convenience wrapper for errors.Is
var Is = errors.Is

// As is a convenience wrapper for errors.As
var As = errors.As

// IsValidation returns true if err is caused by a rejected input value.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrUntrackableValue)
}

// IsEmpty returns true if err is an empty-series error.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmptySeries)
}

// IsQueryError returns true if err is caused by invalid query parameters.
func IsQueryError(err error) bool {
	return errors.Is(err, ErrInvalidQuantile) ||
		errors.Is(err, ErrInvalidAccuracy) ||
		errors.Is(err, ErrUnknownCommand)
}

// IsConfigError returns true if err is a configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrMissingField)
}

// ============================================================================
// Error to exit code mapping
// ============================================================================

// ErrorToCode maps an error to the exit code of the tempseries command.
func ErrorToCode(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case IsValidation(err):
		return CodeInvalidInput
	case IsEmpty(err):
		return CodeEmptySeries
	case IsConfigError(err):
		return CodeInvalidConfig
	case IsQueryError(err):
		return CodeInvalidQuery
	default:
		return CodeInternal
	}
}

// ============================================================================
// Error wrapping utilities
// ============================================================================

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ============================================================================
// Error constructors with context
// ============================================================================

// NewInvalidReading creates an invalid-input error naming the rejected reading.
func NewInvalidReading(index int, value, minimum float64) error {
	return fmt.Errorf("reading %d (%g) is below %g: %w", index, value, minimum, ErrInvalidInput)
}

// NewValidation creates a configuration validation error with context.
func NewValidation(field, reason string) error {
	return fmt.Errorf("invalid %s: %s: %w", field, reason, ErrInvalidConfig)
}

// NewMissingField creates a missing field error.
func NewMissingField(field string) error {
	return fmt.Errorf("%s: %w", field, ErrMissingField)
}

// NewInvalidValue creates an invalid value error.
func NewInvalidValue(field string, value interface{}, reason string) error {
	return fmt.Errorf("invalid %s '%v': %s: %w", field, value, reason, ErrInvalidConfig)
}

// ============================================================================
// Validation Errors Collection
// ============================================================================

// ValidationErrors collects multiple validation errors.
type ValidationErrors struct {
	Errors []error
}

// NewValidationErrors creates a new ValidationErrors collector.
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{}
}

// Add adds an error to the collection.
func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.Errors = append(v.Errors, err)
	}
}

// AddField adds a field validation error.
func (v *ValidationErrors) AddField(field, reason string) {
	v.Errors = append(v.Errors, NewValidation(field, reason))
}

// AddMissing adds a missing field error.
func (v *ValidationErrors) AddMissing(field string) {
	v.Errors = append(v.Errors, NewMissingField(field))
}

// HasErrors returns true if there are any errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return ""
	}
	if len(v.Errors) == 1 {
		return v.Errors[0].Error()
	}

	msg := fmt.Sprintf("validation failed with %d errors:", len(v.Errors))
	for _, err := range v.Errors {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Err returns nil if no errors, otherwise returns the ValidationErrors.
func (v *ValidationErrors) Err() error {
	if len(v.Errors) == 0 {
		return nil
	}
	return v
}

// Unwrap returns the collected errors for errors.Is/As support.
func (v *ValidationErrors) Unwrap() []error {
	return v.Errors
}
