// Package objectid - errors.go provides custom error types with rich context.
//
// These error types carry the offending value and the violated constraint,
// making construction failures directly actionable without string parsing.

package objectid

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by validating constructors.
// These can be used with errors.Is() and errors.As() for error checking.
var (
	// ErrInvalidLength is returned when raw byte input is not exactly 12 bytes.
	// Construction fails; the input is never truncated or padded.
	ErrInvalidLength = errors.New("objectid: invalid length")

	// ErrOutOfRange is returned when a field value exceeds its bit width, or
	// a calendar timestamp falls outside the representable uint32 second range.
	ErrOutOfRange = errors.New("objectid: value out of range")
)

// ============================================================================
// Custom Error Types
// ============================================================================

// LengthError reports a raw byte input whose length is not exactly RawLen.
//
// Example usage:
//
//	if _, err := objectid.FromBytes(buf); err != nil {
//	    var lenErr *objectid.LengthError
//	    if errors.As(err, &lenErr) {
//	        log.Printf("bad id length: got %d bytes", lenErr.Len)
//	    }
//	}
type LengthError struct {
	// Len is the length of the rejected input in bytes.
	Len int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("objectid: invalid length: got %d bytes, want %d", e.Len, RawLen)
}

// Unwrap returns ErrInvalidLength for errors.Is() compatibility.
func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

// RangeError reports a field value that does not fit its allotted bits.
//
// Example usage:
//
//	if _, err := objectid.FromParts(ts, machine, pid, counter); err != nil {
//	    var rangeErr *objectid.RangeError
//	    if errors.As(err, &rangeErr) {
//	        log.Printf("%s=%d exceeds max %d", rangeErr.Field, rangeErr.Value, rangeErr.Max)
//	    }
//	}
type RangeError struct {
	// Field is the name of the rejected field ("machine", "counter",
	// "random", "timestamp").
	Field string

	// Value is the rejected value.
	Value int64

	// Max is the largest value the field can hold.
	Max int64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("objectid: %s out of range: %d exceeds maximum %d", e.Field, e.Value, e.Max)
}

// Unwrap returns ErrOutOfRange for errors.Is() compatibility.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// ============================================================================
// Error Helper Functions
// ============================================================================

// IsLengthError checks if an error is or wraps a LengthError.
func IsLengthError(err error) bool {
	var lenErr *LengthError
	return errors.As(err, &lenErr)
}

// IsRangeError checks if an error is or wraps a RangeError.
func IsRangeError(err error) bool {
	var rangeErr *RangeError
	return errors.As(err, &rangeErr)
}

// GetRangeError extracts the RangeError from an error chain.
//
// Returns the RangeError and true if found, nil and false otherwise.
func GetRangeError(err error) (*RangeError, bool) {
	var rangeErr *RangeError
	if errors.As(err, &rangeErr) {
		return rangeErr, true
	}
	return nil, false
}

// ============================================================================
// Error Constructor Helpers
// ============================================================================

// newLengthError creates a LengthError for an input of the given length.
func newLengthError(n int) *LengthError {
	return &LengthError{Len: n}
}

// newRangeError creates a RangeError for the named field.
func newRangeError(field string, value, max int64) *RangeError {
	return &RangeError{Field: field, Value: value, Max: max}
}
