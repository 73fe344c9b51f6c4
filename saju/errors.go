/*
errors.go - Error types for the engine boundary

PURPOSE:
  The engine has exactly two input failure modes, both detected eagerly at
  the public entry points. Everything below the entry points is total.

ERROR CATEGORIES:
  1. ErrInvalidDateFormat - birth date is not a real YYYY-MM-DD calendar day
  2. ErrOutOfRangeHour    - birth hour outside [0,23]
  3. ErrUnknownApportionment - engine configured with an unknown allocator

USAGE:
  _, err := saju.CalculateSaju("1990-13-01", nil)
  if errors.Is(err, saju.ErrInvalidDateFormat) {
      // 400 to the caller
  }

  var dateErr *saju.DateError
  if errors.As(err, &dateErr) {
      log.Printf("bad input %q", dateErr.Input)
  }
*/
package saju

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDateFormat is returned when the birth date cannot be parsed
	// as a YYYY-MM-DD calendar date in years 1..9999.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrOutOfRangeHour is returned when a supplied birth hour is outside [0,23].
	ErrOutOfRangeHour = errors.New("hour out of range")

	// ErrUnknownApportionment is returned when an engine is configured with
	// an allocation method it does not know.
	ErrUnknownApportionment = errors.New("unknown apportionment method")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DateError describes a rejected birth date.
type DateError struct {
	Input string
	Err   error // underlying parse error, may be nil
}

func (e *DateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q: %v", ErrInvalidDateFormat, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %q", ErrInvalidDateFormat, e.Input)
}

func (e *DateError) Unwrap() error { return ErrInvalidDateFormat }

// HourError describes a rejected birth hour.
type HourError struct {
	Hour int
}

func (e *HourError) Error() string {
	return fmt.Sprintf("%s: %d (want 0-23)", ErrOutOfRangeHour, e.Hour)
}

func (e *HourError) Unwrap() error { return ErrOutOfRangeHour }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDateFormat) ||
		errors.Is(err, ErrOutOfRangeHour)
}
