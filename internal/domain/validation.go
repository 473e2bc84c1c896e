package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validation constants
const (
	MaxNotesLength    = 2048
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	upperRegex  = regexp.MustCompile(`[A-Z]`)
	lowerRegex  = regexp.MustCompile(`[a-z]`)
	numberRegex = regexp.MustCompile(`[0-9]`)
)

// ValidateCutDate validates a cut's calendar day. Cuts are never recorded
// for days that have not happened yet.
func ValidateCutDate(date time.Time, now time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidCutDate)
	}
	if DateOnly(date).After(DateOnly(now)) {
		return fmt.Errorf("%w: date is in the future", ErrInvalidCutDate)
	}
	return nil
}

// ValidateNotes validates the optional free-text notes field.
func ValidateNotes(notes string) error {
	if len(notes) > MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrValidation, MaxNotesLength)
	}
	return nil
}

// ValidateEmail validates email format
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	return nil
}

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("%w: password must not exceed %d characters", ErrValidation, MaxPasswordLength)
	}

	if !upperRegex.MatchString(password) || !lowerRegex.MatchString(password) || !numberRegex.MatchString(password) {
		return fmt.Errorf("%w: password must contain uppercase, lowercase, and numbers", ErrValidation)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
