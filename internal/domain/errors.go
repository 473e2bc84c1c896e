package domain

import "errors"

var (
	// Cut errors
	ErrCutNotFound      = errors.New("cut not found")
	ErrCutAlreadyClosed = errors.New("cut is already closed")
	ErrCutDateTaken     = errors.New("a cut already exists for this date")
	ErrInvalidCutDate   = errors.New("invalid cut date")
	ErrInvalidCutStatus = errors.New("invalid cut status")

	// Expense errors
	ErrExpenseSummaryNotFound = errors.New("daily expense summary not found")

	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrUserInactive      = errors.New("user account is inactive")

	// ErrValidation wraps input validation failures.
	ErrValidation = errors.New("validation failed")
)
