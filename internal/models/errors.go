package models

import "errors"

// Validation errors returned by Validate. Services map them to INVALID_INPUT.
var (
	ErrEmptyID                = errors.New("id is required")
	ErrEmptyTitle             = errors.New("title is required")
	ErrEmptyDate              = errors.New("date is required")
	ErrNonPositiveAmount      = errors.New("amount must be greater than zero")
	ErrNonPositiveTarget      = errors.New("target amount must be greater than zero")
	ErrNonPositiveDelta       = errors.New("contribution must be greater than zero")
	ErrInvalidTransactionType = errors.New("type must be income or expense")
	ErrInvalidDeadline        = errors.New("deadline must be a valid date")
)
