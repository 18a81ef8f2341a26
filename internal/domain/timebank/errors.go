package timebank

import "errors"

var (
	ErrInvalidMinutes = errors.New("minutes must be positive")
	ErrInvalidKind    = errors.New("kind must be CREDIT or DEBIT")
)
