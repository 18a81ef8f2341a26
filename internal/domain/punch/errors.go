package punch

import "errors"

var (
	ErrPunchNotFound  = errors.New("punch not found")
	ErrDuplicatePunch = errors.New("a punch with this client token already exists for the day")
)
