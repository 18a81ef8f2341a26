package compday

import "errors"

var (
	ErrCompDayNotFound    = errors.New("compensatory day not found")
	ErrCompDayAlreadyUsed = errors.New("compensatory day has already been redeemed")
	ErrCompDayExpired     = errors.New("compensatory day has expired")
)
