package vacation

import "errors"

var (
	ErrVacationNotFound         = errors.New("vacation request not found")
	ErrVacationAlreadyProcessed = errors.New("vacation request has already been approved or rejected")
	ErrInsufficientBalance      = errors.New("insufficient vacation balance")
	ErrInvalidDateRange         = errors.New("end date is before start date")
	ErrNoBusinessDays           = errors.New("requested range contains no business days")
)
