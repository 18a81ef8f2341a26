package schedule

import "errors"

var (
	ErrShiftNotFound           = errors.New("shift not found")
	ErrAssignmentNotFound      = errors.New("shift assignment not found")
	ErrSpecialScheduleNotFound = errors.New("special schedule not found")
	ErrInvalidDateRange        = errors.New("assignment end date is before its start date")
)
