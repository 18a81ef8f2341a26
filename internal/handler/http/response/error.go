package response

import (
	"errors"
	"net/http"

	"github.com/tallerhq/ops-backend-go/internal/domain/compday"
	"github.com/tallerhq/ops-backend-go/internal/domain/employee"
	"github.com/tallerhq/ops-backend-go/internal/domain/holiday"
	"github.com/tallerhq/ops-backend-go/internal/domain/leave"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
	"github.com/tallerhq/ops-backend-go/internal/domain/punch"
	"github.com/tallerhq/ops-backend-go/internal/domain/schedule"
	"github.com/tallerhq/ops-backend-go/internal/domain/timebank"
	"github.com/tallerhq/ops-backend-go/internal/domain/vacation"
	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, punch.ErrDuplicatePunch):
		Conflict(w, "Punch already recorded for this client token")

	// Time bank domain errors
	case errors.Is(err, timebank.ErrInvalidMinutes):
		BadRequest(w, "Minutes must be positive", nil)
	case errors.Is(err, timebank.ErrInvalidKind):
		BadRequest(w, "Kind must be CREDIT or DEBIT", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrOvertimeAlreadyProcessed):
		Conflict(w, "Overtime record already processed")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "A holiday is already registered on this date")

	// Compensatory day domain errors
	case errors.Is(err, compday.ErrCompDayNotFound):
		NotFound(w, "Compensatory day not found")
	case errors.Is(err, compday.ErrCompDayAlreadyUsed):
		Conflict(w, "Compensatory day already redeemed")
	case errors.Is(err, compday.ErrCompDayExpired):
		Conflict(w, "Compensatory day has expired")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrVacationAlreadyProcessed):
		Conflict(w, "Vacation request already processed")
	case errors.Is(err, vacation.ErrInsufficientBalance):
		BadRequest(w, "Insufficient vacation balance", nil)
	case errors.Is(err, vacation.ErrInvalidDateRange):
		BadRequest(w, "End date is before start date", nil)
	case errors.Is(err, vacation.ErrNoBusinessDays):
		BadRequest(w, "Requested range contains no business days", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, schedule.ErrSpecialScheduleNotFound):
		NotFound(w, "Special schedule not found")
	case errors.Is(err, schedule.ErrInvalidDateRange):
		BadRequest(w, "Assignment end date is before its start date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
