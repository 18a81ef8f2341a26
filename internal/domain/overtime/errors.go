package overtime

import "errors"

var (
	ErrOvertimeNotFound         = errors.New("overtime record not found")
	ErrOvertimeAlreadyProcessed = errors.New("overtime record has already been approved or rejected")
)
