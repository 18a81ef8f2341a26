package leave

import "errors"

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
)
