package overtime

import "context"

type OvertimeService interface {
	// CreateFromPunch classifies and records the extra hours of an EXIT punch.
	// Called by the punch processor.
	CreateFromPunch(ctx context.Context, input PunchOvertimeInput) (Record, error)

	Get(ctx context.Context, id string) (RecordResponse, error)
	List(ctx context.Context, filter ListFilter) (ListResponse, error)
	Approve(ctx context.Context, req ApproveRequest) (RecordResponse, error)
	Reject(ctx context.Context, req RejectRequest) (RecordResponse, error)
}

// PunchOvertimeInput carries everything the classifier needs from the punch
// processor; the holiday lookup happens inside the service.
type PunchOvertimeInput struct {
	EmployeeID   string
	PunchID      string
	Date         string // "2006-01-02", punch-local day
	ExpectedExit string // "HH:MM"
	ActualExit   string // "HH:MM"
}
