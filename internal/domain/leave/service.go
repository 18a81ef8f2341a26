package leave

import "context"

type LeaveService interface {
	Request(ctx context.Context, req CreateLeaveRequest) (RequestResponse, error)
	Approve(ctx context.Context, req ApproveLeaveRequest) (RequestResponse, error)
	Reject(ctx context.Context, req RejectLeaveRequest) (RequestResponse, error)
	List(ctx context.Context, filter ListFilter) ([]RequestResponse, error)
}
