package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/tallerhq/ops-backend-go/internal/domain/employee"
	"github.com/tallerhq/ops-backend-go/internal/domain/leave"
	"github.com/tallerhq/ops-backend-go/internal/pkg/storage"
)

const attachmentURLExpiry = 24 * time.Hour

type LeaveServiceImpl struct {
	leave.RequestRepository
	employee.EmployeeRepository
	storage storage.FileStorage
}

func NewLeaveService(
	requestRepo leave.RequestRepository,
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
) leave.LeaveService {
	return &LeaveServiceImpl{
		RequestRepository:  requestRepo,
		EmployeeRepository: employeeRepo,
		storage:            fileStorage,
	}
}

// Request implements leave.LeaveService.
func (s *LeaveServiceImpl) Request(ctx context.Context, req leave.CreateLeaveRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.RequestResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startAt, _ := time.Parse(time.RFC3339, req.StartAt)
	endAt, _ := time.Parse(time.RFC3339, req.EndAt)

	request := leave.Request{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		Subtype:    req.Subtype,
		StartAt:    startAt,
		EndAt:      endAt,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	if req.Attachment != nil {
		url, err := s.uploadAttachment(ctx, req)
		if err != nil {
			// A lost supporting document should not block the request itself;
			// the employee can re-attach it through an update.
			slog.Warn("failed to upload leave attachment", "employee_id", req.EmployeeID, "error", err)
		} else {
			request.AttachmentURL = &url
		}
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return mapRequestToResponse(created), nil
}

// Approve implements leave.LeaveService. PENDING → APPROVED, terminal.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveLeaveRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.RequestResponse{}, leave.ErrLeaveNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Processed() {
		return leave.RequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.StatusApproved
	request.ApprovedBy = &req.ApproverID
	request.ApprovedAt = &now
	request.Comments = req.Comments

	if err := s.RequestRepository.UpdateStatus(ctx, request); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to approve leave request: %w", err)
	}
	return mapRequestToResponse(request), nil
}

// Reject implements leave.LeaveService. PENDING → REJECTED, terminal.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveNotFound) {
			return leave.RequestResponse{}, leave.ErrLeaveNotFound
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Processed() {
		return leave.RequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.StatusRejected
	request.ApprovedBy = &req.ApproverID
	request.ApprovedAt = &now
	request.Comments = &req.Reason

	if err := s.RequestRepository.UpdateStatus(ctx, request); err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to reject leave request: %w", err)
	}
	return mapRequestToResponse(request), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.RequestResponse, error) {
	requests, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapRequestToResponse(request))
	}
	return responses, nil
}

func (s *LeaveServiceImpl) uploadAttachment(ctx context.Context, req leave.CreateLeaveRequest) (string, error) {
	ext := filepath.Ext(req.AttachmentName)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path := fmt.Sprintf("leave-attachments/%s/%s%s", req.EmployeeID, uuid.New().String(), ext)
	key, err := s.storage.Upload(ctx, req.Attachment, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload attachment: %w", err)
	}

	url, err := s.storage.GetURL(ctx, key, attachmentURLExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to resolve attachment url: %w", err)
	}
	return url, nil
}

func mapRequestToResponse(request leave.Request) leave.RequestResponse {
	return leave.RequestResponse{
		ID:            request.ID,
		EmployeeID:    request.EmployeeID,
		Type:          request.Type,
		Subtype:       request.Subtype,
		StartAt:       request.StartAt.Format(time.RFC3339),
		EndAt:         request.EndAt.Format(time.RFC3339),
		Reason:        request.Reason,
		AttachmentURL: request.AttachmentURL,
		Status:        string(request.Status),
		ApprovedBy:    request.ApprovedBy,
		Comments:      request.Comments,
	}
}
