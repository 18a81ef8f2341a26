package overtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tallerhq/ops-backend-go/internal/domain/holiday"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
)

type OvertimeServiceImpl struct {
	overtime.RecordRepository
	holiday.HolidayRepository
}

func NewOvertimeService(recordRepo overtime.RecordRepository, holidayRepo holiday.HolidayRepository) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		RecordRepository:  recordRepo,
		HolidayRepository: holidayRepo,
	}
}

// CreateFromPunch implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) CreateFromPunch(ctx context.Context, input overtime.PunchOvertimeInput) (overtime.Record, error) {
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return overtime.Record{}, fmt.Errorf("invalid overtime date %q: %w", input.Date, err)
	}

	hol, err := s.HolidayRepository.FindByDate(ctx, date)
	if err != nil {
		// The calendar being unreachable must not block the record; the day
		// classifies as non-holiday and an admin can correct it on approval.
		slog.Warn("holiday lookup failed, classifying as non-holiday", "date", input.Date, "error", err)
		hol = nil
	}

	result := Classify(date, input.ExpectedExit, input.ActualExit, hol)

	record := overtime.Record{
		EmployeeID:      input.EmployeeID,
		PunchID:         input.PunchID,
		Date:            date,
		StartedAt:       input.ExpectedExit,
		EndedAt:         input.ActualExit,
		Classification:  result.Kind,
		Multiplier:      result.Multiplier,
		RawHours:        result.RawHours,
		EquivalentHours: result.EquivalentHours,
		Status:          overtime.StatusPending,
	}

	created, err := s.RecordRepository.Create(ctx, record)
	if err != nil {
		return overtime.Record{}, fmt.Errorf("failed to create overtime record: %w", err)
	}
	return created, nil
}

// Get implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Get(ctx context.Context, id string) (overtime.RecordResponse, error) {
	record, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, overtime.ErrOvertimeNotFound) {
			return overtime.RecordResponse{}, overtime.ErrOvertimeNotFound
		}
		return overtime.RecordResponse{}, fmt.Errorf("failed to get overtime record: %w", err)
	}
	return mapRecordToResponse(record), nil
}

// List implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) List(ctx context.Context, filter overtime.ListFilter) (overtime.ListResponse, error) {
	records, total, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return overtime.ListResponse{}, fmt.Errorf("failed to list overtime records: %w", err)
	}

	responses := make([]overtime.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapRecordToResponse(record))
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}

	return overtime.ListResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		Records:    responses,
	}, nil
}

// Approve implements overtime.OvertimeService. PENDING → APPROVED, terminal.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, req overtime.ApproveRequest) (overtime.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.RecordResponse{}, err
	}

	record, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, overtime.ErrOvertimeNotFound) {
			return overtime.RecordResponse{}, overtime.ErrOvertimeNotFound
		}
		return overtime.RecordResponse{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	if record.Processed() {
		return overtime.RecordResponse{}, overtime.ErrOvertimeAlreadyProcessed
	}

	now := time.Now()
	record.Status = overtime.StatusApproved
	record.ApprovedBy = &req.ApproverID
	record.ApprovedAt = &now
	record.RejectionReason = nil

	if err := s.RecordRepository.UpdateStatus(ctx, record); err != nil {
		return overtime.RecordResponse{}, fmt.Errorf("failed to approve overtime record: %w", err)
	}
	return mapRecordToResponse(record), nil
}

// Reject implements overtime.OvertimeService. PENDING → REJECTED, terminal.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, req overtime.RejectRequest) (overtime.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.RecordResponse{}, err
	}

	record, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, overtime.ErrOvertimeNotFound) {
			return overtime.RecordResponse{}, overtime.ErrOvertimeNotFound
		}
		return overtime.RecordResponse{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	if record.Processed() {
		return overtime.RecordResponse{}, overtime.ErrOvertimeAlreadyProcessed
	}

	now := time.Now()
	record.Status = overtime.StatusRejected
	record.ApprovedBy = &req.ApproverID
	record.ApprovedAt = &now
	record.RejectionReason = &req.Reason

	if err := s.RecordRepository.UpdateStatus(ctx, record); err != nil {
		return overtime.RecordResponse{}, fmt.Errorf("failed to reject overtime record: %w", err)
	}
	return mapRecordToResponse(record), nil
}

func mapRecordToResponse(record overtime.Record) overtime.RecordResponse {
	return overtime.RecordResponse{
		ID:              record.ID,
		EmployeeID:      record.EmployeeID,
		EmployeeName:    record.EmployeeName,
		PunchID:         record.PunchID,
		Date:            record.Date.Format("2006-01-02"),
		StartedAt:       record.StartedAt,
		EndedAt:         record.EndedAt,
		Classification:  string(record.Classification),
		Multiplier:      record.Multiplier.String(),
		RawHours:        record.RawHours.String(),
		EquivalentHours: record.EquivalentHours.String(),
		Status:          string(record.Status),
		ApprovedBy:      record.ApprovedBy,
		RejectionReason: record.RejectionReason,
	}
}
