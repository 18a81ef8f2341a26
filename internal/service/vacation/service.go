package vacation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tallerhq/ops-backend-go/internal/domain/employee"
	"github.com/tallerhq/ops-backend-go/internal/domain/vacation"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
)

type VacationServiceImpl struct {
	vacation.RequestRepository
	vacation.BalanceRepository
	employee.EmployeeRepository
	tx database.TxRunner
}

func NewVacationService(
	requestRepo vacation.RequestRepository,
	balanceRepo vacation.BalanceRepository,
	employeeRepo employee.EmployeeRepository,
	tx database.TxRunner,
) vacation.VacationService {
	return &VacationServiceImpl{
		RequestRepository:  requestRepo,
		BalanceRepository:  balanceRepo,
		EmployeeRepository: employeeRepo,
		tx:                 tx,
	}
}

// BusinessDaysBetween counts Mon–Fri days in [start, end], inclusive.
// Holidays are not excluded from vacation spans.
func BusinessDaysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}

	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

// Request implements vacation.VacationService.
func (s *VacationServiceImpl) Request(ctx context.Context, req vacation.CreateVacationRequest) (vacation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return vacation.RequestResponse{}, employee.ErrEmployeeNotFound
		}
		return vacation.RequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	businessDays := BusinessDaysBetween(startDate, endDate)
	if businessDays == 0 {
		return vacation.RequestResponse{}, vacation.ErrNoBusinessDays
	}

	year := startDate.Year()
	balance, err := s.ensureBalance(ctx, req.EmployeeID, year)
	if err != nil {
		return vacation.RequestResponse{}, err
	}

	if businessDays > balance.AvailableDays {
		return vacation.RequestResponse{}, vacation.ErrInsufficientBalance
	}

	request := vacation.Request{
		EmployeeID:   req.EmployeeID,
		Year:         year,
		StartDate:    startDate,
		EndDate:      endDate,
		BusinessDays: businessDays,
		Status:       vacation.StatusPending,
		Reason:       req.Reason,
	}

	var created vacation.Request
	err = s.tx(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = s.RequestRepository.Create(ctx, request)
		if txErr != nil {
			return fmt.Errorf("failed to create vacation request: %w", txErr)
		}
		return s.recomputeBalance(ctx, req.EmployeeID, year)
	})
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	return mapRequestToResponse(created), nil
}

// Approve implements vacation.VacationService. PENDING → APPROVED, terminal.
func (s *VacationServiceImpl) Approve(ctx context.Context, req vacation.ApproveVacationRequest) (vacation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, vacation.ErrVacationNotFound) {
			return vacation.RequestResponse{}, vacation.ErrVacationNotFound
		}
		return vacation.RequestResponse{}, fmt.Errorf("failed to get vacation request: %w", err)
	}

	if request.Processed() {
		return vacation.RequestResponse{}, vacation.ErrVacationAlreadyProcessed
	}

	now := time.Now()
	request.Status = vacation.StatusApproved
	request.ApprovedBy = &req.ApproverID
	request.ApprovedAt = &now
	request.RejectionReason = nil

	// The status change and the balance it frees or consumes move together.
	err = s.tx(ctx, func(ctx context.Context) error {
		if err := s.RequestRepository.UpdateStatus(ctx, request); err != nil {
			return fmt.Errorf("failed to approve vacation request: %w", err)
		}
		return s.recomputeBalance(ctx, request.EmployeeID, request.Year)
	})
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	return mapRequestToResponse(request), nil
}

// Reject implements vacation.VacationService. PENDING → REJECTED, terminal.
// The recompute after the transition is what frees the request's days.
func (s *VacationServiceImpl) Reject(ctx context.Context, req vacation.RejectVacationRequest) (vacation.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.RequestResponse{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, vacation.ErrVacationNotFound) {
			return vacation.RequestResponse{}, vacation.ErrVacationNotFound
		}
		return vacation.RequestResponse{}, fmt.Errorf("failed to get vacation request: %w", err)
	}

	if request.Processed() {
		return vacation.RequestResponse{}, vacation.ErrVacationAlreadyProcessed
	}

	now := time.Now()
	request.Status = vacation.StatusRejected
	request.ApprovedBy = &req.ApproverID
	request.ApprovedAt = &now
	request.RejectionReason = &req.Reason

	err = s.tx(ctx, func(ctx context.Context) error {
		if err := s.RequestRepository.UpdateStatus(ctx, request); err != nil {
			return fmt.Errorf("failed to reject vacation request: %w", err)
		}
		return s.recomputeBalance(ctx, request.EmployeeID, request.Year)
	})
	if err != nil {
		return vacation.RequestResponse{}, err
	}
	return mapRequestToResponse(request), nil
}

// List implements vacation.VacationService.
func (s *VacationServiceImpl) List(ctx context.Context, filter vacation.ListFilter) ([]vacation.RequestResponse, error) {
	requests, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}

	responses := make([]vacation.RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapRequestToResponse(request))
	}
	return responses, nil
}

// GetBalance implements vacation.VacationService.
func (s *VacationServiceImpl) GetBalance(ctx context.Context, employeeID string, year int) (vacation.BalanceResponse, error) {
	if err := s.recomputeBalance(ctx, employeeID, year); err != nil {
		return vacation.BalanceResponse{}, err
	}

	balance, err := s.ensureBalance(ctx, employeeID, year)
	if err != nil {
		return vacation.BalanceResponse{}, err
	}

	return vacation.BalanceResponse{
		EmployeeID:    balance.EmployeeID,
		Year:          balance.Year,
		TotalDays:     balance.TotalDays,
		UsedDays:      balance.UsedDays,
		PendingDays:   balance.PendingDays,
		AvailableDays: balance.AvailableDays,
	}, nil
}

// ensureBalance fetches the year balance, lazily creating it with the default
// annual budget and a recompute over whatever requests already exist.
func (s *VacationServiceImpl) ensureBalance(ctx context.Context, employeeID string, year int) (vacation.Balance, error) {
	existing, err := s.BalanceRepository.GetByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return vacation.Balance{}, fmt.Errorf("failed to get vacation balance: %w", err)
	}
	if existing != nil {
		return *existing, nil
	}

	balance := vacation.Balance{
		EmployeeID: employeeID,
		Year:       year,
		TotalDays:  vacation.DefaultAnnualDays,
	}

	requests, err := s.RequestRepository.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return vacation.Balance{}, fmt.Errorf("failed to list vacation requests: %w", err)
	}
	balance.Recompute(requests)

	created, err := s.BalanceRepository.Create(ctx, balance)
	if err != nil {
		return vacation.Balance{}, fmt.Errorf("failed to create vacation balance: %w", err)
	}
	return created, nil
}

// recomputeBalance rebuilds the stored split from the year's request set.
// It runs after every state change; nothing ever patches the fields in place.
func (s *VacationServiceImpl) recomputeBalance(ctx context.Context, employeeID string, year int) error {
	balance, err := s.ensureBalance(ctx, employeeID, year)
	if err != nil {
		return err
	}

	requests, err := s.RequestRepository.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return fmt.Errorf("failed to list vacation requests: %w", err)
	}

	balance.Recompute(requests)
	if err := s.BalanceRepository.Update(ctx, balance); err != nil {
		return fmt.Errorf("failed to update vacation balance: %w", err)
	}
	return nil
}

func mapRequestToResponse(request vacation.Request) vacation.RequestResponse {
	return vacation.RequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		Year:            request.Year,
		StartDate:       request.StartDate.Format("2006-01-02"),
		EndDate:         request.EndDate.Format("2006-01-02"),
		BusinessDays:    request.BusinessDays,
		Status:          string(request.Status),
		Reason:          request.Reason,
		ApprovedBy:      request.ApprovedBy,
		RejectionReason: request.RejectionReason,
	}
}
