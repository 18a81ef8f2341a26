package compday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallerhq/ops-backend-go/internal/domain/compday"
)

type CompDayServiceImpl struct {
	compday.CompensatoryDayRepository
}

func NewCompDayService(repo compday.CompensatoryDayRepository) compday.CompDayService {
	return &CompDayServiceImpl{CompensatoryDayRepository: repo}
}

// Issue implements compday.CompDayService.
func (s *CompDayServiceImpl) Issue(ctx context.Context, employeeID, punchID string, earnedDate time.Time, reason string, days decimal.Decimal) (compday.CompensatoryDay, error) {
	if days.IsZero() {
		days = decimal.NewFromInt(1)
	}

	day := compday.CompensatoryDay{
		EmployeeID: employeeID,
		EarnedDate: earnedDate,
		Reason:     reason,
		Days:       days,
		ExpiresAt:  compday.ExpiryFor(earnedDate),
		Status:     compday.StatusAvailable,
	}
	if punchID != "" {
		day.PunchID = &punchID
	}

	created, err := s.CompensatoryDayRepository.Create(ctx, day)
	if err != nil {
		return compday.CompensatoryDay{}, fmt.Errorf("failed to create compensatory day: %w", err)
	}
	return created, nil
}

// Redeem implements compday.CompDayService. AVAILABLE → USED, terminal.
// Expiry is checked here, at read time: there is no sweep that flips expired
// rows, so the stored status stays AVAILABLE and redemption is what enforces
// the deadline.
func (s *CompDayServiceImpl) Redeem(ctx context.Context, req compday.RedeemRequest) (compday.CompensatoryDayResponse, error) {
	if err := req.Validate(); err != nil {
		return compday.CompensatoryDayResponse{}, err
	}

	day, err := s.CompensatoryDayRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, compday.ErrCompDayNotFound) {
			return compday.CompensatoryDayResponse{}, compday.ErrCompDayNotFound
		}
		return compday.CompensatoryDayResponse{}, fmt.Errorf("failed to get compensatory day: %w", err)
	}

	if day.Status == compday.StatusUsed {
		return compday.CompensatoryDayResponse{}, compday.ErrCompDayAlreadyUsed
	}
	if day.IsExpired(time.Now()) {
		return compday.CompensatoryDayResponse{}, compday.ErrCompDayExpired
	}

	useDate, _ := time.Parse("2006-01-02", req.UseDate)
	day.Status = compday.StatusUsed
	day.UsedDate = &useDate

	if err := s.CompensatoryDayRepository.MarkUsed(ctx, day); err != nil {
		return compday.CompensatoryDayResponse{}, fmt.Errorf("failed to redeem compensatory day: %w", err)
	}
	return mapCompDayToResponse(day, time.Now()), nil
}

// List implements compday.CompDayService.
func (s *CompDayServiceImpl) List(ctx context.Context, filter compday.ListFilter) ([]compday.CompensatoryDayResponse, error) {
	days, err := s.CompensatoryDayRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensatory days: %w", err)
	}

	now := time.Now()
	responses := make([]compday.CompensatoryDayResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, mapCompDayToResponse(day, now))
	}
	return responses, nil
}

func mapCompDayToResponse(day compday.CompensatoryDay, now time.Time) compday.CompensatoryDayResponse {
	var usedDate *string
	if day.UsedDate != nil {
		formatted := day.UsedDate.Format("2006-01-02")
		usedDate = &formatted
	}

	return compday.CompensatoryDayResponse{
		ID:         day.ID,
		EmployeeID: day.EmployeeID,
		PunchID:    day.PunchID,
		EarnedDate: day.EarnedDate.Format("2006-01-02"),
		Reason:     day.Reason,
		Days:       day.Days.String(),
		ExpiresAt:  day.ExpiresAt.Format("2006-01-02"),
		Status:     string(day.Status),
		Expired:    day.IsExpired(now),
		UsedDate:   usedDate,
	}
}
