package timebank

import (
	"context"
	"fmt"
	"time"

	"github.com/tallerhq/ops-backend-go/internal/domain/timebank"
)

type TimeBankServiceImpl struct {
	timebank.EntryRepository
}

func NewTimeBankService(entryRepo timebank.EntryRepository) timebank.TimeBankService {
	return &TimeBankServiceImpl{EntryRepository: entryRepo}
}

// Append implements timebank.TimeBankService.
func (s *TimeBankServiceImpl) Append(ctx context.Context, entry timebank.Entry) (timebank.Entry, error) {
	if entry.Minutes <= 0 {
		return timebank.Entry{}, timebank.ErrInvalidMinutes
	}
	if entry.Kind != timebank.KindCredit && entry.Kind != timebank.KindDebit {
		return timebank.Entry{}, timebank.ErrInvalidKind
	}

	appended, err := s.EntryRepository.Append(ctx, entry)
	if err != nil {
		return timebank.Entry{}, fmt.Errorf("failed to append time bank entry: %w", err)
	}
	return appended, nil
}

// ManualAdjust implements timebank.TimeBankService.
func (s *TimeBankServiceImpl) ManualAdjust(ctx context.Context, req timebank.ManualAdjustmentRequest) (timebank.Entry, error) {
	if err := req.Validate(); err != nil {
		return timebank.Entry{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	origin := timebank.OriginManualCredit
	if timebank.Kind(req.Kind) == timebank.KindDebit {
		origin = timebank.OriginManualDebit
	}

	return s.Append(ctx, timebank.Entry{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Kind:       timebank.Kind(req.Kind),
		Minutes:    req.Minutes,
		Origin:     origin,
		Note:       req.Note,
	})
}

// Balance implements timebank.TimeBankService. The balance is always a fold
// over the full history; there is no cached counter to drift.
func (s *TimeBankServiceImpl) Balance(ctx context.Context, employeeID string) (int, error) {
	entries, err := s.EntryRepository.ListByEmployee(ctx, employeeID, timebank.HistoryFilter{})
	if err != nil {
		return 0, fmt.Errorf("failed to load time bank history: %w", err)
	}

	balance := 0
	for _, entry := range entries {
		balance += entry.Signed()
	}
	return balance, nil
}

// History implements timebank.TimeBankService.
func (s *TimeBankServiceImpl) History(ctx context.Context, employeeID string, filter timebank.HistoryFilter) (timebank.HistoryResponse, error) {
	entries, err := s.EntryRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return timebank.HistoryResponse{}, fmt.Errorf("failed to load time bank history: %w", err)
	}

	balance, err := s.Balance(ctx, employeeID)
	if err != nil {
		return timebank.HistoryResponse{}, err
	}

	responses := make([]timebank.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, timebank.EntryResponse{
			ID:         entry.ID,
			EmployeeID: entry.EmployeeID,
			Date:       entry.Date.Format("2006-01-02"),
			Kind:       string(entry.Kind),
			Minutes:    entry.Minutes,
			Origin:     entry.Origin,
			PunchID:    entry.PunchID,
			Note:       entry.Note,
		})
	}

	return timebank.HistoryResponse{
		EmployeeID:     employeeID,
		BalanceMinutes: balance,
		Entries:        responses,
	}, nil
}
