package punch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallerhq/ops-backend-go/internal/domain/compday"
	"github.com/tallerhq/ops-backend-go/internal/domain/employee"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
	"github.com/tallerhq/ops-backend-go/internal/domain/punch"
	"github.com/tallerhq/ops-backend-go/internal/domain/schedule"
	"github.com/tallerhq/ops-backend-go/internal/domain/timebank"
)

// Exits this many minutes past the expected time open an overtime record.
// Shorter overruns are treated as noise.
const overtimeThresholdMinutes = 30

type PunchServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	scheduleService schedule.ScheduleService
	timeBankService timebank.TimeBankService
	overtimeService overtime.OvertimeService
	compDayService  compday.CompDayService
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleService schedule.ScheduleService,
	timeBankService timebank.TimeBankService,
	overtimeService overtime.OvertimeService,
	compDayService compday.CompDayService,
) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		scheduleService:    scheduleService,
		timeBankService:    timeBankService,
		overtimeService:    overtimeService,
		compDayService:     compDayService,
	}
}

// RecordPunch implements punch.PunchService. Persisting the punch is the only
// step allowed to fail the request; every derivation after it is best-effort.
// A failed side effect loses a ledger entry or overtime record, not the punch,
// and the punch list lets an admin re-derive by hand.
func (s *PunchServiceImpl) RecordPunch(ctx context.Context, req punch.RecordPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return punch.PunchResponse{}, employee.ErrEmployeeNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	punchedAt := req.Time(time.Now())
	kind := punch.Kind(req.Kind)

	if req.ClientToken != nil && *req.ClientToken != "" {
		exists, err := s.PunchRepository.ExistsByClientToken(ctx, req.EmployeeID, punchedAt, kind, *req.ClientToken)
		if err != nil {
			return punch.PunchResponse{}, fmt.Errorf("failed to check punch client token: %w", err)
		}
		if exists {
			return punch.PunchResponse{}, punch.ErrDuplicatePunch
		}
	}

	created, err := s.PunchRepository.Create(ctx, punch.Punch{
		EmployeeID:  req.EmployeeID,
		Kind:        kind,
		PunchedAt:   punchedAt,
		RecordedBy:  req.RecordedBy,
		Note:        req.Note,
		ClientToken: req.ClientToken,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}

	s.derive(ctx, created)

	return mapPunchToResponse(created), nil
}

// GetPunch implements punch.PunchService.
func (s *PunchServiceImpl) GetPunch(ctx context.Context, id string) (punch.PunchResponse, error) {
	p, err := s.PunchRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, punch.ErrPunchNotFound) {
			return punch.PunchResponse{}, punch.ErrPunchNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get punch: %w", err)
	}
	return mapPunchToResponse(p), nil
}

// ListPunches implements punch.PunchService.
func (s *PunchServiceImpl) ListPunches(ctx context.Context, filter punch.ListPunchFilter) (punch.ListPunchResponse, error) {
	punches, total, err := s.PunchRepository.List(ctx, filter)
	if err != nil {
		return punch.ListPunchResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, mapPunchToResponse(p))
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}

	return punch.ListPunchResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		Punches:    responses,
	}, nil
}

// derive runs the processing chain for a persisted punch. Nothing in here may
// return an error to the caller; failures are logged and skipped.
func (s *PunchServiceImpl) derive(ctx context.Context, p punch.Punch) {
	expected := s.scheduleService.ResolveExpected(ctx, p.EmployeeID, p.PunchedAt)
	tolerance := s.scheduleService.GetConfig(ctx).ToleranceMinutes

	switch p.Kind {
	case punch.KindEntry:
		s.deriveEntry(ctx, p, expected, tolerance)
	case punch.KindExit:
		s.deriveExit(ctx, p, expected, tolerance)
	}
}

// deriveEntry debits the time bank when the arrival overshoots the expected
// entry by more than the grace period. The full lateness is debited, not just
// the part past the tolerance.
func (s *PunchServiceImpl) deriveEntry(ctx context.Context, p punch.Punch, expected schedule.ExpectedTimes, tolerance int) {
	lateness := p.PunchedAt.Hour()*60 + p.PunchedAt.Minute() - minutesFromClock(expected.EntryTime)
	if lateness <= tolerance {
		return
	}

	if _, err := s.timeBankService.Append(ctx, timebank.Entry{
		EmployeeID: p.EmployeeID,
		Date:       p.PunchedAt,
		Kind:       timebank.KindDebit,
		Minutes:    lateness,
		Origin:     timebank.OriginLateArrival,
		PunchID:    &p.ID,
	}); err != nil {
		slog.Error("failed to debit time bank for late arrival",
			"punch_id", p.ID, "employee_id", p.EmployeeID, "minutes", lateness, "error", err)
	}
}

func (s *PunchServiceImpl) deriveExit(ctx context.Context, p punch.Punch, expected schedule.ExpectedTimes, tolerance int) {
	delta := p.PunchedAt.Hour()*60 + p.PunchedAt.Minute() - minutesFromClock(expected.ExitTime)

	if delta < -tolerance {
		minutes := -delta
		if _, err := s.timeBankService.Append(ctx, timebank.Entry{
			EmployeeID: p.EmployeeID,
			Date:       p.PunchedAt,
			Kind:       timebank.KindDebit,
			Minutes:    minutes,
			Origin:     timebank.OriginEarlyDeparture,
			PunchID:    &p.ID,
		}); err != nil {
			slog.Error("failed to debit time bank for early departure",
				"punch_id", p.ID, "employee_id", p.EmployeeID, "minutes", minutes, "error", err)
		}
		return
	}

	if delta < overtimeThresholdMinutes {
		return
	}

	record, err := s.overtimeService.CreateFromPunch(ctx, overtime.PunchOvertimeInput{
		EmployeeID:   p.EmployeeID,
		PunchID:      p.ID,
		Date:         p.PunchedAt.Format("2006-01-02"),
		ExpectedExit: expected.ExitTime,
		ActualExit:   p.PunchedAt.Format("15:04"),
	})
	if err != nil {
		slog.Error("failed to create overtime record",
			"punch_id", p.ID, "employee_id", p.EmployeeID, "error", err)
		return
	}

	if record.Classification == overtime.ClassSunday || record.Classification == overtime.ClassHoliday {
		reason := fmt.Sprintf("worked on %s (%s)", p.PunchedAt.Format("2006-01-02"), record.Classification)
		if _, err := s.compDayService.Issue(ctx, p.EmployeeID, p.ID, p.PunchedAt, reason, decimal.NewFromInt(1)); err != nil {
			slog.Error("failed to issue compensatory day",
				"punch_id", p.ID, "employee_id", p.EmployeeID, "error", err)
		}
	}
}

// minutesFromClock converts "HH:MM" to minutes after midnight.
func minutesFromClock(clock string) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

func mapPunchToResponse(p punch.Punch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeName: p.EmployeeName,
		Kind:         string(p.Kind),
		PunchedAt:    p.PunchedAt.Format(time.RFC3339),
		Date:         p.PunchedAt.Format("2006-01-02"),
		Note:         p.Note,
		RecordedBy:   p.RecordedBy,
	}
}
