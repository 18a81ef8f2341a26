package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallerhq/ops-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(repo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{HolidayRepository: repo}
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.Holiday, error) {
	if err := req.Validate(); err != nil {
		return holiday.Holiday{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	if existing, err := s.HolidayRepository.FindByDate(ctx, date); err == nil && existing != nil {
		return holiday.Holiday{}, holiday.ErrHolidayExists
	}

	multiplier := holiday.DefaultMultiplier
	if req.Multiplier != nil {
		multiplier = decimal.NewFromFloat(*req.Multiplier)
	}

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Date:        date,
		Name:        req.Name,
		NonWaivable: req.NonWaivable,
		Multiplier:  multiplier,
	})
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

// FindByDate implements holiday.HolidayService.
func (s *HolidayServiceImpl) FindByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	h, err := s.HolidayRepository.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to look up holiday: %w", err)
	}
	return h, nil
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context, year int) ([]holiday.Holiday, error) {
	holidays, err := s.HolidayRepository.List(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.HolidayRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}
