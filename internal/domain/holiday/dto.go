package holiday

import (
	"github.com/tallerhq/ops-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date        string   `json:"date"` // "2006-01-02"
	Name        string   `json:"name"`
	NonWaivable bool     `json:"non_waivable"`
	Multiplier  *float64 `json:"multiplier"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Multiplier != nil && *r.Multiplier <= 0 {
		errs = append(errs, validator.ValidationError{Field: "multiplier", Message: "must be positive"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Name        string `json:"name"`
	NonWaivable bool   `json:"non_waivable"`
	Multiplier  string `json:"multiplier"`
}
