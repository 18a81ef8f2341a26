package overtime

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallerhq/ops-backend-go/internal/domain/holiday"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
)

// Pay multipliers per classification. Sunday and night rates follow the local
// labor rules the back office was built for; holidays default higher but a
// registered holiday can carry its own rate.
var (
	dayMultiplier     = decimal.NewFromFloat(1.25)
	nightMultiplier   = decimal.NewFromFloat(1.75)
	sundayMultiplier  = decimal.NewFromFloat(1.75)
	holidayMultiplier = decimal.NewFromFloat(2.0)
)

// Night band: exits at or after 21:00, or before 06:00.
const (
	nightStartHour = 21
	nightEndHour   = 6
)

// Classification is the classifier's verdict for one block of extra hours.
type Classification struct {
	Kind            overtime.Classification
	Multiplier      decimal.Decimal
	RawHours        decimal.Decimal
	EquivalentHours decimal.Decimal
}

// TriggersCompDay reports whether this classification earns a compensatory
// day (mandatory-rest work).
func (c Classification) TriggersCompDay() bool {
	return c.Kind == overtime.ClassSunday || c.Kind == overtime.ClassHoliday
}

// Classify applies the rule chain, first match wins: Sunday, registered
// holiday, night band, plain day. Raw hours are the wall-clock span from the
// expected exit to the actual one; a negative span means the exit rolled past
// midnight and gets 24h added.
func Classify(date time.Time, expectedExit, actualExit string, hol *holiday.Holiday) Classification {
	rawMinutes := clockDiffMinutes(expectedExit, actualExit)
	rawHours := decimal.NewFromInt(int64(rawMinutes)).Div(decimal.NewFromInt(60))

	kind := overtime.ClassDay
	multiplier := dayMultiplier

	actualHour := clockHour(actualExit)
	switch {
	case date.Weekday() == time.Sunday:
		kind = overtime.ClassSunday
		multiplier = sundayMultiplier
	case hol != nil:
		kind = overtime.ClassHoliday
		multiplier = holidayMultiplier
		if hol.Multiplier.IsPositive() {
			multiplier = hol.Multiplier
		}
	case actualHour >= nightStartHour || actualHour < nightEndHour:
		kind = overtime.ClassNight
		multiplier = nightMultiplier
	}

	return Classification{
		Kind:            kind,
		Multiplier:      multiplier,
		RawHours:        rawHours,
		EquivalentHours: rawHours.Mul(multiplier),
	}
}

// clockDiffMinutes returns the minutes from one "HH:MM" clock to another,
// rolling over midnight when the second reads earlier than the first.
func clockDiffMinutes(from, to string) int {
	fromT, err := time.Parse("15:04", from)
	if err != nil {
		return 0
	}
	toT, err := time.Parse("15:04", to)
	if err != nil {
		return 0
	}

	minutes := int(toT.Sub(fromT).Minutes())
	if minutes < 0 {
		minutes += 24 * 60
	}
	return minutes
}

func clockHour(clock string) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0
	}
	return t.Hour()
}
