package overtime

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerhq/ops-backend-go/internal/domain/holiday"
	"github.com/tallerhq/ops-backend-go/internal/domain/overtime"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

func TestClassify_WeekdayDay(t *testing.T) {
	// Tuesday, expected out 17:15, left 18:00: 45 minutes at the day rate.
	result := Classify(mustDate(t, "2025-03-11"), "17:15", "18:00", nil)

	assert.Equal(t, overtime.ClassDay, result.Kind)
	assert.True(t, result.Multiplier.Equal(decimal.NewFromFloat(1.25)), "multiplier = %s", result.Multiplier)
	assert.True(t, result.RawHours.Equal(decimal.NewFromFloat(0.75)), "raw hours = %s", result.RawHours)
	assert.True(t, result.EquivalentHours.Equal(decimal.NewFromFloat(0.9375)), "equivalent hours = %s", result.EquivalentHours)
	assert.False(t, result.TriggersCompDay())
}

func TestClassify_NightExit(t *testing.T) {
	result := Classify(mustDate(t, "2025-03-11"), "17:00", "22:00", nil)

	assert.Equal(t, overtime.ClassNight, result.Kind)
	assert.True(t, result.Multiplier.Equal(decimal.NewFromFloat(1.75)))
	assert.True(t, result.RawHours.Equal(decimal.NewFromInt(5)))
	assert.False(t, result.TriggersCompDay())
}

func TestClassify_EarlyMorningCountsAsNight(t *testing.T) {
	result := Classify(mustDate(t, "2025-03-11"), "17:00", "01:00", nil)

	assert.Equal(t, overtime.ClassNight, result.Kind)
	// 17:00 to 01:00 rolls past midnight: 8 hours.
	assert.True(t, result.RawHours.Equal(decimal.NewFromInt(8)), "raw hours = %s", result.RawHours)
}

func TestClassify_SundayBeatsNight(t *testing.T) {
	// 2025-03-09 is a Sunday; a 22:00 exit still classifies as Sunday work.
	result := Classify(mustDate(t, "2025-03-09"), "17:00", "22:00", nil)

	assert.Equal(t, overtime.ClassSunday, result.Kind)
	assert.True(t, result.Multiplier.Equal(decimal.NewFromFloat(1.75)))
	assert.True(t, result.TriggersCompDay())
}

func TestClassify_HolidayDefaultMultiplier(t *testing.T) {
	hol := &holiday.Holiday{Name: "Labor Day"}
	result := Classify(mustDate(t, "2025-05-01"), "17:00", "19:00", hol)

	assert.Equal(t, overtime.ClassHoliday, result.Kind)
	assert.True(t, result.Multiplier.Equal(decimal.NewFromFloat(2.0)))
	assert.True(t, result.TriggersCompDay())
}

func TestClassify_HolidayCustomMultiplier(t *testing.T) {
	hol := &holiday.Holiday{Name: "Independence Day", Multiplier: decimal.NewFromFloat(2.5)}
	result := Classify(mustDate(t, "2025-07-18"), "17:00", "19:00", hol)

	assert.Equal(t, overtime.ClassHoliday, result.Kind)
	assert.True(t, result.Multiplier.Equal(decimal.NewFromFloat(2.5)))
	assert.True(t, result.EquivalentHours.Equal(decimal.NewFromInt(5)), "equivalent hours = %s", result.EquivalentHours)
}

func TestClassify_SundayBeatsHoliday(t *testing.T) {
	hol := &holiday.Holiday{Name: "New Year Observed", Multiplier: decimal.NewFromFloat(3)}
	result := Classify(mustDate(t, "2025-03-09"), "17:00", "18:00", hol)

	assert.Equal(t, overtime.ClassSunday, result.Kind)
	assert.True(t, result.Multiplier.Equal(decimal.NewFromFloat(1.75)))
}

func TestClockDiffMinutes(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{"same clock", "17:00", "17:00", 0},
		{"plain span", "17:15", "18:00", 45},
		{"midnight rollover", "23:30", "00:30", 60},
		{"full evening", "17:00", "01:00", 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clockDiffMinutes(tt.from, tt.to))
		})
	}
}
