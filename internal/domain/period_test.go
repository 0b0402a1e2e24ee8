package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoadLocation(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("America/Denver")
	require.NoError(t, err)

	return loc
}

func TestWeekFromISO_IntervaloDeSeteDias(t *testing.T) {
	loc := mustLoadLocation(t)

	// Toda semana ISO deve começar em uma segunda-feira e cobrir sete dias
	for year := 2020; year <= 2026; year++ {
		for _, week := range []int{1, 10, 26, 52} {
			period := WeekFromISO(year, week, loc)

			assert.Equal(t, time.Monday, period.Start.Weekday(), "semana %d-W%02d", year, week)
			assert.Equal(t, time.Sunday, period.End.Weekday(), "semana %d-W%02d", year, week)

			days := int(startOfDay(period.End).Sub(period.Start).Hours() / 24)
			assert.Equal(t, 6, days, "semana %d-W%02d", year, week)

			isoYear, isoWeek := period.Start.ISOWeek()
			assert.Equal(t, year, isoYear, "semana %d-W%02d", year, week)
			assert.Equal(t, week, isoWeek, "semana %d-W%02d", year, week)
		}
	}
}

func TestCurrentWeek(t *testing.T) {
	loc := mustLoadLocation(t)

	// Quarta-feira, 23 de julho de 2025 (semana ISO 2025-W30)
	now := time.Date(2025, time.July, 23, 15, 30, 0, 0, loc)

	period := CurrentWeek(now, loc)

	assert.Equal(t, 2025, period.ISOYear)
	assert.Equal(t, 30, period.ISOWeek)
	assert.Equal(t, "2025-07-21", period.Key())
	assert.Equal(t, "2025-07-27", period.End.Format(time.DateOnly))
	assert.Equal(t, 23, period.End.Hour())
	assert.Equal(t, 59, period.End.Minute())
}

func TestCurrentWeek_DomingoAindaPertenceASemana(t *testing.T) {
	loc := mustLoadLocation(t)

	// Domingo, 27 de julho de 2025, ainda é a semana W30
	now := time.Date(2025, time.July, 27, 23, 0, 0, 0, loc)

	period := CurrentWeek(now, loc)

	assert.Equal(t, 30, period.ISOWeek)
	assert.Equal(t, "2025-07-21", period.Key())
}

func TestPreviousWeek(t *testing.T) {
	loc := mustLoadLocation(t)

	now := time.Date(2025, time.July, 23, 12, 0, 0, 0, loc)

	period := PreviousWeek(now, loc)

	assert.Equal(t, 29, period.ISOWeek)
	assert.Equal(t, "2025-07-14", period.Key())
}

func TestISOWeeksInYear(t *testing.T) {
	loc := mustLoadLocation(t)

	assert.Equal(t, 53, ISOWeeksInYear(2020, loc))
	assert.Equal(t, 52, ISOWeeksInYear(2023, loc))
	assert.Equal(t, 52, ISOWeeksInYear(2024, loc))
	assert.Equal(t, 52, ISOWeeksInYear(2025, loc))
	assert.Equal(t, 53, ISOWeeksInYear(2026, loc))
}

func TestAllWeeksSince(t *testing.T) {
	loc := mustLoadLocation(t)

	now := time.Date(2025, time.July, 23, 12, 0, 0, 0, loc)

	periods := AllWeeksSince(2024, now, loc)

	// 52 semanas de 2024 mais as 30 primeiras de 2025
	require.Len(t, periods, 82)

	assert.Equal(t, "2024-W01", periods[0].Label())
	assert.Equal(t, "2024-W52", periods[51].Label())
	assert.Equal(t, "2025-W01", periods[52].Label())

	last := periods[len(periods)-1]
	currentYear, currentWeek := now.ISOWeek()
	assert.Equal(t, currentYear, last.ISOYear)
	assert.Equal(t, currentWeek, last.ISOWeek)

	// Nenhum ano intermediário pode ter algo diferente de 52 ou 53 semanas
	countsByYear := make(map[int]int)
	for _, period := range periods {
		countsByYear[period.ISOYear]++
	}
	assert.Contains(t, []int{52, 53}, countsByYear[2024])
}

func TestMonthRange_FevereiroBissexto(t *testing.T) {
	loc := mustLoadLocation(t)

	period := MonthRange(2024, time.February, loc)

	assert.Equal(t, "2024-02-01", period.Key())
	assert.Equal(t, "2024-02-29", period.End.Format(time.DateOnly))
	assert.False(t, period.IsWeekly())
	assert.Equal(t, "2024-02", period.Label())
}

func TestAllMonthsSince(t *testing.T) {
	loc := mustLoadLocation(t)

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, loc)

	periods := AllMonthsSince(2024, now, loc)

	// 12 meses de 2024 mais 3 de 2025
	require.Len(t, periods, 15)
	assert.Equal(t, "2024-01", periods[0].Label())
	assert.Equal(t, "2025-03", periods[len(periods)-1].Label())
}
