package domain

import (
	"fmt"
	"time"
)

// Period representa um intervalo fechado de datas [Start, End] ancorado em um
// fuso horário civil fixo. Um período é semanal (ISOYear/ISOWeek) ou mensal
// (Year/Month) e é imutável depois de criado.
type Period struct {
	ISOYear int
	ISOWeek int
	Year    int
	Month   time.Month
	Start   time.Time
	End     time.Time
}

// Key retorna a chave do período usada como identificador nas planilhas
// (data de início no formato YYYY-MM-DD).
func (p Period) Key() string {
	return p.Start.Format(time.DateOnly)
}

// Label retorna um rótulo legível do período, ex: "2025-W30" ou "2025-06".
func (p Period) Label() string {
	if p.ISOWeek > 0 {
		return fmt.Sprintf("%d-W%02d", p.ISOYear, p.ISOWeek)
	}
	return fmt.Sprintf("%d-%02d", p.Year, int(p.Month))
}

// IsWeekly indica se o período é semanal.
func (p Period) IsWeekly() bool {
	return p.ISOWeek > 0
}

// endOfDay retorna o último instante do dia (23:59:59.999999), igual ao
// datetime.time.max do relatório original.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999000, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CurrentWeek retorna o período da semana atual (segunda a domingo) no fuso
// horário informado.
func CurrentWeek(now time.Time, loc *time.Location) Period {
	today := now.In(loc)

	// Dias desde a segunda-feira (0 para segunda, 6 para domingo)
	daysSinceMonday := (int(today.Weekday()) + 6) % 7

	monday := startOfDay(today.AddDate(0, 0, -daysSinceMonday))
	sunday := endOfDay(monday.AddDate(0, 0, 6))

	isoYear, isoWeek := monday.ISOWeek()

	return Period{
		ISOYear: isoYear,
		ISOWeek: isoWeek,
		Start:   monday,
		End:     sunday,
	}
}

// PreviousWeek retorna o período da semana imediatamente anterior à atual.
func PreviousWeek(now time.Time, loc *time.Location) Period {
	return CurrentWeek(now.In(loc).AddDate(0, 0, -7), loc)
}

// WeekFromISO calcula o período de uma semana ISO. A regra usada é a de que o
// dia 4 de janeiro está sempre na semana 1.
func WeekFromISO(year, week int, loc *time.Location) Period {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)

	daysSinceMonday := (int(jan4.Weekday()) + 6) % 7
	firstMonday := jan4.AddDate(0, 0, -daysSinceMonday)

	monday := startOfDay(firstMonday.AddDate(0, 0, 7*(week-1)))
	sunday := endOfDay(monday.AddDate(0, 0, 6))

	return Period{
		ISOYear: year,
		ISOWeek: week,
		Start:   monday,
		End:     sunday,
	}
}

// ISOWeeksInYear retorna 52 ou 53 conforme a semana ISO que contém o dia 28
// de dezembro do ano.
func ISOWeeksInYear(year int, loc *time.Location) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, loc).ISOWeek()
	return week
}

// AllWeeksSince enumera todas as semanas ISO desde a semana 1 do ano de época
// até a semana ISO atual, inclusive.
func AllWeeksSince(epochYear int, now time.Time, loc *time.Location) []Period {
	currentYear, currentWeek := now.In(loc).ISOWeek()

	periods := make([]Period, 0)
	for year := epochYear; year <= currentYear; year++ {
		lastWeek := ISOWeeksInYear(year, loc)
		if year == currentYear {
			lastWeek = currentWeek
		}

		for week := 1; week <= lastWeek; week++ {
			periods = append(periods, WeekFromISO(year, week, loc))
		}
	}

	return periods
}

// MonthRange retorna o período do primeiro ao último dia do mês, tratando a
// virada de ano e meses de tamanhos variados (incluindo anos bissextos).
func MonthRange(year int, month time.Month, loc *time.Location) Period {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := endOfDay(first.AddDate(0, 1, 0).AddDate(0, 0, -1))

	return Period{
		Year:  year,
		Month: month,
		Start: first,
		End:   last,
	}
}

// AllMonthsSince enumera todos os meses desde janeiro do ano de época até o
// mês atual, inclusive.
func AllMonthsSince(epochYear int, now time.Time, loc *time.Location) []Period {
	today := now.In(loc)

	periods := make([]Period, 0)
	for year := epochYear; year <= today.Year(); year++ {
		lastMonth := time.December
		if year == today.Year() {
			lastMonth = today.Month()
		}

		for month := time.January; month <= lastMonth; month++ {
			periods = append(periods, MonthRange(year, month, loc))
		}
	}

	return periods
}
