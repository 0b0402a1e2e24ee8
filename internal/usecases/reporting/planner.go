package reporting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

// Planner calcula os períodos que uma execução deve processar para cada modo.
// O planejamento é determinístico em função do relógio e do conjunto de
// períodos já processados.
type Planner interface {
	Plan(mode string, now time.Time, processed map[string]bool) ([]domain.Period, error)
	PlanMonthly(mode string, now time.Time) []domain.Period
}

type planner struct {
	config *config.Config
	loc    *time.Location
}

func NewPlanner(cfg *config.Config, loc *time.Location) Planner {
	return &planner{
		config: cfg,
		loc:    loc,
	}
}

func (p *planner) Plan(mode string, now time.Time, processed map[string]bool) ([]domain.Period, error) {
	switch mode {
	case domain.RunModeWeekly:
		return []domain.Period{domain.PreviousWeek(now, p.loc)}, nil

	case domain.RunModeHistoricalFull:
		return domain.AllWeeksSince(p.config.Report.EpochYear, now, p.loc), nil

	case domain.RunModeHistoricalIncremental:
		return p.incrementalPlan(now, processed)

	case domain.RunModeCatchUp:
		// O modo de recuperação republica a janela inteira; o upsert na
		// planilha mantém a idempotência.
		return p.incrementalPlan(now, nil)
	}

	return nil, fmt.Errorf("modo de execução desconhecido: %s", mode)
}

// PlanMonthly retorna os períodos mensais de uma carga histórica completa.
// Os demais modos só publicam a aba semanal.
func (p *planner) PlanMonthly(mode string, now time.Time) []domain.Period {
	if mode != domain.RunModeHistoricalFull {
		return nil
	}

	return domain.AllMonthsSince(p.config.Report.EpochYear, now, p.loc)
}

// incrementalPlan monta a janela de recuperação seguida da semana anterior e
// da atual. A janela cobre as semanas estritamente depois da semana de corte
// até duas semanas antes da atual, para curar lacunas deixadas por execuções
// agendadas que não rodaram.
func (p *planner) incrementalPlan(now time.Time, processed map[string]bool) ([]domain.Period, error) {
	current := domain.CurrentWeek(now, p.loc)
	previous := domain.PreviousWeek(now, p.loc)

	window, err := p.catchupWindow(current)
	if err != nil {
		return nil, err
	}

	plan := make([]domain.Period, 0, len(window)+2)
	seen := make(map[string]bool)

	for _, period := range window {
		if processed[period.Key()] {
			logrus.WithField("period", period.Label()).Info("Período já processado, ignorando na recuperação")
			continue
		}
		if seen[period.Key()] {
			continue
		}
		seen[period.Key()] = true
		plan = append(plan, period)
	}

	for _, period := range []domain.Period{previous, current} {
		if seen[period.Key()] {
			continue
		}
		seen[period.Key()] = true
		plan = append(plan, period)
	}

	return plan, nil
}

// catchupWindow enumera as semanas entre a semana de corte (exclusiva) e duas
// semanas antes da atual (inclusiva), atravessando a virada de ano quando o
// corte fica em um ano anterior.
func (p *planner) catchupWindow(current domain.Period) ([]domain.Period, error) {
	cutover, err := time.ParseInLocation(time.DateOnly, p.config.Report.CatchupCutoverDate, p.loc)
	if err != nil {
		return nil, fmt.Errorf("data de corte inválida %q: %w", p.config.Report.CatchupCutoverDate, err)
	}

	cutoverYear, cutoverWeek := cutover.ISOWeek()

	window := make([]domain.Period, 0)

	appendRange := func(year, firstWeek, lastWeek int) {
		maxWeek := domain.ISOWeeksInYear(year, p.loc)
		for week := firstWeek; week <= lastWeek; week++ {
			if week > maxWeek {
				break
			}
			window = append(window, domain.WeekFromISO(year, week, p.loc))
		}
	}

	if cutoverYear == current.ISOYear {
		appendRange(current.ISOYear, cutoverWeek+1, current.ISOWeek-2)
		return window, nil
	}

	appendRange(cutoverYear, cutoverWeek+1, domain.ISOWeeksInYear(cutoverYear, p.loc))
	for year := cutoverYear + 1; year < current.ISOYear; year++ {
		appendRange(year, 1, domain.ISOWeeksInYear(year, p.loc))
	}
	appendRange(current.ISOYear, 1, current.ISOWeek-2)

	return window, nil
}
