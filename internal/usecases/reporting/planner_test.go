package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

func plannerConfig() *config.Config {
	return &config.Config{
		Report: config.Report{
			EpochYear:          2024,
			CatchupCutoverDate: "2025-06-02", // segunda-feira da semana 2025-W23
		},
	}
}

func TestPlan_ModoSemanal(t *testing.T) {
	planner := NewPlanner(plannerConfig(), time.UTC)

	// Quarta-feira da semana 2025-W30
	now := time.Date(2025, time.July, 23, 12, 0, 0, 0, time.UTC)

	plan, err := planner.Plan(domain.RunModeWeekly, now, nil)

	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "2025-W29", plan[0].Label())
}

func TestPlan_ModoHistoricoCompleto(t *testing.T) {
	planner := NewPlanner(plannerConfig(), time.UTC)

	now := time.Date(2025, time.July, 23, 12, 0, 0, 0, time.UTC)

	plan, err := planner.Plan(domain.RunModeHistoricalFull, now, nil)

	require.NoError(t, err)
	// 52 semanas de 2024 mais as 30 primeiras de 2025
	require.Len(t, plan, 82)
	assert.Equal(t, "2024-W01", plan[0].Label())
	assert.Equal(t, "2025-W30", plan[len(plan)-1].Label())
}

func TestPlan_Recuperacao_CobreAJanelaMaisSemanasAtualEAnterior(t *testing.T) {
	planner := NewPlanner(plannerConfig(), time.UTC)

	// Semana atual 2025-W30, corte na 2025-W23: a janela cobre as semanas 24
	// a 28 e o plano termina com a anterior (29) e a atual (30)
	now := time.Date(2025, time.July, 23, 12, 0, 0, 0, time.UTC)

	plan, err := planner.Plan(domain.RunModeCatchUp, now, nil)

	require.NoError(t, err)

	labels := make([]string, 0, len(plan))
	for _, period := range plan {
		labels = append(labels, period.Label())
	}

	assert.Equal(t, []string{
		"2025-W24", "2025-W25", "2025-W26", "2025-W27", "2025-W28",
		"2025-W29", "2025-W30",
	}, labels)

	// Sem duplicatas
	seen := make(map[string]bool)
	for _, label := range labels {
		assert.False(t, seen[label], "semana duplicada: %s", label)
		seen[label] = true
	}
}

func TestPlan_Incremental_PulaSemanasJaProcessadas(t *testing.T) {
	planner := NewPlanner(plannerConfig(), time.UTC)

	now := time.Date(2025, time.July, 23, 12, 0, 0, 0, time.UTC)

	processed := map[string]bool{
		domain.WeekFromISO(2025, 24, time.UTC).Key(): true,
		domain.WeekFromISO(2025, 26, time.UTC).Key(): true,
	}

	plan, err := planner.Plan(domain.RunModeHistoricalIncremental, now, processed)

	require.NoError(t, err)

	labels := make([]string, 0, len(plan))
	for _, period := range plan {
		labels = append(labels, period.Label())
	}

	assert.Equal(t, []string{
		"2025-W25", "2025-W27", "2025-W28",
		"2025-W29", "2025-W30",
	}, labels)
}

func TestPlan_Recuperacao_AtravessaAViradaDeAno(t *testing.T) {
	cfg := plannerConfig()
	cfg.Report.CatchupCutoverDate = "2024-12-02" // segunda-feira da semana 2024-W49

	planner := NewPlanner(cfg, time.UTC)

	// Semana atual 2025-W04
	now := time.Date(2025, time.January, 22, 12, 0, 0, 0, time.UTC)

	plan, err := planner.Plan(domain.RunModeCatchUp, now, nil)

	require.NoError(t, err)

	labels := make([]string, 0, len(plan))
	for _, period := range plan {
		labels = append(labels, period.Label())
	}

	// 2024 tem 52 semanas: a janela termina na 52 e recomeça na 2025-W01
	assert.Equal(t, []string{
		"2024-W50", "2024-W51", "2024-W52",
		"2025-W01", "2025-W02",
		"2025-W03", "2025-W04",
	}, labels)
}

func TestPlanMonthly_HistoricoCompletoEnumeraOsMeses(t *testing.T) {
	planner := NewPlanner(plannerConfig(), time.UTC)

	now := time.Date(2025, time.July, 23, 12, 0, 0, 0, time.UTC)

	months := planner.PlanMonthly(domain.RunModeHistoricalFull, now)

	// Doze meses de 2024 mais os sete primeiros de 2025
	require.Len(t, months, 19)
	assert.Equal(t, "2024-01", months[0].Label())
	assert.Equal(t, "2025-07", months[len(months)-1].Label())
}

func TestPlanMonthly_DemaisModosNaoTemPlanoMensal(t *testing.T) {
	planner := NewPlanner(plannerConfig(), time.UTC)

	now := time.Date(2025, time.July, 23, 12, 0, 0, 0, time.UTC)

	assert.Empty(t, planner.PlanMonthly(domain.RunModeWeekly, now))
	assert.Empty(t, planner.PlanMonthly(domain.RunModeHistoricalIncremental, now))
	assert.Empty(t, planner.PlanMonthly(domain.RunModeCatchUp, now))
}

func TestPlan_ModoDesconhecido(t *testing.T) {
	planner := NewPlanner(plannerConfig(), time.UTC)

	_, err := planner.Plan("mensal-invertido", time.Now(), nil)

	assert.Error(t, err)
}

func TestPlan_DataDeCorteInvalida(t *testing.T) {
	cfg := plannerConfig()
	cfg.Report.CatchupCutoverDate = "junho de 2025"

	planner := NewPlanner(cfg, time.UTC)

	_, err := planner.Plan(domain.RunModeCatchUp, time.Now(), nil)

	assert.Error(t, err)
}
