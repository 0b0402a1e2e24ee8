package domain

import "time"

// Modos de execução do pipeline de relatórios
const (
	RunModeWeekly                = "weekly"
	RunModeHistoricalFull        = "historical-full"
	RunModeHistoricalIncremental = "historical-incremental"
	RunModeCatchUp               = "catch-up"
)

// RunSummary registra o resultado de uma execução histórica, gravado em JSON
// para inspeção por automações externas.
type RunSummary struct {
	RunID             string    `json:"run_id"`
	Mode              string    `json:"mode"`
	SpreadsheetID     string    `json:"spreadsheet_id"`
	PeriodsPlanned    int       `json:"periods_planned"`
	PeriodsProcessed  int       `json:"periods_processed"`
	PeriodsFailed     int       `json:"periods_failed"`
	TotalOrders       int       `json:"total_orders"`
	TotalRevenue      float64   `json:"total_revenue"`
	UsedLocalFallback bool      `json:"used_local_fallback"`
	StartedAt         time.Time `json:"started_at"`
	CompletedAt       time.Time `json:"completed_at"`
}
