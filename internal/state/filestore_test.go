package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

func testStore(t *testing.T) FileStore {
	t.Helper()

	dir := t.TempDir()

	return NewFileStore(&config.Config{
		Report: config.Report{
			OutputDir: filepath.Join(dir, "reports"),
			StateFile: filepath.Join(dir, "spreadsheet_config.txt"),
		},
	})
}

func TestFileStore_IdDaPlanilhaSobreviveEntreExecucoes(t *testing.T) {
	store := testStore(t)

	// Sem arquivo ainda: id vazio, sem erro
	assert.Empty(t, store.LoadSpreadsheetID())

	require.NoError(t, store.SaveSpreadsheetID("sheet-42"))
	assert.Equal(t, "sheet-42", store.LoadSpreadsheetID())

	// Sobrescrita simples
	require.NoError(t, store.SaveSpreadsheetID("sheet-43"))
	assert.Equal(t, "sheet-43", store.LoadSpreadsheetID())
}

func TestFileStore_ResumoDaExecucao(t *testing.T) {
	store := testStore(t)

	// Sem resumo gravado: nil sem erro
	summary, err := store.LoadRunSummary()
	require.NoError(t, err)
	assert.Nil(t, summary)

	saved := &domain.RunSummary{
		RunID:            "abc123",
		Mode:             domain.RunModeHistoricalIncremental,
		SpreadsheetID:    "sheet-42",
		PeriodsPlanned:   7,
		PeriodsProcessed: 6,
		PeriodsFailed:    1,
		TotalOrders:      42,
		TotalRevenue:     1234.56,
	}
	require.NoError(t, store.SaveRunSummary(saved))

	loaded, err := store.LoadRunSummary()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.RunID, loaded.RunID)
	assert.Equal(t, saved.PeriodsProcessed, loaded.PeriodsProcessed)
	assert.Equal(t, saved.TotalRevenue, loaded.TotalRevenue)
}
