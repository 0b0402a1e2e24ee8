package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/sheets/mocks"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testService(client *mocks.MockClient) (*SheetsService, *[]time.Duration) {
	cfg := &config.Config{
		Sheets: config.Sheets{
			ChunkSize:    2,
			ChunkDelayMs: 100,
		},
	}

	sleeps := make([]time.Duration, 0)

	return &SheetsService{
		config: cfg,
		Client: client,
		sleepFn: func(d time.Duration) {
			sleeps = append(sleeps, d)
		},
	}, &sleeps
}

func weeklyMetrics(weekStart string, revenue float64) *domain.WeeklyMetrics {
	return &domain.WeeklyMetrics{
		ISOYear:       2025,
		ISOWeek:       30,
		WeekStartDate: weekStart,
		WeekEndDate:   "2025-07-27",
		TotalOrders:   3,
		TotalRevenue:  revenue,
	}
}

func TestListPeriodKeys_DescartaOCabecalho(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service, _ := testService(mockClient)

	ctx := context.Background()

	mockClient.EXPECT().EnsureWorksheet(ctx, "sheet-1", WeeklyWorksheet).Return(false, nil)
	mockClient.EXPECT().GetColumnA(ctx, "sheet-1", WeeklyWorksheet).
		Return([]string{"Week Start Date", "2025-07-14", "2025-07-21"}, nil)

	keys, err := service.ListPeriodKeys(ctx, "sheet-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-07-14", "2025-07-21"}, keys)
}

func TestListPeriodKeys_AbaRecemCriadaNaoTemChaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service, _ := testService(mockClient)

	ctx := context.Background()

	mockClient.EXPECT().EnsureWorksheet(ctx, "sheet-1", WeeklyWorksheet).Return(true, nil)
	mockClient.EXPECT().UpdateRange(ctx, "sheet-1", "Trends!A1:S1", gomock.Any()).Return(nil)
	mockClient.EXPECT().GetColumnA(ctx, "sheet-1", WeeklyWorksheet).Return([]string{"Week Start Date"}, nil)

	keys, err := service.ListPeriodKeys(ctx, "sheet-1")

	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestPublishMetrics_PeriodoNovoEAnexado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service, _ := testService(mockClient)

	ctx := context.Background()
	metrics := weeklyMetrics("2025-07-21", 30.00)

	mockClient.EXPECT().EnsureWorksheet(ctx, "sheet-1", WeeklyWorksheet).Return(false, nil)
	mockClient.EXPECT().GetColumnA(ctx, "sheet-1", WeeklyWorksheet).Return([]string{"Week Start Date", "2025-07-14"}, nil)
	mockClient.EXPECT().AppendRows(ctx, "sheet-1", WeeklyWorksheet, [][]interface{}{metrics.SheetRow()}).Return(nil)

	err := service.PublishMetrics(ctx, "sheet-1", metrics)

	require.NoError(t, err)
}

func TestPublishMetrics_PeriodoExistenteEAtualizadoNoLugar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service, _ := testService(mockClient)

	ctx := context.Background()
	metrics := weeklyMetrics("2025-07-21", 45.00)

	mockClient.EXPECT().EnsureWorksheet(ctx, "sheet-1", WeeklyWorksheet).Return(false, nil)
	mockClient.EXPECT().GetColumnA(ctx, "sheet-1", WeeklyWorksheet).Return([]string{"Week Start Date", "2025-07-14", "2025-07-21"}, nil)

	// A chave está na linha 3: a linha inteira é sobrescrita, nada é anexado
	mockClient.EXPECT().UpdateRange(ctx, "sheet-1", "Trends!A3:S3", [][]interface{}{metrics.SheetRow()}).Return(nil)

	err := service.PublishMetrics(ctx, "sheet-1", metrics)

	require.NoError(t, err)
}

func TestPublishMetrics_AbaNovaRecebeCabecalho(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service, _ := testService(mockClient)

	ctx := context.Background()
	metrics := weeklyMetrics("2025-07-21", 30.00)

	mockClient.EXPECT().EnsureWorksheet(ctx, "sheet-1", WeeklyWorksheet).Return(true, nil)
	mockClient.EXPECT().UpdateRange(ctx, "sheet-1", "Trends!A1:S1", [][]interface{}{domain.TrendsHeader()}).Return(nil)
	mockClient.EXPECT().GetColumnA(ctx, "sheet-1", WeeklyWorksheet).Return([]string{"Week Start Date"}, nil)
	mockClient.EXPECT().AppendRows(ctx, "sheet-1", WeeklyWorksheet, gomock.Any()).Return(nil)

	err := service.PublishMetrics(ctx, "sheet-1", metrics)

	require.NoError(t, err)
}

func TestPublishHistorical_AnexaEmBlocosComPausa(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service, sleeps := testService(mockClient)

	ctx := context.Background()

	records := []*domain.WeeklyMetrics{
		weeklyMetrics("2025-06-02", 10.00),
		weeklyMetrics("2025-06-09", 20.00),
		weeklyMetrics("2025-06-16", 30.00),
	}

	mockClient.EXPECT().EnsureWorksheet(ctx, "sheet-1", WeeklyWorksheet).Return(false, nil)
	mockClient.EXPECT().GetColumnA(ctx, "sheet-1", WeeklyWorksheet).Return([]string{"Week Start Date"}, nil)

	// Blocos de dois: [linha1, linha2] e depois [linha3], com pausa entre eles
	mockClient.EXPECT().AppendRows(ctx, "sheet-1", WeeklyWorksheet, [][]interface{}{
		records[0].SheetRow(), records[1].SheetRow(),
	}).Return(nil)
	mockClient.EXPECT().AppendRows(ctx, "sheet-1", WeeklyWorksheet, [][]interface{}{
		records[2].SheetRow(),
	}).Return(nil)

	err := service.PublishHistorical(ctx, "sheet-1", WeeklyWorksheet, records)

	require.NoError(t, err)
	require.Len(t, *sleeps, 1)
	assert.Equal(t, 100*time.Millisecond, (*sleeps)[0])
}

func TestPublishHistorical_MisturaAtualizacaoEAnexo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service, _ := testService(mockClient)

	ctx := context.Background()

	records := []*domain.WeeklyMetrics{
		weeklyMetrics("2025-06-02", 10.00), // já existe na linha 2
		weeklyMetrics("2025-06-09", 20.00), // novo
	}

	mockClient.EXPECT().EnsureWorksheet(ctx, "sheet-1", WeeklyWorksheet).Return(false, nil)
	mockClient.EXPECT().GetColumnA(ctx, "sheet-1", WeeklyWorksheet).Return([]string{"Week Start Date", "2025-06-02"}, nil)
	mockClient.EXPECT().UpdateRange(ctx, "sheet-1", "Trends!A2:S2", [][]interface{}{records[0].SheetRow()}).Return(nil)
	mockClient.EXPECT().AppendRows(ctx, "sheet-1", WeeklyWorksheet, [][]interface{}{records[1].SheetRow()}).Return(nil)

	err := service.PublishHistorical(ctx, "sheet-1", WeeklyWorksheet, records)

	require.NoError(t, err)
}

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "A", columnLetter(1))
	assert.Equal(t, "S", columnLetter(19))
	assert.Equal(t, "Z", columnLetter(26))
	assert.Equal(t, "AA", columnLetter(27))
}
