package reporting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-reports-api/infrastructure/exporter"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/shopify-reports-api/infrastructure/repository"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
	"github.com/vfg2006/shopify-reports-api/internal/state"
	"github.com/vfg2006/shopify-reports-api/internal/usecases/aggregating"
	"github.com/vfg2006/shopify-reports-api/internal/usecases/normalizing"
	"github.com/vfg2006/shopify-reports-api/pkg/utils"
)

// ReportService orquestra uma execução completa do pipeline: sonda a loja,
// resolve a planilha de destino, planeja os períodos e processa cada um de
// forma independente.
type ReportService interface {
	Run(ctx context.Context, mode, spreadsheetID string) (*domain.RunSummary, error)
	LastSummary() *domain.RunSummary
}

type Service struct {
	config     *config.Config
	loc        *time.Location
	planner    Planner
	shopify    shopify.ShopifyIntegrator
	normalizer normalizing.Normalizer
	aggregator aggregating.Aggregator
	publisher  sheets.Publisher
	exporter   exporter.Exporter
	store      state.FileStore
	runHistory repository.RunHistoryRepository

	sleepFn func(time.Duration)
	nowFn   func() time.Time

	mu          sync.Mutex
	lastSummary *domain.RunSummary
}

func NewService(
	cfg *config.Config,
	loc *time.Location,
	planner Planner,
	shopifyService shopify.ShopifyIntegrator,
	normalizer normalizing.Normalizer,
	aggregator aggregating.Aggregator,
	publisher sheets.Publisher,
	workbookExporter exporter.Exporter,
	store state.FileStore,
	runHistory repository.RunHistoryRepository,
) *Service {
	return &Service{
		config:     cfg,
		loc:        loc,
		planner:    planner,
		shopify:    shopifyService,
		normalizer: normalizer,
		aggregator: aggregator,
		publisher:  publisher,
		exporter:   workbookExporter,
		store:      store,
		runHistory: runHistory,
		sleepFn:    time.Sleep,
		nowFn:      time.Now,
	}
}

// Run executa o pipeline no modo informado. O único erro fatal antes do
// processamento é a sonda de conectividade com a loja; depois dela, falhas de
// período são puladas e falhas de destino degradam para a exportação local.
func (s *Service) Run(ctx context.Context, mode, spreadsheetID string) (*domain.RunSummary, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		runID = fmt.Sprintf("run-%d", s.nowFn().Unix())
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"mode":   mode,
	})

	shop, err := s.shopify.CheckConnection(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "falha na sonda de conectividade com a loja")
	}
	logger.WithField("shop", shop.Name).Info("Conectividade com a loja confirmada")

	if reports := s.shopify.GetReports(ctx); len(reports) > 0 {
		logger.WithField("reports", len(reports)).Debug("Relatórios de analytics disponíveis na loja")
	}

	summary := &domain.RunSummary{
		RunID:     runID,
		Mode:      mode,
		StartedAt: s.nowFn(),
	}

	if s.config.RunHistory.Enabled && s.runHistory != nil {
		if last, err := s.runHistory.GetLatestRun(mode); err != nil {
			logger.WithError(err).Warn("Erro ao consultar a última execução registrada")
		} else if last != nil {
			logger.WithFields(logrus.Fields{
				"last_run_id":       last.RunID,
				"last_completed_at": last.CompletedAt,
			}).Info("Última execução registrada para o modo")
		}
	}

	destination, usingFallback := s.resolveDestination(ctx, spreadsheetID, logger)
	summary.SpreadsheetID = destination
	summary.UsedLocalFallback = usingFallback

	now := s.nowFn().In(s.loc)
	plan, err := s.planner.Plan(mode, now, s.processedPeriods(ctx, destination, usingFallback, logger))
	if err != nil {
		return nil, err
	}
	monthlyPlan := s.planner.PlanMonthly(mode, now)
	summary.PeriodsPlanned = len(plan) + len(monthlyPlan)

	logger.WithFields(logrus.Fields{
		"weekly_periods":  len(plan),
		"monthly_periods": len(monthlyPlan),
	}).Info("Plano de períodos montado")

	// A carga histórica completa publica em lote ao final; os demais modos
	// fazem o upsert período a período
	batchPublish := mode == domain.RunModeHistoricalFull

	fallbackRecords := make([]*domain.WeeklyMetrics, 0)
	weeklyBatch := make([]*domain.WeeklyMetrics, 0)

	for i, period := range plan {
		metrics, err := s.processPeriod(ctx, period)
		if err != nil {
			logger.WithError(err).WithField("period", period.Label()).Warn("Falha ao processar o período, pulando")
			summary.PeriodsFailed++
			continue
		}

		switch {
		case usingFallback:
			fallbackRecords = append(fallbackRecords, metrics)
		case batchPublish:
			weeklyBatch = append(weeklyBatch, metrics)
		default:
			if err := s.publisher.PublishMetrics(ctx, destination, metrics); err != nil {
				logger.WithError(err).Warn("Falha ao publicar na planilha, alternando para a exportação local")
				usingFallback = true
				summary.UsedLocalFallback = true
				fallbackRecords = append(fallbackRecords, metrics)
			} else {
				s.markProcessed(destination, period.Key(), logger)
			}
		}

		summary.PeriodsProcessed++
		summary.TotalOrders += metrics.TotalOrders
		summary.TotalRevenue += metrics.TotalRevenue

		if s.config.Report.PeriodPauseEvery > 0 &&
			summary.PeriodsProcessed%s.config.Report.PeriodPauseEvery == 0 &&
			i < len(plan)-1 {
			s.sleepFn(time.Duration(s.config.Report.PeriodPauseSeconds) * time.Second)
		}
	}

	if len(weeklyBatch) > 0 {
		if err := s.publisher.PublishHistorical(ctx, destination, sheets.WeeklyWorksheet, weeklyBatch); err != nil {
			logger.WithError(err).Warn("Falha ao publicar o lote semanal, alternando para a exportação local")
			usingFallback = true
			summary.UsedLocalFallback = true
			fallbackRecords = append(fallbackRecords, weeklyBatch...)
		} else {
			for _, metrics := range weeklyBatch {
				s.markProcessed(destination, metrics.WeekStartDate, logger)
			}
		}
	}

	monthlyBatch := make([]*domain.WeeklyMetrics, 0, len(monthlyPlan))

	for i, period := range monthlyPlan {
		metrics, err := s.processPeriod(ctx, period)
		if err != nil {
			logger.WithError(err).WithField("period", period.Label()).Warn("Falha ao processar o período, pulando")
			summary.PeriodsFailed++
			continue
		}

		if usingFallback {
			fallbackRecords = append(fallbackRecords, metrics)
		} else {
			monthlyBatch = append(monthlyBatch, metrics)
		}

		// Os meses reprocessam os mesmos pedidos das semanas; os totais do
		// resumo ficam só com a contagem semanal
		summary.PeriodsProcessed++

		if s.config.Report.PeriodPauseEvery > 0 &&
			summary.PeriodsProcessed%s.config.Report.PeriodPauseEvery == 0 &&
			i < len(monthlyPlan)-1 {
			s.sleepFn(time.Duration(s.config.Report.PeriodPauseSeconds) * time.Second)
		}
	}

	if len(monthlyBatch) > 0 {
		if err := s.publisher.PublishHistorical(ctx, destination, sheets.MonthlyWorksheet, monthlyBatch); err != nil {
			logger.WithError(err).Warn("Falha ao publicar o lote mensal, alternando para a exportação local")
			summary.UsedLocalFallback = true
			fallbackRecords = append(fallbackRecords, monthlyBatch...)
		}
	}

	if len(fallbackRecords) > 0 {
		if _, err := s.exporter.ExportWorkbook(ctx, sheets.WeeklyWorksheet, fallbackRecords); err != nil {
			return nil, errors.Wrap(err, "sem destino e sem exportação local possível")
		}
	}

	summary.CompletedAt = s.nowFn()
	s.finishRun(summary, logger)

	return summary, nil
}

// LastSummary retorna o resumo da execução mais recente deste processo, ou o
// resumo persistido quando nenhuma execução rodou ainda.
func (s *Service) LastSummary() *domain.RunSummary {
	s.mu.Lock()
	last := s.lastSummary
	s.mu.Unlock()

	if last != nil {
		return last
	}

	persisted, err := s.store.LoadRunSummary()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler o resumo persistido da última execução")
		return nil
	}

	return persisted
}

// resolveDestination decide a planilha de destino: o override da chamada, o
// estado salvo ou o id configurado, criando uma nova quando necessário.
// Quando o destino não pode ser aberto nem criado, a execução segue em modo
// de exportação local.
func (s *Service) resolveDestination(ctx context.Context, override string, logger *logrus.Entry) (string, bool) {
	spreadsheetID := override
	if spreadsheetID == "" {
		spreadsheetID = s.store.LoadSpreadsheetID()
	}
	if spreadsheetID == "" {
		spreadsheetID = s.config.Sheets.SpreadsheetID
	}

	destination, err := s.publisher.EnsureDestination(ctx, spreadsheetID)
	if err != nil {
		logger.WithError(err).Warn("Planilha de destino indisponível, a execução usará a exportação local")
		return spreadsheetID, true
	}

	if err := s.store.SaveSpreadsheetID(destination); err != nil {
		logger.WithError(err).Warn("Erro ao salvar o id da planilha no arquivo de estado")
	}

	return destination, false
}

// processedPeriods monta o conjunto de chaves já publicadas, preferindo o
// registro no banco quando habilitado e caindo para a coluna de chaves da
// própria planilha.
func (s *Service) processedPeriods(ctx context.Context, spreadsheetID string, usingFallback bool, logger *logrus.Entry) map[string]bool {
	processed := make(map[string]bool)

	if s.config.RunHistory.Enabled && s.runHistory != nil {
		keys, err := s.runHistory.GetProcessedPeriods(spreadsheetID)
		if err != nil {
			logger.WithError(err).Warn("Erro ao consultar períodos processados no banco")
			return processed
		}
		for _, key := range keys {
			processed[key] = true
		}
		return processed
	}

	if usingFallback || spreadsheetID == "" {
		return processed
	}

	keys, err := s.publisher.ListPeriodKeys(ctx, spreadsheetID)
	if err != nil {
		logger.WithError(err).Warn("Erro ao ler as chaves de período da planilha de destino")
		return processed
	}
	for _, key := range keys {
		processed[key] = true
	}

	return processed
}

func (s *Service) processPeriod(ctx context.Context, period domain.Period) (metrics *domain.WeeklyMetrics, err error) {
	defer func() {
		if r := recover(); r != nil {
			metrics = nil
			err = fmt.Errorf("pânico ao processar o período: %v", r)
		}
	}()

	logrus.WithFields(logrus.Fields{
		"period": period.Label(),
		"start":  period.Start.Format(time.DateOnly),
		"end":    period.End.Format(time.DateOnly),
	}).Info("Processando período")

	rawOrders := s.shopify.GetOrders(ctx, period)
	orders := s.normalizer.NormalizeOrders(rawOrders)
	customers := s.normalizer.NormalizeCustomers(s.shopify.GetOrderCustomers(ctx, period))
	products := s.normalizer.BuildProductRows(ctx)
	fulfillments := s.normalizer.BuildFulfillmentRows(ctx, period, orders)

	rows := domain.WeekRows{
		Orders:       orders,
		Products:     products,
		Customers:    customers,
		Fulfillments: fulfillments,
	}

	aggregated := s.aggregator.Aggregate(rows, period)

	return &aggregated, nil
}

func (s *Service) markProcessed(spreadsheetID, periodKey string, logger *logrus.Entry) {
	if !s.config.RunHistory.Enabled || s.runHistory == nil {
		return
	}

	if err := s.runHistory.MarkPeriodProcessed(spreadsheetID, periodKey); err != nil {
		logger.WithError(err).WithField("period_key", periodKey).Warn("Erro ao registrar o período como processado")
	}
}

func (s *Service) finishRun(summary *domain.RunSummary, logger *logrus.Entry) {
	s.mu.Lock()
	s.lastSummary = summary
	s.mu.Unlock()

	if err := s.store.SaveRunSummary(summary); err != nil {
		logger.WithError(err).Warn("Erro ao gravar o resumo da execução")
	}

	if s.config.RunHistory.Enabled && s.runHistory != nil {
		if err := s.runHistory.SaveRun(summary); err != nil {
			logger.WithError(err).Warn("Erro ao registrar a execução no banco")
		}
	}

	logger.WithFields(logrus.Fields{
		"planned":   summary.PeriodsPlanned,
		"processed": summary.PeriodsProcessed,
		"failed":    summary.PeriodsFailed,
		"orders":    summary.TotalOrders,
		"revenue":   summary.TotalRevenue,
		"fallback":  summary.UsedLocalFallback,
	}).Info("Execução do relatório concluída")
}
