package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
	"github.com/vfg2006/shopify-reports-api/internal/usecases/reporting"
)

// WeeklyReportSyncConfig representa a configuração do agendador do relatório semanal
type WeeklyReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// WeeklyReportSyncService gerencia o agendamento e execução do relatório semanal
type WeeklyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              WeeklyReportSyncConfig
	appConfig           *config.Config
	reportService       reporting.ReportService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewWeeklyReportSyncService cria uma nova instância do serviço de sincronização do relatório semanal
func NewWeeklyReportSyncService(
	reportService reporting.ReportService,
	appConfig *config.Config,
) *WeeklyReportSyncService {
	syncConfig := WeeklyReportSyncConfig{
		CronSchedule: appConfig.WeeklyReportSync.CronSchedule,
		SyncEnabled:  appConfig.WeeklyReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do relatório semanal carregada")

	return &WeeklyReportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		appConfig:     appConfig,
		reportService: reportService,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *WeeklyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do relatório semanal desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório semanal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScheduledSync(context.Background(), domain.RunModeHistoricalIncremental)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o relatório semanal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório semanal")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução fora do agendamento. Retorna erro
// quando uma execução já está em andamento. A execução roda desacoplada do
// chamador: o contexto da requisição HTTP morre junto com a resposta, então a
// goroutine usa o mesmo contexto de fundo do agendador.
func (s *WeeklyReportSyncService) TriggerManualSync(mode string) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return fmt.Errorf("uma execução do relatório já está em andamento")
	}
	s.syncMutex.Unlock()

	go s.runScheduledSync(context.Background(), mode)

	return nil
}

// Status informa se uma execução está em andamento e os horários da última
func (s *WeeklyReportSyncService) Status() (bool, time.Time, time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return s.syncRunning, s.lastSyncStartedAt, s.lastSyncCompletedAt
}

func (s *WeeklyReportSyncService) runScheduledSync(ctx context.Context, mode string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Execução do relatório já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	logrus.WithField("mode", mode).Info("Iniciando execução agendada do relatório")

	summary, err := s.reportService.Run(ctx, mode, "")
	if err != nil {
		logrus.WithError(err).Error("Erro na execução agendada do relatório")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    summary.RunID,
		"processed": summary.PeriodsProcessed,
		"failed":    summary.PeriodsFailed,
		"duration":  time.Since(startTime).String(),
	}).Info("Execução agendada do relatório concluída")
}
