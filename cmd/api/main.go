package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/shopify-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/shopify-reports-api/infrastructure/exporter"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/shopify-reports-api/infrastructure/repository"
	"github.com/vfg2006/shopify-reports-api/internal/api"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/scheduler"
	"github.com/vfg2006/shopify-reports-api/internal/state"
	"github.com/vfg2006/shopify-reports-api/internal/usecases/aggregating"
	"github.com/vfg2006/shopify-reports-api/internal/usecases/normalizing"
	"github.com/vfg2006/shopify-reports-api/internal/usecases/reporting"
)

var (
	rootCmd = &cobra.Command{
		Use:   "shopify-reports-api",
		Short: "Pipeline de relatórios semanais da loja Shopify para o Google Sheets",
		RunE:  runServe,
	}

	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Executa uma passada do pipeline de relatórios e encerra",
		RunE:  runReport,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Imprime a versão do serviço",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	reportMode        string
	spreadsheetIDFlag string
	version           = "dev"
)

func main() {
	configureLogger()

	reportCmd.Flags().StringVar(&reportMode, "mode", "weekly", "modo de execução: weekly | historical-full | historical-incremental | catch-up")
	reportCmd.Flags().StringVar(&spreadsheetIDFlag, "spreadsheet-id", "", "id da planilha de destino (opcional)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Erro na execução do serviço")
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services, cleanup, err := buildServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	weeklyReportSyncService := scheduler.NewWeeklyReportSyncService(services.report, services.cfg)
	if err := weeklyReportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório semanal")
	} else {
		logrus.Info("Agendador do relatório semanal iniciado com sucesso")
	}

	server, err := api.New(services.cfg, services.report, weeklyReportSyncService)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	services, cleanup, err := buildServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := services.report.Run(ctx, reportMode, spreadsheetIDFlag)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    summary.RunID,
		"processed": summary.PeriodsProcessed,
		"failed":    summary.PeriodsFailed,
	}).Info("Relatório concluído")

	return nil
}

type appServices struct {
	cfg    *config.Config
	report reporting.ReportService
}

// buildServices monta o grafo de serviços da aplicação. A conexão com o
// banco só é aberta quando o registro de execuções está habilitado.
func buildServices(ctx context.Context) (*appServices, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("fuso horário inválido %q: %w", cfg.Report.Timezone, err)
	}

	cleanup := func() {}

	var runHistoryRepo repository.RunHistoryRepository
	if cfg.RunHistory.Enabled {
		pgConn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

		runHistoryRepo = repository.NewRunHistoryRepository(pgConn)
		if err := runHistoryRepo.EnsureSchema(); err != nil {
			_ = pgConn.Close()
			return nil, nil, err
		}
		cleanup = func() {
			_ = pgConn.Close()
		}
	}

	shopifyClient := shopifyclient.NewClient(cfg)
	shopifyIntegrator := shopify.New(cfg, shopifyClient)

	sheetsClient, err := sheetsclient.NewClient(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	publisher := sheets.New(cfg, sheetsClient)

	normalizer := normalizing.NewService(shopifyIntegrator)
	aggregator := aggregating.NewService()
	workbookExporter := exporter.New(cfg)
	fileStore := state.NewFileStore(cfg)
	planner := reporting.NewPlanner(cfg, loc)

	reportService := reporting.NewService(
		cfg,
		loc,
		planner,
		shopifyIntegrator,
		normalizer,
		aggregator,
		publisher,
		workbookExporter,
		fileStore,
		runHistoryRepo,
	)

	return &appServices{
		cfg:    cfg,
		report: reportService,
	}, cleanup, nil
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
