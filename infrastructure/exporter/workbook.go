package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Exporter grava as métricas em uma pasta de trabalho local quando a planilha
// do Google não está disponível. O arquivo tem o mesmo layout da aba de
// tendências para que os dados possam ser colados depois.
type Exporter interface {
	ExportWorkbook(ctx context.Context, worksheet string, records []*domain.WeeklyMetrics) (string, error)
}

type WorkbookExporter struct {
	config *config.Config
	nowFn  func() time.Time
}

func New(cfg *config.Config) Exporter {
	return &WorkbookExporter{
		config: cfg,
		nowFn:  time.Now,
	}
}

func (e *WorkbookExporter) ExportWorkbook(_ context.Context, worksheet string, records []*domain.WeeklyMetrics) (string, error) {
	if err := os.MkdirAll(e.config.Report.OutputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "erro ao criar o diretório de relatórios locais")
	}

	file := excelize.NewFile()
	defer func() {
		if err := file.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar a pasta de trabalho local")
		}
	}()

	index, err := file.NewSheet(worksheet)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao criar a aba %s na pasta de trabalho", worksheet)
	}
	file.SetActiveSheet(index)

	if err := file.DeleteSheet("Sheet1"); err != nil {
		return "", errors.Wrap(err, "erro ao remover a aba padrão da pasta de trabalho")
	}

	header := domain.TrendsHeader()
	if err := file.SetSheetRow(worksheet, "A1", &header); err != nil {
		return "", errors.Wrap(err, "erro ao escrever o cabeçalho na pasta de trabalho")
	}

	for i, record := range records {
		row := record.SheetRow()
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(worksheet, cell, &row); err != nil {
			return "", errors.Wrapf(err, "erro ao escrever a linha %d na pasta de trabalho", i+2)
		}
	}

	filename := fmt.Sprintf("shopify-report-%s.xlsx", e.nowFn().Format("20060102-150405"))
	path := filepath.Join(e.config.Report.OutputDir, filename)

	if err := file.SaveAs(path); err != nil {
		return "", errors.Wrapf(err, "erro ao salvar a pasta de trabalho em %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path": path,
		"rows": len(records),
	}).Info("Relatório exportado localmente")

	return path, nil
}
