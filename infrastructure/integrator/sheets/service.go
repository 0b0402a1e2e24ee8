package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

const (
	WeeklyWorksheet  = "Trends"
	MonthlyWorksheet = "Monthly Trends"
)

// Publisher publica métricas agregadas na planilha de tendências. A escrita é
// idempotente: a chave é a data de início do período na coluna A, linhas já
// existentes são atualizadas no lugar e as demais são anexadas ao final.
type Publisher interface {
	EnsureDestination(ctx context.Context, spreadsheetID string) (string, error)
	ListPeriodKeys(ctx context.Context, spreadsheetID string) ([]string, error)
	PublishMetrics(ctx context.Context, spreadsheetID string, metrics *domain.WeeklyMetrics) error
	PublishHistorical(ctx context.Context, spreadsheetID, worksheet string, records []*domain.WeeklyMetrics) error
}

type SheetsService struct {
	config  *config.Config
	Client  sheetsclient.Client
	sleepFn func(time.Duration)
}

func New(cfg *config.Config, client sheetsclient.Client) Publisher {
	return &SheetsService{
		config:  cfg,
		Client:  client,
		sleepFn: time.Sleep,
	}
}

// EnsureDestination resolve a planilha de destino, criando uma nova quando
// nenhum id foi informado.
func (s *SheetsService) EnsureDestination(ctx context.Context, spreadsheetID string) (string, error) {
	return s.Client.EnsureSpreadsheet(ctx, spreadsheetID)
}

// ListPeriodKeys lê as chaves de período já publicadas na aba semanal. É a
// fonte de "períodos já processados" quando o histórico em banco está
// desabilitado. A linha de cabeçalho não conta como chave.
func (s *SheetsService) ListPeriodKeys(ctx context.Context, spreadsheetID string) ([]string, error) {
	if err := s.ensureHeader(ctx, spreadsheetID, WeeklyWorksheet); err != nil {
		return nil, err
	}

	keys, err := s.Client.GetColumnA(ctx, spreadsheetID, WeeklyWorksheet)
	if err != nil {
		return nil, err
	}

	if len(keys) > 0 {
		keys = keys[1:]
	}

	return keys, nil
}

// PublishMetrics grava o registro de um único período na aba correta para a
// granularidade dele.
func (s *SheetsService) PublishMetrics(ctx context.Context, spreadsheetID string, metrics *domain.WeeklyMetrics) error {
	worksheet := WeeklyWorksheet
	if !metrics.IsWeekly() {
		worksheet = MonthlyWorksheet
	}

	if err := s.ensureHeader(ctx, spreadsheetID, worksheet); err != nil {
		return err
	}

	keys, err := s.Client.GetColumnA(ctx, spreadsheetID, worksheet)
	if err != nil {
		return err
	}

	return s.upsertRow(ctx, spreadsheetID, worksheet, keysToRows(keys), metrics)
}

// PublishHistorical grava um lote de períodos na aba informada. Linhas já
// presentes viram atualizações pontuais; as novas são anexadas em blocos para
// respeitar os limites de escrita da API.
func (s *SheetsService) PublishHistorical(ctx context.Context, spreadsheetID, worksheet string, records []*domain.WeeklyMetrics) error {
	if len(records) == 0 {
		return nil
	}

	if err := s.ensureHeader(ctx, spreadsheetID, worksheet); err != nil {
		return err
	}

	keys, err := s.Client.GetColumnA(ctx, spreadsheetID, worksheet)
	if err != nil {
		return err
	}

	existing := keysToRows(keys)
	pending := make([][]interface{}, 0, len(records))

	for _, record := range records {
		if _, ok := existing[record.WeekStartDate]; ok {
			if err := s.upsertRow(ctx, spreadsheetID, worksheet, existing, record); err != nil {
				return err
			}
			continue
		}
		pending = append(pending, record.SheetRow())
	}

	chunkSize := s.config.Sheets.ChunkSize
	if chunkSize <= 0 {
		chunkSize = len(pending)
	}

	for start := 0; start < len(pending); start += chunkSize {
		end := start + chunkSize
		if end > len(pending) {
			end = len(pending)
		}

		if err := s.Client.AppendRows(ctx, spreadsheetID, worksheet, pending[start:end]); err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"worksheet": worksheet,
			"rows":      end - start,
		}).Info("Bloco de linhas publicado na planilha")

		if end < len(pending) && s.config.Sheets.ChunkDelayMs > 0 {
			s.sleepFn(time.Duration(s.config.Sheets.ChunkDelayMs) * time.Millisecond)
		}
	}

	return nil
}

// ensureHeader garante a aba e escreve a linha de cabeçalho quando a aba
// acabou de ser criada.
func (s *SheetsService) ensureHeader(ctx context.Context, spreadsheetID, worksheet string) error {
	created, err := s.Client.EnsureWorksheet(ctx, spreadsheetID, worksheet)
	if err != nil {
		return err
	}

	if !created {
		return nil
	}

	header := domain.TrendsHeader()
	headerRange := fmt.Sprintf("%s!A1:%s1", worksheet, columnLetter(len(header)))

	return s.Client.UpdateRange(ctx, spreadsheetID, headerRange, [][]interface{}{header})
}

// upsertRow atualiza a linha do período quando a chave já existe na coluna A,
// senão anexa uma nova linha ao final da aba.
func (s *SheetsService) upsertRow(ctx context.Context, spreadsheetID, worksheet string, existing map[string]int, metrics *domain.WeeklyMetrics) error {
	row := metrics.SheetRow()

	if rowIndex, ok := existing[metrics.WeekStartDate]; ok {
		rangeA1 := fmt.Sprintf("%s!A%d:%s%d", worksheet, rowIndex, columnLetter(len(row)), rowIndex)

		logrus.WithFields(logrus.Fields{
			"worksheet": worksheet,
			"period":    metrics.WeekStartDate,
			"row":       rowIndex,
		}).Info("Período já publicado, atualizando a linha existente")

		return s.Client.UpdateRange(ctx, spreadsheetID, rangeA1, [][]interface{}{row})
	}

	return s.Client.AppendRows(ctx, spreadsheetID, worksheet, [][]interface{}{row})
}

// keysToRows indexa os valores da coluna A pelo número da linha (base 1). Em
// chaves duplicadas vale a primeira ocorrência.
func keysToRows(keys []string) map[string]int {
	rows := make(map[string]int, len(keys))
	for i, key := range keys {
		if key == "" {
			continue
		}
		if _, ok := rows[key]; !ok {
			rows[key] = i + 1
		}
	}

	return rows
}

// columnLetter converte um número de coluna (base 1) na letra usada em faixas A1.
func columnLetter(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}

	return letters
}
