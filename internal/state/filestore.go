package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

// FileStore persiste o estado local do pipeline: o id da planilha de destino
// entre execuções e o resumo em JSON da última carga histórica.
type FileStore interface {
	LoadSpreadsheetID() string
	SaveSpreadsheetID(spreadsheetID string) error
	SaveRunSummary(summary *domain.RunSummary) error
	LoadRunSummary() (*domain.RunSummary, error)
}

type fileStore struct {
	config *config.Config
}

func NewFileStore(cfg *config.Config) FileStore {
	return &fileStore{
		config: cfg,
	}
}

// LoadSpreadsheetID lê o id salvo na execução anterior. Vazio significa que a
// planilha ainda precisa ser resolvida ou criada.
func (s *fileStore) LoadSpreadsheetID() string {
	content, err := os.ReadFile(s.config.Report.StateFile)
	if err != nil {
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warn("Erro ao ler o arquivo de estado da planilha")
		}
		return ""
	}

	return strings.TrimSpace(string(content))
}

func (s *fileStore) SaveSpreadsheetID(spreadsheetID string) error {
	if err := os.MkdirAll(filepath.Dir(s.config.Report.StateFile), 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar o diretório do arquivo de estado")
	}

	if err := os.WriteFile(s.config.Report.StateFile, []byte(spreadsheetID+"\n"), 0o644); err != nil {
		return errors.Wrap(err, "erro ao salvar o id da planilha")
	}

	return nil
}

func (s *fileStore) summaryPath() string {
	return filepath.Join(s.config.Report.OutputDir, "historical_summary.json")
}

// SaveRunSummary grava o resumo da execução em JSON indentado para inspeção
// manual e por automações externas.
func (s *fileStore) SaveRunSummary(summary *domain.RunSummary) error {
	if err := os.MkdirAll(s.config.Report.OutputDir, 0o755); err != nil {
		return errors.Wrap(err, "erro ao criar o diretório de relatórios")
	}

	content, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o resumo da execução")
	}

	if err := os.WriteFile(s.summaryPath(), content, 0o644); err != nil {
		return errors.Wrap(err, "erro ao salvar o resumo da execução")
	}

	return nil
}

func (s *fileStore) LoadRunSummary() (*domain.RunSummary, error) {
	content, err := os.ReadFile(s.summaryPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao ler o resumo da execução")
	}

	summary := &domain.RunSummary{}
	if err := json.Unmarshal(content, summary); err != nil {
		return nil, errors.Wrap(err, "erro ao deserializar o resumo da execução")
	}

	return summary, nil
}
