package sheetsclient

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client encapsula as operações de planilha usadas pelo publicador: abrir ou
// criar a planilha, garantir abas, ler a coluna de chaves e escrever faixas.
type Client interface {
	EnsureSpreadsheet(ctx context.Context, spreadsheetID string) (string, error)
	EnsureWorksheet(ctx context.Context, spreadsheetID, title string) (bool, error)
	GetColumnA(ctx context.Context, spreadsheetID, title string) ([]string, error)
	UpdateRange(ctx context.Context, spreadsheetID, rangeA1 string, values [][]interface{}) error
	AppendRows(ctx context.Context, spreadsheetID, title string, values [][]interface{}) error
}

type SheetsClient struct {
	service *sheets.Service
	drive   *drive.Service
	config  *config.Config
}

func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	// O escopo do Drive cobre o compartilhamento das planilhas criadas pela
	// própria conta de serviço
	opts := []option.ClientOption{
		option.WithScopes(sheets.SpreadsheetsScope, drive.DriveFileScope),
	}

	if cfg.Sheets.CredentialsJSON != "" {
		credentials := []byte(cfg.Sheets.CredentialsJSON)
		if len(credentials) > 0 && credentials[0] == '{' {
			opts = append(opts, option.WithCredentialsJSON(credentials))
		} else {
			opts = append(opts, option.WithCredentialsFile(cfg.Sheets.CredentialsJSON))
		}
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço do Google Sheets")
	}

	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço do Google Drive")
	}

	return &SheetsClient{
		service: service,
		drive:   driveService,
		config:  cfg,
	}, nil
}

// EnsureSpreadsheet abre a planilha pelo id ou, quando o id é vazio, cria uma
// nova com o nome configurado. Retorna o id efetivo.
func (c *SheetsClient) EnsureSpreadsheet(ctx context.Context, spreadsheetID string) (string, error) {
	if spreadsheetID != "" {
		spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
		if err != nil {
			return "", errors.Wrapf(err, "erro ao abrir a planilha %s", spreadsheetID)
		}

		logrus.WithField("title", spreadsheet.Properties.Title).Info("Planilha de destino aberta")
		return spreadsheetID, nil
	}

	spreadsheet, err := c.service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: c.config.Sheets.SpreadsheetName,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a planilha de destino")
	}

	logrus.WithFields(logrus.Fields{
		"title":          c.config.Sheets.SpreadsheetName,
		"spreadsheet_id": spreadsheet.SpreadsheetId,
	}).Info("Nova planilha de destino criada")

	c.shareSpreadsheet(ctx, spreadsheet.SpreadsheetId)

	return spreadsheet.SpreadsheetId, nil
}

// shareSpreadsheet concede acesso de escrita ao operador configurado. Uma
// planilha criada pela conta de serviço fica invisível para humanos sem isso.
// Falha de compartilhamento não derruba a execução: a planilha já existe e
// recebe os dados normalmente.
func (c *SheetsClient) shareSpreadsheet(ctx context.Context, spreadsheetID string) {
	email := c.config.Sheets.ShareWithEmail
	if email == "" {
		return
	}

	_, err := c.drive.Permissions.Create(spreadsheetID, &drive.Permission{
		Type:         "user",
		Role:         "writer",
		EmailAddress: email,
	}).SendNotificationEmail(false).Context(ctx).Do()
	if err != nil {
		logrus.WithError(err).WithField("email", email).Warn("Erro ao compartilhar a planilha criada")
		return
	}

	logrus.WithField("email", email).Info("Planilha compartilhada com o operador")
}

// EnsureWorksheet garante que a aba existe, criando-a se necessário. Retorna
// true quando a aba foi criada nesta chamada.
func (c *SheetsClient) EnsureWorksheet(ctx context.Context, spreadsheetID, title string) (bool, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return false, errors.Wrapf(err, "erro ao consultar as abas da planilha %s", spreadsheetID)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return false, nil
		}
	}

	_, err = c.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: title},
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return false, errors.Wrapf(err, "erro ao criar a aba %s", title)
	}

	logrus.WithField("worksheet", title).Info("Aba criada na planilha de destino")

	return true, nil
}

// GetColumnA lê a primeira coluna da aba (a coluna de chaves de período).
func (c *SheetsClient) GetColumnA(ctx context.Context, spreadsheetID, title string) ([]string, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, fmt.Sprintf("%s!A:A", title)).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler a coluna de chaves da aba %s", title)
	}

	values := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			values = append(values, "")
			continue
		}
		values = append(values, fmt.Sprintf("%v", row[0]))
	}

	return values, nil
}

func (c *SheetsClient) UpdateRange(ctx context.Context, spreadsheetID, rangeA1 string, values [][]interface{}) error {
	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rangeA1, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao atualizar a faixa %s", rangeA1)
	}

	return nil
}

func (c *SheetsClient) AppendRows(ctx context.Context, spreadsheetID, title string, values [][]interface{}) error {
	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, fmt.Sprintf("%s!A1", title), &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao anexar linhas na aba %s", title)
	}

	return nil
}
