package sheetsclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func newTestClient(t *testing.T, handler http.Handler, cfg *config.Config) *SheetsClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	ctx := context.Background()

	sheetsService, err := sheets.NewService(ctx, option.WithEndpoint(server.URL), option.WithoutAuthentication())
	require.NoError(t, err)

	driveService, err := drive.NewService(ctx, option.WithEndpoint(server.URL), option.WithoutAuthentication())
	require.NoError(t, err)

	return &SheetsClient{
		service: sheetsService,
		drive:   driveService,
		config:  cfg,
	}
}

func TestEnsureSpreadsheet_CriacaoCompartilhaComOOperador(t *testing.T) {
	cfg := &config.Config{
		Sheets: config.Sheets{
			SpreadsheetName: "Relatório Semanal",
			ShareWithEmail:  "operador@example.com",
		},
	}

	var permissionBody map[string]interface{}

	mux := http.NewServeMux()
	mux.HandleFunc("/v4/spreadsheets", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-novo"}`))
	})
	mux.HandleFunc("/files/sheet-novo/permissions", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &permissionBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"perm-1"}`))
	})

	client := newTestClient(t, mux, cfg)

	spreadsheetID, err := client.EnsureSpreadsheet(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "sheet-novo", spreadsheetID)
	require.NotNil(t, permissionBody)
	assert.Equal(t, "operador@example.com", permissionBody["emailAddress"])
	assert.Equal(t, "writer", permissionBody["role"])
	assert.Equal(t, "user", permissionBody["type"])
}

func TestEnsureSpreadsheet_SemEmailConfiguradoNaoCompartilha(t *testing.T) {
	cfg := &config.Config{
		Sheets: config.Sheets{
			SpreadsheetName: "Relatório Semanal",
		},
	}

	permissionCalled := false

	mux := http.NewServeMux()
	mux.HandleFunc("/v4/spreadsheets", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-novo"}`))
	})
	mux.HandleFunc("/files/", func(w http.ResponseWriter, r *http.Request) {
		permissionCalled = true
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	client := newTestClient(t, mux, cfg)

	spreadsheetID, err := client.EnsureSpreadsheet(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "sheet-novo", spreadsheetID)
	assert.False(t, permissionCalled)
}
