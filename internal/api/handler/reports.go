package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
	"github.com/vfg2006/shopify-reports-api/internal/scheduler"
	"github.com/vfg2006/shopify-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/shopify-reports-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReportServices contém os serviços necessários para disparar e consultar
// execuções do relatório pela API
type ReportServices struct {
	ReportService       reporting.ReportService
	WeeklyReportSyncSvc *scheduler.WeeklyReportSyncService
}

var validRunModes = map[string]bool{
	domain.RunModeWeekly:                true,
	domain.RunModeHistoricalFull:        true,
	domain.RunModeHistoricalIncremental: true,
	domain.RunModeCatchUp:               true,
}

// RunReport dispara manualmente uma execução do relatório no modo informado
func RunReport(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReport")

		mode := httprouter.ParamsFromContext(r.Context()).ByName("mode")
		if mode == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Modo de execução não especificado", nil)
			return
		}

		if !validRunModes[mode] {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Modo de execução inválido", map[string]string{
				"mode": mode,
			})
			return
		}

		if services.WeeklyReportSyncSvc == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		if err := services.WeeklyReportSyncSvc.TriggerManualSync(mode); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(w).Encode(map[string]string{
			"status": "started",
			"mode":   mode,
		}); err != nil {
			logrus.WithError(err).Warn("Erro ao escrever a resposta de RunReport")
		}
	}
}

// GetReportStatus informa se há execução em andamento e o resumo da última
func GetReportStatus(services ReportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetReportStatus")

		if services.WeeklyReportSyncSvc == nil || services.ReportService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviços de relatório não disponíveis", nil)
			return
		}

		running, startedAt, completedAt := services.WeeklyReportSyncSvc.Status()

		response := map[string]interface{}{
			"running": running,
		}
		if !startedAt.IsZero() {
			response["last_started_at"] = startedAt
		}
		if !completedAt.IsZero() {
			response["last_completed_at"] = completedAt
		}
		if summary := services.ReportService.LastSummary(); summary != nil {
			response["last_summary"] = summary
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.WithError(err).Warn("Erro ao escrever a resposta de GetReportStatus")
		}
	}
}
