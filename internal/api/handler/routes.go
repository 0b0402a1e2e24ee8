package handler

import (
	"net/http"

	"github.com/vfg2006/shopify-reports-api/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(services ReportServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/run/:mode",
			Method:  http.MethodPost,
			Handler: RunReport(services),
		},
		{
			Path:    "/v1/reports/status",
			Method:  http.MethodGet,
			Handler: GetReportStatus(services),
		},
	}
}
