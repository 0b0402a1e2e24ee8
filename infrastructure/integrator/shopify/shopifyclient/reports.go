package shopifyclient

import (
	"context"

	"github.com/sirupsen/logrus"
	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
)

// ListReports busca os relatórios disponíveis na API. É uma consulta de
// melhor esforço: a API raramente expõe dados de analytics aproveitáveis por
// aqui, mas a listagem ajuda no diagnóstico.
func (c *ShopifyClient) ListReports(ctx context.Context) []shopifydomain.RawRecord {
	reports := c.fetchAll(ctx, c.config.Shopify.BaseURL+"/reports.json", nil)

	logrus.WithField("reports", len(reports)).Debug("Relatórios disponíveis recebidos")

	return reports
}
