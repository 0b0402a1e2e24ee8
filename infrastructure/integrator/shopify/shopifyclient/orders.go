package shopifyclient

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

// ListOrders busca todos os pedidos criados dentro do período, em qualquer
// status. O parâmetro fields permite restringir os campos retornados (usado
// pela extração de clientes para baratear a chamada).
func (c *ShopifyClient) ListOrders(ctx context.Context, period domain.Period, fields []string) []shopifydomain.RawRecord {
	logrus.WithFields(logrus.Fields{
		"start_date": period.Start.Format(time.DateOnly),
		"end_date":   period.End.Format(time.DateOnly),
	}).Info("Buscando pedidos do período")

	params := url.Values{}
	params.Set("status", "any")
	params.Set("created_at_min", period.Start.Format(time.RFC3339))
	params.Set("created_at_max", period.End.Format(time.RFC3339))
	params.Set("limit", strconv.Itoa(c.config.Shopify.PageSize))
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}

	orders := c.fetchAll(ctx, c.config.Shopify.BaseURL+"/orders.json", params)

	logrus.WithField("orders", len(orders)).Info("Pedidos recebidos para o período")

	return orders
}
