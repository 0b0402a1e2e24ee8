package aggregating

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
	"github.com/vfg2006/shopify-reports-api/pkg/utils"
)

// Aggregator reduz as linhas normalizadas de um período em um único registro
// de métricas semanais.
type Aggregator interface {
	Aggregate(rows domain.WeekRows, period domain.Period) domain.WeeklyMetrics
}

type Service struct{}

func NewService() Aggregator {
	return &Service{}
}

// Aggregate nunca propaga pânico: qualquer falha interna produz um registro
// mínimo válido com os campos de negócio zerados e apenas as contagens de
// linhas. Uma semana malformada não pode derrubar um backfill de anos.
func (s *Service) Aggregate(rows domain.WeekRows, period domain.Period) (metrics domain.WeeklyMetrics) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"period": period.Label(),
				"panic":  fmt.Sprintf("%v", r),
			}).Error("Falha inesperada na agregação de métricas, usando registro mínimo")

			metrics = s.minimalMetrics(rows, period)
		}
	}()

	metrics = s.compute(rows, period)
	return metrics
}

func (s *Service) compute(rows domain.WeekRows, period domain.Period) domain.WeeklyMetrics {
	metrics := s.identifiers(period)

	// Sem pedidos não há o que iterar: registro todo zerado
	if len(rows.Orders) == 0 {
		return metrics
	}

	var revenue, tax, discounts, subtotal float64
	fulfilled := 0

	for _, order := range rows.Orders {
		revenue += order.TotalPrice
		tax += order.TotalTax
		discounts += order.TotalDiscounts
		subtotal += order.SubtotalPrice

		switch order.FinancialStatus {
		case "paid":
			metrics.PaidOrders++
		case "pending", "authorized":
			metrics.PendingOrders++
		case "voided":
			metrics.VoidedOrders++
		case "refunded", "partially_refunded":
			metrics.RefundedOrders++
		}

		switch order.FulfillmentStatus {
		case "fulfilled", "partial":
			fulfilled++
		}
	}

	metrics.TotalOrders = len(rows.Orders)
	metrics.TotalRevenue = utils.RoundWithTwoDecimalPlace(revenue)
	metrics.TotalTax = utils.RoundWithTwoDecimalPlace(tax)
	metrics.TotalDiscounts = utils.RoundWithTwoDecimalPlace(discounts)
	metrics.TotalSubtotal = utils.RoundWithTwoDecimalPlace(subtotal)
	metrics.AverageOrderValue = utils.RoundWithTwoDecimalPlace(revenue / float64(len(rows.Orders)))
	metrics.UniqueCustomers = uniqueCustomers(rows.Orders)
	metrics.FulfillmentRate = utils.RoundWithTwoDecimalPlace(float64(fulfilled) / float64(len(rows.Orders)))
	metrics.TotalFulfillments = len(rows.Fulfillments)
	metrics.TotalVariants = len(rows.Products)
	metrics.TotalProducts = distinctProducts(rows.Products)

	return metrics
}

// minimalMetrics é o registro de segurança: identificadores do período e as
// contagens trivialmente deriváveis, todo o resto zerado.
func (s *Service) minimalMetrics(rows domain.WeekRows, period domain.Period) domain.WeeklyMetrics {
	metrics := s.identifiers(period)
	metrics.TotalOrders = len(rows.Orders)
	metrics.TotalFulfillments = len(rows.Fulfillments)
	metrics.TotalVariants = len(rows.Products)
	return metrics
}

func (s *Service) identifiers(period domain.Period) domain.WeeklyMetrics {
	return domain.WeeklyMetrics{
		ISOYear:       period.ISOYear,
		ISOWeek:       period.ISOWeek,
		WeekStartDate: period.Start.Format(time.DateOnly),
		WeekEndDate:   period.End.Format(time.DateOnly),
	}
}

// uniqueCustomers conta clientes distintos com identidade de melhor esforço:
// id do cliente, senão email, senão nome, senão uma chave sintética por
// linha. A contagem nunca fica silenciosamente errada por falta de
// identidade; no pior caso degrada para a contagem de pedidos.
func uniqueCustomers(orders []domain.OrderRow) int {
	identities := make(map[string]bool, len(orders))

	for i, order := range orders {
		var key string
		switch {
		case order.CustomerID != 0:
			key = fmt.Sprintf("id:%d", order.CustomerID)
		case order.CustomerEmail != "":
			key = "email:" + order.CustomerEmail
		case order.CustomerName != "":
			key = "name:" + order.CustomerName
		default:
			key = fmt.Sprintf("row:%d", i)
		}
		identities[key] = true
	}

	return len(identities)
}

func distinctProducts(products []domain.ProductRow) int {
	ids := make(map[int64]bool, len(products))
	for _, product := range products {
		ids[product.ProductID] = true
	}
	return len(ids)
}
