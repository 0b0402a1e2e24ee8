package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

func testPeriod() domain.Period {
	return domain.WeekFromISO(2024, 10, time.UTC)
}

func TestAggregate_SemPedidosRetornaRegistroZerado(t *testing.T) {
	service := NewService()

	metrics := service.Aggregate(domain.WeekRows{}, testPeriod())

	assert.Equal(t, 2024, metrics.ISOYear)
	assert.Equal(t, 10, metrics.ISOWeek)
	assert.Equal(t, "2024-03-04", metrics.WeekStartDate)
	assert.Equal(t, "2024-03-10", metrics.WeekEndDate)
	assert.Equal(t, 0, metrics.TotalOrders)
	assert.Equal(t, 0.0, metrics.TotalRevenue)
	assert.Equal(t, 0.0, metrics.AverageOrderValue)
	assert.Equal(t, 0, metrics.UniqueCustomers)
	assert.Equal(t, 0.0, metrics.FulfillmentRate)
}

func TestAggregate_PedidoComPrecoInvalidoNaoDerrubaASemana(t *testing.T) {
	service := NewService()

	// Três pedidos da semana 2024-W10, um deles com preço não numérico já
	// zerado pela normalização
	rows := domain.WeekRows{
		Orders: []domain.OrderRow{
			{ID: 1, CustomerID: 10, TotalPrice: 10.00, FinancialStatus: "paid", FulfillmentStatus: "fulfilled"},
			{ID: 2, CustomerID: 20, TotalPrice: 20.00, FinancialStatus: "paid"},
			{ID: 3, CustomerID: 30, TotalPrice: 0.0, FinancialStatus: "pending"},
		},
	}

	metrics := service.Aggregate(rows, testPeriod())

	assert.Equal(t, 3, metrics.TotalOrders)
	assert.Equal(t, 30.00, metrics.TotalRevenue)
	assert.Equal(t, 10.00, metrics.AverageOrderValue)
	assert.Equal(t, 3, metrics.UniqueCustomers)
	assert.Equal(t, 2, metrics.PaidOrders)
	assert.Equal(t, 1, metrics.PendingOrders)
	assert.InDelta(t, 0.33, metrics.FulfillmentRate, 0.001)
}

func TestAggregate_StatusFinanceiros(t *testing.T) {
	service := NewService()

	rows := domain.WeekRows{
		Orders: []domain.OrderRow{
			{ID: 1, FinancialStatus: "paid"},
			{ID: 2, FinancialStatus: "authorized"},
			{ID: 3, FinancialStatus: "pending"},
			{ID: 4, FinancialStatus: "voided"},
			{ID: 5, FinancialStatus: "refunded"},
			{ID: 6, FinancialStatus: "partially_refunded"},
			{ID: 7, FinancialStatus: "desconhecido"},
		},
	}

	metrics := service.Aggregate(rows, testPeriod())

	assert.Equal(t, 1, metrics.PaidOrders)
	assert.Equal(t, 2, metrics.PendingOrders)
	assert.Equal(t, 1, metrics.VoidedOrders)
	assert.Equal(t, 2, metrics.RefundedOrders)
}

func TestAggregate_ClientesUnicosComIdentidadeDegradada(t *testing.T) {
	service := NewService()

	rows := domain.WeekRows{
		Orders: []domain.OrderRow{
			{ID: 1, CustomerID: 10},
			{ID: 2, CustomerID: 10},
			{ID: 3, CustomerEmail: "ana@example.com"},
			{ID: 4, CustomerEmail: "ana@example.com"},
			{ID: 5, CustomerName: "Bia"},
			{ID: 6},
			{ID: 7},
		},
	}

	metrics := service.Aggregate(rows, testPeriod())

	// id 10, email ana, nome Bia e duas chaves sintéticas
	assert.Equal(t, 5, metrics.UniqueCustomers)
}

func TestAggregate_ContagensDeCatalogo(t *testing.T) {
	service := NewService()

	rows := domain.WeekRows{
		Orders: []domain.OrderRow{{ID: 1, CustomerID: 10}},
		Products: []domain.ProductRow{
			{ProductID: 100, VariantID: 1},
			{ProductID: 100, VariantID: 2},
			{ProductID: 200, VariantID: 3},
		},
		Fulfillments: []domain.FulfillmentRow{
			{OrderID: 1, FulfillmentID: 1},
		},
	}

	metrics := service.Aggregate(rows, testPeriod())

	assert.Equal(t, 2, metrics.TotalProducts)
	assert.Equal(t, 3, metrics.TotalVariants)
	assert.Equal(t, 1, metrics.TotalFulfillments)
}
