package normalizing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/mocks"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestNormalizeOrders_CamposInvalidosNaoDerrubamALinha(t *testing.T) {
	service := &Service{}

	records := []shopifydomain.RawRecord{
		{
			"id":               float64(1001),
			"order_number":     float64(5001),
			"created_at":       "2024-03-04T10:00:00-07:00",
			"financial_status": "paid",
			"total_price":      "10.00",
			"subtotal_price":   "9.00",
			"total_tax":        "1.00",
			"currency":         "USD",
			"customer": map[string]interface{}{
				"id":         float64(77),
				"first_name": "Ana",
				"last_name":  "Souza",
				"email":      "ana@example.com",
			},
			"line_items": []interface{}{
				map[string]interface{}{"quantity": float64(2)},
				map[string]interface{}{"quantity": "3.0"},
			},
		},
		{
			// Pedido com preço inválido e sem cliente: a linha é mantida com
			// os campos zerados
			"id":          float64(1002),
			"total_price": "not-a-number",
		},
	}

	rows := service.NormalizeOrders(records)

	require.Len(t, rows, 2)

	assert.Equal(t, int64(1001), rows[0].ID)
	assert.Equal(t, int64(77), rows[0].CustomerID)
	assert.Equal(t, "Ana Souza", rows[0].CustomerName)
	assert.Equal(t, 10.00, rows[0].TotalPrice)
	assert.Equal(t, 5, rows[0].ItemCount)

	assert.Equal(t, int64(1002), rows[1].ID)
	assert.Equal(t, 0.0, rows[1].TotalPrice)
	assert.Equal(t, int64(0), rows[1].CustomerID)
	assert.Equal(t, "", rows[1].CustomerEmail)
}

func TestNormalizeCustomers_DistintosPorID(t *testing.T) {
	service := &Service{}

	records := []shopifydomain.RawRecord{
		{
			"id": float64(1),
			"customer": map[string]interface{}{
				"id":          float64(77),
				"email":       "ana@example.com",
				"total_spent": "120.50",
			},
		},
		{
			// Mesmo cliente em outro pedido: não duplica
			"id": float64(2),
			"customer": map[string]interface{}{
				"id":    float64(77),
				"email": "ana@example.com",
			},
		},
		{
			// Pedido sem cliente: ignorado
			"id": float64(3),
		},
		{
			"id": float64(4),
			"customer": map[string]interface{}{
				"id":    float64(88),
				"email": "bia@example.com",
			},
		},
	}

	rows := service.NormalizeCustomers(records)

	require.Len(t, rows, 2)
	assert.Equal(t, int64(77), rows[0].ID)
	assert.Equal(t, 120.50, rows[0].TotalSpent)
	assert.Equal(t, int64(88), rows[1].ID)
}

func TestBuildProductRows_EstoqueDegradaParaUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopify := mocks.NewMockShopifyIntegrator(ctrl)
	service := NewService(mockShopify)

	ctx := context.Background()

	mockShopify.EXPECT().GetProducts(ctx).Return([]shopifydomain.RawRecord{
		{
			"id":    float64(10),
			"title": "Camiseta",
			"variants": []interface{}{
				map[string]interface{}{
					"id":                float64(101),
					"title":             "P",
					"price":             "49.90",
					"inventory_item_id": float64(900),
				},
				map[string]interface{}{
					"id":                float64(102),
					"title":             "M",
					"price":             "49.90",
					"inventory_item_id": float64(901),
				},
			},
		},
	})

	mockShopify.EXPECT().GetInventoryLevel(ctx, int64(900)).Return("12", nil)
	mockShopify.EXPECT().GetInventoryLevel(ctx, int64(901)).Return("", errors.New("inventory level não encontrado"))

	rows := service.BuildProductRows(ctx)

	require.Len(t, rows, 2)
	assert.Equal(t, "12", rows[0].AvailableQuantity)
	assert.Equal(t, domain.InventoryUnknown, rows[1].AvailableQuantity)
	assert.Equal(t, 49.90, rows[0].Price)
}

func TestBuildFulfillmentRows_FiltraPeloPeriodo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockShopify := mocks.NewMockShopifyIntegrator(ctrl)
	service := NewService(mockShopify)

	ctx := context.Background()
	loc := time.UTC
	period := domain.WeekFromISO(2024, 10, loc)

	orders := []domain.OrderRow{
		{ID: 1001, OrderNumber: 5001, CustomerName: "Ana Souza", CustomerEmail: "ana@example.com"},
	}

	mockShopify.EXPECT().GetFulfillments(ctx, int64(1001)).Return([]shopifydomain.RawRecord{
		{
			"id":               float64(1),
			"status":           "success",
			"created_at":       "2024-03-05T10:00:00Z",
			"tracking_numbers": []interface{}{"BR123"},
		},
		{
			// Fora do período: descartado
			"id":         float64(2),
			"status":     "success",
			"created_at": "2024-01-01T10:00:00Z",
		},
	}, nil)

	rows := service.BuildFulfillmentRows(ctx, period, orders)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].FulfillmentID)
	assert.Equal(t, int64(5001), rows[0].OrderNumber)
	assert.Equal(t, "Ana Souza", rows[0].CustomerName)
	assert.Equal(t, "BR123", rows[0].TrackingNumber)
}
