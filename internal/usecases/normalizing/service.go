package normalizing

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify"
	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

// Normalizer transforma registros brutos da API em linhas tabulares com
// coerção segura de tipos. Campos ausentes ou malformados recebem os valores
// padrão definidos no pacote domain.
type Normalizer interface {
	NormalizeOrders(records []shopifydomain.RawRecord) []domain.OrderRow
	NormalizeCustomers(records []shopifydomain.RawRecord) []domain.CustomerRow
	BuildProductRows(ctx context.Context) []domain.ProductRow
	BuildFulfillmentRows(ctx context.Context, period domain.Period, orders []domain.OrderRow) []domain.FulfillmentRow
}

type Service struct {
	shopifyService shopify.ShopifyIntegrator
}

func NewService(shopifyService shopify.ShopifyIntegrator) Normalizer {
	return &Service{
		shopifyService: shopifyService,
	}
}

// NormalizeOrders converte pedidos brutos em linhas de pedido.
func (s *Service) NormalizeOrders(records []shopifydomain.RawRecord) []domain.OrderRow {
	rows := make([]domain.OrderRow, 0, len(records))

	for _, record := range records {
		customer := nested(record, "customer")

		itemCount := 0
		for _, item := range list(record, "line_items") {
			itemCount += SafeInt(item["quantity"])
		}

		rows = append(rows, domain.OrderRow{
			ID:                safeInt64(record["id"]),
			OrderNumber:       safeInt64(record["order_number"]),
			CreatedAt:         str(record, "created_at"),
			CustomerID:        safeInt64(customer["id"]),
			CustomerName:      customerName(customer),
			CustomerEmail:     str(customer, "email"),
			FinancialStatus:   str(record, "financial_status"),
			FulfillmentStatus: str(record, "fulfillment_status"),
			TotalPrice:        SafeFloat(record["total_price"]),
			SubtotalPrice:     SafeFloat(record["subtotal_price"]),
			TotalTax:          SafeFloat(record["total_tax"]),
			TotalDiscounts:    SafeFloat(record["total_discounts"]),
			Currency:          str(record, "currency"),
			ItemCount:         itemCount,
		})
	}

	return rows
}

// NormalizeCustomers deriva as linhas de cliente a partir dos pedidos do
// período: um cliente distinto por id, usando o snapshot embutido no pedido.
func (s *Service) NormalizeCustomers(records []shopifydomain.RawRecord) []domain.CustomerRow {
	seen := make(map[int64]bool)
	rows := make([]domain.CustomerRow, 0)

	for _, record := range records {
		customer := nested(record, "customer")
		if customer == nil {
			continue
		}

		customerID := safeInt64(customer["id"])
		if customerID == 0 || seen[customerID] {
			continue
		}
		seen[customerID] = true

		rows = append(rows, domain.CustomerRow{
			ID:            customerID,
			FirstName:     str(customer, "first_name"),
			LastName:      str(customer, "last_name"),
			Email:         str(customer, "email"),
			Phone:         str(customer, "phone"),
			OrdersCount:   SafeInt(customer["orders_count"]),
			TotalSpent:    SafeFloat(customer["total_spent"]),
			CreatedAt:     str(customer, "created_at"),
			UpdatedAt:     str(customer, "updated_at"),
			Tags:          str(customer, "tags"),
			VerifiedEmail: boolean(customer, "verified_email"),
		})
	}

	logrus.WithField("customers", len(rows)).Info("Clientes distintos encontrados nos pedidos do período")

	return rows
}

// BuildProductRows busca o catálogo e monta uma linha por variante, com o
// nível de estoque consultado variante a variante. Uma consulta de estoque
// que falha degrada o campo para o sentinela, sem abortar o produto.
func (s *Service) BuildProductRows(ctx context.Context) []domain.ProductRow {
	records := s.shopifyService.GetProducts(ctx)

	rows := make([]domain.ProductRow, 0, len(records))
	for _, record := range records {
		productID := safeInt64(record["id"])

		for _, variant := range list(record, "variants") {
			inventoryLevel := domain.InventoryUnknown

			inventoryItemID := safeInt64(variant["inventory_item_id"])
			if inventoryItemID != 0 {
				available, err := s.shopifyService.GetInventoryLevel(ctx, inventoryItemID)
				if err != nil {
					logrus.WithFields(logrus.Fields{
						"product_id": productID,
						"variant_id": safeInt64(variant["id"]),
						"error":      err.Error(),
					}).Warn("Erro ao consultar estoque da variante")
				} else {
					inventoryLevel = available
				}
			}

			rows = append(rows, domain.ProductRow{
				ProductID:         productID,
				ProductTitle:      str(record, "title"),
				VariantID:         safeInt64(variant["id"]),
				VariantTitle:      str(variant, "title"),
				SKU:               str(variant, "sku"),
				Price:             SafeFloat(variant["price"]),
				AvailableQuantity: inventoryLevel,
				CreatedAt:         str(record, "created_at"),
				UpdatedAt:         str(record, "updated_at"),
				ProductType:       str(record, "product_type"),
				Vendor:            str(record, "vendor"),
			})
		}
	}

	return rows
}

// BuildFulfillmentRows busca os fulfillments de cada pedido distinto do
// período. O endpoint não filtra por data, então o recorte é feito aqui,
// e os campos básicos do pedido são juntados para facilitar o relatório.
func (s *Service) BuildFulfillmentRows(ctx context.Context, period domain.Period, orders []domain.OrderRow) []domain.FulfillmentRow {
	ordersByID := make(map[int64]domain.OrderRow, len(orders))
	orderIDs := make([]int64, 0, len(orders))
	for _, order := range orders {
		if _, ok := ordersByID[order.ID]; !ok {
			orderIDs = append(orderIDs, order.ID)
		}
		ordersByID[order.ID] = order
	}

	rows := make([]domain.FulfillmentRow, 0)

	for _, orderID := range orderIDs {
		fulfillments, err := s.shopifyService.GetFulfillments(ctx, orderID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"order_id": orderID,
				"error":    err.Error(),
			}).Error("Erro ao buscar fulfillments do pedido")
			continue
		}

		order := ordersByID[orderID]

		for _, fulfillment := range fulfillments {
			createdAt := str(fulfillment, "created_at")
			if !withinPeriod(createdAt, period) {
				continue
			}

			trackingNumbers := stringList(fulfillment, "tracking_numbers")
			trackingURLs := stringList(fulfillment, "tracking_urls")

			row := domain.FulfillmentRow{
				OrderID:        orderID,
				FulfillmentID:  safeInt64(fulfillment["id"]),
				Status:         str(fulfillment, "status"),
				CreatedAt:      createdAt,
				Service:        str(fulfillment, "service"),
				LineItemsCount: len(list(fulfillment, "line_items")),
				OrderNumber:    order.OrderNumber,
				CustomerName:   order.CustomerName,
				CustomerEmail:  order.CustomerEmail,
			}
			if len(trackingNumbers) > 0 {
				row.TrackingNumber = trackingNumbers[0]
			}
			if len(trackingURLs) > 0 {
				row.TrackingURL = trackingURLs[0]
			}

			rows = append(rows, row)
		}
	}

	return rows
}

func customerName(customer shopifydomain.RawRecord) string {
	if customer == nil {
		return ""
	}
	return strings.TrimSpace(str(customer, "first_name") + " " + str(customer, "last_name"))
}

// withinPeriod verifica se o timestamp do fulfillment cai dentro do período.
// Datas não parseáveis ficam de fora.
func withinPeriod(createdAt string, period domain.Period) bool {
	if createdAt == "" {
		return false
	}

	timestamp, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return false
	}

	return !timestamp.Before(period.Start) && !timestamp.After(period.End)
}
