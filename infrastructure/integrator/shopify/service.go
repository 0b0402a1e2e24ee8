package shopify

import (
	"context"

	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/shopifyclient"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

type ShopifyIntegrator interface {
	GetOrders(ctx context.Context, period domain.Period) []shopifydomain.RawRecord
	GetOrderCustomers(ctx context.Context, period domain.Period) []shopifydomain.RawRecord
	GetProducts(ctx context.Context) []shopifydomain.RawRecord
	GetInventoryLevel(ctx context.Context, inventoryItemID int64) (string, error)
	GetFulfillments(ctx context.Context, orderID int64) ([]shopifydomain.RawRecord, error)
	GetReports(ctx context.Context) []shopifydomain.RawRecord
	CheckConnection(ctx context.Context) (*shopifydomain.Shop, error)
}

type ShopifyService struct {
	cfg    *config.Config
	Client shopifyclient.Client
}

func New(cfg *config.Config, client shopifyclient.Client) ShopifyIntegrator {
	return &ShopifyService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ShopifyService) GetOrders(ctx context.Context, period domain.Period) []shopifydomain.RawRecord {
	return s.Client.ListOrders(ctx, period, nil)
}

// GetOrderCustomers busca apenas os campos id e customer dos pedidos do
// período. Os clientes da semana são derivados desses pedidos em vez de uma
// listagem completa de clientes, que seria muito mais cara.
func (s *ShopifyService) GetOrderCustomers(ctx context.Context, period domain.Period) []shopifydomain.RawRecord {
	return s.Client.ListOrders(ctx, period, []string{"id", "customer"})
}

func (s *ShopifyService) GetProducts(ctx context.Context) []shopifydomain.RawRecord {
	return s.Client.ListProducts(ctx)
}

func (s *ShopifyService) GetInventoryLevel(ctx context.Context, inventoryItemID int64) (string, error) {
	return s.Client.GetInventoryLevel(ctx, inventoryItemID)
}

func (s *ShopifyService) GetFulfillments(ctx context.Context, orderID int64) ([]shopifydomain.RawRecord, error) {
	return s.Client.ListFulfillments(ctx, orderID)
}

func (s *ShopifyService) GetReports(ctx context.Context) []shopifydomain.RawRecord {
	return s.Client.ListReports(ctx)
}

func (s *ShopifyService) CheckConnection(ctx context.Context) (*shopifydomain.Shop, error) {
	return s.Client.GetShop(ctx)
}
