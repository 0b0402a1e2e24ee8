package shopifyclient

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
	"github.com/vfg2006/shopify-reports-api/internal/config"
	"github.com/vfg2006/shopify-reports-api/internal/domain"
)

type Client interface {
	ListOrders(ctx context.Context, period domain.Period, fields []string) []shopifydomain.RawRecord
	ListProducts(ctx context.Context) []shopifydomain.RawRecord
	GetInventoryLevel(ctx context.Context, inventoryItemID int64) (string, error)
	ListFulfillments(ctx context.Context, orderID int64) ([]shopifydomain.RawRecord, error)
	ListReports(ctx context.Context) []shopifydomain.RawRecord
	GetShop(ctx context.Context) (*shopifydomain.Shop, error)
}

type ShopifyClient struct {
	httpClient *http.Client
	config     *config.Config

	// sleepFn permite controlar as pausas de backoff nos testes
	sleepFn func(time.Duration)
}

func NewClient(cfg *config.Config) Client {
	transport := http.DefaultTransport
	if cfg.Shopify.InsecureSkipVerify {
		// Decisão sensível de segurança: precisa ficar visível no log toda
		// vez que o cliente é construído
		logrus.Warn("Verificação de certificado TLS DESABILITADA para a API da Shopify (SHOPIFY_INSECURE_SKIP_VERIFY=true)")
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402
		}
	}

	return &ShopifyClient{
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		config:  cfg,
		sleepFn: time.Sleep,
	}
}

// newRequest cria uma requisição GET autenticada com basic auth (API key +
// token) e os cabeçalhos JSON padrão.
func (c *ShopifyClient) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(c.config.Shopify.APIKey, c.config.Shopify.Password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return req, nil
}
