package shopifyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
)

type shopResponse struct {
	Shop shopifydomain.Shop `json:"shop"`
}

// GetShop consulta os dados da loja. Serve como sonda de conectividade no
// início de cada execução: se falhar, nada mais é tentado.
func (c *ShopifyClient) GetShop(ctx context.Context) (*shopifydomain.Shop, error) {
	req, err := c.newRequest(ctx, c.config.Shopify.BaseURL+"/shop.json")
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição de loja: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar na loja Shopify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("consulta da loja falhou com status: %s", resp.Status)
	}

	var response shopResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta da loja: %w", err)
	}

	return &response.Shop, nil
}
