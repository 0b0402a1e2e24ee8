package shopifyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
)

// ListProducts busca o catálogo completo de produtos (snapshot atual).
func (c *ShopifyClient) ListProducts(ctx context.Context) []shopifydomain.RawRecord {
	logrus.Info("Buscando produtos e níveis de estoque")

	params := url.Values{}
	params.Set("limit", strconv.Itoa(c.config.Shopify.PageSize))

	products := c.fetchAll(ctx, c.config.Shopify.BaseURL+"/products.json", params)

	logrus.WithField("products", len(products)).Info("Produtos recebidos")

	return products
}

type inventoryLevelsResponse struct {
	InventoryLevels []struct {
		Available *int64 `json:"available"`
	} `json:"inventory_levels"`
}

// GetInventoryLevel consulta o nível de estoque de uma variante. É uma
// chamada auxiliar por variante; quem chama decide como degradar em caso de
// erro.
func (c *ShopifyClient) GetInventoryLevel(ctx context.Context, inventoryItemID int64) (string, error) {
	endpoint := fmt.Sprintf(
		"%s/inventory_levels.json?inventory_item_ids=%d",
		c.config.Shopify.BaseURL,
		inventoryItemID,
	)

	req, err := c.newRequest(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição de estoque: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao consultar o estoque: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("consulta de estoque falhou com status: %s", resp.Status)
	}

	var response inventoryLevelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta de estoque: %w", err)
	}

	if len(response.InventoryLevels) == 0 || response.InventoryLevels[0].Available == nil {
		return "", fmt.Errorf("nenhum nível de estoque disponível para o item %d", inventoryItemID)
	}

	return strconv.FormatInt(*response.InventoryLevels[0].Available, 10), nil
}
