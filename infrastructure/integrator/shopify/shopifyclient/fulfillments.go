package shopifyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	shopifydomain "github.com/vfg2006/shopify-reports-api/infrastructure/integrator/shopify/domain"
)

type fulfillmentsResponse struct {
	Fulfillments []shopifydomain.RawRecord `json:"fulfillments"`
}

// ListFulfillments busca os fulfillments de um pedido. O endpoint não aceita
// filtro de datas, então o recorte por período fica a cargo de quem chama.
func (c *ShopifyClient) ListFulfillments(ctx context.Context, orderID int64) ([]shopifydomain.RawRecord, error) {
	endpoint := fmt.Sprintf("%s/orders/%d/fulfillments.json", c.config.Shopify.BaseURL, orderID)

	req, err := c.newRequest(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição de fulfillments: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar fulfillments do pedido %d: %w", orderID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("busca de fulfillments do pedido %d falhou com status: %s", orderID, resp.Status)
	}

	var response fulfillmentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta de fulfillments: %w", err)
	}

	return response.Fulfillments, nil
}
