package shopifydomain

// RawRecord é um registro bruto retornado pela API Admin da Shopify para uma
// entidade (pedido, produto, cliente, fulfillment). É transitório: vive apenas
// dentro de um ciclo de busca e normalização e nunca é persistido como está.
type RawRecord map[string]interface{}

// Shop é a resposta da consulta de conectividade (/shop.json).
type Shop struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Domain string `json:"domain,omitempty"`
	Email  string `json:"email,omitempty"`
}
