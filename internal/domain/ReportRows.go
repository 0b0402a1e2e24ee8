package domain

// Linhas normalizadas por entidade. Todo campo tem um valor padrão definido:
// numérico ausente ou malformado vira 0/0.0, string ausente vira vazia. O
// conjunto de campos é idêntico para toda linha de uma mesma entidade,
// independentemente dos campos presentes no registro bruto de origem.

type OrderRow struct {
	ID                int64   `json:"id"`
	OrderNumber       int64   `json:"order_number"`
	CreatedAt         string  `json:"created_at"`
	CustomerID        int64   `json:"customer_id"`
	CustomerName      string  `json:"customer_name"`
	CustomerEmail     string  `json:"customer_email"`
	FinancialStatus   string  `json:"financial_status"`
	FulfillmentStatus string  `json:"fulfillment_status"`
	TotalPrice        float64 `json:"total_price"`
	SubtotalPrice     float64 `json:"subtotal_price"`
	TotalTax          float64 `json:"total_tax"`
	TotalDiscounts    float64 `json:"total_discounts"`
	Currency          string  `json:"currency"`
	ItemCount         int     `json:"item_count"`
}

// InventoryUnknown é o valor sentinela usado quando a consulta de estoque de
// uma variante falha. A falha degrada apenas este campo, nunca o produto.
const InventoryUnknown = "Unknown"

type ProductRow struct {
	ProductID         int64   `json:"product_id"`
	ProductTitle      string  `json:"product_title"`
	VariantID         int64   `json:"variant_id"`
	VariantTitle      string  `json:"variant_title"`
	SKU               string  `json:"sku"`
	Price             float64 `json:"price"`
	AvailableQuantity string  `json:"available_quantity"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
	ProductType       string  `json:"product_type"`
	Vendor            string  `json:"vendor"`
}

type CustomerRow struct {
	ID            int64   `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	OrdersCount   int     `json:"orders_count"`
	TotalSpent    float64 `json:"total_spent"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	Tags          string  `json:"tags"`
	VerifiedEmail bool    `json:"verified_email"`
}

type FulfillmentRow struct {
	OrderID        int64  `json:"order_id"`
	FulfillmentID  int64  `json:"fulfillment_id"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	Service        string `json:"service"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
	LineItemsCount int    `json:"line_items_count"`
	OrderNumber    int64  `json:"order_number"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
}

// WeekRows agrupa as linhas normalizadas de um período, prontas para o
// agregador de métricas.
type WeekRows struct {
	Orders       []OrderRow
	Products     []ProductRow
	Customers    []CustomerRow
	Fulfillments []FulfillmentRow
}
