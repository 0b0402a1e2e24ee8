package domain

// WeeklyMetrics é o registro fixo de métricas agregadas de um período.
// Criado uma única vez pelo agregador e nunca alterado depois disso.
type WeeklyMetrics struct {
	ISOYear       int    `json:"iso_year"`
	ISOWeek       int    `json:"iso_week"`
	WeekStartDate string `json:"week_start_date"`
	WeekEndDate   string `json:"week_end_date"`

	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalTax          float64 `json:"total_tax"`
	TotalDiscounts    float64 `json:"total_discounts"`
	TotalSubtotal     float64 `json:"total_subtotal"`
	AverageOrderValue float64 `json:"average_order_value"`

	UniqueCustomers int `json:"unique_customers"`

	PaidOrders     int `json:"paid_orders"`
	PendingOrders  int `json:"pending_orders"`
	VoidedOrders   int `json:"voided_orders"`
	RefundedOrders int `json:"refunded_orders"`

	FulfillmentRate   float64 `json:"fulfillment_rate"`
	TotalFulfillments int     `json:"total_fulfillments"`

	TotalProducts int `json:"total_products"`
	TotalVariants int `json:"total_variants"`
}

// IsWeekly indica se o registro é de uma semana ISO. Registros mensais não
// carregam número de semana.
func (m WeeklyMetrics) IsWeekly() bool {
	return m.ISOWeek > 0
}

// TrendsHeader é o cabeçalho da aba de tendências. A ordem das colunas faz
// parte do contrato com as ferramentas de relatório que consomem a planilha.
func TrendsHeader() []interface{} {
	return []interface{}{
		"Week Start Date",
		"Week End Date",
		"ISO Year",
		"ISO Week",
		"Total Orders",
		"Total Revenue",
		"Total Tax",
		"Total Discounts",
		"Total Subtotal",
		"Average Order Value",
		"Unique Customers",
		"Paid Orders",
		"Pending Orders",
		"Voided Orders",
		"Refunded Orders",
		"Fulfillment Rate",
		"Total Fulfillments",
		"Total Products",
		"Total Variants",
	}
}

// SheetRow converte o registro em uma linha de planilha na mesma ordem do
// TrendsHeader. A primeira coluna é a chave de upsert do período.
func (m WeeklyMetrics) SheetRow() []interface{} {
	return []interface{}{
		m.WeekStartDate,
		m.WeekEndDate,
		m.ISOYear,
		m.ISOWeek,
		m.TotalOrders,
		m.TotalRevenue,
		m.TotalTax,
		m.TotalDiscounts,
		m.TotalSubtotal,
		m.AverageOrderValue,
		m.UniqueCustomers,
		m.PaidOrders,
		m.PendingOrders,
		m.VoidedOrders,
		m.RefundedOrders,
		m.FulfillmentRate,
		m.TotalFulfillments,
		m.TotalProducts,
		m.TotalVariants,
	}
}
