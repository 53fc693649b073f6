package dto

import "github.com/shopspring/decimal"

// SalesReportDTO reporte de ventas: KPIs del mes en curso (MoM) más las
// series del período seleccionado por el usuario.
type SalesReportDTO struct {
	Period string `json:"period"` // período aplicado a las series

	Revenue       KPIDTO `json:"revenue"`
	Profit        KPIDTO `json:"profit"`
	ProfitMargin  KPIDTO `json:"profit_margin"`
	Orders        KPIDTO `json:"orders"` // pares (fecha, cliente) distintos
	AvgOrderValue KPIDTO `json:"avg_order_value"`
	UnitsSold     KPIDTO `json:"units_sold"`

	// Granularity indica cómo se re-muestreó RevenueOverTime: "daily" para
	// períodos cortos, "monthly" para largos.
	Granularity     string                   `json:"granularity"`
	RevenueOverTime []TimePointDTO           `json:"revenue_over_time"`
	CategorySales   []CategoryPerformanceDTO `json:"category_sales"`
	PaymentMethods  []NamedCountDTO          `json:"payment_methods"`
	TopProducts     []NamedValueDTO          `json:"top_products"` // top 10 por ingreso

	ProductSummary []ProductSalesDTO `json:"product_summary"`
	RecentSales    []SaleRowDTO      `json:"recent_sales"` // últimas 20
}

// CategoryPerformanceDTO agregado de ventas por categoría.
type CategoryPerformanceDTO struct {
	Category  string          `json:"category"`
	Revenue   decimal.Decimal `json:"revenue"`
	Profit    decimal.Decimal `json:"profit"`
	Quantity  int             `json:"quantity,omitempty"`
	MarginPct decimal.Decimal `json:"margin_pct,omitempty"`
}

// ProductSalesDTO resumen por producto con margen.
type ProductSalesDTO struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
	Profit      decimal.Decimal `json:"profit"`
	MarginPct   decimal.Decimal `json:"margin_pct"`
}

// SaleRowDTO fila de tabla de ventas.
type SaleRowDTO struct {
	Date          string          `json:"date"`
	ProductName   string          `json:"product_name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Profit        decimal.Decimal `json:"profit"`
	PaymentMethod string          `json:"payment_method"`
}
