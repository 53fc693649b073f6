package dto

import "github.com/shopspring/decimal"

// DashboardOverviewDTO es la página principal: KPIs del mes en curso contra
// el mes anterior más las series y tarjetas de resumen.
type DashboardOverviewDTO struct {
	TotalSales     KPIDTO `json:"total_sales"`
	TotalOrders    KPIDTO `json:"total_orders"`
	TotalCustomers KPIDTO `json:"total_customers"`
	AvgOrderValue  KPIDTO `json:"avg_order_value"`
	ConversionRate KPIDTO `json:"conversion_rate"` // valor demo fijo
	RevenueGrowth  KPIDTO `json:"revenue_growth"`

	MonthlyRevenue []TimePointDTO `json:"monthly_revenue"` // últimos 12 meses
	DailyRevenue   []TimePointDTO `json:"daily_revenue"`   // últimos 15 días
	PaymentMethods []NamedCountDTO `json:"payment_methods"`
	CategorySales  []NamedValueDTO `json:"category_sales"`
	TopProducts    []NamedValueDTO `json:"top_products"` // top 5 por unidades

	Inventory   InventorySummaryDTO `json:"inventory"`
	RecentSales []RecentSaleDTO     `json:"recent_sales"`
}

// InventorySummaryDTO tarjeta de estado de inventario del dashboard.
type InventorySummaryDTO struct {
	LowStockCount   int             `json:"low_stock_count"`
	OutOfStockCount int             `json:"out_of_stock_count"`
	TotalValue      decimal.Decimal `json:"total_value"`
	AvgStockLevel   decimal.Decimal `json:"avg_stock_level"`
}

// RecentSaleDTO fila de actividad reciente.
type RecentSaleDTO struct {
	Date        string          `json:"date"`
	ProductName string          `json:"product_name"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}
