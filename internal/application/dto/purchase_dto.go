package dto

import "github.com/shopspring/decimal"

// PurchaseReportDTO reporte de compras: KPIs del mes en curso (MoM) más el
// desglose por estado, categoría y proveedor.
type PurchaseReportDTO struct {
	TotalPurchaseValue KPIDTO `json:"total_purchase_value"`
	PurchaseOrders     KPIDTO `json:"purchase_orders"`
	AvgOrderValue      KPIDTO `json:"avg_order_value"`

	PendingCount   int             `json:"pending_count"`
	PendingValue   decimal.Decimal `json:"pending_value"`
	OrderedCount   int             `json:"ordered_count"`
	DeliveredCount int             `json:"delivered_count"`

	MonthlyTrend    []TimePointDTO     `json:"monthly_trend"` // últimos 6 meses
	ByCategory      []CategoryStockDTO `json:"by_category"`   // Stock=cantidad, Value=costo
	StatusBreakdown []NamedCountDTO    `json:"status_breakdown"`
	BySupplier      []NamedValueDTO    `json:"by_supplier"`

	RecentOrders  []PurchaseRowDTO `json:"recent_orders"`  // últimas 10
	PendingOrders []PurchaseRowDTO `json:"pending_orders"`
}

// PurchaseRowDTO fila de tabla de órdenes de compra.
type PurchaseRowDTO struct {
	Date        string          `json:"date"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	Status      string          `json:"status"`
}
