package dto

import "github.com/shopspring/decimal"

// InventoryReportDTO reporte de inventario: KPIs de stock y valoración más
// los desgloses por categoría y producto.
type InventoryReportDTO struct {
	TotalStockUnits     KPIDTO `json:"total_stock_units"`
	TotalInventoryValue KPIDTO `json:"total_inventory_value"`
	AverageItemCost     KPIDTO `json:"average_item_cost"`
	LowStockCount       KPIDTO `json:"low_stock_count"`
	OutOfStockCount     KPIDTO `json:"out_of_stock_count"`
	AverageTurnover30d  KPIDTO `json:"average_turnover_30d"`

	StockByCategory []CategoryStockDTO  `json:"stock_by_category"`
	ValueByCategory []NamedValueDTO     `json:"value_by_category"`
	TopValueItems   []InventoryItemDTO  `json:"top_value_items"` // top 10 por valor
	TopTurnover     []NamedValueDTO     `json:"top_turnover"`    // top 10, stock > 0
	LowStockItems   []InventoryItemDTO  `json:"low_stock_items"`
	RecentMovements []PurchaseRowDTO    `json:"recent_movements"` // últimas 10 compras
}

// CategoryStockDTO agregado de stock y valor por categoría.
type CategoryStockDTO struct {
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Value    decimal.Decimal `json:"value"`
}

// InventoryItemDTO fila de tabla de inventario.
type InventoryItemDTO struct {
	ProductName   string          `json:"product_name"`
	Category      string          `json:"category"`
	CurrentStock  int             `json:"current_stock"`
	ReorderLevel  int             `json:"reorder_level"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LastRestocked string          `json:"last_restocked"`
}
