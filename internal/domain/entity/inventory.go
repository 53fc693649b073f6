package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord es el estado de stock de un producto (relación 1:1 con
// Product). TotalValue se fija en la generación y no se recalcula en vivo;
// no es necesariamente UnitCost × CurrentStock (comportamiento heredado,
// documentado en DESIGN.md).
type InventoryRecord struct {
	ProductID     int
	ProductName   string
	Category      string
	CurrentStock  int
	ReorderLevel  int
	LastRestocked time.Time
	UnitCost      decimal.Decimal
	TotalValue    decimal.Decimal
}

// LowStock indica si el producto está en o por debajo del nivel de reorden.
func (r InventoryRecord) LowStock() bool {
	return r.CurrentStock <= r.ReorderLevel
}

// OutOfStock indica si no queda stock.
func (r InventoryRecord) OutOfStock() bool {
	return r.CurrentStock == 0
}
