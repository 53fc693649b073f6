package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	PurchasePending   = "Pending"
	PurchaseOrdered   = "Ordered"
	PurchaseDelivered = "Delivered"
)

// Purchase es una orden de compra (aprovisionamiento) a un proveedor.
// Invariante: TotalCost = UnitCost × Quantity.
type Purchase struct {
	Date        time.Time
	ProductID   int
	ProductName string
	Category    string
	Quantity    int
	UnitCost    decimal.Decimal
	TotalCost   decimal.Decimal
	SupplierID  int
	Status      string
}
