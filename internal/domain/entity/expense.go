package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense es un gasto operativo mensual. Date siempre es inicio de mes;
// Amount se genera dentro de un rango acotado por categoría.
type Expense struct {
	Date        time.Time
	Category    string
	Amount      decimal.Decimal
	Description string
}
