package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago del dataset de ventas.
const (
	PaymentCash          = "Cash"
	PaymentCreditCard    = "Credit Card"
	PaymentDigitalWallet = "Digital Wallet"
)

// Sale es una transacción de venta individual (muchas por día).
// Invariantes: TotalPrice = UnitPrice × Quantity;
// Profit = (UnitPrice − Product.Cost) × Quantity.
type Sale struct {
	Date          time.Time
	ProductID     int
	ProductName   string
	Category      string
	Quantity      int
	UnitPrice     decimal.Decimal
	TotalPrice    decimal.Decimal
	Profit        decimal.Decimal
	CustomerID    int
	PaymentMethod string
}
