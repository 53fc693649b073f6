package entity

import "github.com/shopspring/decimal"

// Product es un producto del catálogo demo. El catálogo es fijo (8 productos
// en 4 categorías) y actúa como dominio de claves foráneas para el resto de
// los datasets: Inventory, Sale y Purchase referencian ProductID.
// Invariante: Price > Cost > 0.
type Product struct {
	ID       int
	Name     string
	Category string
	Cost     decimal.Decimal // costo unitario de adquisición
	Price    decimal.Decimal // precio de venta
}

// Categorías del catálogo demo.
const (
	CategoryElectronics = "Electronics"
	CategoryClothing    = "Clothing"
	CategoryHome        = "Home"
	CategoryFood        = "Food"
)
