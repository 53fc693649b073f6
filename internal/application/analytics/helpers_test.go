package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

// Fakes en memoria de los repositorios de datasets.

type fakeDataset[T any] struct {
	data    []T
	present bool
	file    string
}

func (f *fakeDataset[T]) LoadAll() ([]T, error) { return f.data, nil }
func (f *fakeDataset[T]) SaveAll(items []T) error {
	f.data = items
	f.present = true
	return nil
}
func (f *fakeDataset[T]) Exists() bool { return f.present }
func (f *fakeDataset[T]) File() string { return f.file }

func fakeSales(sales ...entity.Sale) *fakeDataset[entity.Sale] {
	return &fakeDataset[entity.Sale]{data: sales, present: true, file: "sales.csv"}
}

func fakeExpenses(expenses ...entity.Expense) *fakeDataset[entity.Expense] {
	return &fakeDataset[entity.Expense]{data: expenses, present: true, file: "expenses.csv"}
}

func fakeInventory(records ...entity.InventoryRecord) *fakeDataset[entity.InventoryRecord] {
	return &fakeDataset[entity.InventoryRecord]{data: records, present: true, file: "inventory.csv"}
}

func fakePurchases(purchases ...entity.Purchase) *fakeDataset[entity.Purchase] {
	return &fakeDataset[entity.Purchase]{data: purchases, present: true, file: "purchases.csv"}
}

func fakePerformance(records ...entity.PerformanceRecord) *fakeDataset[entity.PerformanceRecord] {
	return &fakeDataset[entity.PerformanceRecord]{data: records, present: true, file: "performance.csv"}
}

// testNow es un "hoy" fijo para los tests de ventanas.
var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// productIDs asigna un ProductID distinto por nombre de producto, para
// respetar la invariante de unicidad de id del dataset real.
var productIDs = map[string]int{}

func productIDFor(name string) int {
	id, ok := productIDs[name]
	if !ok {
		id = len(productIDs) + 1
		productIDs[name] = id
	}
	return id
}

// sale construye una venta mínima con importe y ganancia.
func sale(date time.Time, product string, total, profit float64) entity.Sale {
	return entity.Sale{
		Date:          date,
		ProductID:     productIDFor(product),
		ProductName:   product,
		Category:      entity.CategoryElectronics,
		Quantity:      1,
		UnitPrice:     dec(total),
		TotalPrice:    dec(total),
		Profit:        dec(profit),
		CustomerID:    1,
		PaymentMethod: entity.PaymentCash,
	}
}
