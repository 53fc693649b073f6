package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

func TestInventoryReport_RotacionSobreVentasDe30Dias(t *testing.T) {
	recent := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	old := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	s1 := sale(recent, "Product A", 100, 40)
	s1.ProductID = 1
	s1.Quantity = 20
	s2 := sale(old, "Product A", 100, 40) // fuera de la ventana de 30 días
	s2.ProductID = 1
	s2.Quantity = 500

	inventory := fakeInventory(
		entity.InventoryRecord{ProductID: 1, ProductName: "Product A", Category: "Electronics", CurrentStock: 10, ReorderLevel: 5, UnitCost: dec(100), TotalValue: dec(1000)},
		entity.InventoryRecord{ProductID: 2, ProductName: "Product B", Category: "Electronics", CurrentStock: 0, ReorderLevel: 5, UnitCost: dec(50), TotalValue: dec(500)},
	)

	uc := NewInventoryUseCase(inventory, fakeSales(s1, s2), fakePurchases()).WithClock(fixedClock)
	out, err := uc.Report()
	require.NoError(t, err)

	// Rotación del producto A: 20 unidades / 10 de stock = 2. El producto B
	// no tiene stock: rotación 0 y fuera del ranking.
	require.Len(t, out.TopTurnover, 1)
	assert.Equal(t, "Product A", out.TopTurnover[0].Name)
	assert.Equal(t, 2.0, out.TopTurnover[0].Value.InexactFloat64())

	// Promedio sobre los dos productos: (2 + 0) / 2.
	assert.Equal(t, 1.0, out.AverageTurnover30d.Value.InexactFloat64())

	assert.Equal(t, 10.0, out.TotalStockUnits.Value.InexactFloat64())
	assert.Equal(t, 1500.0, out.TotalInventoryValue.Value.InexactFloat64())
	// Costo promedio por unidad: 1500 de valor total / 10 unidades en stock,
	// no la media de unit_cost por registro.
	assert.Equal(t, 150.0, out.AverageItemCost.Value.InexactFloat64())
	assert.Equal(t, 1.0, out.OutOfStockCount.Value.InexactFloat64())
}

func TestInventoryReport_CostoPromedioSinStockEsCero(t *testing.T) {
	inventory := fakeInventory(
		entity.InventoryRecord{ProductID: 1, ProductName: "Product A", CurrentStock: 0, ReorderLevel: 5, UnitCost: dec(100), TotalValue: dec(0)},
	)

	uc := NewInventoryUseCase(inventory, fakeSales(), fakePurchases()).WithClock(fixedClock)
	out, err := uc.Report()
	require.NoError(t, err)

	assert.True(t, out.AverageItemCost.Value.IsZero())
}

func TestInventoryReport_StockBajoNoIncluyeAgotados(t *testing.T) {
	inventory := fakeInventory(
		entity.InventoryRecord{ProductID: 1, ProductName: "Product A", CurrentStock: 3, ReorderLevel: 5},
		entity.InventoryRecord{ProductID: 2, ProductName: "Product B", CurrentStock: 0, ReorderLevel: 5},
		entity.InventoryRecord{ProductID: 3, ProductName: "Product C", CurrentStock: 50, ReorderLevel: 5},
	)

	uc := NewInventoryUseCase(inventory, fakeSales(), fakePurchases()).WithClock(fixedClock)
	out, err := uc.Report()
	require.NoError(t, err)

	assert.Equal(t, 1.0, out.LowStockCount.Value.InexactFloat64())
	assert.Equal(t, 1.0, out.OutOfStockCount.Value.InexactFloat64())

	// La tabla de stock bajo sí incluye a los agotados (ambos requieren acción).
	assert.Len(t, out.LowStockItems, 2)
}
