package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
	"github.com/tu-usuario/business-dashboard/internal/domain/repository"
)

// InventoryUseCase arma el reporte de inventario: valoración, alertas de
// stock y rotación sobre las ventas de los últimos 30 días.
type InventoryUseCase struct {
	inventory repository.InventoryRepository
	sales     repository.SalesRepository
	purchases repository.PurchaseRepository
	now       clock
}

func NewInventoryUseCase(
	inventory repository.InventoryRepository,
	sales repository.SalesRepository,
	purchases repository.PurchaseRepository,
) *InventoryUseCase {
	return &InventoryUseCase{inventory: inventory, sales: sales, purchases: purchases, now: time.Now}
}

func (uc *InventoryUseCase) WithClock(now clock) *InventoryUseCase {
	uc.now = now
	return uc
}

// Report calcula el reporte completo de inventario.
func (uc *InventoryUseCase) Report() (*dto.InventoryReportDTO, error) {
	if err := requireDatasets(uc.inventory, uc.sales, uc.purchases); err != nil {
		return nil, err
	}
	records, err := uc.inventory.LoadAll()
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.LoadAll()
	if err != nil {
		return nil, err
	}
	purchases, err := uc.purchases.LoadAll()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	last30 := window{Start: now.AddDate(0, 0, -30), End: openEnd}
	soldUnits := unitsSoldByProduct(salesIn(sales, last30))

	totalStock := 0
	totalValue := decimal.Zero
	lowStock, outOfStock := 0, 0
	turnoverSum := decimal.Zero
	turnovers := make([]dto.NamedValueDTO, 0, len(records))
	lowStockItems := make([]dto.InventoryItemDTO, 0)

	for _, r := range records {
		totalStock += r.CurrentStock
		totalValue = totalValue.Add(r.TotalValue)
		if r.OutOfStock() {
			outOfStock++
		} else if r.LowStock() {
			lowStock++
		}

		// Rotación 30d: unidades vendidas sobre el stock actual. Con stock 0
		// la rotación queda en 0 y el producto no entra al ranking.
		turnover := decimal.Zero
		if r.CurrentStock > 0 {
			turnover = decimal.NewFromInt(int64(soldUnits[r.ProductID])).
				Div(decimal.NewFromInt(int64(r.CurrentStock)))
			turnovers = append(turnovers, dto.NamedValueDTO{
				Name:  r.ProductName,
				Value: turnover.Round(2),
			})
		}
		turnoverSum = turnoverSum.Add(turnover)

		if r.LowStock() {
			lowStockItems = append(lowStockItems, inventoryItem(r))
		}
	}

	// Costo promedio por unidad en stock: valor total sobre unidades totales.
	avgCost := decimal.Zero
	if totalStock > 0 {
		avgCost = totalValue.Div(decimal.NewFromInt(int64(totalStock)))
	}
	avgTurnover := decimal.Zero
	if len(records) > 0 {
		avgTurnover = turnoverSum.Div(decimal.NewFromInt(int64(len(records))))
	}

	sort.Slice(turnovers, func(i, j int) bool { return turnovers[i].Value.GreaterThan(turnovers[j].Value) })
	if len(turnovers) > 10 {
		turnovers = turnovers[:10]
	}

	byValue := make([]entity.InventoryRecord, len(records))
	copy(byValue, records)
	sort.Slice(byValue, func(i, j int) bool { return byValue[i].TotalValue.GreaterThan(byValue[j].TotalValue) })
	if len(byValue) > 10 {
		byValue = byValue[:10]
	}
	topValue := make([]dto.InventoryItemDTO, 0, len(byValue))
	for _, r := range byValue {
		topValue = append(topValue, inventoryItem(r))
	}

	out := &dto.InventoryReportDTO{
		TotalStockUnits:     kpiValue("Total Stock Units", decimal.NewFromInt(int64(totalStock))),
		TotalInventoryValue: kpiValue("Total Inventory Value", totalValue),
		AverageItemCost:     kpiValue("Average Item Cost", avgCost),
		LowStockCount:       kpiValue("Low Stock Items", decimal.NewFromInt(int64(lowStock))),
		OutOfStockCount:     kpiValue("Out of Stock Items", decimal.NewFromInt(int64(outOfStock))),
		AverageTurnover30d:  kpiValue("Avg 30d Turnover", avgTurnover),

		StockByCategory: stockByCategory(records),
		ValueByCategory: valueByCategory(records),
		TopValueItems:   topValue,
		TopTurnover:     turnovers,
		LowStockItems:   lowStockItems,
		RecentMovements: purchaseRows(recentPurchases(purchases, 10)),
	}
	return out, nil
}

func unitsSoldByProduct(sales []entity.Sale) map[int]int {
	units := make(map[int]int)
	for _, s := range sales {
		units[s.ProductID] += s.Quantity
	}
	return units
}

func inventoryItem(r entity.InventoryRecord) dto.InventoryItemDTO {
	return dto.InventoryItemDTO{
		ProductName:   r.ProductName,
		Category:      r.Category,
		CurrentStock:  r.CurrentStock,
		ReorderLevel:  r.ReorderLevel,
		UnitCost:      r.UnitCost,
		TotalValue:    r.TotalValue,
		LastRestocked: r.LastRestocked.Format("2006-01-02"),
	}
}

func stockByCategory(records []entity.InventoryRecord) []dto.CategoryStockDTO {
	type acc struct {
		stock int
		value decimal.Decimal
	}
	byCat := make(map[string]*acc)
	for _, r := range records {
		a, ok := byCat[r.Category]
		if !ok {
			a = &acc{}
			byCat[r.Category] = a
		}
		a.stock += r.CurrentStock
		a.value = a.value.Add(r.TotalValue)
	}
	out := make([]dto.CategoryStockDTO, 0, len(byCat))
	for cat, a := range byCat {
		out = append(out, dto.CategoryStockDTO{Category: cat, Stock: a.stock, Value: a.value.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stock > out[j].Stock })
	return out
}

func valueByCategory(records []entity.InventoryRecord) []dto.NamedValueDTO {
	totals := make(map[string]decimal.Decimal)
	for _, r := range records {
		totals[r.Category] = totals[r.Category].Add(r.TotalValue)
	}
	out := make([]dto.NamedValueDTO, 0, len(totals))
	for cat, v := range totals {
		out = append(out, dto.NamedValueDTO{Name: cat, Value: v.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	return out
}
