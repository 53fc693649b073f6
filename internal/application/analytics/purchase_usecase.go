package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
	"github.com/tu-usuario/business-dashboard/internal/domain/repository"
)

// PurchaseUseCase arma el reporte de aprovisionamiento: gasto del mes en
// curso contra el anterior y desglose por estado, categoría y proveedor.
type PurchaseUseCase struct {
	purchases repository.PurchaseRepository
	now       clock
}

func NewPurchaseUseCase(purchases repository.PurchaseRepository) *PurchaseUseCase {
	return &PurchaseUseCase{purchases: purchases, now: time.Now}
}

func (uc *PurchaseUseCase) WithClock(now clock) *PurchaseUseCase {
	uc.now = now
	return uc
}

// Report calcula el reporte completo de compras.
func (uc *PurchaseUseCase) Report() (*dto.PurchaseReportDTO, error) {
	if err := requireDatasets(uc.purchases); err != nil {
		return nil, err
	}
	purchases, err := uc.purchases.LoadAll()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	curWin, prevWin := monthPair(now)
	cur := purchasesIn(purchases, curWin)
	prev := purchasesIn(purchases, prevWin)

	curValue := sumPurchaseCost(cur)
	prevValue := sumPurchaseCost(prev)
	curCount := decimal.NewFromInt(int64(len(cur)))
	prevCount := decimal.NewFromInt(int64(len(prev)))

	curAOV := decimal.Zero
	if len(cur) > 0 {
		curAOV = curValue.Div(curCount)
	}
	prevAOV := decimal.Zero
	if len(prev) > 0 {
		prevAOV = prevValue.Div(prevCount)
	}

	out := &dto.PurchaseReportDTO{
		TotalPurchaseValue: kpi("Total Purchase Value", curValue, prevValue),
		PurchaseOrders:     kpi("Purchase Orders", curCount, prevCount),
		AvgOrderValue:      kpi("Avg Order Value", curAOV, prevAOV),

		MonthlyTrend:    lastN(bucketMonthly(purchaseSeries(purchases)), 6),
		ByCategory:      purchasesByCategory(purchases),
		StatusBreakdown: statusBreakdown(purchases),
		BySupplier:      purchasesBySupplier(purchases),

		RecentOrders:  purchaseRows(recentPurchases(purchases, 10)),
		PendingOrders: purchaseRows(pendingPurchases(purchases)),
	}
	// Las tarjetas por estado se acotan al mes en curso; el desglose por
	// estado del gráfico sí es histórico.
	for _, p := range cur {
		switch p.Status {
		case entity.PurchasePending:
			out.PendingCount++
			out.PendingValue = out.PendingValue.Add(p.TotalCost)
		case entity.PurchaseOrdered:
			out.OrderedCount++
		case entity.PurchaseDelivered:
			out.DeliveredCount++
		}
	}
	out.PendingValue = out.PendingValue.Round(2)
	return out, nil
}

func purchasesIn(purchases []entity.Purchase, w window) []entity.Purchase {
	out := make([]entity.Purchase, 0, len(purchases))
	for _, p := range purchases {
		if w.contains(p.Date) {
			out = append(out, p)
		}
	}
	return out
}

func sumPurchaseCost(purchases []entity.Purchase) decimal.Decimal {
	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.TotalCost)
	}
	return total
}

func purchaseSeries(purchases []entity.Purchase) []timedValue {
	out := make([]timedValue, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, timedValue{date: p.Date, value: p.TotalCost})
	}
	return out
}

func purchasesByCategory(purchases []entity.Purchase) []dto.CategoryStockDTO {
	type acc struct {
		quantity int
		cost     decimal.Decimal
	}
	byCat := make(map[string]*acc)
	for _, p := range purchases {
		a, ok := byCat[p.Category]
		if !ok {
			a = &acc{}
			byCat[p.Category] = a
		}
		a.quantity += p.Quantity
		a.cost = a.cost.Add(p.TotalCost)
	}
	out := make([]dto.CategoryStockDTO, 0, len(byCat))
	for cat, a := range byCat {
		out = append(out, dto.CategoryStockDTO{Category: cat, Stock: a.quantity, Value: a.cost.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	return out
}

func statusBreakdown(purchases []entity.Purchase) []dto.NamedCountDTO {
	type acc struct {
		count int
		value decimal.Decimal
	}
	byStatus := make(map[string]*acc)
	for _, p := range purchases {
		a, ok := byStatus[p.Status]
		if !ok {
			a = &acc{}
			byStatus[p.Status] = a
		}
		a.count++
		a.value = a.value.Add(p.TotalCost)
	}
	out := make([]dto.NamedCountDTO, 0, len(byStatus))
	for status, a := range byStatus {
		out = append(out, dto.NamedCountDTO{Name: status, Count: a.count, Value: a.value.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func purchasesBySupplier(purchases []entity.Purchase) []dto.NamedValueDTO {
	totals := make(map[int]decimal.Decimal)
	for _, p := range purchases {
		totals[p.SupplierID] = totals[p.SupplierID].Add(p.TotalCost)
	}
	out := make([]dto.NamedValueDTO, 0, len(totals))
	for id, v := range totals {
		out = append(out, dto.NamedValueDTO{Name: "Supplier " + strconv.Itoa(id), Value: v.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	return out
}

func recentPurchases(purchases []entity.Purchase, n int) []entity.Purchase {
	sorted := make([]entity.Purchase, len(purchases))
	copy(sorted, purchases)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func pendingPurchases(purchases []entity.Purchase) []entity.Purchase {
	out := make([]entity.Purchase, 0)
	for _, p := range purchases {
		if p.Status == entity.PurchasePending {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func purchaseRows(purchases []entity.Purchase) []dto.PurchaseRowDTO {
	rows := make([]dto.PurchaseRowDTO, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, dto.PurchaseRowDTO{
			Date:        p.Date.Format("2006-01-02"),
			ProductName: p.ProductName,
			Category:    p.Category,
			Quantity:    p.Quantity,
			UnitCost:    p.UnitCost,
			TotalCost:   p.TotalCost,
			Status:      p.Status,
		})
	}
	return rows
}
