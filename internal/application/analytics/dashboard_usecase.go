package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
	"github.com/tu-usuario/business-dashboard/internal/domain/repository"
)

// Tasa de conversión de referencia de la vista principal. El dataset demo no
// registra visitas, así que el valor y su comparación son fijos.
var (
	demoConversionRate     = decimal.NewFromFloat(3.5)
	demoPrevConversionRate = decimal.NewFromFloat(3.0)
)

// DashboardUseCase arma la vista principal: KPIs del mes en curso contra el
// anterior más las series de ingreso y el resumen de inventario.
type DashboardUseCase struct {
	sales     repository.SalesRepository
	inventory repository.InventoryRepository
	now       clock
}

func NewDashboardUseCase(sales repository.SalesRepository, inventory repository.InventoryRepository) *DashboardUseCase {
	return &DashboardUseCase{sales: sales, inventory: inventory, now: time.Now}
}

// WithClock fija el reloj del caso de uso (tests).
func (uc *DashboardUseCase) WithClock(now clock) *DashboardUseCase {
	uc.now = now
	return uc
}

// Overview calcula la página completa. Con datasets presentes pero vacíos
// devuelve KPIs en cero y series vacías; con archivos ausentes devuelve
// DatasetMissingError.
func (uc *DashboardUseCase) Overview() (*dto.DashboardOverviewDTO, error) {
	if err := requireDatasets(uc.sales, uc.inventory); err != nil {
		return nil, err
	}
	sales, err := uc.sales.LoadAll()
	if err != nil {
		return nil, err
	}
	inventory, err := uc.inventory.LoadAll()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	curWin, prevWin := monthPair(now)
	cur := salesIn(sales, curWin)
	prev := salesIn(sales, prevWin)

	curRevenue := sumRevenue(cur)
	prevRevenue := sumRevenue(prev)
	curOrders := decimal.NewFromInt(int64(len(cur)))
	prevOrders := decimal.NewFromInt(int64(len(prev)))
	curCustomers := decimal.NewFromInt(int64(uniqueCustomers(cur)))
	prevCustomers := decimal.NewFromInt(int64(uniqueCustomers(prev)))

	curAOV := decimal.Zero
	if len(cur) > 0 {
		curAOV = curRevenue.Div(curOrders)
	}
	prevAOV := decimal.Zero
	if len(prev) > 0 {
		prevAOV = prevRevenue.Div(prevOrders)
	}

	revenueChange := PercentChange(curRevenue, prevRevenue)
	growth := dto.KPIDTO{
		Title:     "Revenue Growth",
		Value:     revenueChange.Round(1),
		ChangePct: revenueChange.Round(1),
		Trend:     TrendFor(revenueChange),
	}

	last15 := window{Start: now.AddDate(0, 0, -15), End: openEnd}
	out := &dto.DashboardOverviewDTO{
		TotalSales:     kpi("Total Sales", curRevenue, prevRevenue),
		TotalOrders:    kpi("Total Orders", curOrders, prevOrders),
		TotalCustomers: kpi("Total Customers", curCustomers, prevCustomers),
		AvgOrderValue:  kpi("Avg Order Value", curAOV, prevAOV),
		ConversionRate: kpi("Conversion Rate", demoConversionRate, demoPrevConversionRate),
		RevenueGrowth:  growth,

		MonthlyRevenue: lastN(bucketMonthly(revenueSeries(sales)), 12),
		DailyRevenue:   bucketDaily(revenueSeries(salesIn(sales, last15))),
		PaymentMethods: paymentBreakdown(sales),
		CategorySales:  categorySalesTotals(sales),
		TopProducts:    topProductsBy(sales, 5, unitsMeasure),

		Inventory:   inventorySummary(inventory),
		RecentSales: recentSaleCards(sales, 4),
	}
	return out, nil
}

func uniqueCustomers(sales []entity.Sale) int {
	seen := make(map[int]struct{}, len(sales))
	for _, s := range sales {
		seen[s.CustomerID] = struct{}{}
	}
	return len(seen)
}

func inventorySummary(records []entity.InventoryRecord) dto.InventorySummaryDTO {
	sum := dto.InventorySummaryDTO{TotalValue: decimal.Zero, AvgStockLevel: decimal.Zero}
	totalStock := 0
	for _, r := range records {
		if r.OutOfStock() {
			sum.OutOfStockCount++
		} else if r.LowStock() {
			sum.LowStockCount++
		}
		sum.TotalValue = sum.TotalValue.Add(r.TotalValue)
		totalStock += r.CurrentStock
	}
	if len(records) > 0 {
		sum.AvgStockLevel = decimal.NewFromInt(int64(totalStock)).
			Div(decimal.NewFromInt(int64(len(records)))).Round(1)
	}
	sum.TotalValue = sum.TotalValue.Round(2)
	return sum
}

func recentSaleCards(sales []entity.Sale, n int) []dto.RecentSaleDTO {
	rows := make([]dto.RecentSaleDTO, 0, n)
	for _, s := range recentSales(sales, n) {
		rows = append(rows, dto.RecentSaleDTO{
			Date:        s.Date.Format("2006-01-02"),
			ProductName: s.ProductName,
			TotalPrice:  s.TotalPrice,
		})
	}
	return rows
}
