package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain/repository"
)

// Granularidades de re-muestreo de las series.
const (
	GranularityDaily   = "daily"
	GranularityMonthly = "monthly"
)

// SalesUseCase arma el reporte de ventas: KPIs del mes en curso contra el
// anterior (independientes del filtro) más las series del período elegido.
type SalesUseCase struct {
	sales repository.SalesRepository
	now   clock
}

func NewSalesUseCase(sales repository.SalesRepository) *SalesUseCase {
	return &SalesUseCase{sales: sales, now: time.Now}
}

func (uc *SalesUseCase) WithClock(now clock) *SalesUseCase {
	uc.now = now
	return uc
}

// Report calcula el reporte de ventas para el período indicado. Un período
// vacío usa los últimos 30 días; uno desconocido devuelve ErrInvalidPeriod.
func (uc *SalesUseCase) Report(period string) (*dto.SalesReportDTO, error) {
	now := uc.now()
	win, period, err := trailingWindow(now, period, PeriodLast30Days)
	if err != nil {
		return nil, err
	}
	if err := requireDatasets(uc.sales); err != nil {
		return nil, err
	}
	sales, err := uc.sales.LoadAll()
	if err != nil {
		return nil, err
	}

	curWin, prevWin := monthPair(now)
	cur := salesIn(sales, curWin)
	prev := salesIn(sales, prevWin)

	curRevenue := sumRevenue(cur)
	prevRevenue := sumRevenue(prev)
	curProfit := sumProfit(cur)
	prevProfit := sumProfit(prev)
	curMargin := RatioPct(curProfit, curRevenue)
	prevMargin := RatioPct(prevProfit, prevRevenue)
	curOrders := decimal.NewFromInt(int64(distinctOrders(cur)))
	prevOrders := decimal.NewFromInt(int64(distinctOrders(prev)))

	// El ticket promedio es la media por línea de venta, no por orden.
	curAOV := decimal.Zero
	if len(cur) > 0 {
		curAOV = curRevenue.Div(decimal.NewFromInt(int64(len(cur))))
	}
	prevAOV := decimal.Zero
	if len(prev) > 0 {
		prevAOV = prevRevenue.Div(decimal.NewFromInt(int64(len(prev))))
	}

	filtered := salesIn(sales, win)
	granularity := GranularityDaily
	series := bucketDaily(revenueSeries(filtered))
	if longSalesPeriod(period) {
		granularity = GranularityMonthly
		series = bucketMonthly(revenueSeries(filtered))
	}

	out := &dto.SalesReportDTO{
		Period: period,

		Revenue:       kpi("Revenue", curRevenue, prevRevenue),
		Profit:        kpi("Profit", curProfit, prevProfit),
		ProfitMargin:  kpiDelta("Profit Margin", curMargin, prevMargin),
		Orders:        kpi("Orders", curOrders, prevOrders),
		AvgOrderValue: kpi("Avg Order Value", curAOV, prevAOV),
		UnitsSold:     kpi("Units Sold", decimal.NewFromInt(int64(sumUnits(cur))), decimal.NewFromInt(int64(sumUnits(prev)))),

		Granularity:     granularity,
		RevenueOverTime: series,
		CategorySales:   categoryPerformance(filtered),
		PaymentMethods:  paymentBreakdown(filtered),
		TopProducts:     topProductsBy(filtered, 10, revenueMeasure),

		ProductSummary: productSummary(filtered),
		RecentSales:    saleRows(recentSales(filtered, 20)),
	}
	return out, nil
}

// longSalesPeriod: hasta 30 días la serie es diaria; de ahí en adelante,
// mensual.
func longSalesPeriod(period string) bool {
	switch period {
	case PeriodLast7Days, PeriodLast30Days:
		return false
	default:
		return true
	}
}
