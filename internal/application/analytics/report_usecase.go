package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
	"github.com/tu-usuario/business-dashboard/internal/domain/repository"
)

// ReportUseCase arma el reporte financiero por período con nombre, incluido
// el estado de resultados derivado de ventas y gastos.
type ReportUseCase struct {
	sales    repository.SalesRepository
	expenses repository.ExpenseRepository
	now      clock
}

func NewReportUseCase(sales repository.SalesRepository, expenses repository.ExpenseRepository) *ReportUseCase {
	return &ReportUseCase{sales: sales, expenses: expenses, now: time.Now}
}

func (uc *ReportUseCase) WithClock(now clock) *ReportUseCase {
	uc.now = now
	return uc
}

// Business calcula el reporte del período indicado. Un período vacío usa el
// mes en curso; uno desconocido devuelve ErrInvalidPeriod.
func (uc *ReportUseCase) Business(period string) (*dto.BusinessReportDTO, error) {
	now := uc.now()
	win, label, err := reportWindow(now, period)
	if err != nil {
		return nil, err
	}
	if period == "" {
		period = ReportCurrentMonth
	}
	if err := requireDatasets(uc.sales, uc.expenses); err != nil {
		return nil, err
	}
	allSales, err := uc.sales.LoadAll()
	if err != nil {
		return nil, err
	}
	allExpenses, err := uc.expenses.LoadAll()
	if err != nil {
		return nil, err
	}

	sales := salesIn(allSales, win)
	expenses := expensesIn(allExpenses, win)

	revenue := sumRevenue(sales)
	grossProfit := sumProfit(sales)
	totalExpenses := sumExpenses(expenses)
	netProfit := grossProfit.Sub(totalExpenses)
	// La tarjeta de margen es sobre la ganancia bruta; el margen neto solo
	// aparece en el estado de resultados.
	margin := RatioPct(grossProfit, revenue)

	granularity := GranularityDaily
	long := longPeriod(now, win)
	if long {
		granularity = GranularityMonthly
	}

	out := &dto.BusinessReportDTO{
		Period:      period,
		PeriodLabel: label,

		Revenue:       kpiValue("Revenue", revenue),
		GrossProfit:   kpiValue("Gross Profit", grossProfit),
		NetProfit:     kpiValue("Net Profit", netProfit),
		ProfitMargin:  kpiValue("Profit Margin", margin),
		TotalExpenses: kpiValue("Total Expenses", totalExpenses),
		UnitsSold:     kpiValue("Units Sold", decimal.NewFromInt(int64(sumUnits(sales)))),

		Granularity:       granularity,
		RevenueOverTime:   revenueProfitSeries(sales, long),
		ExpenseBreakdown:  expenseBreakdown(expenses),
		CategoryBreakdown: categoryPerformance(sales),

		ProductPerformance: productSummary(sales),
		IncomeStatement:    incomeStatement(revenue, grossProfit, totalExpenses),
	}

	// En períodos largos el cierre es el cruce mensual ingresos vs. gastos;
	// en cortos, los mejores márgenes por producto.
	if long {
		out.MonthlyFinancials = mergeMonthly(
			bucketMonthly(revenueSeries(sales)),
			bucketMonthly(expenseSeries(expenses)),
		)
	} else {
		out.TopProductMargins = topProductMargins(sales, 10)
	}
	return out, nil
}

// revenueProfitSeries re-muestrea ingresos y ganancia sobre las mismas
// etiquetas.
func revenueProfitSeries(sales []entity.Sale, monthly bool) []dto.RevenueProfitPointDTO {
	bucket := bucketDaily
	if monthly {
		bucket = bucketMonthly
	}
	revenue := bucket(revenueSeries(sales))
	profit := bucket(profitSeries(sales))
	profitByLabel := make(map[string]decimal.Decimal, len(profit))
	for _, p := range profit {
		profitByLabel[p.Label] = p.Value
	}
	out := make([]dto.RevenueProfitPointDTO, 0, len(revenue))
	for _, p := range revenue {
		out = append(out, dto.RevenueProfitPointDTO{
			Label:   p.Label,
			Revenue: p.Value,
			Profit:  profitByLabel[p.Label],
		})
	}
	return out
}

func expenseSeries(expenses []entity.Expense) []timedValue {
	out := make([]timedValue, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, timedValue{date: e.Date, value: e.Amount})
	}
	return out
}

func expenseBreakdown(expenses []entity.Expense) []dto.NamedValueDTO {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	out := make([]dto.NamedValueDTO, 0, len(totals))
	for cat, v := range totals {
		out = append(out, dto.NamedValueDTO{Name: cat, Value: v.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	return out
}

func topProductMargins(sales []entity.Sale, n int) []dto.NamedValueDTO {
	summary := productSummary(sales)
	sort.Slice(summary, func(i, j int) bool { return summary[i].MarginPct.GreaterThan(summary[j].MarginPct) })
	if len(summary) > n {
		summary = summary[:n]
	}
	out := make([]dto.NamedValueDTO, 0, len(summary))
	for _, p := range summary {
		out = append(out, dto.NamedValueDTO{Name: p.ProductName, Value: p.MarginPct})
	}
	return out
}

// incomeStatement deriva el estado de resultados: COGS es ingreso menos
// ganancia bruta y el neto es bruto menos gastos operativos. Los porcentajes
// son sobre ingresos, con la guarda habitual de ingreso cero.
func incomeStatement(revenue, grossProfit, expenses decimal.Decimal) []dto.IncomeLineDTO {
	cogs := revenue.Sub(grossProfit)
	netProfit := grossProfit.Sub(expenses)
	line := func(category string, amount decimal.Decimal) dto.IncomeLineDTO {
		return dto.IncomeLineDTO{
			Category:   category,
			Amount:     amount.Round(2),
			Percentage: RatioPct(amount, revenue).Round(1),
		}
	}
	return []dto.IncomeLineDTO{
		line("Revenue", revenue),
		line("Cost of Goods Sold", cogs),
		line("Gross Profit", grossProfit),
		line("Operating Expenses", expenses),
		line("Net Profit", netProfit),
	}
}
