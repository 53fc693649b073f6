package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/business-dashboard/internal/domain"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

func TestBusiness_EstadoDeResultados(t *testing.T) {
	// Ingresos 10000, ganancia bruta 4000, gastos 1500 en el mes en curso.
	inMonth := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	sales := fakeSales(sale(inMonth, "Product A", 10000, 4000))
	expenses := fakeExpenses(entity.Expense{
		Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Category: "Rent",
		Amount:   dec(1500),
	})

	uc := NewReportUseCase(sales, expenses).WithClock(fixedClock)
	out, err := uc.Business(ReportCurrentMonth)
	require.NoError(t, err)

	require.Len(t, out.IncomeStatement, 5)
	lines := make(map[string]struct {
		amount float64
		pct    float64
	})
	for _, l := range out.IncomeStatement {
		lines[l.Category] = struct {
			amount float64
			pct    float64
		}{l.Amount.InexactFloat64(), l.Percentage.InexactFloat64()}
	}

	assert.Equal(t, 10000.0, lines["Revenue"].amount)
	assert.Equal(t, 100.0, lines["Revenue"].pct)
	assert.Equal(t, 6000.0, lines["Cost of Goods Sold"].amount)
	assert.Equal(t, 60.0, lines["Cost of Goods Sold"].pct)
	assert.Equal(t, 4000.0, lines["Gross Profit"].amount)
	assert.Equal(t, 1500.0, lines["Operating Expenses"].amount)
	assert.Equal(t, 2500.0, lines["Net Profit"].amount)
	assert.Equal(t, 25.0, lines["Net Profit"].pct)

	assert.Equal(t, 2500.0, out.NetProfit.Value.InexactFloat64())
	// La tarjeta de margen es bruta (4000/10000); el 25% neto vive solo en la
	// línea Net Profit del estado de resultados.
	assert.Equal(t, 40.0, out.ProfitMargin.Value.InexactFloat64())
}

func TestBusiness_SinIngresosPorcentajesEnCero(t *testing.T) {
	uc := NewReportUseCase(fakeSales(), fakeExpenses()).WithClock(fixedClock)
	out, err := uc.Business(ReportCurrentMonth)
	require.NoError(t, err)

	for _, l := range out.IncomeStatement {
		assert.True(t, l.Percentage.IsZero(), "%s debería ser 0%%", l.Category)
	}
	assert.True(t, out.Revenue.Value.IsZero())
}

func TestBusiness_PeriodoLargoUsaCruceMensual(t *testing.T) {
	sales := fakeSales(
		sale(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "Product A", 100, 40),
		sale(time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC), "Product A", 200, 80),
	)
	expenses := fakeExpenses(entity.Expense{
		Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Category: "Rent",
		Amount:   dec(50),
	})

	uc := NewReportUseCase(sales, expenses).WithClock(fixedClock)
	out, err := uc.Business(ReportLast6Months)
	require.NoError(t, err)

	assert.Equal(t, GranularityMonthly, out.Granularity)
	assert.NotEmpty(t, out.MonthlyFinancials)
	assert.Empty(t, out.TopProductMargins)

	// Abril solo tiene gastos: entra con ingreso 0 por el outer-join.
	var april bool
	for _, m := range out.MonthlyFinancials {
		if m.Month == "2025-04" {
			april = true
			assert.True(t, m.Revenue.IsZero())
			assert.True(t, m.Profit.Equal(dec(-50)))
		}
	}
	assert.True(t, april, "abril debería estar en el cruce mensual")
}

func TestBusiness_PeriodoCortoUsaMargenesPorProducto(t *testing.T) {
	inMonth := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	uc := NewReportUseCase(fakeSales(sale(inMonth, "Product A", 100, 40)), fakeExpenses()).
		WithClock(fixedClock)
	out, err := uc.Business(ReportCurrentMonth)
	require.NoError(t, err)

	assert.Equal(t, GranularityDaily, out.Granularity)
	assert.Empty(t, out.MonthlyFinancials)
	require.Len(t, out.TopProductMargins, 1)
	assert.Equal(t, 40.0, out.TopProductMargins[0].Value.InexactFloat64())
}

func TestBusiness_MesAnteriorAcotado(t *testing.T) {
	prevMonth := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	curMonth := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	uc := NewReportUseCase(fakeSales(
		sale(prevMonth, "Product A", 300, 100),
		sale(curMonth, "Product A", 999, 500),
	), fakeExpenses()).WithClock(fixedClock)

	out, err := uc.Business(ReportPreviousMonth)
	require.NoError(t, err)
	assert.Equal(t, "May 2025", out.PeriodLabel)
	assert.Equal(t, 300.0, out.Revenue.Value.InexactFloat64(), "solo cuenta mayo")
}

func TestBusiness_PeriodoInvalido(t *testing.T) {
	uc := NewReportUseCase(fakeSales(), fakeExpenses()).WithClock(fixedClock)
	_, err := uc.Business("Quarter 17")
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
