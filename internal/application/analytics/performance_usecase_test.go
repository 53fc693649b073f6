package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

func perfRecord(date time.Time, empID int, name, role string, salesValue float64, satisfaction, productivity float64) entity.PerformanceRecord {
	return entity.PerformanceRecord{
		Date:                 date,
		EmployeeID:           empID,
		EmployeeName:         name,
		Role:                 role,
		Department:           "Sales",
		SalesCount:           1,
		SalesValue:           dec(salesValue),
		CustomerSatisfaction: satisfaction,
		Attendance:           1.0,
		ProductivityScore:    productivity,
	}
}

func absence(date time.Time, empID int, name, role string) entity.PerformanceRecord {
	return entity.PerformanceRecord{
		Date:         date,
		EmployeeID:   empID,
		EmployeeName: name,
		Role:         role,
		Department:   "Sales",
		Attendance:   0.0,
	}
}

func TestPerformanceReport_KPIsDeVentanasMoviles(t *testing.T) {
	// Ventana actual: desde el 16 de mayo; anterior: 16 abril a 16 mayo.
	cur := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	prev := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	perf := fakePerformance(
		perfRecord(cur, 1, "Ana López", "Sales Associate", 500, 4.0, 80),
		absence(cur.AddDate(0, 0, 1), 1, "Ana López", "Sales Associate"),
		perfRecord(prev, 1, "Ana López", "Sales Associate", 250, 3.0, 70),
	)
	sales := fakeSales(
		sale(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), "Product A", 1000, 400),
		sale(prev, "Product A", 500, 200),
	)
	expenses := fakeExpenses(
		entity.Expense{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Category: "Rent", Amount: dec(100)},
		entity.Expense{Date: prev, Category: "Rent", Amount: dec(200)},
	)

	uc := NewPerformanceUseCase(perf, sales, expenses).WithClock(fixedClock)
	out, err := uc.Report("", "")
	require.NoError(t, err)

	// La tarjeta de ventas sale del dataset de ventas (500 → 1000 es +100%),
	// no de los sales_value sintéticos por empleado.
	assert.Equal(t, 1000.0, out.SalesPerformance.Value.InexactFloat64())
	assert.Equal(t, 100.0, out.SalesPerformance.ChangePct.InexactFloat64())

	// La media de satisfacción incluye la ausencia: (4.0 + 0) / 2 = 2.0.
	assert.Equal(t, 2.0, out.Satisfaction.Value.InexactFloat64())
	assert.Equal(t, -1.0, out.Satisfaction.ChangePct.InexactFloat64())
	assert.Equal(t, TrendDown, out.Satisfaction.Trend)

	assert.Equal(t, 50.0, out.AttendanceRate.Value.InexactFloat64())

	// Ratio de gastos 40% → 10%: la flecha muestra el signo literal del
	// cambio, así que un descenso marca down.
	assert.Equal(t, 10.0, out.ExpenseRatio.Value.InexactFloat64())
	assert.Equal(t, -30.0, out.ExpenseRatio.ChangePct.InexactFloat64())
	assert.Equal(t, TrendDown, out.ExpenseRatio.Trend)
}

func TestPerformanceReport_FiltroPorRol(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	perf := fakePerformance(
		perfRecord(day, 1, "Ana López", "Sales Associate", 500, 4.0, 80),
		perfRecord(day, 2, "Luis Pérez", "Cashier", 100, 4.5, 90),
	)

	uc := NewPerformanceUseCase(perf, fakeSales(), fakeExpenses()).WithClock(fixedClock)
	out, err := uc.Report(PeriodLast30Days, "Cashier")
	require.NoError(t, err)

	require.Len(t, out.EmployeeDetails, 1)
	assert.Equal(t, "Luis Pérez", out.EmployeeDetails[0].Name)
	// El selector de roles siempre lista todos, no solo el filtrado.
	assert.ElementsMatch(t, []string{"Cashier", "Sales Associate"}, out.Roles)
}

func TestPerformanceReport_AgregadosPorEmpleado(t *testing.T) {
	d1 := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	perf := fakePerformance(
		perfRecord(d1, 1, "Ana López", "Sales Associate", 300, 4.0, 80),
		perfRecord(d2, 1, "Ana López", "Sales Associate", 100, 5.0, 90),
		absence(d2.AddDate(0, 0, 1), 1, "Ana López", "Sales Associate"),
	)

	uc := NewPerformanceUseCase(perf, fakeSales(), fakeExpenses()).WithClock(fixedClock)
	out, err := uc.Report(PeriodLast30Days, "")
	require.NoError(t, err)

	require.Len(t, out.EmployeeDetails, 1)
	d := out.EmployeeDetails[0]
	assert.Equal(t, 400.0, d.SalesValue.InexactFloat64())
	assert.Equal(t, 3.0, d.Satisfaction.InexactFloat64(), "(4+5+0)/3 con la ausencia")
	assert.InDelta(t, 66.7, d.AttendanceRate.InexactFloat64(), 0.01)

	// Tendencia diaria de satisfacción, ordenada ascendente.
	require.Len(t, out.SatisfactionTrend, 3)
	assert.Equal(t, "2025-06-09", out.SatisfactionTrend[0].Label)
}
