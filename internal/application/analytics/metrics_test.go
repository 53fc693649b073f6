package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
)

func TestPercentChange_CasoBase(t *testing.T) {
	// 200 → 250 es +25.0%.
	change := PercentChange(dec(250), dec(200))
	assert.True(t, change.Equal(dec(25)), "esperaba 25, obtuve %s", change)
}

func TestPercentChange_AnteriorNoPositivoDevuelveCero(t *testing.T) {
	assert.True(t, PercentChange(dec(100), dec(0)).IsZero())
	assert.True(t, PercentChange(dec(100), dec(-50)).IsZero())
}

func TestTrendFor_CeroEsDown(t *testing.T) {
	assert.Equal(t, TrendUp, TrendFor(dec(0.1)))
	assert.Equal(t, TrendDown, TrendFor(dec(-3)))
	assert.Equal(t, TrendDown, TrendFor(dec(0)), "variación cero se muestra como down")
}

func TestRatioPct_DenominadorCero(t *testing.T) {
	assert.True(t, RatioPct(dec(50), dec(0)).IsZero())
	assert.True(t, RatioPct(dec(50), dec(200)).Equal(dec(25)))
}

func TestBucketDaily_AgrupaYOrdena(t *testing.T) {
	d1 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	points := bucketDaily([]timedValue{
		{date: d1, value: dec(10)},
		{date: d2, value: dec(5)},
		{date: d1, value: dec(7)},
	})
	assert.Len(t, points, 2)
	assert.Equal(t, "2025-06-01", points[0].Label)
	assert.True(t, points[0].Value.Equal(dec(5)))
	assert.Equal(t, "2025-06-02", points[1].Label)
	assert.True(t, points[1].Value.Equal(dec(17)))
}

func TestBucketMonthly_EtiquetaPorMes(t *testing.T) {
	points := bucketMonthly([]timedValue{
		{date: time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC), value: dec(1)},
		{date: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), value: dec(2)},
		{date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), value: dec(4)},
	})
	assert.Len(t, points, 2)
	assert.Equal(t, "2025-05", points[0].Label)
	assert.True(t, points[0].Value.Equal(dec(3)))
}

func TestMergeMonthly_OuterJoinConCeros(t *testing.T) {
	revenue := []dto.TimePointDTO{
		{Label: "2025-05", Value: dec(100)},
		{Label: "2025-06", Value: dec(200)},
	}
	expenses := []dto.TimePointDTO{
		{Label: "2025-06", Value: dec(50)},
		{Label: "2025-07", Value: dec(30)},
	}
	merged := mergeMonthly(revenue, expenses)
	assert.Len(t, merged, 3)

	// Mayo: sin gastos, gasto 0.
	assert.Equal(t, "2025-05", merged[0].Month)
	assert.True(t, merged[0].Expenses.IsZero())
	assert.True(t, merged[0].Profit.Equal(dec(100)))

	// Julio: sin ingresos, ganancia negativa.
	assert.Equal(t, "2025-07", merged[2].Month)
	assert.True(t, merged[2].Revenue.IsZero())
	assert.True(t, merged[2].Profit.Equal(dec(-30)))
}

func TestLastN_RecortaPorElFinal(t *testing.T) {
	points := []dto.TimePointDTO{{Label: "a"}, {Label: "b"}, {Label: "c"}}
	assert.Equal(t, []dto.TimePointDTO{{Label: "b"}, {Label: "c"}}, lastN(points, 2))
	assert.Len(t, lastN(points, 5), 3)
}

func TestTrailingWindow_PeriodoDesconocido(t *testing.T) {
	_, _, err := trailingWindow(testNow, "Last Century", PeriodLast30Days)
	assert.Error(t, err)
}

func TestTrailingWindow_VacioUsaElDefault(t *testing.T) {
	_, period, err := trailingWindow(testNow, "", PeriodLast30Days)
	assert.NoError(t, err)
	assert.Equal(t, PeriodLast30Days, period)
}
