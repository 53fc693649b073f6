// Package analytics contiene los seis casos de uso de reportes del dashboard
// (overview, inventario, compras, ventas, desempeño y reporte financiero) y
// los helpers de métricas que comparten: variación porcentual entre períodos,
// ratios con guardas de división por cero y re-muestreo temporal.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
)

var hundred = decimal.NewFromInt(100)

// Direcciones de tendencia de un KPI.
const (
	TrendUp   = "up"
	TrendDown = "down"
)

// PercentChange devuelve la variación porcentual entre el período actual y el
// anterior: (current − previous) / previous × 100. Con previous ≤ 0 devuelve
// 0 — política deliberada de la superficie interactiva: nunca NaN/∞.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// TrendFor clasifica una variación: "up" si es estrictamente positiva, "down"
// en cualquier otro caso. Una variación exactamente cero queda como "down",
// igual que el sistema original (decisión registrada en DESIGN.md).
func TrendFor(change decimal.Decimal) string {
	if change.IsPositive() {
		return TrendUp
	}
	return TrendDown
}

// RatioPct calcula numerator/denominator × 100 con la misma guarda de
// división por cero (→ 0). Sirve para margen, ratio de gastos, etc.
func RatioPct(numerator, denominator decimal.Decimal) decimal.Decimal {
	if !denominator.IsPositive() {
		return decimal.Zero
	}
	return numerator.Div(denominator).Mul(hundred)
}

// kpi arma un KPIDTO completo a partir del valor actual y el anterior.
func kpi(title string, current, previous decimal.Decimal) dto.KPIDTO {
	change := PercentChange(current, previous)
	return dto.KPIDTO{
		Title:     title,
		Value:     current.Round(2),
		ChangePct: change.Round(1),
		Trend:     TrendFor(change),
	}
}

// kpiDelta arma un KPI cuya "variación" es una diferencia absoluta, no
// porcentual (satisfacción, productividad, puntos de margen).
func kpiDelta(title string, current, previous decimal.Decimal) dto.KPIDTO {
	delta := current.Sub(previous)
	return dto.KPIDTO{
		Title:     title,
		Value:     current.Round(2),
		ChangePct: delta.Round(1),
		Trend:     TrendFor(delta),
	}
}

// kpiValue arma un KPI sin comparación de período (solo valor).
func kpiValue(title string, value decimal.Decimal) dto.KPIDTO {
	return dto.KPIDTO{Title: title, Value: value.Round(2)}
}

// ── Re-muestreo temporal ──────────────────────────────────────────────────

// monthlyBucketThresholdDays: ventanas más largas que esto se agrupan por mes.
const monthlyBucketThresholdDays = 60

// timedValue es la unidad de entrada del re-muestreo.
type timedValue struct {
	date  time.Time
	value decimal.Decimal
}

// bucketDaily agrupa por día calendario y devuelve un punto por día con
// datos, ordenado ascendente. No rellena huecos: los días sin filas no
// aparecen (el merge con cero solo ocurre en cruces explícitos de series).
func bucketDaily(values []timedValue) []dto.TimePointDTO {
	return bucketBy(values, func(t time.Time) string {
		return t.Format("2006-01-02")
	})
}

// bucketMonthly agrupa por mes calendario (etiqueta YYYY-MM).
func bucketMonthly(values []timedValue) []dto.TimePointDTO {
	return bucketBy(values, func(t time.Time) string {
		return t.Format("2006-01")
	})
}

func bucketBy(values []timedValue, label func(time.Time) string) []dto.TimePointDTO {
	sums := make(map[string]decimal.Decimal)
	for _, v := range values {
		k := label(v.date)
		sums[k] = sums[k].Add(v.value)
	}
	points := make([]dto.TimePointDTO, 0, len(sums))
	for k, v := range sums {
		points = append(points, dto.TimePointDTO{Label: k, Value: v.Round(2)})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Label < points[j].Label })
	return points
}

// mergeMonthly cruza dos series mensuales con outer-join por mes; los meses
// ausentes en una serie entran como 0 (alineación revenue vs. expenses).
func mergeMonthly(a, b []dto.TimePointDTO) []dto.MonthlyFinancialDTO {
	byMonth := make(map[string]*dto.MonthlyFinancialDTO)
	for _, p := range a {
		byMonth[p.Label] = &dto.MonthlyFinancialDTO{Month: p.Label, Revenue: p.Value}
	}
	for _, p := range b {
		m, ok := byMonth[p.Label]
		if !ok {
			m = &dto.MonthlyFinancialDTO{Month: p.Label}
			byMonth[p.Label] = m
		}
		m.Expenses = p.Value
	}
	months := make([]dto.MonthlyFinancialDTO, 0, len(byMonth))
	for _, m := range byMonth {
		m.Profit = m.Revenue.Sub(m.Expenses)
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

// lastN recorta una serie a sus últimos n puntos.
func lastN(points []dto.TimePointDTO, n int) []dto.TimePointDTO {
	if len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}
