package analytics

import (
	"time"

	"github.com/tu-usuario/business-dashboard/internal/domain"
)

// window es un rango [Start, End) sobre fechas de dataset. End abierto
// simplifica los pares "mes actual / mes anterior".
type window struct {
	Start time.Time
	End   time.Time
}

func (w window) contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// openEnd marca una ventana sin cota superior.
var openEnd = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

// monthPair devuelve la ventana del mes calendario en curso y la del mes
// inmediatamente anterior (par de comparación estándar de los KPIs MoM).
func monthPair(now time.Time) (current, previous window) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := monthStart.AddDate(0, -1, 0)
	return window{Start: monthStart, End: openEnd},
		window{Start: prevStart, End: monthStart}
}

// trailingPair devuelve la ventana de los últimos days días y la ventana de
// igual longitud inmediatamente anterior.
func trailingPair(now time.Time, days int) (current, previous window) {
	start := now.AddDate(0, 0, -days)
	prevStart := now.AddDate(0, 0, -2*days)
	return window{Start: start, End: openEnd},
		window{Start: prevStart, End: start}
}

// ── Períodos con nombre ───────────────────────────────────────────────────

// Períodos del filtro de ventas/desempeño (ventanas móviles).
const (
	PeriodLast7Days    = "Last 7 Days"
	PeriodLast30Days   = "Last 30 Days"
	PeriodLast90Days   = "Last 90 Days"
	PeriodLast12Months = "Last 12 Months"
	PeriodAllTime      = "All Time"
)

// trailingWindow traduce un período con nombre a su ventana. El período vacío
// usa def. Solo cambia el filtro de filas: la agregación posterior es idéntica
// para cualquier ventana.
func trailingWindow(now time.Time, period, def string) (window, string, error) {
	if period == "" {
		period = def
	}
	switch period {
	case PeriodLast7Days:
		return window{Start: now.AddDate(0, 0, -7), End: openEnd}, period, nil
	case PeriodLast30Days:
		return window{Start: now.AddDate(0, 0, -30), End: openEnd}, period, nil
	case PeriodLast90Days:
		return window{Start: now.AddDate(0, 0, -90), End: openEnd}, period, nil
	case PeriodLast12Months:
		return window{Start: now.AddDate(0, 0, -365), End: openEnd}, period, nil
	case PeriodAllTime:
		return window{Start: time.Time{}, End: openEnd}, period, nil
	default:
		return window{}, "", domain.ErrInvalidPeriod
	}
}

// Períodos del reporte de negocio (cotas calendario).
const (
	ReportCurrentMonth  = "Current Month"
	ReportPreviousMonth = "Previous Month"
	ReportLast3Months   = "Last 3 Months"
	ReportLast6Months   = "Last 6 Months"
	ReportYearToDate    = "Year to Date"
	ReportLastYear      = "Last Year"
	ReportAllTime       = "All Time"
)

// reportWindow traduce un período de reporte a su ventana y etiqueta legible.
func reportWindow(now time.Time, period string) (window, string, error) {
	if period == "" {
		period = ReportCurrentMonth
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	switch period {
	case ReportCurrentMonth:
		return window{Start: monthStart, End: openEnd}, now.Format("January 2006"), nil
	case ReportPreviousMonth:
		prev := monthStart.AddDate(0, -1, 0)
		return window{Start: prev, End: monthStart}, prev.Format("January 2006"), nil
	case ReportLast3Months:
		start := monthStart.AddDate(0, -3, 0)
		return window{Start: start, End: openEnd},
			start.Format("January 2006") + " - " + now.Format("January 2006"), nil
	case ReportLast6Months:
		start := monthStart.AddDate(0, -6, 0)
		return window{Start: start, End: openEnd},
			start.Format("January 2006") + " - " + now.Format("January 2006"), nil
	case ReportYearToDate:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return window{Start: start, End: openEnd}, now.Format("2006") + " YTD", nil
	case ReportLastYear:
		start := time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return window{Start: start, End: end}, "FY " + start.Format("2006"), nil
	case ReportAllTime:
		return window{Start: time.Time{}, End: openEnd}, "All Time", nil
	default:
		return window{}, "", domain.ErrInvalidPeriod
	}
}

// longPeriod indica si la ventana debe agruparse por mes (umbral >60 días).
func longPeriod(now time.Time, w window) bool {
	start := w.Start
	if start.IsZero() {
		return true // All Time siempre es mensual
	}
	return now.Sub(start) > monthlyBucketThresholdDays*24*time.Hour
}
