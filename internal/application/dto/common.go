package dto

import "github.com/shopspring/decimal"

// KPIDTO es una métrica con nombre, valor actual y tendencia período contra
// período. ChangePct es variación porcentual salvo en KPIs de delta absoluto
// (satisfacción, puntos de margen), donde es la diferencia directa.
type KPIDTO struct {
	Title     string          `json:"title"`
	Value     decimal.Decimal `json:"value"`
	ChangePct decimal.Decimal `json:"change_pct"`
	Trend     string          `json:"trend,omitempty"` // up | down; vacío si no hay comparación
}

// TimePointDTO es un punto de una serie temporal re-muestreada (Label es
// YYYY-MM-DD en series diarias, YYYY-MM en mensuales).
type TimePointDTO struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// NamedValueDTO es un par nombre→valor para gráficos de barras/pie.
type NamedValueDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// NamedCountDTO es un grupo con conteo y valor acumulado (métodos de pago,
// estados de orden).
type NamedCountDTO struct {
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

// MonthlyFinancialDTO es una fila del cruce mensual ingresos vs. gastos
// (outer-join por mes, ausencias como 0).
type MonthlyFinancialDTO struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Files   []string `json:"files,omitempty"` // datasets ausentes en DATA_MISSING
}
