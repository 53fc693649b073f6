package dto

import "github.com/shopspring/decimal"

// BusinessReportDTO reporte financiero sobre un período con nombre
// (mes actual/anterior, últimos 3/6 meses, YTD, año pasado, histórico).
type BusinessReportDTO struct {
	Period      string `json:"period"`
	PeriodLabel string `json:"period_label"`

	Revenue       KPIDTO `json:"revenue"`
	GrossProfit   KPIDTO `json:"gross_profit"`
	NetProfit     KPIDTO `json:"net_profit"`
	ProfitMargin  KPIDTO `json:"profit_margin"`
	TotalExpenses KPIDTO `json:"total_expenses"`
	UnitsSold     KPIDTO `json:"units_sold"`

	Granularity       string                   `json:"granularity"`
	RevenueOverTime   []RevenueProfitPointDTO  `json:"revenue_over_time"`
	ExpenseBreakdown  []NamedValueDTO          `json:"expense_breakdown"`
	CategoryBreakdown []CategoryPerformanceDTO `json:"category_breakdown"`

	// MonthlyFinancials se llena en períodos largos (cruce mensual ingresos
	// vs. gastos); TopProductMargins en períodos cortos (top 10 por margen).
	MonthlyFinancials []MonthlyFinancialDTO `json:"monthly_financials,omitempty"`
	TopProductMargins []NamedValueDTO       `json:"top_product_margins,omitempty"`

	ProductPerformance []ProductSalesDTO `json:"product_performance"`
	IncomeStatement    []IncomeLineDTO   `json:"income_statement"`
}

// RevenueProfitPointDTO punto de la serie combinada ingresos/ganancia.
type RevenueProfitPointDTO struct {
	Label   string          `json:"label"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// IncomeLineDTO línea del estado de resultados; Percentage es % sobre
// ingresos.
type IncomeLineDTO struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}
