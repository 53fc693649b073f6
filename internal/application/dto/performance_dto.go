package dto

import "github.com/shopspring/decimal"

// PerformanceReportDTO reporte de desempeño: KPIs de los últimos 30 días
// contra los 30 anteriores más los desgloses por empleado del período
// seleccionado.
type PerformanceReportDTO struct {
	Period     string `json:"period"`
	RoleFilter string `json:"role_filter,omitempty"`

	SalesPerformance KPIDTO `json:"sales_performance"`
	Satisfaction     KPIDTO `json:"satisfaction"`      // delta absoluto
	ProfitMargin     KPIDTO `json:"profit_margin"`     // delta en puntos
	Productivity     KPIDTO `json:"productivity"`      // delta absoluto
	AttendanceRate   KPIDTO `json:"attendance_rate"`   // delta en puntos
	ExpenseRatio     KPIDTO `json:"expense_ratio"`     // delta en puntos

	ProductivityByEmployee []EmployeeScoreDTO `json:"productivity_by_employee"`
	SatisfactionTrend      []TimePointDTO     `json:"satisfaction_trend"`
	SalesByEmployee        []NamedValueDTO    `json:"sales_by_employee"`
	AttendanceByEmployee   []NamedValueDTO    `json:"attendance_by_employee"`

	EmployeeDetails []EmployeeMetricsDTO `json:"employee_details"`
	Roles           []string             `json:"roles"` // opciones del filtro
}

// EmployeeScoreDTO score promedio de un empleado con su rol.
type EmployeeScoreDTO struct {
	Name  string          `json:"name"`
	Role  string          `json:"role"`
	Score decimal.Decimal `json:"score"`
}

// EmployeeMetricsDTO fila de la tabla de detalle por empleado.
type EmployeeMetricsDTO struct {
	Name           string          `json:"name"`
	SalesCount     int             `json:"sales_count"`
	SalesValue     decimal.Decimal `json:"sales_value"`
	Satisfaction   decimal.Decimal `json:"satisfaction"`
	AttendanceRate decimal.Decimal `json:"attendance_rate"`
	Productivity   decimal.Decimal `json:"productivity"`
}
