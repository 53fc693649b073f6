package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerformanceRecord es el desempeño diario de un empleado. A lo sumo existe
// un registro por par (EmployeeID, Date). Si Attendance es 0 (ausencia),
// todas las métricas numéricas son exactamente 0.
type PerformanceRecord struct {
	Date                 time.Time
	EmployeeID           int
	EmployeeName         string
	Role                 string
	Department           string
	SalesCount           int
	SalesValue           decimal.Decimal
	CustomerSatisfaction float64 // escala 0–5, 1 decimal
	Attendance           float64 // 1.0 presente, 0.0 ausente
	ProductivityScore    float64 // escala 0–100, 1 decimal
}

// Absent indica si el registro corresponde a una ausencia.
func (r PerformanceRecord) Absent() bool {
	return r.Attendance == 0
}
