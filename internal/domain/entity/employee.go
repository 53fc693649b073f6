package entity

import "time"

// Employee es un empleado del negocio demo. EmployeeID es único (1..20) y
// lo referencia PerformanceRecord.
type Employee struct {
	EmployeeID int
	Name       string
	Department string
	Position   string
	JoinDate   time.Time
}
