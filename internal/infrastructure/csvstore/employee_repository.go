package csvstore

import (
	"fmt"

	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

const employeesFile = "employees.csv"

var employeesHeader = []string{"employee_id", "name", "department", "position", "join_date"}

// EmployeeRepository persiste los empleados en employees.csv.
//
// Archivos legados usaban "id" en lugar de "employee_id" y "role" en lugar
// de "position". La normalización ocurre una sola vez aquí, al cargar: el
// resto de la aplicación solo ve el esquema canónico de entity.Employee.
type EmployeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func (r *EmployeeRepository) File() string { return employeesFile }

func (r *EmployeeRepository) Exists() bool { return r.store.exists(employeesFile) }

func (r *EmployeeRepository) LoadAll() ([]entity.Employee, error) {
	header, rows, err := r.store.read(employeesFile)
	if err != nil {
		return nil, err
	}
	idx := headerIndex(header)
	employees := make([]entity.Employee, 0, len(rows))
	for i, row := range rows {
		e := entity.Employee{
			Name:       field(idx, row, "name"),
			Department: field(idx, row, "department"),
			Position:   legacyField(idx, row, "position", "role"),
		}
		if e.EmployeeID, err = parseInt(legacyField(idx, row, "employee_id", "id")); err != nil {
			return nil, fmt.Errorf("employees fila %d: %w", i+2, err)
		}
		if e.JoinDate, err = parseDate(field(idx, row, "join_date")); err != nil {
			return nil, fmt.Errorf("employees fila %d: %w", i+2, err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

// legacyField lee la columna canónica y cae a la legada si la primera no existe.
func legacyField(idx map[string]int, row []string, canonical, legacy string) string {
	if _, ok := idx[canonical]; ok {
		return field(idx, row, canonical)
	}
	return field(idx, row, legacy)
}

func (r *EmployeeRepository) SaveAll(employees []entity.Employee) error {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.EmployeeID),
			e.Name,
			e.Department,
			e.Position,
			formatDate(e.JoinDate),
		})
	}
	return r.store.write(employeesFile, employeesHeader, rows)
}
