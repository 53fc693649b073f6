package csvstore

import (
	"fmt"

	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

const performanceFile = "performance.csv"

var performanceHeader = []string{
	"date", "employee_id", "employee_name", "role", "department",
	"sales_count", "sales_value", "customer_satisfaction", "attendance",
	"productivity_score",
}

// PerformanceRepository persiste los registros diarios de desempeño en
// performance.csv.
type PerformanceRepository struct {
	store *Store
}

func NewPerformanceRepository(store *Store) *PerformanceRepository {
	return &PerformanceRepository{store: store}
}

func (r *PerformanceRepository) File() string { return performanceFile }

func (r *PerformanceRepository) Exists() bool { return r.store.exists(performanceFile) }

func (r *PerformanceRepository) LoadAll() ([]entity.PerformanceRecord, error) {
	header, rows, err := r.store.read(performanceFile)
	if err != nil {
		return nil, err
	}
	idx := headerIndex(header)
	records := make([]entity.PerformanceRecord, 0, len(rows))
	for i, row := range rows {
		rec := entity.PerformanceRecord{
			EmployeeName: field(idx, row, "employee_name"),
			Role:         field(idx, row, "role"),
			Department:   field(idx, row, "department"),
		}
		if rec.Date, err = parseDate(field(idx, row, "date")); err != nil {
			return nil, fmt.Errorf("performance fila %d: %w", i+2, err)
		}
		if rec.EmployeeID, err = parseInt(field(idx, row, "employee_id")); err != nil {
			return nil, fmt.Errorf("performance fila %d: %w", i+2, err)
		}
		if rec.SalesCount, err = parseInt(field(idx, row, "sales_count")); err != nil {
			return nil, fmt.Errorf("performance fila %d: %w", i+2, err)
		}
		if rec.SalesValue, err = parseDecimal(field(idx, row, "sales_value")); err != nil {
			return nil, fmt.Errorf("performance fila %d: %w", i+2, err)
		}
		if rec.CustomerSatisfaction, err = parseFloat(field(idx, row, "customer_satisfaction")); err != nil {
			return nil, fmt.Errorf("performance fila %d: %w", i+2, err)
		}
		if rec.Attendance, err = parseFloat(field(idx, row, "attendance")); err != nil {
			return nil, fmt.Errorf("performance fila %d: %w", i+2, err)
		}
		if rec.ProductivityScore, err = parseFloat(field(idx, row, "productivity_score")); err != nil {
			return nil, fmt.Errorf("performance fila %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *PerformanceRepository) SaveAll(records []entity.PerformanceRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			formatDate(rec.Date),
			fmt.Sprintf("%d", rec.EmployeeID),
			rec.EmployeeName,
			rec.Role,
			rec.Department,
			fmt.Sprintf("%d", rec.SalesCount),
			rec.SalesValue.String(),
			formatFloat(rec.CustomerSatisfaction),
			formatFloat(rec.Attendance),
			formatFloat(rec.ProductivityScore),
		})
	}
	return r.store.write(performanceFile, performanceHeader, rows)
}
