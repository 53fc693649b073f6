package csvstore

import (
	"fmt"

	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

const salesFile = "sales.csv"

var salesHeader = []string{
	"date", "product_id", "product_name", "category", "quantity",
	"unit_price", "total_price", "profit", "customer_id", "payment_method",
}

// SalesRepository persiste las transacciones de venta en sales.csv.
// Es el dataset más grande (~6k filas por año generado).
type SalesRepository struct {
	store *Store
}

func NewSalesRepository(store *Store) *SalesRepository {
	return &SalesRepository{store: store}
}

func (r *SalesRepository) File() string { return salesFile }

func (r *SalesRepository) Exists() bool { return r.store.exists(salesFile) }

func (r *SalesRepository) LoadAll() ([]entity.Sale, error) {
	header, rows, err := r.store.read(salesFile)
	if err != nil {
		return nil, err
	}
	idx := headerIndex(header)
	sales := make([]entity.Sale, 0, len(rows))
	for i, row := range rows {
		s := entity.Sale{
			ProductName:   field(idx, row, "product_name"),
			Category:      field(idx, row, "category"),
			PaymentMethod: field(idx, row, "payment_method"),
		}
		if s.Date, err = parseDate(field(idx, row, "date")); err != nil {
			return nil, fmt.Errorf("sales fila %d: %w", i+2, err)
		}
		if s.ProductID, err = parseInt(field(idx, row, "product_id")); err != nil {
			return nil, fmt.Errorf("sales fila %d: %w", i+2, err)
		}
		if s.Quantity, err = parseInt(field(idx, row, "quantity")); err != nil {
			return nil, fmt.Errorf("sales fila %d: %w", i+2, err)
		}
		if s.UnitPrice, err = parseDecimal(field(idx, row, "unit_price")); err != nil {
			return nil, fmt.Errorf("sales fila %d: %w", i+2, err)
		}
		if s.TotalPrice, err = parseDecimal(field(idx, row, "total_price")); err != nil {
			return nil, fmt.Errorf("sales fila %d: %w", i+2, err)
		}
		if s.Profit, err = parseDecimal(field(idx, row, "profit")); err != nil {
			return nil, fmt.Errorf("sales fila %d: %w", i+2, err)
		}
		if s.CustomerID, err = parseInt(field(idx, row, "customer_id")); err != nil {
			return nil, fmt.Errorf("sales fila %d: %w", i+2, err)
		}
		sales = append(sales, s)
	}
	return sales, nil
}

func (r *SalesRepository) SaveAll(sales []entity.Sale) error {
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{
			formatDate(s.Date),
			fmt.Sprintf("%d", s.ProductID),
			s.ProductName,
			s.Category,
			fmt.Sprintf("%d", s.Quantity),
			s.UnitPrice.String(),
			s.TotalPrice.String(),
			s.Profit.String(),
			fmt.Sprintf("%d", s.CustomerID),
			s.PaymentMethod,
		})
	}
	return r.store.write(salesFile, salesHeader, rows)
}
