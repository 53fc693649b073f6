package csvstore

import (
	"fmt"

	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

const purchasesFile = "purchases.csv"

var purchasesHeader = []string{
	"date", "product_id", "product_name", "category", "quantity",
	"unit_cost", "total_cost", "supplier_id", "status",
}

// PurchaseRepository persiste las órdenes de compra en purchases.csv.
type PurchaseRepository struct {
	store *Store
}

func NewPurchaseRepository(store *Store) *PurchaseRepository {
	return &PurchaseRepository{store: store}
}

func (r *PurchaseRepository) File() string { return purchasesFile }

func (r *PurchaseRepository) Exists() bool { return r.store.exists(purchasesFile) }

func (r *PurchaseRepository) LoadAll() ([]entity.Purchase, error) {
	header, rows, err := r.store.read(purchasesFile)
	if err != nil {
		return nil, err
	}
	idx := headerIndex(header)
	purchases := make([]entity.Purchase, 0, len(rows))
	for i, row := range rows {
		p := entity.Purchase{
			ProductName: field(idx, row, "product_name"),
			Category:    field(idx, row, "category"),
			Status:      field(idx, row, "status"),
		}
		if p.Date, err = parseDate(field(idx, row, "date")); err != nil {
			return nil, fmt.Errorf("purchases fila %d: %w", i+2, err)
		}
		if p.ProductID, err = parseInt(field(idx, row, "product_id")); err != nil {
			return nil, fmt.Errorf("purchases fila %d: %w", i+2, err)
		}
		if p.Quantity, err = parseInt(field(idx, row, "quantity")); err != nil {
			return nil, fmt.Errorf("purchases fila %d: %w", i+2, err)
		}
		if p.UnitCost, err = parseDecimal(field(idx, row, "unit_cost")); err != nil {
			return nil, fmt.Errorf("purchases fila %d: %w", i+2, err)
		}
		if p.TotalCost, err = parseDecimal(field(idx, row, "total_cost")); err != nil {
			return nil, fmt.Errorf("purchases fila %d: %w", i+2, err)
		}
		if p.SupplierID, err = parseInt(field(idx, row, "supplier_id")); err != nil {
			return nil, fmt.Errorf("purchases fila %d: %w", i+2, err)
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

func (r *PurchaseRepository) SaveAll(purchases []entity.Purchase) error {
	rows := make([][]string, 0, len(purchases))
	for _, p := range purchases {
		rows = append(rows, []string{
			formatDate(p.Date),
			fmt.Sprintf("%d", p.ProductID),
			p.ProductName,
			p.Category,
			fmt.Sprintf("%d", p.Quantity),
			p.UnitCost.String(),
			p.TotalCost.String(),
			fmt.Sprintf("%d", p.SupplierID),
			p.Status,
		})
	}
	return r.store.write(purchasesFile, purchasesHeader, rows)
}
