package csvstore

import (
	"fmt"

	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

const inventoryFile = "inventory.csv"

var inventoryHeader = []string{
	"product_id", "product_name", "category", "current_stock",
	"reorder_level", "last_restocked", "unit_cost", "total_value",
}

// InventoryRepository persiste el estado de inventario en inventory.csv.
type InventoryRepository struct {
	store *Store
}

func NewInventoryRepository(store *Store) *InventoryRepository {
	return &InventoryRepository{store: store}
}

func (r *InventoryRepository) File() string { return inventoryFile }

func (r *InventoryRepository) Exists() bool { return r.store.exists(inventoryFile) }

func (r *InventoryRepository) LoadAll() ([]entity.InventoryRecord, error) {
	header, rows, err := r.store.read(inventoryFile)
	if err != nil {
		return nil, err
	}
	idx := headerIndex(header)
	records := make([]entity.InventoryRecord, 0, len(rows))
	for i, row := range rows {
		rec := entity.InventoryRecord{
			ProductName: field(idx, row, "product_name"),
			Category:    field(idx, row, "category"),
		}
		if rec.ProductID, err = parseInt(field(idx, row, "product_id")); err != nil {
			return nil, fmt.Errorf("inventory fila %d: %w", i+2, err)
		}
		if rec.CurrentStock, err = parseInt(field(idx, row, "current_stock")); err != nil {
			return nil, fmt.Errorf("inventory fila %d: %w", i+2, err)
		}
		if rec.ReorderLevel, err = parseInt(field(idx, row, "reorder_level")); err != nil {
			return nil, fmt.Errorf("inventory fila %d: %w", i+2, err)
		}
		if rec.LastRestocked, err = parseDate(field(idx, row, "last_restocked")); err != nil {
			return nil, fmt.Errorf("inventory fila %d: %w", i+2, err)
		}
		if rec.UnitCost, err = parseDecimal(field(idx, row, "unit_cost")); err != nil {
			return nil, fmt.Errorf("inventory fila %d: %w", i+2, err)
		}
		if rec.TotalValue, err = parseDecimal(field(idx, row, "total_value")); err != nil {
			return nil, fmt.Errorf("inventory fila %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *InventoryRepository) SaveAll(records []entity.InventoryRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", rec.ProductID),
			rec.ProductName,
			rec.Category,
			fmt.Sprintf("%d", rec.CurrentStock),
			fmt.Sprintf("%d", rec.ReorderLevel),
			formatDate(rec.LastRestocked),
			rec.UnitCost.String(),
			rec.TotalValue.String(),
		})
	}
	return r.store.write(inventoryFile, inventoryHeader, rows)
}
