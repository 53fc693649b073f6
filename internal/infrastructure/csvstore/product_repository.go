package csvstore

import (
	"fmt"

	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

const productsFile = "products.csv"

var productsHeader = []string{"id", "name", "category", "cost", "price"}

// ProductRepository persiste el catálogo de productos en products.csv.
type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) File() string { return productsFile }

func (r *ProductRepository) Exists() bool { return r.store.exists(productsFile) }

func (r *ProductRepository) LoadAll() ([]entity.Product, error) {
	header, rows, err := r.store.read(productsFile)
	if err != nil {
		return nil, err
	}
	idx := headerIndex(header)
	products := make([]entity.Product, 0, len(rows))
	for i, row := range rows {
		p := entity.Product{
			Name:     field(idx, row, "name"),
			Category: field(idx, row, "category"),
		}
		if p.ID, err = parseInt(field(idx, row, "id")); err != nil {
			return nil, fmt.Errorf("products fila %d: %w", i+2, err)
		}
		if p.Cost, err = parseDecimal(field(idx, row, "cost")); err != nil {
			return nil, fmt.Errorf("products fila %d: %w", i+2, err)
		}
		if p.Price, err = parseDecimal(field(idx, row, "price")); err != nil {
			return nil, fmt.Errorf("products fila %d: %w", i+2, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *ProductRepository) SaveAll(products []entity.Product) error {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			p.Category,
			p.Cost.String(),
			p.Price.String(),
		})
	}
	return r.store.write(productsFile, productsHeader, rows)
}
