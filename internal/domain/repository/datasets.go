package repository

import "github.com/tu-usuario/business-dashboard/internal/domain/entity"

// Repositorios de datasets planos (un CSV por dataset). Las implementaciones
// viven en infrastructure/csvstore. Después de la generación los datasets son
// de solo lectura para el código de reportes; SaveAll reemplaza el archivo
// completo de forma atómica.
//
// File devuelve el nombre base del archivo (ej. "sales.csv") para que los
// errores de dataset ausente puedan nombrarlo.

// ProductRepository acceso al catálogo de productos.
type ProductRepository interface {
	LoadAll() ([]entity.Product, error)
	SaveAll([]entity.Product) error
	Exists() bool
	File() string
}

// InventoryRepository acceso al estado de inventario.
type InventoryRepository interface {
	LoadAll() ([]entity.InventoryRecord, error)
	SaveAll([]entity.InventoryRecord) error
	Exists() bool
	File() string
}

// SalesRepository acceso a las transacciones de venta.
type SalesRepository interface {
	LoadAll() ([]entity.Sale, error)
	SaveAll([]entity.Sale) error
	Exists() bool
	File() string
}

// PurchaseRepository acceso a las órdenes de compra.
type PurchaseRepository interface {
	LoadAll() ([]entity.Purchase, error)
	SaveAll([]entity.Purchase) error
	Exists() bool
	File() string
}

// ExpenseRepository acceso a los gastos mensuales.
type ExpenseRepository interface {
	LoadAll() ([]entity.Expense, error)
	SaveAll([]entity.Expense) error
	Exists() bool
	File() string
}

// EmployeeRepository acceso a los empleados. LoadAll normaliza cabeceras
// legadas (id→employee_id, role→position) una sola vez al cargar.
type EmployeeRepository interface {
	LoadAll() ([]entity.Employee, error)
	SaveAll([]entity.Employee) error
	Exists() bool
	File() string
}

// PerformanceRepository acceso a los registros diarios de desempeño.
type PerformanceRepository interface {
	LoadAll() ([]entity.PerformanceRecord, error)
	SaveAll([]entity.PerformanceRecord) error
	Exists() bool
	File() string
}
