// Package seed contiene el generador de datos sintéticos del dashboard:
// siete datasets relacionados (productos, inventario, ventas, compras,
// gastos, empleados y desempeño) con referencias cruzadas consistentes y
// campos derivados deterministas.
package seed

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
	"github.com/tu-usuario/business-dashboard/internal/domain/repository"
)

// Parámetros de generación.
const (
	salesDays        = 365 // días de histórico de ventas
	purchaseCount    = 100 // órdenes de compra
	expenseMonths    = 12  // meses de gastos
	employeeCount    = 20
	performanceDays  = 180 // días de histórico de desempeño
	absencesPerEmp   = 5   // ausencias aproximadas por empleado (ver nota abajo)
	minDailySales    = 5
	maxDailySales    = 30
	minActivePerDay  = 10
	maxActivePerDay  = 20
	customerPoolSize = 50
	supplierPool     = 10
)

// Repos agrupa los siete repositorios de datasets que escribe el generador.
type Repos struct {
	Products    repository.ProductRepository
	Inventory   repository.InventoryRepository
	Sales       repository.SalesRepository
	Purchases   repository.PurchaseRepository
	Expenses    repository.ExpenseRepository
	Employees   repository.EmployeeRepository
	Performance repository.PerformanceRepository
}

// UseCase genera y regenera los datasets sintéticos. Toda la aleatoriedad
// pasa por el rng inyectado y el reloj por now, de modo que los tests pueden
// fijar ambos.
type UseCase struct {
	repos Repos
	rng   *rand.Rand
	now   func() time.Time
}

// NewUseCase construye el generador. Si rng es nil se crea uno sembrado con
// el reloj (comportamiento de producción).
func NewUseCase(repos Repos, rng *rand.Rand) *UseCase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &UseCase{repos: repos, rng: rng, now: time.Now}
}

// WithClock fija el reloj del generador (para tests). Devuelve el mismo UseCase.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// EnsureInitialData verifica la existencia de los siete datasets y, si falta
// cualquiera, regenera TODOS desde cero (bootstrap todo-o-nada). Es
// idempotente: con los siete archivos presentes no hace nada.
// Devuelve true si hubo generación.
func (uc *UseCase) EnsureInitialData() (bool, error) {
	if uc.allDatasetsExist() {
		return false, nil
	}

	products := productCatalog()
	if err := uc.repos.Products.SaveAll(products); err != nil {
		return false, fmt.Errorf("seed: productos: %w", err)
	}
	if err := uc.repos.Inventory.SaveAll(uc.generateInventory(products)); err != nil {
		return false, fmt.Errorf("seed: inventario: %w", err)
	}
	if err := uc.repos.Sales.SaveAll(uc.generateSales(products)); err != nil {
		return false, fmt.Errorf("seed: ventas: %w", err)
	}
	if err := uc.repos.Purchases.SaveAll(uc.generatePurchases(products)); err != nil {
		return false, fmt.Errorf("seed: compras: %w", err)
	}
	if err := uc.repos.Expenses.SaveAll(uc.generateExpenses()); err != nil {
		return false, fmt.Errorf("seed: gastos: %w", err)
	}
	employees := uc.generateEmployees(firstNames, lastNames, roles)
	if err := uc.repos.Employees.SaveAll(employees); err != nil {
		return false, fmt.Errorf("seed: empleados: %w", err)
	}
	if err := uc.repos.Performance.SaveAll(uc.generatePerformance(employees)); err != nil {
		return false, fmt.Errorf("seed: desempeño: %w", err)
	}
	return true, nil
}

// RegeneratePerformance reconstruye únicamente empleados+desempeño. Si el
// archivo de empleados existe se reutilizan tal cual (mismo mapeo id→nombre
// entre ejecuciones); si no, se crea una plantilla de 20 con los pools
// reducidos y se persiste. Devuelve el número de registros generados.
func (uc *UseCase) RegeneratePerformance() (int, error) {
	var employees []entity.Employee
	var err error
	if uc.repos.Employees.Exists() {
		employees, err = uc.repos.Employees.LoadAll()
		if err != nil {
			return 0, fmt.Errorf("seed: cargar empleados: %w", err)
		}
	} else {
		employees = uc.generateEmployees(reducedFirstNames, reducedLastNames, reducedRoles)
		if err := uc.repos.Employees.SaveAll(employees); err != nil {
			return 0, fmt.Errorf("seed: empleados: %w", err)
		}
	}

	records := uc.generatePerformance(employees)
	if err := uc.repos.Performance.SaveAll(records); err != nil {
		return 0, fmt.Errorf("seed: desempeño: %w", err)
	}
	return len(records), nil
}

func (uc *UseCase) allDatasetsExist() bool {
	return uc.repos.Products.Exists() &&
		uc.repos.Inventory.Exists() &&
		uc.repos.Sales.Exists() &&
		uc.repos.Purchases.Exists() &&
		uc.repos.Expenses.Exists() &&
		uc.repos.Employees.Exists() &&
		uc.repos.Performance.Exists()
}

// MissingDatasets lista los archivos ausentes (para el aviso de bootstrap).
func (uc *UseCase) MissingDatasets() []string {
	var missing []string
	checks := []interface {
		Exists() bool
		File() string
	}{
		uc.repos.Products, uc.repos.Inventory, uc.repos.Sales,
		uc.repos.Purchases, uc.repos.Expenses, uc.repos.Employees,
		uc.repos.Performance,
	}
	for _, c := range checks {
		if !c.Exists() {
			missing = append(missing, c.File())
		}
	}
	return missing
}

// ── Generadores por dataset ───────────────────────────────────────────────

func (uc *UseCase) generateInventory(products []entity.Product) []entity.InventoryRecord {
	today := uc.today()
	records := make([]entity.InventoryRecord, 0, len(products))
	for _, p := range products {
		records = append(records, entity.InventoryRecord{
			ProductID:     p.ID,
			ProductName:   p.Name,
			Category:      p.Category,
			CurrentStock:  uc.intBetween(10, 100),
			ReorderLevel:  uc.intBetween(5, 20),
			LastRestocked: today.AddDate(0, 0, -uc.intBetween(0, salesDays-1)),
			UnitCost:      p.Cost,
			// TotalValue usa una tirada independiente, NO CurrentStock.
			// Inconsistencia observada en el sistema original que se
			// preserva deliberadamente (ver DESIGN.md).
			TotalValue: p.Cost.Mul(decimal.NewFromInt(int64(uc.intBetween(10, 100)))),
		})
	}
	return records
}

func (uc *UseCase) generateSales(products []entity.Product) []entity.Sale {
	today := uc.today()
	var sales []entity.Sale
	for d := salesDays - 1; d >= 0; d-- {
		date := today.AddDate(0, 0, -d)
		daily := uc.intBetween(minDailySales, maxDailySales)
		for i := 0; i < daily; i++ {
			p := products[uc.rng.Intn(len(products))]
			qty := uc.intBetween(1, 5)
			dqty := decimal.NewFromInt(int64(qty))
			sales = append(sales, entity.Sale{
				Date:          date,
				ProductID:     p.ID,
				ProductName:   p.Name,
				Category:      p.Category,
				Quantity:      qty,
				UnitPrice:     p.Price,
				TotalPrice:    p.Price.Mul(dqty),
				Profit:        p.Price.Sub(p.Cost).Mul(dqty),
				CustomerID:    uc.intBetween(1, customerPoolSize),
				PaymentMethod: uc.choice(entity.PaymentCash, entity.PaymentCreditCard, entity.PaymentDigitalWallet),
			})
		}
	}
	return sales
}

func (uc *UseCase) generatePurchases(products []entity.Product) []entity.Purchase {
	today := uc.today()
	purchases := make([]entity.Purchase, 0, purchaseCount)
	for i := 0; i < purchaseCount; i++ {
		p := products[uc.rng.Intn(len(products))]
		qty := uc.intBetween(10, 100)
		purchases = append(purchases, entity.Purchase{
			Date:        today.AddDate(0, 0, -uc.intBetween(0, salesDays-1)),
			ProductID:   p.ID,
			ProductName: p.Name,
			Category:    p.Category,
			Quantity:    qty,
			UnitCost:    p.Cost,
			TotalCost:   p.Cost.Mul(decimal.NewFromInt(int64(qty))),
			SupplierID:  uc.intBetween(1, supplierPool),
			Status:      uc.choice(entity.PurchaseDelivered, entity.PurchasePending, entity.PurchaseOrdered),
		})
	}
	return purchases
}

func (uc *UseCase) generateExpenses() []entity.Expense {
	now := uc.now()
	expenses := make([]entity.Expense, 0, expenseMonths*len(expenseCategories))
	for m := expenseMonths - 1; m >= 0; m-- {
		ref := now.AddDate(0, -m, 0)
		monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		for _, category := range expenseCategories {
			lo, hi := expenseRange(category)
			expenses = append(expenses, entity.Expense{
				Date:        monthStart,
				Category:    category,
				Amount:      decimal.NewFromInt(int64(uc.intBetween(lo, hi))),
				Description: fmt.Sprintf("%s expenses for %s", category, monthStart.Format("January 2006")),
			})
		}
	}
	return expenses
}

func (uc *UseCase) generateEmployees(first, last, rolePool []string) []entity.Employee {
	now := uc.now()
	employees := make([]entity.Employee, 0, employeeCount)
	for i := 1; i <= employeeCount; i++ {
		name := uc.choice(first...) + " " + uc.choice(last...)
		employees = append(employees, entity.Employee{
			EmployeeID: i,
			Name:       name,
			Department: uc.choice(departments...),
			Position:   uc.choice(rolePool...),
			JoinDate:   dateOnly(now.AddDate(0, 0, -uc.intBetween(30, 1000))),
		})
	}
	return employees
}

// generatePerformance produce el histórico diario de desempeño:
//   - por cada día, una muestra sin reemplazo de 10..20 empleados "activos"
//     con un registro de presencia cada uno;
//   - después ~5×N inyecciones de ausencia en pares (fecha, empleado)
//     aleatorios, saltadas si el par ya tiene registro. El conteo de
//     ausencias resultante es aproximado, no exacto: es el comportamiento
//     esperado.
//
// Invariante: a lo sumo un registro por (EmployeeID, Date); si Attendance
// es 0, todas las métricas numéricas son 0.
func (uc *UseCase) generatePerformance(employees []entity.Employee) []entity.PerformanceRecord {
	today := uc.today()
	days := make([]time.Time, 0, performanceDays)
	for d := performanceDays - 1; d >= 0; d-- {
		days = append(days, today.AddDate(0, 0, -d))
	}

	var records []entity.PerformanceRecord
	seen := make(map[string]bool)
	key := func(id int, date time.Time) string {
		return fmt.Sprintf("%d|%s", id, date.Format("2006-01-02"))
	}

	for _, date := range days {
		n := uc.intBetween(minActivePerDay, maxActivePerDay)
		if n > len(employees) {
			n = len(employees)
		}
		for _, j := range uc.rng.Perm(len(employees))[:n] {
			e := employees[j]
			salesCount := uc.intBetween(0, 5)
			if e.Department == "Sales" {
				salesCount = uc.intBetween(0, 20)
			}
			records = append(records, entity.PerformanceRecord{
				Date:                 date,
				EmployeeID:           e.EmployeeID,
				EmployeeName:         e.Name,
				Role:                 e.Position,
				Department:           e.Department,
				SalesCount:           salesCount,
				SalesValue:           decimal.NewFromInt(int64(salesCount * uc.intBetween(100, 1000))),
				CustomerSatisfaction: round1(uc.floatBetween(3.0, 5.0)),
				Attendance:           1.0,
				ProductivityScore:    round1(uc.floatBetween(60, 100)),
			})
			seen[key(e.EmployeeID, date)] = true
		}
	}

	for i := 0; i < len(employees)*absencesPerEmp; i++ {
		date := days[uc.rng.Intn(len(days))]
		e := employees[uc.rng.Intn(len(employees))]
		if seen[key(e.EmployeeID, date)] {
			continue
		}
		records = append(records, entity.PerformanceRecord{
			Date:         date,
			EmployeeID:   e.EmployeeID,
			EmployeeName: e.Name,
			Role:         e.Position,
			Department:   e.Department,
			Attendance:   0.0,
		})
		seen[key(e.EmployeeID, date)] = true
	}
	return records
}

// ── Helpers de aleatoriedad y fechas ──────────────────────────────────────

// intBetween devuelve un entero uniforme en [lo, hi] (inclusivo).
func (uc *UseCase) intBetween(lo, hi int) int {
	return lo + uc.rng.Intn(hi-lo+1)
}

func (uc *UseCase) floatBetween(lo, hi float64) float64 {
	return lo + uc.rng.Float64()*(hi-lo)
}

func (uc *UseCase) choice(options ...string) string {
	return options[uc.rng.Intn(len(options))]
}

func (uc *UseCase) today() time.Time {
	return dateOnly(uc.now())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
