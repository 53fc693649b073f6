package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

// dataset es lo mínimo que un caso de uso necesita saber de un repositorio
// para verificar que su archivo existe antes de calcular nada.
type dataset interface {
	Exists() bool
	File() string
}

// requireDatasets verifica todos los archivos de una vez y devuelve un único
// DatasetMissingError nombrando cada ausente, para que el aviso al usuario
// sea completo y no gota a gota.
func requireDatasets(ds ...dataset) error {
	var missing []string
	for _, d := range ds {
		if !d.Exists() {
			missing = append(missing, d.File())
		}
	}
	if len(missing) > 0 {
		return &domain.DatasetMissingError{Files: missing}
	}
	return nil
}

// ── Filtros y agregados compartidos sobre ventas ──────────────────────────

func salesIn(sales []entity.Sale, w window) []entity.Sale {
	out := make([]entity.Sale, 0, len(sales))
	for _, s := range sales {
		if w.contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}

func sumRevenue(sales []entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalPrice)
	}
	return total
}

func sumProfit(sales []entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Profit)
	}
	return total
}

func sumUnits(sales []entity.Sale) int {
	units := 0
	for _, s := range sales {
		units += s.Quantity
	}
	return units
}

// distinctOrders cuenta pares (fecha, cliente) distintos: varias líneas del
// mismo cliente el mismo día son una sola orden.
func distinctOrders(sales []entity.Sale) int {
	seen := make(map[string]struct{}, len(sales))
	for _, s := range sales {
		seen[s.Date.Format("2006-01-02")+"|"+strconv.Itoa(s.CustomerID)] = struct{}{}
	}
	return len(seen)
}

// productSummary agrega ventas por producto con margen, ordenado por ingreso
// descendente.
func productSummary(sales []entity.Sale) []dto.ProductSalesDTO {
	type acc struct {
		name     string
		category string
		quantity int
		revenue  decimal.Decimal
		profit   decimal.Decimal
	}
	byID := make(map[int]*acc)
	for _, s := range sales {
		a, ok := byID[s.ProductID]
		if !ok {
			a = &acc{name: s.ProductName, category: s.Category}
			byID[s.ProductID] = a
		}
		a.quantity += s.Quantity
		a.revenue = a.revenue.Add(s.TotalPrice)
		a.profit = a.profit.Add(s.Profit)
	}
	out := make([]dto.ProductSalesDTO, 0, len(byID))
	for id, a := range byID {
		out = append(out, dto.ProductSalesDTO{
			ProductID:   id,
			ProductName: a.name,
			Category:    a.category,
			Quantity:    a.quantity,
			Revenue:     a.revenue.Round(2),
			Profit:      a.profit.Round(2),
			MarginPct:   RatioPct(a.profit, a.revenue).Round(1),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out
}

// categoryPerformance agrega ventas por categoría, ordenado por ingreso
// descendente.
func categoryPerformance(sales []entity.Sale) []dto.CategoryPerformanceDTO {
	type acc struct {
		quantity int
		revenue  decimal.Decimal
		profit   decimal.Decimal
	}
	byCat := make(map[string]*acc)
	for _, s := range sales {
		a, ok := byCat[s.Category]
		if !ok {
			a = &acc{}
			byCat[s.Category] = a
		}
		a.quantity += s.Quantity
		a.revenue = a.revenue.Add(s.TotalPrice)
		a.profit = a.profit.Add(s.Profit)
	}
	out := make([]dto.CategoryPerformanceDTO, 0, len(byCat))
	for cat, a := range byCat {
		out = append(out, dto.CategoryPerformanceDTO{
			Category:  cat,
			Revenue:   a.revenue.Round(2),
			Profit:    a.profit.Round(2),
			Quantity:  a.quantity,
			MarginPct: RatioPct(a.profit, a.revenue).Round(1),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue.GreaterThan(out[j].Revenue) })
	return out
}

// paymentBreakdown cuenta transacciones y suma importes por método de pago.
func paymentBreakdown(sales []entity.Sale) []dto.NamedCountDTO {
	type acc struct {
		count int
		value decimal.Decimal
	}
	byMethod := make(map[string]*acc)
	for _, s := range sales {
		a, ok := byMethod[s.PaymentMethod]
		if !ok {
			a = &acc{}
			byMethod[s.PaymentMethod] = a
		}
		a.count++
		a.value = a.value.Add(s.TotalPrice)
	}
	out := make([]dto.NamedCountDTO, 0, len(byMethod))
	for m, a := range byMethod {
		out = append(out, dto.NamedCountDTO{Name: m, Count: a.count, Value: a.value.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// topProductsBy devuelve los n productos con mayor valor según la medida
// indicada (unidades, ingreso).
func topProductsBy(sales []entity.Sale, n int, measure func(entity.Sale) decimal.Decimal) []dto.NamedValueDTO {
	totals := make(map[string]decimal.Decimal)
	for _, s := range sales {
		totals[s.ProductName] = totals[s.ProductName].Add(measure(s))
	}
	out := make([]dto.NamedValueDTO, 0, len(totals))
	for name, v := range totals {
		out = append(out, dto.NamedValueDTO{Name: name, Value: v.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value.Equal(out[j].Value) {
			return out[i].Name < out[j].Name
		}
		return out[i].Value.GreaterThan(out[j].Value)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// revenueSeries proyecta ventas a (fecha, importe) para el re-muestreo.
func revenueSeries(sales []entity.Sale) []timedValue {
	out := make([]timedValue, 0, len(sales))
	for _, s := range sales {
		out = append(out, timedValue{date: s.Date, value: s.TotalPrice})
	}
	return out
}

// profitSeries proyecta ventas a (fecha, ganancia).
func profitSeries(sales []entity.Sale) []timedValue {
	out := make([]timedValue, 0, len(sales))
	for _, s := range sales {
		out = append(out, timedValue{date: s.Date, value: s.Profit})
	}
	return out
}

func unitsMeasure(s entity.Sale) decimal.Decimal {
	return decimal.NewFromInt(int64(s.Quantity))
}

func revenueMeasure(s entity.Sale) decimal.Decimal {
	return s.TotalPrice
}

// categorySalesTotals suma el importe vendido por categoría (gráfico de
// barras del dashboard).
func categorySalesTotals(sales []entity.Sale) []dto.NamedValueDTO {
	totals := make(map[string]decimal.Decimal)
	for _, s := range sales {
		totals[s.Category] = totals[s.Category].Add(s.TotalPrice)
	}
	out := make([]dto.NamedValueDTO, 0, len(totals))
	for cat, v := range totals {
		out = append(out, dto.NamedValueDTO{Name: cat, Value: v.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	return out
}

// recentSales ordena por fecha descendente y recorta a n filas.
func recentSales(sales []entity.Sale, n int) []entity.Sale {
	sorted := make([]entity.Sale, len(sales))
	copy(sorted, sales)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func saleRows(sales []entity.Sale) []dto.SaleRowDTO {
	rows := make([]dto.SaleRowDTO, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, dto.SaleRowDTO{
			Date:          s.Date.Format("2006-01-02"),
			ProductName:   s.ProductName,
			Category:      s.Category,
			Quantity:      s.Quantity,
			UnitPrice:     s.UnitPrice,
			TotalPrice:    s.TotalPrice,
			Profit:        s.Profit,
			PaymentMethod: s.PaymentMethod,
		})
	}
	return rows
}

// ── Gastos ────────────────────────────────────────────────────────────────

func expensesIn(expenses []entity.Expense, w window) []entity.Expense {
	out := make([]entity.Expense, 0, len(expenses))
	for _, e := range expenses {
		if w.contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

func sumExpenses(expenses []entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// clock permite inyectar el "ahora" en los tests; en producción es time.Now.
type clock func() time.Time
