package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/business-dashboard/internal/application/dto"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
	"github.com/tu-usuario/business-dashboard/internal/domain/repository"
)

// PerformanceUseCase arma el reporte de desempeño: KPIs de los últimos 30
// días contra los 30 anteriores y desgloses por empleado del período elegido,
// con filtro opcional por rol.
type PerformanceUseCase struct {
	performance repository.PerformanceRepository
	sales       repository.SalesRepository
	expenses    repository.ExpenseRepository
	now         clock
}

func NewPerformanceUseCase(
	performance repository.PerformanceRepository,
	sales repository.SalesRepository,
	expenses repository.ExpenseRepository,
) *PerformanceUseCase {
	return &PerformanceUseCase{performance: performance, sales: sales, expenses: expenses, now: time.Now}
}

func (uc *PerformanceUseCase) WithClock(now clock) *PerformanceUseCase {
	uc.now = now
	return uc
}

// Report calcula el reporte de desempeño. period filtra solo los desgloses
// por empleado; los KPIs comparan siempre ventanas móviles de 30 días.
func (uc *PerformanceUseCase) Report(period, role string) (*dto.PerformanceReportDTO, error) {
	now := uc.now()
	win, period, err := trailingWindow(now, period, PeriodLast30Days)
	if err != nil {
		return nil, err
	}
	if err := requireDatasets(uc.performance, uc.sales, uc.expenses); err != nil {
		return nil, err
	}
	records, err := uc.performance.LoadAll()
	if err != nil {
		return nil, err
	}
	sales, err := uc.sales.LoadAll()
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenses.LoadAll()
	if err != nil {
		return nil, err
	}

	curWin, prevWin := trailingPair(now, 30)
	cur := perfIn(records, curWin)
	prev := perfIn(records, prevWin)
	curSales := salesIn(sales, curWin)
	prevSales := salesIn(sales, prevWin)

	curRevenue := sumRevenue(curSales)
	prevRevenue := sumRevenue(prevSales)
	curMargin := RatioPct(sumProfit(curSales), curRevenue)
	prevMargin := RatioPct(sumProfit(prevSales), prevRevenue)
	curRatio := RatioPct(sumExpenses(expensesIn(expenses, curWin)), curRevenue)
	prevRatio := RatioPct(sumExpenses(expensesIn(expenses, prevWin)), prevRevenue)

	// La flecha del ratio muestra el signo literal del cambio: solo un
	// descenso marca "down".
	ratioDelta := curRatio.Sub(prevRatio)
	ratioTrend := TrendUp
	if ratioDelta.IsNegative() {
		ratioTrend = TrendDown
	}
	expenseRatio := dto.KPIDTO{
		Title:     "Expense Ratio",
		Value:     curRatio.Round(2),
		ChangePct: ratioDelta.Round(1),
		Trend:     ratioTrend,
	}

	filtered := perfIn(records, win)
	if role != "" {
		filtered = perfWithRole(filtered, role)
	}

	out := &dto.PerformanceReportDTO{
		Period:     period,
		RoleFilter: role,

		SalesPerformance: kpi("Sales Performance", curRevenue, prevRevenue),
		Satisfaction:     kpiDelta("Customer Satisfaction", meanSatisfaction(cur), meanSatisfaction(prev)),
		ProfitMargin:     kpiDelta("Profit Margin", curMargin, prevMargin),
		Productivity:     kpiDelta("Productivity", meanProductivity(cur), meanProductivity(prev)),
		AttendanceRate:   kpiDelta("Attendance Rate", meanAttendance(cur), meanAttendance(prev)),
		ExpenseRatio:     expenseRatio,

		ProductivityByEmployee: productivityByEmployee(filtered),
		SatisfactionTrend:      satisfactionTrend(filtered),
		SalesByEmployee:        salesByEmployee(filtered),
		AttendanceByEmployee:   attendanceByEmployee(filtered),

		EmployeeDetails: employeeDetails(filtered),
		Roles:           distinctRoles(records),
	}
	return out, nil
}

func perfIn(records []entity.PerformanceRecord, w window) []entity.PerformanceRecord {
	out := make([]entity.PerformanceRecord, 0, len(records))
	for _, r := range records {
		if w.contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}

func perfWithRole(records []entity.PerformanceRecord, role string) []entity.PerformanceRecord {
	out := make([]entity.PerformanceRecord, 0, len(records))
	for _, r := range records {
		if r.Role == role {
			out = append(out, r)
		}
	}
	return out
}

// Las medias incluyen las ausencias: un registro con todo en cero pesa igual
// que uno presente, igual que en las tablas de origen.
func meanSatisfaction(records []entity.PerformanceRecord) decimal.Decimal {
	return meanOf(records, func(r entity.PerformanceRecord) float64 { return r.CustomerSatisfaction })
}

func meanProductivity(records []entity.PerformanceRecord) decimal.Decimal {
	return meanOf(records, func(r entity.PerformanceRecord) float64 { return r.ProductivityScore })
}

func meanAttendance(records []entity.PerformanceRecord) decimal.Decimal {
	return meanOf(records, func(r entity.PerformanceRecord) float64 { return r.Attendance * 100 })
}

func meanOf(records []entity.PerformanceRecord, field func(entity.PerformanceRecord) float64) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	sum := 0.0
	for _, r := range records {
		sum += field(r)
	}
	return decimal.NewFromFloat(sum / float64(len(records)))
}

func productivityByEmployee(records []entity.PerformanceRecord) []dto.EmployeeScoreDTO {
	type acc struct {
		role  string
		sum   float64
		count int
	}
	byEmp := make(map[string]*acc)
	for _, r := range records {
		a, ok := byEmp[r.EmployeeName]
		if !ok {
			a = &acc{role: r.Role}
			byEmp[r.EmployeeName] = a
		}
		a.sum += r.ProductivityScore
		a.count++
	}
	out := make([]dto.EmployeeScoreDTO, 0, len(byEmp))
	for name, a := range byEmp {
		out = append(out, dto.EmployeeScoreDTO{
			Name:  name,
			Role:  a.role,
			Score: decimal.NewFromFloat(a.sum / float64(a.count)).Round(1),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score.GreaterThan(out[j].Score) })
	return out
}

// satisfactionTrend es la media diaria de satisfacción (no la suma).
func satisfactionTrend(records []entity.PerformanceRecord) []dto.TimePointDTO {
	type acc struct {
		sum   float64
		count int
	}
	byDay := make(map[string]*acc)
	for _, r := range records {
		k := r.Date.Format("2006-01-02")
		a, ok := byDay[k]
		if !ok {
			a = &acc{}
			byDay[k] = a
		}
		a.sum += r.CustomerSatisfaction
		a.count++
	}
	out := make([]dto.TimePointDTO, 0, len(byDay))
	for day, a := range byDay {
		out = append(out, dto.TimePointDTO{
			Label: day,
			Value: decimal.NewFromFloat(a.sum / float64(a.count)).Round(2),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

func salesByEmployee(records []entity.PerformanceRecord) []dto.NamedValueDTO {
	totals := make(map[string]decimal.Decimal)
	for _, r := range records {
		totals[r.EmployeeName] = totals[r.EmployeeName].Add(r.SalesValue)
	}
	out := make([]dto.NamedValueDTO, 0, len(totals))
	for name, v := range totals {
		out = append(out, dto.NamedValueDTO{Name: name, Value: v.Round(2)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	return out
}

func attendanceByEmployee(records []entity.PerformanceRecord) []dto.NamedValueDTO {
	type acc struct {
		sum   float64
		count int
	}
	byEmp := make(map[string]*acc)
	for _, r := range records {
		a, ok := byEmp[r.EmployeeName]
		if !ok {
			a = &acc{}
			byEmp[r.EmployeeName] = a
		}
		a.sum += r.Attendance * 100
		a.count++
	}
	out := make([]dto.NamedValueDTO, 0, len(byEmp))
	for name, a := range byEmp {
		out = append(out, dto.NamedValueDTO{
			Name:  name,
			Value: decimal.NewFromFloat(a.sum / float64(a.count)).Round(1),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value.GreaterThan(out[j].Value) })
	return out
}

func employeeDetails(records []entity.PerformanceRecord) []dto.EmployeeMetricsDTO {
	type acc struct {
		salesCount   int
		salesValue   decimal.Decimal
		satisfaction float64
		attendance   float64
		productivity float64
		count        int
	}
	byEmp := make(map[string]*acc)
	for _, r := range records {
		a, ok := byEmp[r.EmployeeName]
		if !ok {
			a = &acc{}
			byEmp[r.EmployeeName] = a
		}
		a.salesCount += r.SalesCount
		a.salesValue = a.salesValue.Add(r.SalesValue)
		a.satisfaction += r.CustomerSatisfaction
		a.attendance += r.Attendance * 100
		a.productivity += r.ProductivityScore
		a.count++
	}
	out := make([]dto.EmployeeMetricsDTO, 0, len(byEmp))
	for name, a := range byEmp {
		n := float64(a.count)
		out = append(out, dto.EmployeeMetricsDTO{
			Name:           name,
			SalesCount:     a.salesCount,
			SalesValue:     a.salesValue.Round(2),
			Satisfaction:   decimal.NewFromFloat(a.satisfaction / n).Round(2),
			AttendanceRate: decimal.NewFromFloat(a.attendance / n).Round(1),
			Productivity:   decimal.NewFromFloat(a.productivity / n).Round(1),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SalesValue.GreaterThan(out[j].SalesValue) })
	return out
}

func distinctRoles(records []entity.PerformanceRecord) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.Role] = struct{}{}
	}
	roles := make([]string, 0, len(seen))
	for role := range seen {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
