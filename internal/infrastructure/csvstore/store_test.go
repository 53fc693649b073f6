package csvstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSalesRepository_RoundTrip(t *testing.T) {
	repo := NewSalesRepository(NewStore(t.TempDir()))
	assert.False(t, repo.Exists())

	in := []entity.Sale{
		{
			Date:          date(2025, 6, 1),
			ProductID:     3,
			ProductName:   "Product C",
			Category:      entity.CategoryClothing,
			Quantity:      2,
			UnitPrice:     decimal.NewFromInt(60),
			TotalPrice:    decimal.NewFromInt(120),
			Profit:        decimal.NewFromInt(60),
			CustomerID:    14,
			PaymentMethod: entity.PaymentDigitalWallet,
		},
	}
	require.NoError(t, repo.SaveAll(in))
	assert.True(t, repo.Exists())

	out, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].Date, out[0].Date)
	assert.Equal(t, in[0].ProductID, out[0].ProductID)
	assert.Equal(t, in[0].PaymentMethod, out[0].PaymentMethod)
	assert.True(t, out[0].TotalPrice.Equal(in[0].TotalPrice))
	assert.True(t, out[0].Profit.Equal(in[0].Profit))
}

func TestEmployeeRepository_NormalizaCabecerasLegadas(t *testing.T) {
	dir := t.TempDir()
	legacy := "id,name,department,role,join_date\n" +
		"1,Ana López,Sales,Sales Associate,2024-01-15\n" +
		"2,Luis Pérez,Operations,Cashier,2023-11-02\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "employees.csv"), []byte(legacy), 0o644))

	repo := NewEmployeeRepository(NewStore(dir))
	employees, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, employees, 2)

	assert.Equal(t, 1, employees[0].EmployeeID, "id legado se lee como employee_id")
	assert.Equal(t, "Sales Associate", employees[0].Position, "role legado se lee como position")
	assert.Equal(t, date(2024, 1, 15), employees[0].JoinDate)

	// Al guardar se escribe el esquema canónico.
	require.NoError(t, repo.SaveAll(employees))
	content, err := os.ReadFile(filepath.Join(dir, "employees.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "employee_id,name,department,position,join_date")
}

func TestPerformanceRepository_EnterosConDecimalDePandas(t *testing.T) {
	dir := t.TempDir()
	// Archivos generados por herramientas de dataframes serializan enteros
	// como "3.0"; el parser los acepta.
	raw := "date,employee_id,employee_name,role,department,sales_count,sales_value,customer_satisfaction,attendance,productivity_score\n" +
		"2025-06-01,3.0,Ana López,Cashier,Sales,5.0,2500,4.2,1.0,88.5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "performance.csv"), []byte(raw), 0o644))

	repo := NewPerformanceRepository(NewStore(dir))
	records, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].EmployeeID)
	assert.Equal(t, 5, records[0].SalesCount)
	assert.Equal(t, 4.2, records[0].CustomerSatisfaction)
	assert.False(t, records[0].Absent())
}

func TestStore_LecturaDeArchivoAusenteFalla(t *testing.T) {
	repo := NewProductRepository(NewStore(t.TempDir()))
	_, err := repo.LoadAll()
	assert.Error(t, err)
}

func TestStore_FilaCorruptaReportaNumeroDeFila(t *testing.T) {
	dir := t.TempDir()
	raw := "id,name,category,cost,price\n" +
		"1,Product A,Electronics,120,200\n" +
		"no-es-numero,Product B,Electronics,80,150\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.csv"), []byte(raw), 0o644))

	repo := NewProductRepository(NewStore(dir))
	_, err := repo.LoadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fila 3")
}
