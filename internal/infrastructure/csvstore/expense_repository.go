package csvstore

import (
	"fmt"

	"github.com/tu-usuario/business-dashboard/internal/domain/entity"
)

const expensesFile = "expenses.csv"

var expensesHeader = []string{"date", "category", "amount", "description"}

// ExpenseRepository persiste los gastos mensuales en expenses.csv.
type ExpenseRepository struct {
	store *Store
}

func NewExpenseRepository(store *Store) *ExpenseRepository {
	return &ExpenseRepository{store: store}
}

func (r *ExpenseRepository) File() string { return expensesFile }

func (r *ExpenseRepository) Exists() bool { return r.store.exists(expensesFile) }

func (r *ExpenseRepository) LoadAll() ([]entity.Expense, error) {
	header, rows, err := r.store.read(expensesFile)
	if err != nil {
		return nil, err
	}
	idx := headerIndex(header)
	expenses := make([]entity.Expense, 0, len(rows))
	for i, row := range rows {
		e := entity.Expense{
			Category:    field(idx, row, "category"),
			Description: field(idx, row, "description"),
		}
		if e.Date, err = parseDate(field(idx, row, "date")); err != nil {
			return nil, fmt.Errorf("expenses fila %d: %w", i+2, err)
		}
		if e.Amount, err = parseDecimal(field(idx, row, "amount")); err != nil {
			return nil, fmt.Errorf("expenses fila %d: %w", i+2, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func (r *ExpenseRepository) SaveAll(expenses []entity.Expense) error {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []string{
			formatDate(e.Date),
			e.Category,
			e.Amount.String(),
			e.Description,
		})
	}
	return r.store.write(expensesFile, expensesHeader, rows)
}
