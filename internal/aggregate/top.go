package aggregate

import (
	"slices"
	"time"

	"github.com/tirasundara/statement-digest/internal/domain"
)

// DefaultTopLimit is the number of expenses shown on the home page
const DefaultTopLimit = 5

// TopExpenses returns the largest expenses, biggest first. Equal amounts keep
// their statement order. A non-positive limit means DefaultTopLimit.
func TopExpenses(txns []domain.Transaction, limit int) []domain.TopExpense {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	expenses := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.IsExpense() {
			expenses = append(expenses, txn)
		}
	}

	slices.SortStableFunc(expenses, func(a, b domain.Transaction) int {
		return b.Amount.Abs().Cmp(a.Amount.Abs())
	})

	if len(expenses) > limit {
		expenses = expenses[:limit]
	}

	top := make([]domain.TopExpense, 0, len(expenses))
	for _, txn := range expenses {
		top = append(top, domain.TopExpense{
			Date:        operationDay(txn.Date),
			Amount:      txn.Amount.Round(moneyPlaces).Abs(),
			Category:    txn.Category,
			Description: txn.Description,
		})
	}

	return top
}

// operationDay drops the clock from a statement date, passing through
// anything it cannot read
func operationDay(date string) string {
	t, err := time.Parse(domain.OperationTimeLayout, date)
	if err != nil {
		return date
	}
	return t.Format(domain.OperationDayLayout)
}
