package aggregate

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/statement-digest/internal/domain"
)

// CashbackResult is the category ranking plus the number of transactions
// whose date could not be read
type CashbackResult struct {
	Report  domain.CashbackReport
	Skipped int
}

// CashbackByCategory estimates 1% cashback per category for the expenses of
// the given month, ranked from highest to lowest. Categories with equal
// cashback keep the order in which they first appear.
func CashbackByCategory(txns []domain.Transaction, year int, month time.Month) CashbackResult {
	var result CashbackResult

	order := make([]string, 0)
	totals := make(map[string]decimal.Decimal)

	for _, txn := range txns {
		if txn.Date == "" {
			result.Skipped++
			continue
		}

		opTime, err := txn.Time()
		if err != nil {
			result.Skipped++
			continue
		}

		if opTime.Year() != year || opTime.Month() != month {
			continue
		}

		if !txn.IsExpense() {
			continue
		}

		total, seen := totals[txn.Category]
		if !seen {
			order = append(order, txn.Category)
		}
		totals[txn.Category] = total.Add(txn.ExpenseMagnitude())
	}

	result.Report = make(domain.CashbackReport, 0, len(order))
	for _, category := range order {
		result.Report = append(result.Report, domain.CategoryCashback{
			Category: category,
			Cashback: totals[category].Mul(categoryCashbackPct).Round(moneyPlaces),
		})
	}

	slices.SortStableFunc(result.Report, func(a, b domain.CategoryCashback) int {
		return b.Cashback.Cmp(a.Cashback)
	})

	return result
}
