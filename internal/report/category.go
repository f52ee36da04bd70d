// Package report builds the category spending report and writes report
// results to disk.
package report

import (
	"time"

	"github.com/tirasundara/statement-digest/internal/domain"
)

// SpendingWindowDays is how far back the category report looks
const SpendingWindowDays = 90

// SpendingByCategory returns the expenses in category whose operation date
// falls within the SpendingWindowDays days up to and including asOf. A zero
// asOf means today. Rows keep their statement order.
func SpendingByCategory(txns []domain.Transaction, category string, asOf time.Time) []domain.Transaction {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	window := SpendingWindow(asOf)

	spending := make([]domain.Transaction, 0)
	for _, txn := range txns {
		if txn.Category != category || !txn.IsExpense() {
			continue
		}

		opTime, err := txn.Time()
		if err != nil {
			continue
		}

		if window.Contains(opTime) {
			spending = append(spending, txn)
		}
	}

	return spending
}

// SpendingWindow returns the inclusive range of days covered by a report as of asOf
func SpendingWindow(asOf time.Time) domain.DateRange {
	end := domain.CalendarDay(asOf)
	return domain.DateRange{
		Start: end.AddDate(0, 0, -SpendingWindowDays),
		End:   end,
	}
}
