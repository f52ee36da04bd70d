// Package aggregate computes per-card totals, expense rankings and cashback estimates.
package aggregate

import (
	"github.com/shopspring/decimal"
	"github.com/tirasundara/statement-digest/internal/domain"
)

const (
	cardSuffixLen = 4
	moneyPlaces   = 2
)

var (
	cardCashbackDivisor = decimal.NewFromInt(100)
	categoryCashbackPct = decimal.NewFromFloat(0.01)
)

// CardsSummary totals expenses per card in first-seen order. Only
// transactions with a 4-character card suffix are considered; income does
// not add to the total.
func CardsSummary(txns []domain.Transaction) []domain.CardSummary {
	order := make([]string, 0)
	spent := make(map[string]decimal.Decimal)

	for _, txn := range txns {
		if len(txn.CardNumber) != cardSuffixLen {
			continue
		}

		total, seen := spent[txn.CardNumber]
		if !seen {
			order = append(order, txn.CardNumber)
		}

		spent[txn.CardNumber] = total.Add(txn.ExpenseMagnitude())
	}

	cards := make([]domain.CardSummary, 0, len(order))
	for _, card := range order {
		total := spent[card]
		cards = append(cards, domain.CardSummary{
			LastDigits: card,
			TotalSpent: total.Round(moneyPlaces),
			Cashback:   total.Div(cardCashbackDivisor).Round(moneyPlaces),
		})
	}

	return cards
}
