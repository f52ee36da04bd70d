package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CardSummary holds spending totals for one card
type CardSummary struct {
	LastDigits string          `json:"last_digits"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Cashback   decimal.Decimal `json:"cashback"`
}

// TopExpense is one entry of the largest-expenses list
type TopExpense struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// CategoryCashback is the cashback a category would have earned
type CategoryCashback struct {
	Category string
	Cashback decimal.Decimal
}

// CashbackReport is a ranking of categories by cashback, highest first
type CashbackReport []CategoryCashback

// MarshalJSON renders the report as a single object keyed by category,
// keeping the ranking order of the keys.
func (r CashbackReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, entry := range r {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := encodeKey(entry.Category)
		if err != nil {
			return nil, fmt.Errorf("encoding category %q: %w", entry.Category, err)
		}

		value, err := json.Marshal(entry.Cashback)
		if err != nil {
			return nil, fmt.Errorf("encoding cashback for %q: %w", entry.Category, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the cashback for category
func (r CashbackReport) Get(category string) (decimal.Decimal, bool) {
	for _, entry := range r {
		if entry.Category == category {
			return entry.Cashback, true
		}
	}
	return decimal.Zero, false
}

func encodeKey(key string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
