package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Layouts used by the bank statement export and by report inputs
const (
	OperationTimeLayout = "02.01.2006 15:04:05"
	OperationDayLayout  = "02.01.2006"
	DateLayout          = "2006-01-02"
	TimestampLayout     = "2006-01-02 15:04:05"
)

// Defaults substituted for missing statement fields
const (
	DefaultCategory = "Other"
	DefaultCurrency = "RUB"
)

func init() {
	// Amounts are rendered as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is a normalized bank statement operation
type Transaction struct {
	Date        string          `json:"date"` // DD.MM.YYYY HH:MM:SS as exported by the bank
	CardNumber  string          `json:"card_number"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Currency    string          `json:"currency"`
}

// Time parses the operation date
func (t Transaction) Time() (time.Time, error) {
	return time.Parse(OperationTimeLayout, t.Date)
}

// IsExpense reports whether the transaction moved money out of the account
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// ExpenseMagnitude returns the absolute amount of an expense, zero for income
func (t Transaction) ExpenseMagnitude() decimal.Decimal {
	if !t.IsExpense() {
		return decimal.Zero
	}
	return t.Amount.Abs()
}
