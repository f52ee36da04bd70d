// Package normalizer turns raw bank statement rows into canonical transactions.
package normalizer

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/tirasundara/statement-digest/internal/domain"
)

// Statement columns as exported by the bank
const (
	ColumnDate        = "Дата операции"
	ColumnCard        = "Номер карты"
	ColumnAmount      = "Сумма операции"
	ColumnCategory    = "Категория"
	ColumnDescription = "Описание"
	ColumnStatus      = "Статус"
	ColumnCurrency    = "Валюта операции"
)

// Columns lists every statement column the normalizer reads
var Columns = []string{
	ColumnDate,
	ColumnCard,
	ColumnAmount,
	ColumnCategory,
	ColumnDescription,
	ColumnStatus,
	ColumnCurrency,
}

const (
	statusOK     = "OK"
	cardMask     = "*"
	missingValue = "nan"
)

// Row is a raw statement row keyed by column name. Absent keys and nil
// values are treated as missing.
type Row map[string]any

// Reason tells whether a row was accepted and why not
type Reason int

const (
	Accepted Reason = iota
	RejectedStatus
	RejectedDate
	RejectedRange
)

func (r Reason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectedStatus:
		return "status"
	case RejectedDate:
		return "date"
	case RejectedRange:
		return "range"
	default:
		return "unknown"
	}
}

// Validate checks that the row has status OK and an operation date inside rng
func Validate(row Row, rng domain.DateRange) Reason {
	if text(row[ColumnStatus]) != statusOK {
		return RejectedStatus
	}

	opTime, ok := operationTime(row[ColumnDate])
	if !ok {
		return RejectedDate
	}

	if !rng.Contains(opTime) {
		return RejectedRange
	}

	return Accepted
}

// Standardize maps a row onto a Transaction, substituting defaults for
// missing fields. It never fails.
func Standardize(row Row) domain.Transaction {
	date := text(row[ColumnDate])
	if opTime, ok := operationTime(row[ColumnDate]); ok {
		date = opTime.Format(domain.OperationTimeLayout)
	}

	return domain.Transaction{
		Date:        date,
		CardNumber:  cardSuffix(row[ColumnCard]),
		Amount:      amount(row[ColumnAmount]),
		Category:    textOr(row[ColumnCategory], domain.DefaultCategory),
		Description: textOr(row[ColumnDescription], ""),
		Currency:    textOr(row[ColumnCurrency], domain.DefaultCurrency),
	}
}

// Normalize validates the row and, when accepted, standardizes it
func Normalize(row Row, rng domain.DateRange) (domain.Transaction, Reason) {
	if reason := Validate(row, rng); reason != Accepted {
		return domain.Transaction{}, reason
	}
	return Standardize(row), Accepted
}

// Tally records the outcome of one row in stats
func Tally(stats *domain.LoadStats, reason Reason) {
	stats.Rows++

	switch reason {
	case Accepted:
		stats.Accepted++
	case RejectedStatus:
		stats.BadStatus++
	case RejectedDate:
		stats.BadDate++
	case RejectedRange:
		stats.OutOfRange++
	}
}

// operationTime accepts the bank's DD.MM.YYYY HH:MM:SS text or a time.Time.
// Anything else, numbers included, is not an operation date.
func operationTime(v any) (time.Time, bool) {
	switch value := v.(type) {
	case time.Time:
		return value, !value.IsZero()
	case string:
		ts, err := time.Parse(domain.OperationTimeLayout, strings.TrimSpace(value))
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	default:
		return time.Time{}, false
	}
}

func cardSuffix(v any) string {
	card := text(v)
	if card == missingValue || !strings.HasPrefix(card, cardMask) {
		return ""
	}
	return card[len(cardMask):]
}

func amount(v any) decimal.Decimal {
	switch value := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return value
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return decimal.Zero
		}
		return d
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func textOr(v any, fallback string) string {
	s := text(v)
	if s == "" || s == missingValue {
		return fallback
	}
	return s
}

func text(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		if math.IsNaN(value) {
			return missingValue
		}
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}
