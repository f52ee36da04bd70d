package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/statement-digest/internal/domain"
)

func TestTransaction(t *testing.T) {
	tx := domain.Transaction{
		Date:        "15.05.2024 12:00:00",
		CardNumber:  "1234",
		Amount:      decimal.NewFromFloat(-1000.50),
		Category:    "Супермаркеты",
		Description: "Пятерочка",
		Currency:    domain.DefaultCurrency,
	}

	ts, err := tx.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC), ts)

	assert.True(t, tx.IsExpense())
	assert.True(t, tx.ExpenseMagnitude().Equal(decimal.NewFromFloat(1000.50)))
}

func TestTransaction_Income(t *testing.T) {
	tx := domain.Transaction{Amount: decimal.NewFromInt(50000)}

	assert.False(t, tx.IsExpense())
	assert.True(t, tx.ExpenseMagnitude().IsZero())
}

func TestTransaction_InvalidDate(t *testing.T) {
	tx := domain.Transaction{Date: "2024-05-15"}

	_, err := tx.Time()
	assert.Error(t, err)
}

func TestDateRange_Contains(t *testing.T) {
	rng, err := domain.ParseDateRange("2024-05-01", "2024-05-15")
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"first day midnight", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"last day late evening", time.Date(2024, 5, 15, 23, 59, 59, 0, time.UTC), true},
		{"day before", time.Date(2024, 4, 30, 23, 59, 59, 0, time.UTC), false},
		{"day after", time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rng.Contains(tt.at))
		})
	}
}

func TestParseDateRange_Errors(t *testing.T) {
	_, err := domain.ParseDateRange("2024-13-01", "2024-05-15")
	assert.Error(t, err)

	_, err = domain.ParseDateRange("2024-05-01", "15.05.2024")
	assert.Error(t, err)

	_, err = domain.ParseDateRange("2024-05-15", "2024-05-01")
	assert.Error(t, err)
}
