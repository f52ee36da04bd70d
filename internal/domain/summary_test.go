package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/statement-digest/internal/domain"
)

func TestCashbackReport_MarshalJSONKeepsRankingOrder(t *testing.T) {
	report := domain.CashbackReport{
		{Category: "Супермаркеты", Cashback: decimal.NewFromInt(80)},
		{Category: "Транспорт", Cashback: decimal.NewFromInt(20)},
		{Category: "Кафе", Cashback: decimal.NewFromInt(15)},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	assert.Equal(t, `{"Супермаркеты":80,"Транспорт":20,"Кафе":15}`, string(data))
}

func TestCashbackReport_MarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(domain.CashbackReport{})
	require.NoError(t, err)

	assert.Equal(t, `{}`, string(data))
}

func TestCashbackReport_Get(t *testing.T) {
	report := domain.CashbackReport{
		{Category: "Кафе", Cashback: decimal.NewFromInt(15)},
	}

	got, ok := report.Get("Кафе")
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.NewFromInt(15)))

	_, ok = report.Get("Транспорт")
	assert.False(t, ok)
}

func TestHomePage_MarshalJSON(t *testing.T) {
	page := domain.HomePage{
		Greeting: "Good afternoon",
		Cards: []domain.CardSummary{
			{LastDigits: "1234", TotalSpent: decimal.NewFromFloat(1500.25), Cashback: decimal.NewFromFloat(15)},
		},
		TopTransactions: []domain.TopExpense{},
		CurrencyRates:   []domain.CurrencyRate{{Currency: "RUB", Rate: decimal.NewFromInt(1)}},
		StockPrices:     []domain.StockPrice{},
	}

	data, err := json.Marshal(page)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"greeting": "Good afternoon",
		"cards": [{"last_digits": "1234", "total_spent": 1500.25, "cashback": 15}],
		"top_transactions": [],
		"currency_rates": [{"currency": "RUB", "rate": 1}],
		"stock_prices": []
	}`, string(data))
}

func TestLoadStats_Dropped(t *testing.T) {
	stats := domain.LoadStats{Rows: 10, Accepted: 4, BadStatus: 3, BadDate: 1, OutOfRange: 2}
	assert.Equal(t, 6, stats.Dropped())
}
