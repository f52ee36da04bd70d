package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/statement-digest/internal/domain"
	"github.com/tirasundara/statement-digest/internal/report"
)

func TestJSONFormatter_Pretty(t *testing.T) {
	f := report.NewJSONFormatter(true)

	out, err := f.Format(domain.CashbackReport{
		{Category: "Супермаркеты", Cashback: decimal.NewFromInt(80)},
		{Category: "Кафе & бары", Cashback: decimal.NewFromFloat(15.5)},
	})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"Супермаркеты\": 80,\n  \"Кафе & бары\": 15.5\n}", string(out))
	assert.Equal(t, "json", f.FileExtension())
}

func TestJSONFormatter_Compact(t *testing.T) {
	f := report.NewJSONFormatter(false)

	out, err := f.Format([]domain.StockPrice{{Stock: "AAPL", Price: decimal.NewFromFloat(150.25)}})
	require.NoError(t, err)

	assert.Equal(t, `[{"stock":"AAPL","price":150.25}]`, string(out))
}

func TestJSONFormatter_Error(t *testing.T) {
	f := report.NewJSONFormatter(true)

	_, err := f.Format(make(chan int))
	assert.Error(t, err)
}
