package domain

import "github.com/shopspring/decimal"

// CurrencyRate is the price of one unit of a currency in roubles
type CurrencyRate struct {
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

// StockPrice is the latest close price of a stock
type StockPrice struct {
	Stock string          `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

// QuoteFailure records a single symbol that could not be quoted
type QuoteFailure struct {
	Symbol string
	Err    error
}

// RateResult contains the currency rates that were fetched and the codes that failed
type RateResult struct {
	Rates    []CurrencyRate
	Failures []QuoteFailure
}

// PriceResult contains the stock prices that were fetched and the symbols that failed
type PriceResult struct {
	Prices   []StockPrice
	Failures []QuoteFailure
}
