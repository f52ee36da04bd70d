package domain

// HomePage is the digest shown on the main page
type HomePage struct {
	Greeting        string         `json:"greeting"`
	Cards           []CardSummary  `json:"cards"`
	TopTransactions []TopExpense   `json:"top_transactions"`
	CurrencyRates   []CurrencyRate `json:"currency_rates"`
	StockPrices     []StockPrice   `json:"stock_prices"`
}

// UserSettings lists the currencies and stocks the user follows
type UserSettings struct {
	Currencies []string `json:"user_currencies"`
	Stocks     []string `json:"user_stocks"`
}

// LoadStats counts the statement rows read and the reasons rows were dropped
type LoadStats struct {
	Rows       int `json:"rows"`
	Accepted   int `json:"accepted"`
	BadStatus  int `json:"bad_status"`
	BadDate    int `json:"bad_date"`
	OutOfRange int `json:"out_of_range"`
}

// Dropped returns the number of rows that did not become transactions
func (s LoadStats) Dropped() int {
	return s.BadStatus + s.BadDate + s.OutOfRange
}
