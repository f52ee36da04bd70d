package domain

import "context"

// TransactionRepository defines the interface for loading statement transactions
type TransactionRepository interface {
	// GetTransactionsInRange loads the eligible transactions whose operation date falls within rng
	GetTransactionsInRange(ctx context.Context, rng DateRange) ([]Transaction, LoadStats, error)
}

// SettingsStore defines the interface for reading user settings
type SettingsStore interface {
	Load(ctx context.Context) (UserSettings, error)
}

// QuoteGateway defines the interface for fetching market quotes
type QuoteGateway interface {
	// CurrencyRates quotes each currency code against the rouble
	CurrencyRates(ctx context.Context, codes []string) (RateResult, error)

	// StockPrices fetches the latest close price of each symbol
	StockPrices(ctx context.Context, symbols []string) (PriceResult, error)
}
