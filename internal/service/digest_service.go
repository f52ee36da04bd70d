package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tirasundara/statement-digest/internal/aggregate"
	"github.com/tirasundara/statement-digest/internal/domain"
	"github.com/tirasundara/statement-digest/internal/report"
	"github.com/tirasundara/statement-digest/internal/timeutil"
)

// DigestService orchestrates loading the statement and building the digests
type DigestService struct {
	repo     domain.TransactionRepository
	settings domain.SettingsStore
	quotes   domain.QuoteGateway
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a DigestService
type Option func(*DigestService)

// WithClock replaces time.Now, which is used when a timestamp cannot be read
func WithClock(now func() time.Time) Option {
	return func(s *DigestService) {
		s.now = now
	}
}

// NewDigestService creates a new DigestService
func NewDigestService(
	repo domain.TransactionRepository,
	settings domain.SettingsStore,
	quotes domain.QuoteGateway,
	logger *slog.Logger,
	opts ...Option,
) *DigestService {
	s := &DigestService{
		repo:     repo,
		settings: settings,
		quotes:   quotes,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FallbackHomePage is returned whenever the home page cannot be assembled
func FallbackHomePage() domain.HomePage {
	return domain.HomePage{
		Greeting:        timeutil.DefaultGreeting,
		Cards:           []domain.CardSummary{},
		TopTransactions: []domain.TopExpense{},
		CurrencyRates:   []domain.CurrencyRate{},
		StockPrices:     []domain.StockPrice{},
	}
}

// HomePage builds the digest for a YYYY-MM-DD HH:MM:SS timestamp: the
// greeting, the card summaries and top expenses of the month so far, and the
// quotes the user follows. It never fails; any error yields FallbackHomePage.
func (s *DigestService) HomePage(ctx context.Context, ts string) (page domain.HomePage) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("home page assembly panicked", "timestamp", ts, "panic", r)
			page = FallbackHomePage()
		}
	}()

	page, err := s.buildHomePage(ctx, ts)
	if err != nil {
		s.logger.Error("home page assembly failed", "timestamp", ts, "error", err)
		return FallbackHomePage()
	}

	s.logger.Info("home page assembled",
		"timestamp", ts,
		"cards", len(page.Cards),
		"top_transactions", len(page.TopTransactions),
		"currency_rates", len(page.CurrencyRates),
		"stock_prices", len(page.StockPrices))
	return page
}

func (s *DigestService) buildHomePage(ctx context.Context, ts string) (domain.HomePage, error) {
	greeting := timeutil.Greeting(ts)

	start, end := timeutil.MonthRangeAt(ts, s.now())
	rng, err := domain.ParseDateRange(start, end)
	if err != nil {
		return domain.HomePage{}, fmt.Errorf("building month range: %w", err)
	}

	txns, _ := s.LoadTransactions(ctx, rng)

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return domain.HomePage{}, fmt.Errorf("loading user settings: %w", err)
	}

	rates, err := s.currencyRates(ctx, settings.Currencies)
	if err != nil {
		return domain.HomePage{}, err
	}

	prices, err := s.stockPrices(ctx, settings.Stocks)
	if err != nil {
		return domain.HomePage{}, err
	}

	return domain.HomePage{
		Greeting:        greeting,
		Cards:           aggregate.CardsSummary(txns),
		TopTransactions: aggregate.TopExpenses(txns, aggregate.DefaultTopLimit),
		CurrencyRates:   rates,
		StockPrices:     prices,
	}, nil
}

// currencyRates treats missing credentials as an empty list
func (s *DigestService) currencyRates(ctx context.Context, codes []string) ([]domain.CurrencyRate, error) {
	result, err := s.quotes.CurrencyRates(ctx, codes)
	if errors.Is(err, domain.ErrMissingCredentials) {
		s.logger.Error("currency rates skipped", "error", err)
		return []domain.CurrencyRate{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching currency rates: %w", err)
	}

	if len(result.Failures) > 0 {
		s.logger.Warn("some currency rates are unavailable", "failed", len(result.Failures), "fetched", len(result.Rates))
	}
	if result.Rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return result.Rates, nil
}

// stockPrices treats missing credentials as an empty list
func (s *DigestService) stockPrices(ctx context.Context, symbols []string) ([]domain.StockPrice, error) {
	result, err := s.quotes.StockPrices(ctx, symbols)
	if errors.Is(err, domain.ErrMissingCredentials) {
		s.logger.Error("stock prices skipped", "error", err)
		return []domain.StockPrice{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching stock prices: %w", err)
	}

	if len(result.Failures) > 0 {
		s.logger.Warn("some stock prices are unavailable", "failed", len(result.Failures), "fetched", len(result.Prices))
	}
	if result.Prices == nil {
		return []domain.StockPrice{}, nil
	}
	return result.Prices, nil
}

// LoadTransactions loads the statement transactions within rng. A statement
// that cannot be read yields an empty list; the error is logged.
func (s *DigestService) LoadTransactions(ctx context.Context, rng domain.DateRange) ([]domain.Transaction, domain.LoadStats) {
	txns, stats, err := s.repo.GetTransactionsInRange(ctx, rng)
	if err != nil {
		s.logger.Error("failed to load statement", "range", rng.String(), "error", err)
		return []domain.Transaction{}, stats
	}
	return txns, stats
}

// CashbackAnalysis ranks the month's categories by estimated cashback
func (s *DigestService) CashbackAnalysis(txns []domain.Transaction, year int, month time.Month) domain.CashbackReport {
	result := aggregate.CashbackByCategory(txns, year, month)
	if result.Skipped > 0 {
		s.logger.Warn("transactions without a readable date skipped", "skipped", result.Skipped)
	}

	s.logger.Info("cashback analysis complete", "year", year, "month", int(month), "categories", len(result.Report))
	return result.Report
}

// SpendingByCategory returns the category's expenses over the window ending at asOf
func (s *DigestService) SpendingByCategory(txns []domain.Transaction, category string, asOf time.Time) []domain.Transaction {
	if asOf.IsZero() {
		asOf = s.now()
	}

	spending := report.SpendingByCategory(txns, category, asOf)

	s.logger.Info("category spending report complete",
		"category", category,
		"window", report.SpendingWindow(asOf).String(),
		"transactions", len(spending))
	return spending
}
