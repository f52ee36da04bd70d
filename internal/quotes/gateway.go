// Package quotes fetches currency rates and stock prices from public market data APIs.
package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/statement-digest/internal/domain"
)

const (
	DefaultCurrencyURL = "https://api.apilayer.com/exchangerates_data/convert"
	DefaultStockURL    = "http://api.marketstack.com/v1/eod/latest"
	DefaultTimeout     = 10 * time.Second

	// BaseCurrency is the quote currency for every rate
	BaseCurrency = "RUB"

	pricePlaces = 2
)

var errUnexpectedStatusCode = errors.New("unexpected http status code")

// Config holds provider endpoints and credentials
type Config struct {
	CurrencyAPIKey string
	StockAPIKey    string
	CurrencyURL    string
	StockURL       string
	Timeout        time.Duration // per request
}

// Gateway implements domain.QuoteGateway with sequential HTTP calls
type Gateway struct {
	config     Config
	httpClient *http.Client
	logger     *slog.Logger
}

var _ domain.QuoteGateway = (*Gateway)(nil)

// NewGateway creates a new Gateway. A nil httpClient uses http.DefaultClient.
func NewGateway(config Config, httpClient *http.Client, logger *slog.Logger) *Gateway {
	if config.CurrencyURL == "" {
		config.CurrencyURL = DefaultCurrencyURL
	}
	if config.StockURL == "" {
		config.StockURL = DefaultStockURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Gateway{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

type convertResponse struct {
	Success bool            `json:"success"`
	Result  decimal.Decimal `json:"result"`
}

type eodResponse struct {
	Data []struct {
		Symbol string          `json:"symbol"`
		Close  decimal.Decimal `json:"close"`
	} `json:"data"`
}

// CurrencyRates quotes each code against the rouble. The rouble itself is
// always 1 and never requested. Codes that fail are reported in Failures.
func (g *Gateway) CurrencyRates(ctx context.Context, codes []string) (domain.RateResult, error) {
	result := domain.RateResult{Rates: make([]domain.CurrencyRate, 0, len(codes))}
	if strings.TrimSpace(g.config.CurrencyAPIKey) == "" {
		return result, fmt.Errorf("currency rates: %w", domain.ErrMissingCredentials)
	}

	for _, code := range codes {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rate, err := g.currencyRate(ctx, code)
		if err != nil {
			g.logger.Error("failed to fetch currency rate", "currency", code, "error", err)
			result.Failures = append(result.Failures, domain.QuoteFailure{Symbol: code, Err: err})
			continue
		}

		rate = rate.Round(pricePlaces)
		g.logger.Info("currency rate fetched", "currency", code, "rate", rate.String())
		result.Rates = append(result.Rates, domain.CurrencyRate{Currency: code, Rate: rate})
	}

	return result, nil
}

func (g *Gateway) currencyRate(ctx context.Context, code string) (decimal.Decimal, error) {
	if code == BaseCurrency {
		return decimal.NewFromInt(1), nil
	}

	q := url.Values{}
	q.Add("from", code)
	q.Add("to", BaseCurrency)
	q.Add("amount", "1")

	var body convertResponse
	header := http.Header{"apikey": []string{g.config.CurrencyAPIKey}}
	if err := g.getJSON(ctx, g.config.CurrencyURL, q, header, &body); err != nil {
		return decimal.Zero, err
	}

	if !body.Success {
		return decimal.Zero, fmt.Errorf("%w: provider reported failure for %s", domain.ErrQuoteUnavailable, code)
	}
	return body.Result, nil
}

// StockPrices fetches the latest close price of each symbol. Symbols that
// fail are reported in Failures.
func (g *Gateway) StockPrices(ctx context.Context, symbols []string) (domain.PriceResult, error) {
	result := domain.PriceResult{Prices: make([]domain.StockPrice, 0, len(symbols))}
	if strings.TrimSpace(g.config.StockAPIKey) == "" {
		return result, fmt.Errorf("stock prices: %w", domain.ErrMissingCredentials)
	}

	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		price, err := g.stockPrice(ctx, symbol)
		if err != nil {
			g.logger.Error("failed to fetch stock price", "stock", symbol, "error", err)
			result.Failures = append(result.Failures, domain.QuoteFailure{Symbol: symbol, Err: err})
			continue
		}

		price = price.Round(pricePlaces)
		g.logger.Info("stock price fetched", "stock", symbol, "price", price.String())
		result.Prices = append(result.Prices, domain.StockPrice{Stock: symbol, Price: price})
	}

	return result, nil
}

func (g *Gateway) stockPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	q := url.Values{}
	q.Add("access_key", g.config.StockAPIKey)
	q.Add("symbols", symbol)

	var body eodResponse
	if err := g.getJSON(ctx, g.config.StockURL, q, nil, &body); err != nil {
		return decimal.Zero, err
	}

	if len(body.Data) == 0 {
		return decimal.Zero, fmt.Errorf("%w: no price for %s", domain.ErrQuoteUnavailable, symbol)
	}
	return body.Data[0].Close, nil
}

// getJSON sends one GET request bounded by the configured timeout and
// decodes the JSON body into out.
func (g *Gateway) getJSON(ctx context.Context, endpoint string, query url.Values, header http.Header, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	reqURL, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parsing endpoint %q: %w", endpoint, err)
	}
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		// *url.Error prints the full URL, query credentials included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("error sending request to %s: %w", redactURL(reqURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %d", errUnexpectedStatusCode, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error unmarshalling response body: %w", err)
	}
	return nil
}

// redactURL drops the query string, which carries API keys
func redactURL(u *url.URL) string {
	redacted := *u
	redacted.RawQuery = ""
	redacted.User = nil
	return redacted.String()
}
