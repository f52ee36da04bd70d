// Package settings loads the user's quote watch list.
package settings

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"github.com/tirasundara/statement-digest/internal/domain"
)

const (
	keyCurrencies = "user_currencies"
	keyStocks     = "user_stocks"
)

var (
	DefaultCurrencies = []string{"USD", "EUR"}
	DefaultStocks     = []string{"AAPL", "AMZN", "GOOGL", "MSFT", "TSLA"}
)

// FileStore reads user settings from a JSON file. Keys absent from the file
// fall back to the default watch lists; a missing file is an error.
type FileStore struct {
	path string
}

var _ domain.SettingsStore = (*FileStore)(nil)

// NewFileStore creates a new FileStore
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (domain.UserSettings, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	v.SetDefault(keyCurrencies, DefaultCurrencies)
	v.SetDefault(keyStocks, DefaultStocks)

	if err := v.ReadInConfig(); err != nil {
		return domain.UserSettings{}, fmt.Errorf("reading user settings %s: %w", s.path, err)
	}

	return domain.UserSettings{
		Currencies: v.GetStringSlice(keyCurrencies),
		Stocks:     v.GetStringSlice(keyStocks),
	}, nil
}
