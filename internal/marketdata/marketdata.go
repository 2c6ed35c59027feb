// Package marketdata fetches historical candles from an external quote API.
package marketdata

import (
	"context"

	"github.com/mennaheldaly/Daytrader/internal/models"
)

// Provider fetches an OHLCV series for a symbol. An unavailable series is an
// error the caller renders as "unavailable"; it is never fatal to the
// session.
type Provider interface {
	FetchCandles(ctx context.Context, symbol, period, interval string) ([]models.Candle, error)
}
