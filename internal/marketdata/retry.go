package marketdata

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mennaheldaly/Daytrader/internal/models"
)

// RetryConfig holds retry configuration for transient fetch failures.
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns the default retry configuration. The chart API
// rate-limits aggressively, so the attempt count stays small.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  200 * time.Millisecond,
		MaxDelay:      5 * time.Second,
		BackoffFactor: 2.0,
	}
}

// RetryingProvider wraps a Provider with exponential-backoff retries.
type RetryingProvider struct {
	inner  Provider
	cfg    RetryConfig
	logger zerolog.Logger
}

// NewRetryingProvider wraps inner with the default retry configuration.
func NewRetryingProvider(inner Provider, logger zerolog.Logger) *RetryingProvider {
	return &RetryingProvider{
		inner:  inner,
		cfg:    DefaultRetryConfig(),
		logger: logger,
	}
}

// FetchCandles fetches candles, retrying transient failures with backoff.
// Context cancellation stops the retry loop immediately.
func (p *RetryingProvider) FetchCandles(ctx context.Context, symbol, period, interval string) ([]models.Candle, error) {
	var lastErr error
	delay := p.cfg.InitialDelay

	for attempt := 0; attempt < p.cfg.MaxAttempts; attempt++ {
		candles, err := p.inner.FetchCandles(ctx, symbol, period, interval)
		if err == nil {
			return candles, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if attempt < p.cfg.MaxAttempts-1 {
			p.logger.Debug().
				Err(err).
				Str("symbol", symbol).
				Int("attempt", attempt+1).
				Dur("delay", delay).
				Msg("Candle fetch failed, retrying")
			time.Sleep(delay)
			delay = time.Duration(float64(delay) * p.cfg.BackoffFactor)
			if delay > p.cfg.MaxDelay {
				delay = p.cfg.MaxDelay
			}
		}
	}

	return nil, lastErr
}
