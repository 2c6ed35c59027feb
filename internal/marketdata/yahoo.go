package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/mennaheldaly/Daytrader/internal/errors"
	"github.com/mennaheldaly/Daytrader/internal/models"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// YahooClient implements Provider against the Yahoo Finance chart API.
type YahooClient struct {
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

// NewYahooClient creates a Yahoo Finance candle fetcher.
func NewYahooClient(logger zerolog.Logger) *YahooClient {
	return &YahooClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		logger:     logger,
	}
}

// chartResponse mirrors the subset of the chart API payload we read.
// Price and volume arrays carry nulls for halted intervals.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchCandles retrieves candles for symbol over the given range ("1d",
// "5d", "1mo", ...) and interval ("5m", "1h", "1d", ...).
func (c *YahooClient) FetchCandles(ctx context.Context, symbol, period, interval string) ([]models.Candle, error) {
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(period), url.QueryEscape(interval))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewDataError(symbol, "failed to build request", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewDataError(symbol, "chart request failed", err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("symbol", symbol).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Chart API call")

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewDataError(symbol, fmt.Sprintf("chart API returned %d", resp.StatusCode), nil)
	}

	var payload chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.NewDataError(symbol, "failed to decode chart response", err)
	}
	if payload.Chart.Error != nil {
		return nil, apperrors.NewDataError(symbol, payload.Chart.Error.Description, nil)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, apperrors.NewDataError(symbol, "no chart data", nil)
	}

	result := payload.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	// The API can return price arrays shorter than the timestamp series.
	n := len(result.Timestamp)
	for _, arr := range [][]*float64{quote.Open, quote.High, quote.Low, quote.Close} {
		if len(arr) < n {
			n = len(arr)
		}
	}

	var candles []models.Candle
	for i, ts := range result.Timestamp[:n] {
		if quote.Open[i] == nil || quote.High[i] == nil ||
			quote.Low[i] == nil || quote.Close[i] == nil {
			continue
		}
		candle := models.Candle{
			Timestamp: time.Unix(ts, 0),
			Open:      *quote.Open[i],
			High:      *quote.High[i],
			Low:       *quote.Low[i],
			Close:     *quote.Close[i],
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			candle.Volume = *quote.Volume[i]
		}
		candles = append(candles, candle)
	}

	if len(candles) == 0 {
		return nil, apperrors.NewDataError(symbol, "empty candle series", nil)
	}
	return candles, nil
}
