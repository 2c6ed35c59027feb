package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	apperrors "github.com/mennaheldaly/Daytrader/internal/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *YahooClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewYahooClient(zerolog.Nop())
	c.baseURL = server.URL
	c.httpClient = server.Client()
	return c
}

const chartPayload = `{
	"chart": {
		"result": [{
			"timestamp": [1756500000, 1756503600, 1756507200],
			"indicators": {
				"quote": [{
					"open":   [230.1, 231.0, null],
					"high":   [231.5, 231.8, null],
					"low":    [229.9, 230.5, null],
					"close":  [231.0, 231.2, null],
					"volume": [1200000, null, null]
				}]
			}
		}],
		"error": null
	}
}`

func TestFetchCandles(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/AAPL" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("range"); got != "5d" {
			t.Errorf("range = %q", got)
		}
		if got := r.URL.Query().Get("interval"); got != "1h" {
			t.Errorf("interval = %q", got)
		}
		w.Write([]byte(chartPayload))
	})

	candles, err := c.FetchCandles(context.Background(), "AAPL", "5d", "1h")
	if err != nil {
		t.Fatalf("FetchCandles: %v", err)
	}

	// The third interval is all nulls (halted) and must be skipped.
	if len(candles) != 2 {
		t.Fatalf("got %d candles, want 2", len(candles))
	}
	if candles[0].Open != 230.1 || candles[0].Volume != 1200000 {
		t.Errorf("first candle = %+v", candles[0])
	}
	// Null volume on an otherwise complete interval reads as zero.
	if candles[1].Volume != 0 {
		t.Errorf("second candle volume = %d, want 0", candles[1].Volume)
	}
}

func TestFetchCandlesRaggedArrays(t *testing.T) {
	// High/Low/Close run shorter than the timestamp and open series; the
	// extra intervals must be dropped, not panic.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"chart": {
				"result": [{
					"timestamp": [1756500000, 1756503600, 1756507200],
					"indicators": {
						"quote": [{
							"open":   [230.1, 231.0, 231.5],
							"high":   [231.5],
							"low":    [229.9],
							"close":  [231.0],
							"volume": [1200000]
						}]
					}
				}],
				"error": null
			}
		}`))
	})

	candles, err := c.FetchCandles(context.Background(), "AAPL", "1d", "1h")
	if err != nil {
		t.Fatalf("FetchCandles: %v", err)
	}
	if len(candles) != 1 {
		t.Errorf("got %d candles, want 1 (shortest array bounds the series)", len(candles))
	}
}

func TestFetchCandlesHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.FetchCandles(context.Background(), "AAPL", "1d", "1d")
	var dataErr *apperrors.DataError
	if !apperrors.As(err, &dataErr) {
		t.Fatalf("error = %v, want DataError", err)
	}
	if dataErr.Symbol != "AAPL" {
		t.Errorf("Symbol = %q", dataErr.Symbol)
	}
}

func TestFetchCandlesAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}}}`))
	})

	_, err := c.FetchCandles(context.Background(), "BOGUS", "1d", "1d")
	if err == nil {
		t.Fatal("expected an error for an API-level failure")
	}
}

func TestFetchCandlesEmptySeries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"chart": {
				"result": [{
					"timestamp": [1756500000],
					"indicators": {"quote": [{"open": [null], "high": [null], "low": [null], "close": [null], "volume": [null]}]}
				}],
				"error": null
			}
		}`))
	})

	if _, err := c.FetchCandles(context.Background(), "AAPL", "1d", "1d"); err == nil {
		t.Fatal("expected an error when every interval is null")
	}
}
