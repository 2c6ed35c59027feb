// Package watchlist manages the today, permanent, and historical stock lists.
package watchlist

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/mennaheldaly/Daytrader/internal/models"
	"github.com/mennaheldaly/Daytrader/internal/store"
)

// Manager provides CRUD over the watchlists. All operations are idempotent
// with respect to symbol identity: re-adding a symbol updates its reason in
// place, never duplicates it.
type Manager struct {
	docs   store.Documents
	logger zerolog.Logger
	now    func() time.Time
}

// NewManager creates a watchlist manager backed by docs.
func NewManager(docs store.Documents, logger zerolog.Logger) *Manager {
	return &Manager{
		docs:   docs,
		logger: logger,
		now:    time.Now,
	}
}

// Today returns the current trading day's watchlist.
func (m *Manager) Today() []models.WatchedStock {
	var stocks []models.WatchedStock
	m.docs.Load(store.DocTodayStocks, &stocks)
	return stocks
}

// AddToday upserts a stock into today's watchlist, stamping today's date,
// then archives the whole list under today's date. The archive entry for a
// given date always reflects the latest state of the list, not individual
// add events.
func (m *Manager) AddToday(symbol, reason string) {
	stocks := m.Today()
	today := m.now().Format(models.DateFormat)

	updated := false
	for i := range stocks {
		if stocks[i].Symbol == symbol {
			stocks[i].Reason = reason
			stocks[i].DateAdded = today
			updated = true
			break
		}
	}
	if !updated {
		stocks = append(stocks, models.WatchedStock{
			Symbol:    symbol,
			Reason:    reason,
			DateAdded: today,
		})
	}

	m.docs.Save(store.DocTodayStocks, stocks)
	m.archiveToday(stocks)
}

// RemoveToday deletes a symbol from today's watchlist. The historical
// archive is left as-is.
func (m *Manager) RemoveToday(symbol string) {
	stocks := m.Today()
	kept := stocks[:0]
	for _, s := range stocks {
		if s.Symbol != symbol {
			kept = append(kept, s)
		}
	}
	m.docs.Save(store.DocTodayStocks, kept)
}

// Permanent returns the long-term watchlist.
func (m *Manager) Permanent() []models.WatchedStock {
	var stocks []models.WatchedStock
	m.docs.Load(store.DocPermanentStocks, &stocks)
	return stocks
}

// AddPermanent upserts a stock into the permanent watchlist. An existing
// entry keeps its original date_added; only the reason changes.
func (m *Manager) AddPermanent(symbol, reason string) {
	stocks := m.Permanent()

	for i := range stocks {
		if stocks[i].Symbol == symbol {
			stocks[i].Reason = reason
			m.docs.Save(store.DocPermanentStocks, stocks)
			return
		}
	}

	stocks = append(stocks, models.WatchedStock{
		Symbol:    symbol,
		Reason:    reason,
		DateAdded: m.now().Format(models.DateFormat),
	})
	m.docs.Save(store.DocPermanentStocks, stocks)
}

// RemovePermanent deletes a symbol from the permanent watchlist.
func (m *Manager) RemovePermanent(symbol string) {
	stocks := m.Permanent()
	kept := stocks[:0]
	for _, s := range stocks {
		if s.Symbol != symbol {
			kept = append(kept, s)
		}
	}
	m.docs.Save(store.DocPermanentStocks, kept)
}

// LastWeek unions the archived today-lists of the previous seven calendar
// days, most recent day first, excluding today itself. Each symbol appears
// once, keeping the first occurrence encountered. Callers use this as a
// "consider re-adding" suggestion list.
func (m *Manager) LastWeek() []models.WatchedStock {
	historical := make(map[string][]models.WatchedStock)
	m.docs.Load(store.DocHistorical, &historical)

	var result []models.WatchedStock
	seen := make(map[string]bool)

	for i := 1; i <= 7; i++ {
		date := m.now().AddDate(0, 0, -i).Format(models.DateFormat)
		for _, s := range historical[date] {
			if seen[s.Symbol] {
				continue
			}
			seen[s.Symbol] = true
			result = append(result, s)
		}
	}
	return result
}

// archiveToday records the current today-list under today's date in the
// historical map, overwriting any earlier snapshot for the same date. An
// empty list is never archived.
func (m *Manager) archiveToday(stocks []models.WatchedStock) {
	if len(stocks) == 0 {
		return
	}

	historical := make(map[string][]models.WatchedStock)
	m.docs.Load(store.DocHistorical, &historical)

	date := m.now().Format(models.DateFormat)
	historical[date] = stocks
	m.docs.Save(store.DocHistorical, historical)

	m.logger.Debug().Str("date", date).Int("stocks", len(stocks)).Msg("Archived today's watchlist")
}
