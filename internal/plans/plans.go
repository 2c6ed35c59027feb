// Package plans persists the trading plan and per-stock plans.
package plans

import (
	"time"

	"github.com/mennaheldaly/Daytrader/internal/models"
	"github.com/mennaheldaly/Daytrader/internal/store"
)

// Store provides whole-record access to the trading plan and map-keyed
// access to per-stock plans.
type Store struct {
	docs store.Documents
	now  func() time.Time
}

// NewStore creates a plan store backed by docs.
func NewStore(docs store.Documents) *Store {
	return &Store{
		docs: docs,
		now:  time.Now,
	}
}

// Plan returns the trading plan, zero-valued when none has been saved.
func (s *Store) Plan() models.TradingPlan {
	var plan models.TradingPlan
	s.docs.Load(store.DocTradingPlan, &plan)
	return plan
}

// SavePlan replaces the trading plan wholesale, stamping LastUpdated.
func (s *Store) SavePlan(plan models.TradingPlan) {
	plan.LastUpdated = s.now().Format(models.TimestampFormat)
	s.docs.Save(store.DocTradingPlan, plan)
}

// StockPlan returns the plan for one symbol, zero-valued when absent.
func (s *Store) StockPlan(symbol string) models.StockPlan {
	return s.AllStockPlans()[symbol]
}

// SaveStockPlan upserts the plan for one symbol, stamping LastUpdated.
func (s *Store) SaveStockPlan(symbol string, plan models.StockPlan) {
	all := s.AllStockPlans()
	plan.LastUpdated = s.now().Format(models.TimestampFormat)
	all[symbol] = plan
	s.docs.Save(store.DocStockPlans, all)
}

// AllStockPlans returns every per-stock plan keyed by symbol.
func (s *Store) AllStockPlans() map[string]models.StockPlan {
	all := make(map[string]models.StockPlan)
	s.docs.Load(store.DocStockPlans, &all)
	return all
}
