package plans

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mennaheldaly/Daytrader/internal/models"
)

type memDocs struct {
	data map[string][]byte
}

func newMemDocs() *memDocs {
	return &memDocs{data: make(map[string][]byte)}
}

func (m *memDocs) Load(name string, v interface{}) bool {
	raw, ok := m.data[name]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

func (m *memDocs) Save(name string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	m.data[name] = raw
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(newMemDocs())
	s.now = func() time.Time {
		return time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)
	}
	return s
}

func TestPlanDefaultIsEmpty(t *testing.T) {
	s := newTestStore(t)

	plan := s.Plan()
	if plan.SetupCriteria != "" || len(plan.Rules) != 0 {
		t.Errorf("default plan not empty: %+v", plan)
	}
}

func TestSavePlanStampsLastUpdated(t *testing.T) {
	s := newTestStore(t)

	s.SavePlan(models.TradingPlan{
		SetupCriteria: "gap and go",
		Rules:         []string{"max 3 trades"},
	})

	plan := s.Plan()
	if plan.SetupCriteria != "gap and go" {
		t.Errorf("SetupCriteria = %q", plan.SetupCriteria)
	}
	if plan.LastUpdated != "2026-08-30 14:30:00" {
		t.Errorf("LastUpdated = %q, want the save timestamp", plan.LastUpdated)
	}
}

func TestSavePlanReplacesWholesale(t *testing.T) {
	s := newTestStore(t)

	s.SavePlan(models.TradingPlan{SetupCriteria: "old", MarketNotes: "choppy"})
	s.SavePlan(models.TradingPlan{SetupCriteria: "new"})

	plan := s.Plan()
	if plan.MarketNotes != "" {
		t.Errorf("MarketNotes = %q, want empty after wholesale replace", plan.MarketNotes)
	}
}

func TestStockPlanRoundTrip(t *testing.T) {
	s := newTestStore(t)

	s.SaveStockPlan("AAPL", models.StockPlan{
		Entry:   "above 230 with volume",
		Exit:    "stop below 227",
		Scaling: "half at +2R",
	})

	plan := s.StockPlan("AAPL")
	if plan.Entry != "above 230 with volume" || plan.Exit != "stop below 227" {
		t.Errorf("round trip lost fields: %+v", plan)
	}
	if plan.LastUpdated == "" {
		t.Error("LastUpdated not stamped")
	}
}

func TestStockPlanUnknownSymbol(t *testing.T) {
	s := newTestStore(t)

	if plan := s.StockPlan("NVDA"); plan != (models.StockPlan{}) {
		t.Errorf("unknown symbol plan = %+v, want zero value", plan)
	}
}

func TestAllStockPlans(t *testing.T) {
	s := newTestStore(t)

	s.SaveStockPlan("AAPL", models.StockPlan{Entry: "a"})
	s.SaveStockPlan("TSLA", models.StockPlan{Entry: "b"})
	s.SaveStockPlan("AAPL", models.StockPlan{Entry: "c"})

	all := s.AllStockPlans()
	if len(all) != 2 {
		t.Fatalf("got %d plans, want 2", len(all))
	}
	if all["AAPL"].Entry != "c" {
		t.Errorf("AAPL entry = %q, want latest write", all["AAPL"].Entry)
	}
}
