// Package store provides data persistence interfaces and implementations.
package store

// Document kinds persisted per user. Each kind maps to one JSON file.
const (
	DocTodayStocks     = "today_stocks"
	DocPermanentStocks = "permanent_stocks"
	DocTradingPlan     = "trading_plan"
	DocStockPlans      = "stock_trading_plans"
	DocReflections     = "reflections"
	DocHistorical      = "historical_stocks"
)

// Documents defines key-value persistence of small JSON-shaped documents.
//
// Load decodes the named document into v and reports whether anything was
// decoded. A missing, unreadable, or malformed document leaves v untouched
// and returns false, never an error: the caller's default survives every
// failure, and a partial decode never leaks out. Save overwrites the named
// document; write failures are logged and swallowed, so a subsequent Load
// may return stale data. The journal always degrades to a default or stale
// view rather than failing.
type Documents interface {
	Load(name string, v interface{}) bool
	Save(name string, v interface{})
}
