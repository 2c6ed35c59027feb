// Package models provides domain models for the trading journal.
package models

import (
	"time"
)

// DateFormat is the calendar-date layout used in every persisted document.
// Dates are kept as fixed-width ISO strings so lexical comparison orders
// them correctly.
const DateFormat = "2006-01-02"

// TimestampFormat is the layout used for last_updated stamps.
const TimestampFormat = "2006-01-02 15:04:05"

// WatchedStock is a single entry on a watchlist.
type WatchedStock struct {
	Symbol    string `json:"symbol"`
	Reason    string `json:"reason"`
	DateAdded string `json:"date_added"`
}

// TradingPlan is the trader's single free-text plan record. It is replaced
// wholesale on save; LastUpdated is stamped by the plan store.
type TradingPlan struct {
	SetupCriteria   string   `json:"setup_criteria"`
	MarketNotes     string   `json:"market_notes"`
	MentalReminders string   `json:"mental_reminders"`
	TacticalLimits  string   `json:"tactical_limits"`
	Rules           []string `json:"rules"`
	LastUpdated     string   `json:"last_updated"`
}

// StockPlan holds entry/exit/scaling notes for one symbol.
type StockPlan struct {
	Entry       string `json:"entry"`
	Exit        string `json:"exit"`
	Scaling     string `json:"scaling"`
	LastUpdated string `json:"last_updated"`
}

// DailyReflection is the end-of-day review for one calendar date.
// DisciplineScore is nil when the trader skipped scoring that day.
type DailyReflection struct {
	Date            string   `json:"date"`
	BrokenRules     []string `json:"broken_rules"`
	MistakesMade    []string `json:"mistakes_made"`
	GoodPractices   []string `json:"good_practices"`
	DisciplineScore *int     `json:"discipline_score"`
	ReflectionNotes string   `json:"reflection_notes"`
}

// User is a registered account in the credential store.
type User struct {
	ID       int64
	Username string
	Email    string
}

// Candle represents OHLCV data for a time period.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
}
