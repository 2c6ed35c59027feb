// Package journal maintains the daily reflection log and its weekly
// aggregates.
package journal

import (
	"sort"
	"time"

	"github.com/mennaheldaly/Daytrader/internal/models"
	"github.com/mennaheldaly/Daytrader/internal/store"
)

// Log is the reflection log: at most one entry per calendar date.
type Log struct {
	docs store.Documents
	now  func() time.Time
}

// NewLog creates a reflection log backed by docs.
func NewLog(docs store.Documents) *Log {
	return &Log{
		docs: docs,
		now:  time.Now,
	}
}

// Reflections returns every recorded reflection in stored order.
func (l *Log) Reflections() []models.DailyReflection {
	var reflections []models.DailyReflection
	l.docs.Load(store.DocReflections, &reflections)
	return reflections
}

// SaveReflection records a reflection, replacing any prior entry for the
// same date. Last write wins; there is no merge.
func (l *Log) SaveReflection(entry models.DailyReflection) {
	reflections := l.Reflections()
	kept := reflections[:0]
	for _, r := range reflections {
		if r.Date != entry.Date {
			kept = append(kept, r)
		}
	}
	kept = append(kept, entry)
	l.docs.Save(store.DocReflections, kept)
}

// lastWeek returns the reflections whose date falls within the trailing
// seven days, inclusive of today. Dates are fixed-width ISO strings, so the
// lexical comparison is equivalent to a calendar comparison.
func (l *Log) lastWeek() []models.DailyReflection {
	cutoff := l.now().AddDate(0, 0, -7).Format(models.DateFormat)

	var window []models.DailyReflection
	for _, r := range l.Reflections() {
		if r.Date >= cutoff {
			window = append(window, r)
		}
	}
	return window
}

// Mistake is a mistake label with its occurrence count.
type Mistake struct {
	Label string
	Count int
}

// MostCommonMistakeLastWeek returns the single most frequent mistake across
// the trailing week's reflections. Ties resolve to the label seen first.
// ok is false when no qualifying reflections carry mistakes.
func (l *Log) MostCommonMistakeLastWeek() (Mistake, bool) {
	counts := newCounter()
	for _, r := range l.lastWeek() {
		for _, m := range r.MistakesMade {
			counts.add(m)
		}
	}

	label, count := counts.mode()
	if count == 0 {
		return Mistake{}, false
	}
	return Mistake{Label: label, Count: count}, true
}

// DateScore pairs a reflection date with its discipline score.
type DateScore struct {
	Date  string
	Score int
}

// Scorecard aggregates the trailing week's reflections.
type Scorecard struct {
	Reflections        []models.DailyReflection
	MistakeCounts      *Counter
	BrokenRuleCounts   *Counter
	GoodPracticeCounts *Counter
	DisciplineScores   []DateScore
	DisciplineStreak   int
	AvgDiscipline      float64
	HasAvg             bool
}

// WeeklyScorecard computes frequency counts, the discipline streak, and the
// average discipline score over the trailing seven days.
func (l *Log) WeeklyScorecard() Scorecard {
	window := l.lastWeek()

	card := Scorecard{
		Reflections:        window,
		MistakeCounts:      newCounter(),
		BrokenRuleCounts:   newCounter(),
		GoodPracticeCounts: newCounter(),
	}

	var sum, n int
	for _, r := range window {
		for _, m := range r.MistakesMade {
			card.MistakeCounts.add(m)
		}
		for _, b := range r.BrokenRules {
			card.BrokenRuleCounts.add(b)
		}
		for _, g := range r.GoodPractices {
			card.GoodPracticeCounts.add(g)
		}
		if r.DisciplineScore != nil {
			card.DisciplineScores = append(card.DisciplineScores, DateScore{
				Date:  r.Date,
				Score: *r.DisciplineScore,
			})
			sum += *r.DisciplineScore
			n++
		}
	}

	card.DisciplineStreak = disciplineStreak(window)

	if n > 0 {
		card.AvgDiscipline = float64(sum) / float64(n)
		card.HasAvg = true
	}
	return card
}

// disciplineStreak counts consecutive days with a score above 8, scanning
// from the most recent reflection backward and stopping at the first day
// that scores 8 or less (or has no score). This is a suffix streak anchored
// at the most recent day, not a longest-run search.
func disciplineStreak(window []models.DailyReflection) int {
	sorted := make([]models.DailyReflection, len(window))
	copy(sorted, window)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	streak := 0
	for _, r := range sorted {
		if r.DisciplineScore == nil || *r.DisciplineScore <= 8 {
			break
		}
		streak++
	}
	return streak
}
