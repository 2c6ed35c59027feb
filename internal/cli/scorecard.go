package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mennaheldaly/Daytrader/internal/journal"
)

// addScorecardCommands adds weekly review commands.
func addScorecardCommands(rootCmd *cobra.Command, app *App) {
	scorecardCmd := &cobra.Command{
		Use:   "scorecard",
		Short: "Weekly discipline scorecard",
		Long:  "Aggregate the trailing week's reflections into mistake counts, discipline scores, and streaks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderScorecard(cmd, app.Journal.WeeklyScorecard())
		},
	}

	scorecardCmd.AddCommand(&cobra.Command{
		Use:   "mistake",
		Short: "Most common mistake over the last week",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			mistake, ok := app.Journal.MostCommonMistakeLastWeek()
			if output.IsJSON() {
				if !ok {
					return output.JSON(nil)
				}
				return output.JSON(map[string]interface{}{
					"label": mistake.Label,
					"count": mistake.Count,
				})
			}
			if !ok {
				output.Dim("No mistakes recorded over the last week.")
				return nil
			}
			output.Printf("Most common mistake: %s (%d×)\n", output.BoldText(mistake.Label), mistake.Count)
			return nil
		},
	})

	rootCmd.AddCommand(scorecardCmd)
}

// renderScorecard prints the weekly scorecard.
func renderScorecard(cmd *cobra.Command, card journal.Scorecard) error {
	output := NewOutput(cmd)
	if output.IsJSON() {
		return output.JSON(scorecardJSON(card))
	}

	output.Bold("Weekly Scorecard")
	if len(card.Reflections) == 0 {
		output.Dim("  No reflections recorded over the last week.")
		return nil
	}
	output.Printf("  Reflections: %d\n", len(card.Reflections))
	output.Println()

	renderCounter(output, "Mistakes", card.MistakeCounts)
	renderCounter(output, "Broken Rules", card.BrokenRuleCounts)
	renderCounter(output, "Good Practices", card.GoodPracticeCounts)

	output.Bold("Discipline")
	if len(card.DisciplineScores) == 0 {
		output.Dim("  (no scores recorded)")
		return nil
	}
	for _, ds := range card.DisciplineScores {
		output.Printf("  %s  %s\n", ds.Date, output.FormatScore(ds.Score))
	}
	if card.HasAvg {
		output.Printf("  Average: %.1f\n", card.AvgDiscipline)
	}
	if card.DisciplineStreak > 0 {
		output.Success("  🔥 %d-day streak above 8", card.DisciplineStreak)
	}
	return nil
}

func renderCounter(output *Output, title string, counts *journal.Counter) {
	output.Bold(title)
	if counts.Len() == 0 {
		output.Dim("  (none)")
	} else {
		for _, label := range counts.Labels() {
			output.Printf("  %s %s\n", PadLeft(fmt.Sprintf("%d", counts.Count(label)), 3), label)
		}
	}
	output.Println()
}

// scorecardJSON flattens a Scorecard into JSON-friendly maps.
func scorecardJSON(card journal.Scorecard) map[string]interface{} {
	out := map[string]interface{}{
		"reflections":       card.Reflections,
		"mistakes":          counterJSON(card.MistakeCounts),
		"broken_rules":      counterJSON(card.BrokenRuleCounts),
		"good_practices":    counterJSON(card.GoodPracticeCounts),
		"discipline_streak": card.DisciplineStreak,
	}
	scores := make([]map[string]interface{}, 0, len(card.DisciplineScores))
	for _, ds := range card.DisciplineScores {
		scores = append(scores, map[string]interface{}{"date": ds.Date, "score": ds.Score})
	}
	out["discipline_scores"] = scores
	if card.HasAvg {
		out["avg_discipline"] = card.AvgDiscipline
	}
	return out
}

func counterJSON(counts *journal.Counter) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, counts.Len())
	for _, label := range counts.Labels() {
		out = append(out, map[string]interface{}{"label": label, "count": counts.Count(label)})
	}
	return out
}
