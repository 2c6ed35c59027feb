package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mennaheldaly/Daytrader/internal/models"
)

// addReflectCommands adds daily-reflection commands.
func addReflectCommands(rootCmd *cobra.Command, app *App) {
	reflectCmd := &cobra.Command{
		Use:   "reflect",
		Short: "Daily reflections",
		Long:  "Record and review end-of-day reflections. One reflection is kept per date.",
	}

	reflectCmd.AddCommand(newReflectAddCmd(app))
	reflectCmd.AddCommand(newReflectShowCmd(app))
	reflectCmd.AddCommand(newReflectOptionsCmd(app))

	rootCmd.AddCommand(reflectCmd)
}

func newReflectAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record today's reflection",
		Long: `Record the reflection for a date. Recording a second reflection for the
same date replaces the first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			date, _ := cmd.Flags().GetString("date")
			if date == "" {
				date = time.Now().Format(models.DateFormat)
			} else if _, err := time.Parse(models.DateFormat, date); err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
			}

			var score *int
			if cmd.Flags().Changed("score") {
				n, _ := cmd.Flags().GetInt("score")
				if n != 0 {
					if n < 1 || n > 10 {
						return fmt.Errorf("score must be between 1 and 10")
					}
					score = &n
				}
			}

			broken, _ := cmd.Flags().GetStringArray("broke")
			mistakes, _ := cmd.Flags().GetStringArray("mistake")
			practices, _ := cmd.Flags().GetStringArray("did-well")
			notes, _ := cmd.Flags().GetString("notes")

			entry := models.DailyReflection{
				Date:            date,
				BrokenRules:     broken,
				MistakesMade:    mistakes,
				GoodPractices:   practices,
				DisciplineScore: score,
				ReflectionNotes: notes,
			}
			app.Journal.SaveReflection(entry)

			if output.IsJSON() {
				return output.JSON(entry)
			}
			output.Success("✓ Reflection recorded for %s", date)
			if score != nil {
				output.Printf("  Discipline: %s\n", output.FormatScore(*score))
			}
			return nil
		},
	}

	cmd.Flags().String("date", "", "reflection date (default: today)")
	cmd.Flags().Int("score", 0, "discipline score 1-10, 0 to skip")
	cmd.Flags().StringArray("broke", nil, "rule broken today (repeatable)")
	cmd.Flags().StringArray("mistake", nil, "mistake made today (repeatable)")
	cmd.Flags().StringArray("did-well", nil, "good practice followed today (repeatable)")
	cmd.Flags().StringP("notes", "n", "", "free-form reflection notes")
	return cmd
}

func newReflectShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show recorded reflections",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			reflections := app.Journal.Reflections()

			if date, _ := cmd.Flags().GetString("date"); date != "" {
				for _, r := range reflections {
					if r.Date == date {
						if output.IsJSON() {
							return output.JSON(r)
						}
						printReflection(output, r)
						return nil
					}
				}
				output.Warning("No reflection recorded for %s", date)
				return nil
			}

			if output.IsJSON() {
				return output.JSON(reflections)
			}

			output.Bold("Reflections")
			if len(reflections) == 0 {
				output.Dim("  (none)")
				return nil
			}
			for _, r := range reflections {
				output.Println()
				printReflection(output, r)
			}
			return nil
		},
	}
	cmd.Flags().String("date", "", "show a single date (YYYY-MM-DD)")
	return cmd
}

func newReflectOptionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Show the catalog of common mistakes, rules, and good practices",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(map[string][]string{
					"common_mistakes": models.CommonMistakes(),
					"trading_rules":   models.TradingRules(),
					"good_practices":  models.GoodPractices(),
				})
			}

			output.Bold("Common Mistakes")
			for _, m := range models.CommonMistakes() {
				output.Printf("  • %s\n", m)
			}
			output.Println()
			output.Bold("Trading Rules")
			for _, r := range models.TradingRules() {
				output.Printf("  • %s\n", r)
			}
			output.Println()
			output.Bold("Good Practices")
			for _, p := range models.GoodPractices() {
				output.Printf("  • %s\n", p)
			}
			return nil
		},
	}
}

// printReflection prints one reflection entry.
func printReflection(output *Output, r models.DailyReflection) {
	header := r.Date
	if r.DisciplineScore != nil {
		header += "  " + output.FormatScore(*r.DisciplineScore)
	}
	output.Bold(header)

	printReflectionList(output, "Broken rules", r.BrokenRules)
	printReflectionList(output, "Mistakes", r.MistakesMade)
	printReflectionList(output, "Did well", r.GoodPractices)
	if r.ReflectionNotes != "" {
		output.Printf("  %s %s\n", output.DimText("Notes:"), r.ReflectionNotes)
	}
}

func printReflectionList(output *Output, label string, items []string) {
	if len(items) == 0 {
		return
	}
	output.Printf("  %s\n", output.DimText(label+":"))
	for _, item := range items {
		output.Printf("    • %s\n", item)
	}
}
