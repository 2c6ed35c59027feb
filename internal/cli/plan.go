package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mennaheldaly/Daytrader/internal/models"
)

// addPlanCommands adds trading-plan commands.
func addPlanCommands(rootCmd *cobra.Command, app *App) {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Trading plan management",
		Long:  "View and edit the daily trading plan and per-stock plans.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderPlan(cmd, app.Plans.Plan())
		},
	}

	planCmd.AddCommand(newPlanShowCmd(app))
	planCmd.AddCommand(newPlanEditCmd(app))
	planCmd.AddCommand(newPlanStockCmd(app))

	rootCmd.AddCommand(planCmd)
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the trading plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderPlan(cmd, app.Plans.Plan())
		},
	}
}

func newPlanEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update fields of the trading plan",
		Long: `Update individual fields of the trading plan. Only the flags you pass
are changed; everything else keeps its current value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := app.Plans.Plan()

			changed := false
			if cmd.Flags().Changed("setup") {
				plan.SetupCriteria, _ = cmd.Flags().GetString("setup")
				changed = true
			}
			if cmd.Flags().Changed("notes") {
				plan.MarketNotes, _ = cmd.Flags().GetString("notes")
				changed = true
			}
			if cmd.Flags().Changed("reminders") {
				plan.MentalReminders, _ = cmd.Flags().GetString("reminders")
				changed = true
			}
			if cmd.Flags().Changed("limits") {
				plan.TacticalLimits, _ = cmd.Flags().GetString("limits")
				changed = true
			}
			if cmd.Flags().Changed("rule") {
				rules, _ := cmd.Flags().GetStringArray("rule")
				plan.Rules = append(plan.Rules, rules...)
				changed = true
			}
			if cmd.Flags().Changed("clear-rules") {
				plan.Rules = nil
				changed = true
			}

			output := NewOutput(cmd)
			if !changed {
				output.Warning("Nothing to update, pass at least one field flag")
				return nil
			}

			app.Plans.SavePlan(plan)
			if output.IsJSON() {
				return output.JSON(app.Plans.Plan())
			}
			output.Success("✓ Trading plan updated")
			return nil
		},
	}

	cmd.Flags().String("setup", "", "setup criteria")
	cmd.Flags().String("notes", "", "market notes")
	cmd.Flags().String("reminders", "", "mental reminders")
	cmd.Flags().String("limits", "", "tactical limits")
	cmd.Flags().StringArray("rule", nil, "append a personal trading rule (repeatable)")
	cmd.Flags().Bool("clear-rules", false, "remove all personal rules")
	return cmd
}

func newPlanStockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Per-stock trading plans",
	}

	showCmd := &cobra.Command{
		Use:   "show SYMBOL",
		Short: "Show the plan for a stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := strings.ToUpper(args[0])
			plan := app.Plans.StockPlan(symbol)

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(plan)
			}

			output.Bold("Plan for %s", symbol)
			if plan.Entry == "" && plan.Exit == "" && plan.Scaling == "" {
				output.Dim("  (no plan recorded)")
				return nil
			}
			printPlanField(output, "Entry", plan.Entry)
			printPlanField(output, "Exit", plan.Exit)
			printPlanField(output, "Scaling", plan.Scaling)
			if plan.LastUpdated != "" {
				output.Dim("  Updated: %s", plan.LastUpdated)
			}
			return nil
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit SYMBOL",
		Short: "Update the plan for a stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := strings.ToUpper(args[0])
			plan := app.Plans.StockPlan(symbol)

			changed := false
			if cmd.Flags().Changed("entry") {
				plan.Entry, _ = cmd.Flags().GetString("entry")
				changed = true
			}
			if cmd.Flags().Changed("exit") {
				plan.Exit, _ = cmd.Flags().GetString("exit")
				changed = true
			}
			if cmd.Flags().Changed("scaling") {
				plan.Scaling, _ = cmd.Flags().GetString("scaling")
				changed = true
			}

			output := NewOutput(cmd)
			if !changed {
				output.Warning("Nothing to update, pass at least one field flag")
				return nil
			}

			app.Plans.SaveStockPlan(symbol, plan)
			if output.IsJSON() {
				return output.JSON(app.Plans.StockPlan(symbol))
			}
			output.Success("✓ Plan for %s updated", symbol)
			return nil
		},
	}
	editCmd.Flags().String("entry", "", "entry conditions")
	editCmd.Flags().String("exit", "", "exit conditions")
	editCmd.Flags().String("scaling", "", "scaling approach")

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all stocks with plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := app.Plans.AllStockPlans()

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(all)
			}

			output.Bold("Stock Plans")
			if len(all) == 0 {
				output.Dim("  (none)")
				return nil
			}

			symbols := make([]string, 0, len(all))
			for sym := range all {
				symbols = append(symbols, sym)
			}
			sort.Strings(symbols)

			table := NewTable(output, "SYMBOL", "ENTRY", "EXIT", "UPDATED")
			for _, sym := range symbols {
				p := all[sym]
				table.AddRow(sym, TruncateString(p.Entry, 32), TruncateString(p.Exit, 32), p.LastUpdated)
			}
			table.Render()
			return nil
		},
	}

	cmd.AddCommand(showCmd)
	cmd.AddCommand(editCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

// renderPlan prints the trading plan.
func renderPlan(cmd *cobra.Command, plan models.TradingPlan) error {
	output := NewOutput(cmd)
	if output.IsJSON() {
		return output.JSON(plan)
	}

	output.Bold("Trading Plan")
	printPlanField(output, "Setup Criteria", plan.SetupCriteria)
	printPlanField(output, "Market Notes", plan.MarketNotes)
	printPlanField(output, "Mental Reminders", plan.MentalReminders)
	printPlanField(output, "Tactical Limits", plan.TacticalLimits)

	output.Println()
	output.Bold("Rules")
	if len(plan.Rules) == 0 {
		output.Dim("  (none)")
	}
	for i, rule := range plan.Rules {
		output.Printf("  %d. %s\n", i+1, rule)
	}

	if plan.LastUpdated != "" {
		output.Println()
		output.Dim("Updated: %s", plan.LastUpdated)
	}
	return nil
}

func printPlanField(output *Output, label, value string) {
	if value == "" {
		value = "-"
	}
	output.Printf("  %s %s\n", output.DimText(PadRight(label+":", 18)), value)
}
