package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mennaheldaly/Daytrader/internal/models"
)

// addWatchCommands adds watchlist management commands.
func addWatchCommands(rootCmd *cobra.Command, app *App) {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watchlist management",
		Long:  "Manage today's watchlist and the permanent watchlist.",
	}

	watchCmd.AddCommand(newWatchTodayCmd(app))
	watchCmd.AddCommand(newWatchPermanentCmd(app))
	watchCmd.AddCommand(newWatchLastWeekCmd(app))

	rootCmd.AddCommand(watchCmd)
}

func newWatchTodayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Today's watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderWatchlist(cmd, "Today's Watchlist", app.Watchlists.Today())
		},
	}

	addCmd := &cobra.Command{
		Use:   "add SYMBOL",
		Short: "Add a stock to today's watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := strings.ToUpper(args[0])
			reason, _ := cmd.Flags().GetString("reason")
			app.Watchlists.AddToday(symbol, reason)

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Watchlists.Today())
			}
			output.Success("✓ %s added to today's watchlist", symbol)
			return nil
		},
	}
	addCmd.Flags().StringP("reason", "r", "", "why the stock is worth watching")

	removeCmd := &cobra.Command{
		Use:     "remove SYMBOL",
		Aliases: []string{"rm"},
		Short:   "Remove a stock from today's watchlist",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := strings.ToUpper(args[0])
			app.Watchlists.RemoveToday(symbol)

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Watchlists.Today())
			}
			output.Success("✓ %s removed from today's watchlist", symbol)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List today's watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderWatchlist(cmd, "Today's Watchlist", app.Watchlists.Today())
		},
	}

	cmd.AddCommand(addCmd)
	cmd.AddCommand(removeCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

func newWatchPermanentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "permanent",
		Aliases: []string{"perm"},
		Short:   "Permanent watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderWatchlist(cmd, "Permanent Watchlist", app.Watchlists.Permanent())
		},
	}

	addCmd := &cobra.Command{
		Use:   "add SYMBOL",
		Short: "Add a stock to the permanent watchlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := strings.ToUpper(args[0])
			reason, _ := cmd.Flags().GetString("reason")
			app.Watchlists.AddPermanent(symbol, reason)

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Watchlists.Permanent())
			}
			output.Success("✓ %s added to permanent watchlist", symbol)
			return nil
		},
	}
	addCmd.Flags().StringP("reason", "r", "", "why the stock is worth watching")

	removeCmd := &cobra.Command{
		Use:     "remove SYMBOL",
		Aliases: []string{"rm"},
		Short:   "Remove a stock from the permanent watchlist",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := strings.ToUpper(args[0])
			app.Watchlists.RemovePermanent(symbol)

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Watchlists.Permanent())
			}
			output.Success("✓ %s removed from permanent watchlist", symbol)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the permanent watchlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderWatchlist(cmd, "Permanent Watchlist", app.Watchlists.Permanent())
		},
	}

	cmd.AddCommand(addCmd)
	cmd.AddCommand(removeCmd)
	cmd.AddCommand(listCmd)
	return cmd
}

func newWatchLastWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lastweek",
		Short: "Stocks watched over the last week",
		Long:  "Show stocks archived from today's watchlist over the previous seven days, most recent first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderWatchlist(cmd, "Last Week's Stocks", app.Watchlists.LastWeek())
		},
	}
}

// renderWatchlist prints a watchlist as a table or JSON.
func renderWatchlist(cmd *cobra.Command, title string, stocks []models.WatchedStock) error {
	output := NewOutput(cmd)
	if output.IsJSON() {
		return output.JSON(stocks)
	}

	output.Bold(title)
	if len(stocks) == 0 {
		output.Dim("  (empty)")
		return nil
	}

	table := NewTable(output, "SYMBOL", "REASON", "ADDED")
	for _, s := range stocks {
		reason := s.Reason
		if reason == "" {
			reason = "-"
		}
		table.AddRow(s.Symbol, TruncateString(reason, 48), s.DateAdded)
	}
	table.Render()
	return nil
}
