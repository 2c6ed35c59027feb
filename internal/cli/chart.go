package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mennaheldaly/Daytrader/internal/models"
)

// addChartCommands adds market data commands.
func addChartCommands(rootCmd *cobra.Command, app *App) {
	chartCmd := &cobra.Command{
		Use:   "chart SYMBOL",
		Short: "Show recent candles for a symbol",
		Long: `Fetch recent OHLCV candles for a symbol from Yahoo Finance. A failed
fetch reports the data as unavailable; it never aborts the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			symbol := strings.ToUpper(args[0])
			period, _ := cmd.Flags().GetString("period")
			interval, _ := cmd.Flags().GetString("interval")

			candles, err := app.Market.FetchCandles(cmd.Context(), symbol, period, interval)
			if err != nil {
				app.Logger.Warn().Err(err).Str("symbol", symbol).Msg("Market data fetch failed")
				if output.IsJSON() {
					return output.JSON(map[string]string{"symbol": symbol, "status": "unavailable"})
				}
				output.Warning("Market data for %s is unavailable", symbol)
				return nil
			}

			if output.IsJSON() {
				return output.JSON(candlesJSON(symbol, candles))
			}

			output.Bold("%s  (%s, %s candles)", symbol, period, interval)
			if len(candles) == 0 {
				output.Dim("  (no candles returned)")
				return nil
			}

			table := NewTable(output, "TIME", "OPEN", "HIGH", "LOW", "CLOSE", "VOLUME")
			for _, c := range candles {
				table.AddRow(
					FormatDateTime(c.Timestamp),
					FormatPrice(c.Open),
					FormatPrice(c.High),
					FormatPrice(c.Low),
					FormatPrice(c.Close),
					FormatVolume(c.Volume),
				)
			}
			table.Render()

			first, last := candles[0], candles[len(candles)-1]
			change := last.Close - first.Open
			changePct := 0.0
			if first.Open != 0 {
				changePct = change / first.Open * 100
			}
			formatted := FormatChange(change, changePct)
			if change > 0 {
				formatted = output.Green(formatted)
			} else if change < 0 {
				formatted = output.Red(formatted)
			}
			output.Println()
			output.Printf("Change: %s\n", formatted)
			return nil
		},
	}

	chartCmd.Flags().String("period", "5d", "lookback range (1d, 5d, 1mo, 3mo, 1y)")
	chartCmd.Flags().String("interval", "1d", "candle interval (1m, 5m, 15m, 1h, 1d)")
	rootCmd.AddCommand(chartCmd)
}

func candlesJSON(symbol string, candles []models.Candle) map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(candles))
	for _, c := range candles {
		out = append(out, map[string]interface{}{
			"timestamp": c.Timestamp,
			"open":      c.Open,
			"high":      c.High,
			"low":       c.Low,
			"close":     c.Close,
			"volume":    c.Volume,
		})
	}
	return map[string]interface{}{"symbol": symbol, "candles": out}
}
