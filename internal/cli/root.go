// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mennaheldaly/Daytrader/internal/auth"
	"github.com/mennaheldaly/Daytrader/internal/config"
	"github.com/mennaheldaly/Daytrader/internal/journal"
	"github.com/mennaheldaly/Daytrader/internal/logging"
	"github.com/mennaheldaly/Daytrader/internal/marketdata"
	"github.com/mennaheldaly/Daytrader/internal/plans"
	"github.com/mennaheldaly/Daytrader/internal/store"
	"github.com/mennaheldaly/Daytrader/internal/watchlist"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies. Managers are constructed once and
// passed explicitly; there are no ambient globals.
type App struct {
	Config     *config.Config
	Logger     zerolog.Logger
	Docs       store.Documents
	Watchlists *watchlist.Manager
	Plans      *plans.Store
	Journal    *journal.Log
	Users      *auth.Manager
	Market     marketdata.Provider
}

// initManagers builds the document-backed managers for a username. Called at
// startup and again when --user overrides the configured username.
func (a *App) initManagers(username string) error {
	docs, err := store.NewFileStore(a.Config.Storage.DataDir, username, logging.WithUser(a.Logger, username))
	if err != nil {
		return err
	}
	a.Docs = docs
	a.Watchlists = watchlist.NewManager(docs, a.Logger)
	a.Plans = plans.NewStore(docs)
	a.Journal = journal.NewLog(docs)
	return nil
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initManagers(cfg.Storage.Username); err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize document store, journal data unavailable")
	}

	users, err := auth.NewManager(cfg.Storage.UsersDB, auth.NewHasher(cfg.Auth.Hasher), logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to open user database, account commands unavailable")
	} else {
		app.Users = users
	}

	app.Market = marketdata.NewRetryingProvider(marketdata.NewYahooClient(logger), logger)

	rootCmd := &cobra.Command{
		Use:   "daytrader",
		Short: "Daytrader - a personal day-trading journal",
		Long: `Daytrader is a personal day-trading journal for the terminal.

Track stock watchlists, keep a trading plan, record end-of-day reflections,
and review weekly discipline statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}

			user, _ := cmd.Flags().GetString("user")
			username := app.Config.Storage.Username
			if user != "" {
				username = user
			}
			if app.Watchlists == nil || username != app.Config.Storage.Username {
				return app.initManagers(username)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("user", "", "username namespacing the journal files")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Command groups
	addWatchCommands(rootCmd, app)
	addPlanCommands(rootCmd, app)
	addReflectCommands(rootCmd, app)
	addScorecardCommands(rootCmd, app)
	addUserCommands(rootCmd, app)
	addChartCommands(rootCmd, app)
	addCoreCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Daytrader v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}

			output.Bold("Storage")
			output.Printf("  Data Dir:  %s\n", app.Config.Storage.DataDir)
			output.Printf("  Users DB:  %s\n", app.Config.Storage.UsersDB)
			username := app.Config.Storage.Username
			if username == "" {
				username = "(single-user)"
			}
			output.Printf("  Username:  %s\n", username)
			output.Println()

			output.Bold("Auth")
			output.Printf("  Hasher:    %s\n", app.Config.Auth.Hasher)
			output.Println()

			output.Bold("Logging")
			output.Printf("  Level:     %s\n", app.Config.Logging.Level)
			output.Printf("  Console:   %v\n", app.Config.Logging.Console)
			output.Printf("  File:      %v\n", app.Config.Logging.File)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}
