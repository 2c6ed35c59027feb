package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mennaheldaly/Daytrader/internal/cli"
	"github.com/mennaheldaly/Daytrader/internal/config"
	"github.com/mennaheldaly/Daytrader/internal/logging"
)

// bootstrap loads environment overrides and configuration, then builds the
// application logger from the configured settings.
func bootstrap() (*config.Config, zerolog.Logger, error) {
	_ = godotenv.Load()

	configDir := os.Getenv("DAYTRADER_CONFIG_DIR")
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logCfg := logging.DefaultLogConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Console = cfg.Logging.Console
	logCfg.File = cfg.Logging.File
	logger := logging.NewLoggerWithConfig(logCfg)

	return cfg, logger, nil
}

func newRootCommand(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	return cli.NewRootCmd(cfg, logger)
}
