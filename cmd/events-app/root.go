package main

import (
	"events-app-backend/cmd/events-app/logging"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	envFile   string
	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "events-app",
		Short: "Event management backend: events, RSVPs and monthly holidays",
		// serve when no subcommand is given
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCmd.RunE(cmd, args)
		},
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error), overrides LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console), overrides LOG_FORMAT")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// setup loads configuration and builds the logger shared by all commands.
func setup() (EnvCfg, zerolog.Logger, error) {

	cfg, err := loadConfig(envFile)
	if err != nil {
		return EnvCfg{}, zerolog.Nop(), err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	return cfg, logging.NewLogger(cfg.LogLevel, cfg.LogFormat), nil
}
