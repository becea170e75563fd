// Package commands wires the kundendash CLI: dashboard browsing, the ledger
// detail view, booking mutations and statement export.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kundendash-dev/kundendash/internal/auditlog"
	"github.com/kundendash-dev/kundendash/internal/backend"
	"github.com/kundendash-dev/kundendash/internal/buildinfo"
	"github.com/kundendash-dev/kundendash/internal/config"
	"github.com/kundendash-dev/kundendash/internal/view"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "kundendash",
		Short:   "Kundendashboard für das ZS-Palettenkonto",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", config.DefaultPath, "path to the config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(),
		newCaseTypesCommand(),
		newCustomersCommand(),
		newLedgerCommand(),
		newBookingCommand(),
		newExportCommand(),
	)

	return rootCmd
}

// setup resolves config, logger and backend client from the persistent flags.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, *backend.Client, error) {
	configPath := cmd.Flag("config").Value.String()
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	var logger *zap.Logger
	if cmd.Flag("verbose").Value.String() == "true" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating logger: %w", err)
	}

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Timeout(), logger)
	return cfg, logger, client, nil
}

// controllerOptions builds view options from config, wiring the audit trail
// when enabled.
func controllerOptions(cfg *config.Config, infoMode bool) view.Options {
	opts := view.Options{
		InfoMode: infoMode,
		PageSize: cfg.Display.PageSize,
		User:     cfg.User.Name,
	}
	if cfg.Audit.Enabled && cfg.Audit.Path != "" {
		opts.Audit = auditlog.NewWriter(cfg.Audit.Path)
	}
	return opts
}
