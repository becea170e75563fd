package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kundendash-dev/kundendash/internal/config"
)

func newInitCommand() *cobra.Command {
	var backendURL string
	var user string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a kundendash working directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, backendURL, user)
		},
	}

	cmd.Flags().StringVar(&backendURL, "backend-url", "", "base URL of the backend REST API (required)")
	_ = cmd.MarkFlagRequired("backend-url")
	cmd.Flags().StringVar(&user, "user", "", "operator name for audit stamping")

	return cmd
}

func runInit(cmd *cobra.Command, dir, backendURL, user string) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "exports"), 0o755); err != nil {
		return fmt.Errorf("creating exports dir: %w", err)
	}

	cfg := config.Default()
	cfg.Backend.BaseURL = backendURL
	cfg.User.Name = user
	if err := config.Save(filepath.Join(dir, config.DefaultPath), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized kundendash at %s\n", dir)
	return nil
}
