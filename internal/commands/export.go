package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kundendash-dev/kundendash/internal/statement"
)

func newExportCommand() *cobra.Command {
	var out string
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "export <customer2CaseAndTypeId> <datum>",
		Short: "Export a Saldenbestätigung for a customer/case pairing",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, client, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			caseID, datum := args[0], args[1]

			rows, err := client.StatementRows(context.Background(), caseID, datum)
			if err != nil {
				return err
			}

			if asCSV {
				if out == "" {
					out = fmt.Sprintf("report_%s.csv", caseID)
				}
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				if err := statement.WriteCSV(f, rows); err != nil {
					return err
				}
			} else {
				if out == "" {
					out = fmt.Sprintf("report_%s.pdf", caseID)
				}
				doc, err := statement.Build(rows)
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, doc, 0o644); err != nil {
					return fmt.Errorf("writing export file: %w", err)
				}
			}

			logger.Info("statement exported",
				zap.String("case_id", caseID),
				zap.String("datum", datum),
				zap.Int("rows", len(rows)),
				zap.String("file", out))
			fmt.Fprintf(cmd.OutOrStdout(), "Export geschrieben: %s (%d Buchungen)\n", out, len(rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default report_<id>.pdf)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV instead of PDF")

	return cmd
}
