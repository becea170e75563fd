package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kundendash-dev/kundendash/internal/customers"
)

func newCaseTypesCommand() *cobra.Command {
	var kundeID int64

	cmd := &cobra.Command{
		Use:   "casetypes",
		Short: "List case-type categories, or one customer's case pairings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, client, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx := context.Background()
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("kunde") {
				cases, err := client.CustomerCases(ctx, kundeID)
				if err != nil {
					return err
				}
				if len(cases) == 0 {
					fmt.Fprintln(out, "Keine CustomerCaseTypes für diesen Kunden vorhanden.")
					return nil
				}
				for _, c := range cases {
					fmt.Fprintf(out, "%s\t%s\n", c.Customer2CaseAndTypeID, c.CaseTypeName)
				}
				return nil
			}

			types, err := client.CaseTypes(ctx)
			if err != nil {
				return err
			}
			if len(types) == 0 {
				fmt.Fprintln(out, "Keine Kategorien vorhanden.")
				return nil
			}
			for _, t := range types {
				fmt.Fprintf(out, "%d\t%s\n", t.ID, t.Name)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&kundeID, "kunde", 0, "list case pairings of this customer id")

	return cmd
}

func newCustomersCommand() *cobra.Command {
	var typ string
	var search string

	cmd := &cobra.Command{
		Use:   "customers",
		Short: "List customers of a case-type category, grouped per customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, logger, client, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx := context.Background()
			out := cmd.OutOrStdout()

			// Without an explicit category the first one is selected, like
			// the dashboard does on load.
			if typ == "" {
				types, err := client.CaseTypes(ctx)
				if err != nil {
					return err
				}
				if len(types) == 0 {
					fmt.Fprintln(out, "Keine Kategorien vorhanden.")
					return nil
				}
				typ = types[0].Name
			}

			rows, err := client.Customers(ctx, typ)
			if err != nil {
				return err
			}

			svc := customers.NewService(rows)
			groups := customers.Groups(svc.Filter(search))
			if len(groups) == 0 {
				fmt.Fprintln(out, "Keine Kunden gefunden.")
				return nil
			}

			logger.Debug("customers listed",
				zap.String("typ", typ),
				zap.Int("groups", len(groups)))

			for _, g := range groups {
				first := g.Rows[0]
				fmt.Fprintf(out, "%s — %s %s %s\n", first.Name, first.Strasse, first.PLZ, first.Ort)
				for _, k := range g.Rows {
					fmt.Fprintf(out, "  %s\t%s\n", k.Customer2CaseAndTypeID, k.CaseTypeName)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "typ", "", "case-type category (defaults to the first one)")
	cmd.Flags().StringVar(&search, "search", "", "filter customers by name, address or case type")

	return cmd
}
