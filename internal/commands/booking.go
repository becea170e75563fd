package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kundendash-dev/kundendash/internal/model"
	"github.com/kundendash-dev/kundendash/internal/view"
)

func newBookingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Create, edit or delete ledger bookings",
	}

	cmd.AddCommand(newBookingAddCommand(), newBookingEditCommand(), newBookingDeleteCommand())
	return cmd
}

// bookingFlags registers the editable-field flags shared by add and edit.
func bookingFlags(cmd *cobra.Command, tx *bookingForm) {
	cmd.Flags().StringVar(&tx.datum, "datum", "", "Liefer-/Abholdatum (YYYY-MM-DD)")
	cmd.Flags().StringVar(&tx.lieferschein, "lieferschein", "", "Lieferschein Nr.")
	cmd.Flags().StringVar(&tx.abholschein, "abholschein", "", "Abholschein Nr.")
	cmd.Flags().StringVar(&tx.auftragZS, "auftrag-zs", "", "Auftragsnr ZS")
	cmd.Flags().StringVar(&tx.auftragKunde, "auftrag-kunde", "", "Auftragsnr Kunde")
	cmd.Flags().StringVar(&tx.rechnung, "rechnung", "", "Rechnungsnr ZS")
	cmd.Flags().StringVar(&tx.buchungsinfo, "buchungsinfo", "", "Buchungsinfo")
	cmd.Flags().StringVar(&tx.lieferung, "lieferung", "", "Lieferung ZS (Stückzahl)")
	cmd.Flags().StringVar(&tx.abholung, "abholung", "", "Abholung ZS (Stückzahl)")
	cmd.Flags().StringVar(&tx.bemerkungen, "bemerkungen", "", "Bemerkungen")
}

type bookingForm struct {
	datum        string
	lieferschein string
	abholschein  string
	auftragZS    string
	auftragKunde string
	rechnung     string
	buchungsinfo string
	lieferung    string
	abholung     string
	bemerkungen  string
}

// apply copies the flags that were set onto the transaction.
func (f *bookingForm) apply(cmd *cobra.Command, tx *model.Transaction) error {
	set := cmd.Flags().Changed

	if set("datum") {
		tx.LieferAbholdatum = f.datum
	}
	if set("lieferschein") {
		tx.LieferscheinNr = f.lieferschein
	}
	if set("abholschein") {
		tx.AbholscheinNr = f.abholschein
	}
	if set("auftrag-zs") {
		tx.AuftragsNrZS = f.auftragZS
	}
	if set("auftrag-kunde") {
		tx.AuftragsNrKunde = f.auftragKunde
	}
	if set("rechnung") {
		tx.RechnungsNrZS = f.rechnung
	}
	if set("buchungsinfo") {
		tx.Buchungsinfo = f.buchungsinfo
	}
	if set("bemerkungen") {
		tx.Bemerkungen = f.bemerkungen
	}

	if set("lieferung") {
		d, err := decimal.NewFromString(f.lieferung)
		if err != nil {
			return fmt.Errorf("parsing --lieferung %q: %w", f.lieferung, err)
		}
		tx.LieferungZS = d
	}
	if set("abholung") {
		d, err := decimal.NewFromString(f.abholung)
		if err != nil {
			return fmt.Errorf("parsing --abholung %q: %w", f.abholung, err)
		}
		tx.AbholungZS = d
	}
	return nil
}

func newBookingAddCommand() *cobra.Command {
	var form bookingForm

	cmd := &cobra.Command{
		Use:   "add <customer2CaseAndTypeId>",
		Short: "Create a new booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, client, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctrl := view.NewController(client, args[0], controllerOptions(cfg, false))
			ctx := context.Background()
			if err := ctrl.Load(ctx); err != nil {
				return err
			}

			draft := ctrl.NewDraft()
			if err := form.apply(cmd, &draft); err != nil {
				return err
			}

			saved, err := ctrl.Create(ctx, draft)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Buchung %s angelegt (Saldo: %s)\n",
				saved.TransactionID, saved.Saldo)
			return nil
		},
	}

	bookingFlags(cmd, &form)
	return cmd
}

func newBookingEditCommand() *cobra.Command {
	var form bookingForm

	cmd := &cobra.Command{
		Use:   "edit <customer2CaseAndTypeId> <transactionId>",
		Short: "Edit an unconfirmed booking",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, client, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctrl := view.NewController(client, args[0], controllerOptions(cfg, false))
			ctx := context.Background()
			if err := ctrl.Load(ctx); err != nil {
				return err
			}

			tx, ok := ctrl.Get(args[1])
			if !ok {
				return fmt.Errorf("buchung %s nicht gefunden", args[1])
			}
			if err := form.apply(cmd, &tx); err != nil {
				return err
			}

			saved, err := ctrl.Update(ctx, args[1], tx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Buchung %s gespeichert\n", saved.TransactionID)
			return nil
		},
	}

	bookingFlags(cmd, &form)
	return cmd
}

func newBookingDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <customer2CaseAndTypeId> <transactionId>",
		Short: "Delete an unconfirmed booking",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, client, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if !yes && !confirmDelete(cmd) {
				fmt.Fprintln(cmd.OutOrStdout(), "Abgebrochen.")
				return nil
			}

			ctrl := view.NewController(client, args[0], controllerOptions(cfg, false))
			ctx := context.Background()
			if err := ctrl.Load(ctx); err != nil {
				return err
			}

			if err := ctrl.Delete(ctx, args[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Buchung %s gelöscht\n", args[1])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

// confirmDelete asks the destructive-action question on stdin.
func confirmDelete(cmd *cobra.Command) bool {
	fmt.Fprint(cmd.OutOrStdout(), "Möchten Sie diese Buchung wirklich löschen? [j/N]: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "j", "ja", "y", "yes":
		return true
	}
	return false
}
