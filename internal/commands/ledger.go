package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kundendash-dev/kundendash/internal/model"
	"github.com/kundendash-dev/kundendash/internal/view"
)

// Terminal markers for search-term highlighting (reverse video).
const (
	highlightOn  = "\x1b[7m"
	highlightOff = "\x1b[27m"
)

// Row state indicators shown in the Status column.
const (
	statusConfirmed   = "bestätigt"
	statusUnconfirmed = "offen"
)

func newLedgerCommand() *cobra.Command {
	var filter string
	var page int
	var pageSize int
	var jump string
	var tab int
	var infoMode bool

	cmd := &cobra.Command{
		Use:   "ledger <customer2CaseAndTypeId>",
		Short: "Show the transaction ledger of a customer/case pairing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, client, err := setup(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			if tab < 0 || tab >= len(view.ColumnGroups) {
				return fmt.Errorf("unknown tab %d", tab)
			}

			opts := controllerOptions(cfg, infoMode)
			if pageSize > 0 {
				opts.PageSize = pageSize
			}

			ctrl := view.NewController(client, args[0], opts)
			if err := ctrl.Load(context.Background()); err != nil {
				return err
			}

			ctrl.SetFilter(filter)
			if cmd.Flags().Changed("page") {
				ctrl.SetPage(page)
			}

			term := filter
			if jump != "" {
				term = jump
				if _, ok := ctrl.JumpTo(jump); !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "Kein Treffer für %q.\n", jump)
				}
			}

			renderLedger(cmd.OutOrStdout(), ctrl, view.ColumnGroups[tab], term, infoMode)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "show only rows matching this term")
	cmd.Flags().IntVar(&page, "page", 0, "page to show (defaults to the last page)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page")
	cmd.Flags().StringVar(&jump, "jump", "", "jump to the first row matching this term")
	cmd.Flags().IntVar(&tab, "tab", 0, "column group: 0 Buchungsdaten, 1 Änderungsdaten")
	cmd.Flags().BoolVar(&infoMode, "info", false, "read-only info display")

	return cmd
}

// renderLedger writes the current page of the controller as a table. All
// occurrences of term in the rendered cells are highlighted.
func renderLedger(w io.Writer, ctrl *view.Controller, group view.ColumnGroup, term string, infoMode bool) {
	rows := ctrl.VisibleRows()
	if len(rows) == 0 {
		fmt.Fprintln(w, "Keine Buchungen vorhanden.")
		return
	}

	fmt.Fprintln(w, rows[0].CustName)
	if info := rows[0].CustCaseTypeBeschreibung; info != "" {
		fmt.Fprintf(w, "Info: %s\n", info)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	headers := make([]string, 0, len(group.Fields)+1)
	for _, f := range group.Fields {
		headers = append(headers, view.Label(f))
	}
	if !infoMode {
		headers = append(headers, "Status")
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, row := range rows {
		cells := make([]string, 0, len(group.Fields)+1)
		for _, f := range group.Fields {
			cells = append(cells, view.Mark(view.CellText(row, f), term, highlightOn, highlightOff))
		}
		if !infoMode {
			cells = append(cells, statusIndicator(row))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nSeite %d von %d — %d Buchungen (Zeilen pro Seite: %d)\n",
		ctrl.Page()+1, ctrl.PageCount(), len(ctrl.Filtered()), ctrl.PageSize())
}

func statusIndicator(row model.Transaction) string {
	if row.State() == model.RowConfirmed {
		return statusConfirmed
	}
	return statusUnconfirmed
}
