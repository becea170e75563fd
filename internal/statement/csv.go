package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/kundendash-dev/kundendash/internal/model"
)

// Header is the CSV header for statement exports, mirroring the PDF columns.
const Header = "datum,lieferschein_nr,abholschein_nr,rechnungs_nr,lieferung_zs,abholung_zs,saldo,buchungsinfo"

// WriteCSV writes the statement rows as CSV (including header). Same columns
// and formatting as the PDF table, without truncation.
func WriteCSV(w io.Writer, rows []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		record := cells(row)
		if err := cw.Write(record[:]); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
