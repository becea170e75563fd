// Package statement renders a customer's transaction rows into a printable
// Saldenbestätigung: a paginated A4-landscape table, or its CSV form.
package statement

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/kundendash-dev/kundendash/internal/ledger"
	"github.com/kundendash-dev/kundendash/internal/model"
)

// Page geometry in points, A4 landscape. The table occupies the page body
// between tableTop and bodyFloor; rows never split across pages.
const (
	marginLeft = 40.0
	rowHeight  = 22.0

	titleY       = 45.0
	tableTop     = 85.0
	continuedTop = 45.0
	bodyFloor    = 535.0

	footerX = 400.0
	footerY = 575.0

	fontSize   = 9.0
	titleSize  = 20.0
	footerSize = 10.0

	cellPad = 3.0
)

// colWidths are fixed per column; Buchungsinfo gets the wide remainder.
var colWidths = [8]float64{70, 70, 70, 70, 60, 60, 60, 310}

// colBuchungsinfo is the only column that truncates with an ellipsis.
const colBuchungsinfo = 7

var headerCells = [8]string{
	"Datum", "Lieferschein", "Abholschein", "Rechnung",
	"Lieferung ZS", "Abholung ZS", "Saldo", "Buchungsinfo",
}

// Build renders rows as a complete standalone PDF byte stream. The caller is
// responsible for delivering it (download, save, transmit).
func Build(rows []model.Transaction) ([]byte, error) {
	pdf := fpdf.New("L", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineWidth(1)

	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", footerSize)
		pdf.SetTextColor(77, 77, 77)
		pdf.Text(footerX, footerY, tr(fmt.Sprintf("Seite %d", pdf.PageNo())))
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", titleSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(marginLeft, titleY, tr("Saldenbestätigung"))

	t := &table{pdf: pdf, tr: tr, y: tableTop}
	t.drawHeader()
	for i, row := range rows {
		t.drawRow(cells(row), i)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering statement: %w", err)
	}
	return buf.Bytes(), nil
}

// cells maps one transaction onto the statement's 8 columns.
func cells(row model.Transaction) [8]string {
	return [8]string{
		ledger.FormatDate(row.LieferAbholdatum),
		row.LieferscheinNr,
		row.AbholscheinNr,
		row.RechnungsNrZS,
		row.LieferungZS.String(),
		row.AbholungZS.String(),
		row.Saldo.String(),
		row.Buchungsinfo,
	}
}

type table struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func tableWidth() float64 {
	var w float64
	for _, c := range colWidths {
		w += c
	}
	return w
}

func (t *table) drawHeader() {
	t.pdf.SetFont("Helvetica", "", fontSize)
	t.pdf.SetFillColor(38, 89, 166)
	t.pdf.Rect(marginLeft, t.y, tableWidth(), rowHeight, "F")

	t.pdf.SetDrawColor(51, 51, 51)
	t.pdf.SetTextColor(255, 255, 255)
	t.drawCells(headerCells)
	t.y += rowHeight
}

func (t *table) drawRow(row [8]string, index int) {
	if t.y+rowHeight > bodyFloor {
		t.pdf.AddPage()
		t.y = continuedTop
	}

	t.pdf.SetFont("Helvetica", "", fontSize)
	if index%2 == 1 {
		t.pdf.SetFillColor(237, 237, 237)
		t.pdf.Rect(marginLeft, t.y, tableWidth(), rowHeight, "F")
	}

	t.pdf.SetDrawColor(51, 51, 51)
	t.pdf.SetTextColor(0, 0, 0)
	t.drawCells(row)
	t.y += rowHeight
}

func (t *table) drawCells(row [8]string) {
	x := marginLeft
	baseline := t.y + rowHeight/2 + fontSize/2 - 4

	for i, cell := range row {
		t.pdf.Rect(x, t.y, colWidths[i], rowHeight, "D")

		text := t.tr(cell)
		if i == colBuchungsinfo {
			text = t.fitText(text, colWidths[i]-2*cellPad)
		}
		t.pdf.Text(x+cellPad, baseline, text)

		x += colWidths[i]
	}
}

// fitText trims s until it fits maxWidth at the current font, replacing the
// trailing characters with "..." only when something was actually cut.
func (t *table) fitText(s string, maxWidth float64) string {
	trimmed := s
	for len(trimmed) > 0 && t.pdf.GetStringWidth(trimmed) > maxWidth {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if trimmed == s {
		return s
	}
	if len(trimmed) > 3 {
		trimmed = trimmed[:len(trimmed)-3]
	}
	return trimmed + "..."
}
