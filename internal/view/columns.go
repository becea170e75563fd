package view

import (
	"github.com/kundendash-dev/kundendash/internal/ledger"
	"github.com/kundendash-dev/kundendash/internal/model"
)

// ColumnGroup is one tab of the detail table.
type ColumnGroup struct {
	Label  string
	Fields []string
}

// ColumnGroups are the two tabs of the ledger view: booking data and change
// tracking data.
var ColumnGroups = []ColumnGroup{
	{
		Label: "Buchungsdaten",
		Fields: []string{
			"lieferAbholdatum", "lieferscheinNr", "abholscheinNr",
			"auftragsNrZS", "auftragsNrKunde", "rechnungsNrZS",
			"buchungsinfo", "lieferungZS", "abholungZS", "saldo",
		},
	},
	{
		Label: "Änderungsdaten",
		Fields: []string{
			"saldenbestaetigungsDatum", "saldenbestaetigungsPerson",
			"geaendertVon", "geaendertAm", "bemerkungen",
		},
	},
}

// SearchFields is the fixed field set the live search/jump looks at.
var SearchFields = []string{
	"lieferAbholdatum", "lieferscheinNr", "abholscheinNr",
	"auftragsNrZS", "auftragsNrKunde", "rechnungsNrZS",
	"buchungsinfo", "lieferungZS", "abholungZS",
	"saldo", "bemerkungen",
}

// dateFields render through ledger.FormatDate.
var dateFields = map[string]bool{
	"lieferAbholdatum":         true,
	"saldenbestaetigungsDatum": true,
	"geaendertAm":              true,
}

// FieldLabels maps wire field names to their display labels.
var FieldLabels = map[string]string{
	"lieferAbholdatum":          "Liefer-/Abholdatum",
	"lieferscheinNr":            "Lieferschein Nr.",
	"abholscheinNr":             "Abholschein Nr.",
	"auftragsNrZS":              "Auftragsnr ZS",
	"auftragsNrKunde":           "Auftragsnr Kunde",
	"rechnungsNrZS":             "Rechnungsnr ZS",
	"buchungsinfo":              "Buchungsinfo",
	"lieferungZS":               "Lieferung ZS / Abholung Kunde",
	"abholungZS":                "Abholung ZS / Anlieferung Kunde",
	"saldo":                     "Saldo",
	"saldenbestaetigungsDatum":  "Saldenbestätigung Datum",
	"saldenbestaetigungsPerson": "Saldenbestätigung Person",
	"bemerkungen":               "Bemerkungen",
	"geaendertVon":              "Geändert von",
	"geaendertAm":               "Geändert am",
}

// Label returns the display label for a field, falling back to the field name.
func Label(field string) string {
	if l, ok := FieldLabels[field]; ok {
		return l
	}
	return field
}

// IsDateField reports whether a field renders as a formatted date.
func IsDateField(field string) bool {
	return dateFields[field]
}

// CellText returns the rendered text of one cell: date fields formatted, the
// saldo cell replaced by the divergence message on a discrepant row.
func CellText(row model.Transaction, field string) string {
	if field == "saldo" && ledger.Discrepant(row) {
		return ledger.DiscrepancyMessage(row)
	}
	if IsDateField(field) {
		return ledger.FormatDate(row.Value(field))
	}
	return row.Value(field)
}
