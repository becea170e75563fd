package model

import "github.com/shopspring/decimal"

func init() {
	// The backend speaks plain JSON numbers for quantity fields.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is one ledger row of a customer/case pairing as delivered by
// the backend. Date-like values stay strings in wire form: the backend mixes
// plain dates and ISO timestamps, and display formatting is a ledger concern.
type Transaction struct {
	TransactionID string `json:"transactionId"`
	CreationDate  string `json:"creationDate,omitempty"`

	LieferAbholdatum string `json:"lieferAbholdatum"`
	LieferscheinNr   string `json:"lieferscheinNr"`
	AbholscheinNr    string `json:"abholscheinNr"`
	AuftragsNrZS     string `json:"auftragsNrZS"`
	AuftragsNrKunde  string `json:"auftragsNrKunde"`
	RechnungsNrZS    string `json:"rechnungsNrZS"`
	Buchungsinfo     string `json:"buchungsinfo"`
	Bemerkungen      string `json:"bemerkungen"`

	LieferungZS decimal.Decimal `json:"lieferungZS"`
	AbholungZS  decimal.Decimal `json:"abholungZS"`
	Saldo       decimal.Decimal `json:"saldo"`

	SaldenbestaetigungsDatum  string `json:"saldenbestaetigungsDatum,omitempty"`
	SaldenbestaetigungsPerson string `json:"saldenbestaetigungsPerson,omitempty"`

	GeaendertVon string `json:"geaendertVon,omitempty"`
	GeaendertAm  string `json:"geaendertAm,omitempty"`

	// Display fields the backend joins onto every ledger row.
	CustName                 string `json:"custName,omitempty"`
	CustCaseTypeBeschreibung string `json:"custCaseTypeBeschreibung,omitempty"`

	// SaldoBerechnet is the client-computed running balance. Derived, never
	// persisted.
	SaldoBerechnet decimal.Decimal `json:"-"`
}

// Confirmed reports whether the row carries a balance confirmation date.
// Confirmed rows are locked against edit and delete.
func (t Transaction) Confirmed() bool {
	return t.SaldenbestaetigungsDatum != ""
}

// EditableFields is the set of fields a create/edit form may write. Everything
// else is assigned by the backend or derived client-side.
var EditableFields = []string{
	"lieferAbholdatum", "lieferscheinNr", "abholscheinNr", "auftragsNrZS",
	"auftragsNrKunde", "rechnungsNrZS", "buchungsinfo", "lieferungZS",
	"abholungZS", "bemerkungen",
}

// allFields lists every wire and derived field, in table order.
var allFields = []string{
	"transactionId", "creationDate", "lieferAbholdatum", "lieferscheinNr",
	"abholscheinNr", "auftragsNrZS", "auftragsNrKunde", "rechnungsNrZS",
	"buchungsinfo", "bemerkungen", "lieferungZS", "abholungZS", "saldo",
	"saldenbestaetigungsDatum", "saldenbestaetigungsPerson", "geaendertVon",
	"geaendertAm", "custName", "custCaseTypeBeschreibung", "saldoBerechnet",
}

// Value returns the string form of a named field, the way a rendered cell or
// a text filter sees it. Unknown field names yield "".
func (t Transaction) Value(field string) string {
	switch field {
	case "transactionId":
		return t.TransactionID
	case "creationDate":
		return t.CreationDate
	case "lieferAbholdatum":
		return t.LieferAbholdatum
	case "lieferscheinNr":
		return t.LieferscheinNr
	case "abholscheinNr":
		return t.AbholscheinNr
	case "auftragsNrZS":
		return t.AuftragsNrZS
	case "auftragsNrKunde":
		return t.AuftragsNrKunde
	case "rechnungsNrZS":
		return t.RechnungsNrZS
	case "buchungsinfo":
		return t.Buchungsinfo
	case "bemerkungen":
		return t.Bemerkungen
	case "lieferungZS":
		return t.LieferungZS.String()
	case "abholungZS":
		return t.AbholungZS.String()
	case "saldo":
		return t.Saldo.String()
	case "saldenbestaetigungsDatum":
		return t.SaldenbestaetigungsDatum
	case "saldenbestaetigungsPerson":
		return t.SaldenbestaetigungsPerson
	case "geaendertVon":
		return t.GeaendertVon
	case "geaendertAm":
		return t.GeaendertAm
	case "custName":
		return t.CustName
	case "custCaseTypeBeschreibung":
		return t.CustCaseTypeBeschreibung
	case "saldoBerechnet":
		return t.SaldoBerechnet.String()
	}
	return ""
}

// FieldValues returns the string form of every field, for whole-row matching.
func (t Transaction) FieldValues() []string {
	values := make([]string, len(allFields))
	for i, f := range allFields {
		values[i] = t.Value(f)
	}
	return values
}
