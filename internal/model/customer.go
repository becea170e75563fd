package model

// CaseType is one category tab on the dashboard.
type CaseType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Customer is one row of the dashboard list: a customer joined with one of
// its case pairings. The same customer id appears once per case.
type Customer struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	Strasse                string `json:"strasse"`
	PLZ                    string `json:"plz"`
	Ort                    string `json:"ort"`
	CaseTypeName           string `json:"caseTypeName"`
	CaseTypeBeschreibung   string `json:"caseTypeBeschreibung"`
	Customer2CaseAndTypeID string `json:"customer2CaseAndTypeId"`
}

// CustomerCase is one case pairing available for a single customer.
type CustomerCase struct {
	Customer2CaseAndTypeID string `json:"customer2CaseAndTypeId"`
	Name                   string `json:"name"`
	CaseTypeName           string `json:"caseTypeName"`
}
