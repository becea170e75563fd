package model

// RowState is the action eligibility state of a ledger row, keyed on the
// balance confirmation date.
type RowState string

const (
	// RowUnconfirmed rows can still be edited and deleted and show a
	// "needs confirmation" indicator.
	RowUnconfirmed RowState = "unconfirmed"
	// RowConfirmed rows are locked and show a "verified" indicator.
	RowConfirmed RowState = "confirmed"
)

// State returns the row's action eligibility state.
func (t Transaction) State() RowState {
	if t.Confirmed() {
		return RowConfirmed
	}
	return RowUnconfirmed
}

// CanEdit reports whether rows in this state accept edits.
func (s RowState) CanEdit() bool {
	return s == RowUnconfirmed
}

// CanDelete reports whether rows in this state may be deleted.
func (s RowState) CanDelete() bool {
	return s == RowUnconfirmed
}

// CanExport reports whether rows in this state may be printed. Export is
// always available.
func (s RowState) CanExport() bool {
	return true
}
