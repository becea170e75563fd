// Package ledger computes the running balance of a customer/case transaction
// sequence and its reconciliation against the backend-recorded saldo.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kundendash-dev/kundendash/internal/model"
)

// dateLayouts are tried in order when parsing backend date values.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// displayLayout is the localized day.month.year display form.
const displayLayout = "02.01.2006"

// Reconcile returns rows sorted into creation order with SaldoBerechnet
// attached: a running sum of LieferungZS - AbholungZS, seeded at zero.
// Rows without a parseable creationDate order by lexical transaction id.
// The input slice is not modified.
func Reconcile(rows []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(rows))
	copy(out, rows)

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	running := decimal.Zero
	for i := range out {
		running = running.Add(out[i].LieferungZS).Sub(out[i].AbholungZS)
		out[i].SaldoBerechnet = running
	}
	return out
}

func less(a, b model.Transaction) bool {
	ad, aok := parseDate(a.CreationDate)
	bd, bok := parseDate(b.CreationDate)
	if aok && bok {
		if !ad.Equal(bd) {
			return ad.Before(bd)
		}
		return a.TransactionID < b.TransactionID
	}
	// Either side lacks a creation date: fall back to lexical id order.
	return a.TransactionID < b.TransactionID
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, value); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a backend date value as dd.mm.yyyy. Absent values render
// as "", unparseable values come back unchanged. Never fails.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	d, ok := parseDate(value)
	if !ok {
		return value
	}
	return d.Format(displayLayout)
}

// Discrepant reports whether the backend saldo diverges from the computed
// running balance. Exact decimal comparison; divergence is a display signal,
// not an error.
func Discrepant(t model.Transaction) bool {
	return !t.Saldo.Equal(t.SaldoBerechnet)
}

// DiscrepancyMessage is the saldo cell text for a discrepant row.
func DiscrepancyMessage(t model.Transaction) string {
	return fmt.Sprintf("Abweichung: berechnet: %s, aktuelles Saldo: %s",
		t.SaldoBerechnet, t.Saldo)
}

// SaldoState classifies how a saldo cell renders.
type SaldoState int

const (
	// SaldoOK renders plainly.
	SaldoOK SaldoState = iota
	// SaldoNegative renders as a negative balance.
	SaldoNegative
	// SaldoDiscrepant renders the divergence message. Takes precedence over
	// a merely negative saldo.
	SaldoDiscrepant
)

// SaldoStateOf returns the cell state for a reconciled row.
func SaldoStateOf(t model.Transaction) SaldoState {
	if Discrepant(t) {
		return SaldoDiscrepant
	}
	if t.Saldo.IsNegative() {
		return SaldoNegative
	}
	return SaldoOK
}
