package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kundendash-dev/kundendash/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func row(id, created, lieferung, abholung string) model.Transaction {
	return model.Transaction{
		TransactionID: id,
		CreationDate:  created,
		LieferungZS:   dec(lieferung),
		AbholungZS:    dec(abholung),
	}
}

func TestReconcile_RunningSum(t *testing.T) {
	rows := []model.Transaction{
		row("t1", "2024-01-10", "100", "0"),
		row("t2", "2024-01-11", "0", "30"),
		row("t3", "2024-01-12", "50", "0"),
	}

	got := Reconcile(rows)
	require.Len(t, got, 3)
	assert.True(t, got[0].SaldoBerechnet.Equal(dec("100")))
	assert.True(t, got[1].SaldoBerechnet.Equal(dec("70")))
	assert.True(t, got[2].SaldoBerechnet.Equal(dec("120")))
}

func TestReconcile_SortsByCreationDate(t *testing.T) {
	rows := []model.Transaction{
		row("t3", "2024-03-01", "1", "0"),
		row("t1", "2024-01-01", "1", "0"),
		row("t2", "2024-02-01T08:30:00", "1", "0"),
	}

	got := Reconcile(rows)
	require.Len(t, got, 3)
	assert.Equal(t, "t1", got[0].TransactionID)
	assert.Equal(t, "t2", got[1].TransactionID)
	assert.Equal(t, "t3", got[2].TransactionID)
}

func TestReconcile_FallsBackToLexicalID(t *testing.T) {
	rows := []model.Transaction{
		row("b", "", "1", "0"),
		row("a", "", "2", "0"),
		row("c", "not-a-date", "3", "0"),
	}

	got := Reconcile(rows)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].TransactionID)
	assert.Equal(t, "b", got[1].TransactionID)
	assert.Equal(t, "c", got[2].TransactionID)
	assert.True(t, got[2].SaldoBerechnet.Equal(dec("6")))
}

func TestReconcile_DoesNotMutateInput(t *testing.T) {
	rows := []model.Transaction{
		row("t2", "2024-02-01", "1", "0"),
		row("t1", "2024-01-01", "1", "0"),
	}

	_ = Reconcile(rows)
	assert.Equal(t, "t2", rows[0].TransactionID, "input order untouched")
	assert.True(t, rows[0].SaldoBerechnet.IsZero(), "input rows untouched")
}

func TestReconcile_Empty(t *testing.T) {
	assert.Empty(t, Reconcile(nil))
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"empty", "", ""},
		{"date only", "2024-01-15", "15.01.2024"},
		{"iso timestamp", "2024-01-15T13:45:00", "15.01.2024"},
		{"rfc3339", "2024-01-15T13:45:00Z", "15.01.2024"},
		{"unparseable passes through", "morgen", "morgen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.value))
		})
	}
}

func TestDiscrepant(t *testing.T) {
	tx := model.Transaction{Saldo: dec("100"), SaldoBerechnet: dec("100")}
	assert.False(t, Discrepant(tx))

	tx.Saldo = dec("100.00")
	assert.False(t, Discrepant(tx), "same value, different exponent")

	tx.Saldo = dec("99")
	assert.True(t, Discrepant(tx))
}

func TestSaldoStateOf(t *testing.T) {
	ok := model.Transaction{Saldo: dec("10"), SaldoBerechnet: dec("10")}
	assert.Equal(t, SaldoOK, SaldoStateOf(ok))

	negative := model.Transaction{Saldo: dec("-10"), SaldoBerechnet: dec("-10")}
	assert.Equal(t, SaldoNegative, SaldoStateOf(negative))

	// Discrepancy wins over a negative saldo.
	discrepant := model.Transaction{Saldo: dec("-10"), SaldoBerechnet: dec("-5")}
	assert.Equal(t, SaldoDiscrepant, SaldoStateOf(discrepant))
}

func TestDiscrepancyMessage(t *testing.T) {
	tx := model.Transaction{Saldo: dec("90"), SaldoBerechnet: dec("120")}
	assert.Equal(t, "Abweichung: berechnet: 120, aktuelles Saldo: 90", DiscrepancyMessage(tx))
}
