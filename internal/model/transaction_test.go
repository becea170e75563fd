package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_State(t *testing.T) {
	open := Transaction{}
	assert.Equal(t, RowUnconfirmed, open.State())
	assert.True(t, open.State().CanEdit())
	assert.True(t, open.State().CanDelete())
	assert.True(t, open.State().CanExport())

	locked := Transaction{SaldenbestaetigungsDatum: "2024-02-01"}
	assert.Equal(t, RowConfirmed, locked.State())
	assert.False(t, locked.State().CanEdit())
	assert.False(t, locked.State().CanDelete())
	assert.True(t, locked.State().CanExport(), "export stays available on locked rows")
}

func TestTransaction_Value(t *testing.T) {
	tx := Transaction{
		TransactionID:  "tx-1",
		LieferscheinNr: "LS-9",
		LieferungZS:    decimal.NewFromInt(100),
		SaldoBerechnet: decimal.NewFromInt(70),
	}

	assert.Equal(t, "tx-1", tx.Value("transactionId"))
	assert.Equal(t, "LS-9", tx.Value("lieferscheinNr"))
	assert.Equal(t, "100", tx.Value("lieferungZS"))
	assert.Equal(t, "70", tx.Value("saldoBerechnet"))
	assert.Equal(t, "", tx.Value("gibtEsNicht"))
}

func TestTransaction_FieldValuesCoversDerived(t *testing.T) {
	tx := Transaction{SaldoBerechnet: decimal.NewFromInt(42)}
	assert.Contains(t, tx.FieldValues(), "42")
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	wire := `{"transactionId":"tx-1","lieferAbholdatum":"2024-01-15","lieferungZS":100,"abholungZS":30.5,"saldo":69.5}`

	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(wire), &tx))
	assert.Equal(t, "tx-1", tx.TransactionID)
	assert.Equal(t, "30.5", tx.AbholungZS.String())

	out, err := json.Marshal(tx)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "saldoBerechnet", "derived field never serialized")
}
