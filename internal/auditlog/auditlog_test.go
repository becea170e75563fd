package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "audit-log.csv")
	w := NewWriter(path)

	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, w.Append(Entry{
		Timestamp:     ts,
		User:          "mmeier",
		Action:        ActionCreate,
		TransactionID: "tx-001",
		Details:       "Neue Buchung",
	}))
	require.NoError(t, w.Append(Entry{
		Timestamp:     ts.Add(time.Minute),
		User:          "mmeier",
		Action:        ActionDelete,
		TransactionID: "tx-001",
	}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionCreate, entries[0].Action)
	assert.Equal(t, "tx-001", entries[0].TransactionID)
	assert.True(t, ts.Equal(entries[0].Timestamp))
	assert.Equal(t, ActionDelete, entries[1].Action)
}

func TestAppend_WritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit-log.csv")
	w := NewWriter(path)

	require.NoError(t, w.Append(Entry{Timestamp: time.Now(), Action: ActionUpdate}))
	require.NoError(t, w.Append(Entry{Timestamp: time.Now(), Action: ActionUpdate}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "four", "fields", "here"})
	assert.Error(t, err)
}
