package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpans(t *testing.T) {
	spans := Spans("LS-100 und ls-100", "ls-1")
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 0, End: 4}, spans[0])
	assert.Equal(t, Span{Start: 11, End: 15}, spans[1])
}

func TestSpans_NoMatch(t *testing.T) {
	assert.Empty(t, Spans("Lieferung", "xyz"))
	assert.Empty(t, Spans("", "x"))
	assert.Empty(t, Spans("Lieferung", ""))
}

func TestSpans_AdjacentOccurrences(t *testing.T) {
	spans := Spans("aaaa", "aa")
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Start: 0, End: 2}, spans[0])
	assert.Equal(t, Span{Start: 2, End: 4}, spans[1])
}

func TestMark(t *testing.T) {
	got := Mark("LS-100 und ls-100", "LS", "[", "]")
	assert.Equal(t, "[LS]-100 und [ls]-100", got)
}

func TestMark_NoMatchUnchanged(t *testing.T) {
	assert.Equal(t, "Buchung", Mark("Buchung", "xyz", "[", "]"))
	assert.Equal(t, "Buchung", Mark("Buchung", "", "[", "]"))
}
