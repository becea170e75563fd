package statement

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kundendash-dev/kundendash/internal/model"
)

func statementRows(n int) []model.Transaction {
	rows := make([]model.Transaction, n)
	for i := range rows {
		rows[i] = model.Transaction{
			TransactionID:    fmt.Sprintf("tx-%03d", i+1),
			LieferAbholdatum: "2024-01-15",
			LieferscheinNr:   fmt.Sprintf("LS-%d", i+1),
			LieferungZS:      decimal.NewFromInt(10),
			Saldo:            decimal.NewFromInt(int64((i + 1) * 10)),
			Buchungsinfo:     "Standardlieferung",
		}
	}
	return rows
}

func pageCount(t *testing.T, doc []byte) int {
	t.Helper()
	i := bytes.Index(doc, []byte("/Count "))
	require.GreaterOrEqual(t, i, 0, "pages object not found")
	var n int
	_, err := fmt.Sscanf(string(doc[i:]), "/Count %d", &n)
	require.NoError(t, err)
	return n
}

func TestBuild_ProducesPDF(t *testing.T) {
	doc, err := Build(statementRows(3))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	assert.Equal(t, 1, pageCount(t, doc))
}

func TestBuild_EmptyRowSet(t *testing.T) {
	doc, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, doc), "title, header and footer still render")
}

func TestBuild_PaginatesAcrossPages(t *testing.T) {
	// The first page fits the header plus 19 data rows, continuation pages
	// 22 rows each.
	doc, err := Build(statementRows(19))
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(t, doc))

	doc, err = Build(statementRows(20))
	require.NoError(t, err)
	assert.Equal(t, 2, pageCount(t, doc))

	doc, err = Build(statementRows(40))
	require.NoError(t, err)
	assert.Equal(t, 2, pageCount(t, doc))

	doc, err = Build(statementRows(42))
	require.NoError(t, err)
	assert.Equal(t, 3, pageCount(t, doc))
}

func TestFitText(t *testing.T) {
	pdf := fpdf.New("L", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", fontSize)
	tbl := &table{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	short := "passt"
	assert.Equal(t, short, tbl.fitText(short, 304), "no ellipsis when nothing was cut")

	long := strings.Repeat("Buchungsinfo ", 20)
	got := tbl.fitText(long, 304)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Less(t, len(got), len(long))
	assert.LessOrEqual(t, pdf.GetStringWidth(got), 304.0)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, statementRows(2)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "15.01.2024,LS-1,,,10,0,10,Standardlieferung", lines[1])
}
