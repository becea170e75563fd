package view

import (
	"strings"

	"github.com/kundendash-dev/kundendash/internal/model"
)

// Filter returns the rows where any field's string form contains term,
// case-insensitively. An empty term matches every row.
func Filter(rows []model.Transaction, term string) []model.Transaction {
	if term == "" {
		return rows
	}
	lower := strings.ToLower(term)

	var out []model.Transaction
	for _, r := range rows {
		if rowMatches(r, lower) {
			out = append(out, r)
		}
	}
	return out
}

func rowMatches(r model.Transaction, lowerTerm string) bool {
	for _, v := range r.FieldValues() {
		if strings.Contains(strings.ToLower(v), lowerTerm) {
			return true
		}
	}
	return false
}

// LastPage returns the zero-based index of the last page.
func LastPage(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 0
	}
	return (count - 1) / pageSize
}

// ClampPage clamps a page index into [0, LastPage].
func ClampPage(page, count, pageSize int) int {
	if page < 0 {
		return 0
	}
	if last := LastPage(count, pageSize); page > last {
		return last
	}
	return page
}

// Paginate returns the slice of rows for one page. The page index is clamped
// to the valid range; the result never exceeds pageSize rows.
func Paginate(rows []model.Transaction, page, pageSize int) []model.Transaction {
	if pageSize <= 0 || len(rows) == 0 {
		return nil
	}
	page = ClampPage(page, len(rows), pageSize)
	start := page * pageSize
	end := min(start+pageSize, len(rows))
	return rows[start:end]
}
