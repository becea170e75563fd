// Package customers provides in-memory lookup over the dashboard's customer
// list: one row per customer/case pairing, grouped into per-customer cards.
package customers

import (
	"strings"
	"time"

	"github.com/kundendash-dev/kundendash/internal/model"
)

// DebounceInterval is how long interactive callers wait after a keystroke
// before re-filtering the list. No correctness role.
const DebounceInterval = 300 * time.Millisecond

// Service holds the fetched customer rows of one case-type category.
type Service struct {
	rows []model.Customer
}

// NewService creates a Service from the backend's customer rows.
func NewService(rows []model.Customer) *Service {
	return &Service{rows: rows}
}

// All returns all rows.
func (s *Service) All() []model.Customer {
	return s.rows
}

// Filter returns the rows matching term over name, address and case-type
// fields, case-insensitively. An empty term matches all rows.
func (s *Service) Filter(term string) []model.Customer {
	if term == "" {
		return s.rows
	}
	lower := strings.ToLower(term)

	var out []model.Customer
	for _, k := range s.rows {
		if matches(k, lower) {
			out = append(out, k)
		}
	}
	return out
}

func matches(k model.Customer, lowerTerm string) bool {
	for _, v := range []string{
		k.Name, k.Strasse, k.PLZ, k.Ort, k.CaseTypeName, k.CaseTypeBeschreibung,
	} {
		if strings.Contains(strings.ToLower(v), lowerTerm) {
			return true
		}
	}
	return false
}

// Group is one dashboard card: every case row of a single customer.
type Group struct {
	ID   int64
	Rows []model.Customer
}

// Groups collapses rows into per-customer groups, preserving first-appearance
// order.
func Groups(rows []model.Customer) []Group {
	byID := make(map[int64]int)
	var groups []Group
	for _, k := range rows {
		idx, seen := byID[k.ID]
		if !seen {
			idx = len(groups)
			byID[k.ID] = idx
			groups = append(groups, Group{ID: k.ID})
		}
		groups[idx].Rows = append(groups[idx].Rows, k)
	}
	return groups
}
