// Package id mints client-side draft IDs for optimistic ledger rows. The
// backend assigns the real transaction id on create; until its response
// arrives, a draft row carries a placeholder.
package id

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// draftPrefix marks IDs that have not been persisted by the backend yet.
const draftPrefix = "draft-"

// NewDraftID mints a placeholder transaction ID for an optimistic row.
func NewDraftID() string {
	return draftPrefix + ulid.Make().String()
}

// IsDraft reports whether a transaction ID is a client-side placeholder.
func IsDraft(id string) bool {
	return strings.HasPrefix(id, draftPrefix)
}
