// Package id generates unique, sortable record identifiers.
package id

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// New creates a prefixed ULID, e.g. "ent-01hv3q2z8jk9x6m4t0c5r7w8na".
// ULIDs sort by creation time, which keeps newest-first index scans cheap.
func New(prefix string) string {
	u := strings.ToLower(ulid.Make().String())
	if prefix == "" {
		return u
	}
	return prefix + "-" + u
}
