package store

import "github.com/oklog/ulid/v2"

// NewID mints a document id. ULIDs sort by creation time, which gives
// the newest-first listings a stable insertion-order tiebreak for rows
// created within the same timestamp.
func NewID() string {
	return ulid.Make().String()
}

// ValidID reports whether id is a well-formed document id. Malformed ids
// are rejected before any query runs.
func ValidID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
