// Package store holds all database access for the API. Every function
// takes the shared *sql.DB handle opened at startup; business-rule
// failures come back as the sentinel errors in errors.go so handlers can
// map them onto the response envelope with errors.Is.
package store

import "time"

// formatDateOnly renders a timestamp the way the dashboard displays it
// (13-04-2025 for April 13th).
func formatDateOnly(t time.Time) string {
	return t.Format("02-01-2006")
}

// validOption reports whether value is one of the allowed enum values.
func validOption(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
