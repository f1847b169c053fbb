// Package normalize provides canonicalization helpers for values that arrive
// from forms, query strings, and external identity providers.
//
// Rules of thumb:
//   - Email and Role are lowercased and trimmed (they are compared and
//     stored case-insensitively).
//   - QueryParam only trims; display values keep their case.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a query/form parameter, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// FilterValue canonicalizes a cascading-filter selection. The UI's "All"
// sentinel (any case) and blank both mean "no filter" and map to "".
func FilterValue(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return ""
	}
	return s
}
