// Package normalize canonicalizes user input and API values before they are
// compared or used as keys.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are record keys, so
// every lookup and comparison goes through here.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a form or query value and preserves its case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// SortKey lowercases and trims a sort selector.
func SortKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
