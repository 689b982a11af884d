// Package htmlsanitize strips markup from text that arrives from outside the
// application before it is stored in a view.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict removes every element; bluemonday policies are safe for concurrent use.
var strict = bluemonday.StrictPolicy()

// Text returns s with all HTML elements removed and surrounding whitespace
// trimmed. Entities that bluemonday escapes on output are decoded again, so
// the result is plain text ready for html/template to escape once.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
