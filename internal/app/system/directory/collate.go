package directory

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no collation locale is configured.
const DefaultLocale = "en"

// Collator compares strings in locale order: accented letters sort next to
// their base letters instead of after "z".
// A collate.Collator keeps scratch buffers, so calls are serialized.
type Collator struct {
	mu  sync.Mutex
	c   *collate.Collator
	tag language.Tag
}

// NewCollator parses a BCP 47 locale such as "en", "es", or "es-PE".
func NewCollator(locale string) (*Collator, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse collation locale %q: %w", locale, err)
	}
	return &Collator{c: collate.New(tag), tag: tag}, nil
}

// Locale returns the tag the collator was built for.
func (c *Collator) Locale() string { return c.tag.String() }

// Compare returns -1, 0, or +1 like strings.Compare.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}
