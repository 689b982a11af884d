// Package resources holds templates shared by every feature: the page
// layout that defines layout_head and layout_foot.
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the layout set. Safe to call repeatedly.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "layout",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
