// Package viewdata builds the fields every page template expects.
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// DefaultSiteName is shown in the page header when Init is not called.
const DefaultSiteName = "User directory"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title", "/"),
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string // empty when no CSRF middleware is installed
}

var (
	mu       sync.RWMutex
	siteName = DefaultSiteName
)

// Init sets the site name shown on every page. Call once at startup.
func Init(name string) {
	if name == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	siteName = name
}

// SiteName returns the configured site name.
func SiteName() string {
	mu.RLock()
	defer mu.RUnlock()
	return siteName
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - title: the page title
//   - backDefault: default URL for the back link if none in request
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	return BaseVM{
		SiteName:    SiteName(),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}
