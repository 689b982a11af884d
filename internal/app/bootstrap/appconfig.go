// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (USERDIR_*), configuration
// files, or command-line flags, loaded in LoadConfig. WAFFLE's CoreConfig
// covers the framework side: ports, TLS, log level, request limits.
type AppConfig struct {
	// User source
	SourceURL     string        // random-user endpoint (e.g., https://randomuser.me/api)
	SourceResults int           // batch size requested per view
	FetchTimeout  time.Duration // bound on the single initial fetch

	// Derivation
	CollationLocale string // BCP 47 tag used to order sorted columns

	// View registry
	MaxViews int           // live views kept in memory
	ViewTTL  time.Duration // idle time before a view is released

	// New views per client IP per minute (0 disables the limit) and burst.
	ViewRate  int
	ViewBurst int

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: userdir-session)
	SessionDomain string // Cookie domain (blank means current host)

	// MongoDB fetch log. A blank URI disables it.
	MongoURI      string
	MongoDatabase string
}

// FetchLogEnabled reports whether a MongoDB fetch log is configured.
func (c AppConfig) FetchLogEnabled() bool {
	return c.MongoURI != ""
}
