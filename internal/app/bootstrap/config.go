// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/userdirectory/internal/app/system/randomuser"
	"github.com/dalemusser/userdirectory/internal/app/system/viewsession"
	"github.com/dalemusser/userdirectory/internal/app/system/viewstate"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	defaultFetchTimeout  = 10 * time.Second
	defaultMongoDatabase = "user_directory"
)

// appConfigKeys defines the configuration keys for the user directory.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: source_url, max_views, etc.
//   - Environment variables: USERDIR_SOURCE_URL, USERDIR_MAX_VIEWS, etc.
//   - Command-line flags: --source_url, --max_views, etc.
var appConfigKeys = []config.AppKey{
	// User source
	{Name: "source_url", Default: randomuser.DefaultURL, Desc: "Random-user API endpoint"},
	{Name: "source_results", Default: randomuser.DefaultResults, Desc: "Users fetched per view"},
	{Name: "fetch_timeout", Default: "10s", Desc: "Timeout for the initial fetch (e.g., 10s, 1m)"},

	// Derivation
	{Name: "collation_locale", Default: "en", Desc: "Locale used to order sorted columns"},

	// View registry
	{Name: "max_views", Default: viewstate.DefaultMaxViews, Desc: "Maximum live views held in memory"},
	{Name: "view_ttl", Default: "30m", Desc: "Idle time before a view is released"},
	{Name: "view_rate", Default: 30, Desc: "New views per client IP per minute (0 disables the limit)"},
	{Name: "view_burst", Default: 10, Desc: "New views a client IP may start at once"},

	// Sessions
	{Name: "session_key", Default: "", Desc: "Session signing key (blank uses an ephemeral key; set in production)"},
	{Name: "session_name", Default: viewsession.DefaultName, Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Fetch log
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI for the fetch log (blank disables it)"},
	{Name: "mongo_database", Default: defaultMongoDatabase, Desc: "MongoDB database name"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges, in order of precedence:
// flags > env (WAFFLE_* for core, USERDIR_* for app) > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "USERDIR", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SourceURL:     appValues.String("source_url"),
		SourceResults: appValues.Int("source_results"),
		FetchTimeout:  appValues.Duration("fetch_timeout", defaultFetchTimeout),

		CollationLocale: appValues.String("collation_locale"),

		MaxViews: appValues.Int("max_views"),
		ViewTTL:  appValues.Duration("view_ttl", viewstate.DefaultTTL),

		ViewRate:  appValues.Int("view_rate"),
		ViewBurst: appValues.Int("view_burst"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := validateAppConfig(appCfg); err != nil {
		logger.Error("invalid app config", zap.Error(err))
		return err
	}
	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == "" {
		logger.Warn("session_key is blank in prod; view cookies will not survive a restart")
	}
	return nil
}

func validateAppConfig(appCfg AppConfig) error {
	u, err := url.Parse(appCfg.SourceURL)
	if err != nil {
		return fmt.Errorf("invalid source_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid source_url %q: want an absolute http(s) URL", appCfg.SourceURL)
	}
	if appCfg.SourceResults <= 0 {
		return fmt.Errorf("source_results must be positive, got %d", appCfg.SourceResults)
	}
	if appCfg.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", appCfg.FetchTimeout)
	}
	if _, err := language.Parse(appCfg.CollationLocale); err != nil {
		return fmt.Errorf("invalid collation_locale %q: %w", appCfg.CollationLocale, err)
	}
	if appCfg.MaxViews <= 0 {
		return fmt.Errorf("max_views must be positive, got %d", appCfg.MaxViews)
	}
	if appCfg.ViewTTL <= 0 {
		return fmt.Errorf("view_ttl must be positive, got %s", appCfg.ViewTTL)
	}
	if appCfg.ViewRate < 0 {
		return fmt.Errorf("view_rate must not be negative, got %d", appCfg.ViewRate)
	}
	if appCfg.ViewRate > 0 && appCfg.ViewBurst <= 0 {
		return fmt.Errorf("view_burst must be positive when view_rate is set, got %d", appCfg.ViewBurst)
	}
	if appCfg.FetchLogEnabled() {
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("mongo_database is required when mongo_uri is set")
		}
	}
	return nil
}
