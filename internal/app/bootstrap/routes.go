// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/userdirectory/internal/app/features/errors"
	healthfeature "github.com/dalemusser/userdirectory/internal/app/features/health"
	userlistfeature "github.com/dalemusser/userdirectory/internal/app/features/userlist"
	"github.com/dalemusser/userdirectory/internal/app/store/fetchlog"
	"github.com/dalemusser/userdirectory/internal/app/system/directory"
	"github.com/dalemusser/userdirectory/internal/app/system/randomuser"
	"github.com/dalemusser/userdirectory/internal/app/system/ratelimit"
	"github.com/dalemusser/userdirectory/internal/app/system/viewsession"
	"github.com/dalemusser/userdirectory/internal/app/system/viewstate"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. It builds the view machinery (user source,
// collator, fetch log, registry), boots the template engine, and mounts
// the health, static, and user list routes.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := viewsession.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	collator, err := directory.NewCollator(appCfg.CollationLocale)
	if err != nil {
		logger.Error("collator init failed", zap.Error(err))
		return nil, err
	}

	source := randomuser.New(randomuser.Config{
		URL:     appCfg.SourceURL,
		Results: appCfg.SourceResults,
		Timeout: appCfg.FetchTimeout,
	})

	// Fetch log is optional; leave the interfaces nil when it is off.
	var (
		recorder viewstate.LoadRecorder
		fetches  userlistfeature.FetchLister
	)
	if deps.MongoDatabase != nil {
		store := fetchlog.New(deps.MongoDatabase)
		recorder = fetchlog.NewRecorder(store, source.URL(), source.BatchSize(), logger)
		fetches = store
	}

	views := viewstate.New(viewstate.Config{
		MaxViews: appCfg.MaxViews,
		TTL:      appCfg.ViewTTL,
	}, source, collator.Compare, recorder, logger)

	var newViews *ratelimit.Limiter
	if appCfg.ViewRate > 0 {
		newViews = ratelimit.New(appCfg.ViewRate, appCfg.ViewBurst)
	}

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()

	// Set before mounting so the user list subrouter inherits it.
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, views, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// The directory itself
	listHandler := userlistfeature.NewHandler(views, fetches, newViews, errLog, logger)
	r.Mount("/", userlistfeature.Routes(listHandler, sessionMgr))

	logger.Info("routes mounted",
		zap.String("source_url", source.URL()),
		zap.String("collation_locale", collator.Locale()),
		zap.Bool("fetch_log", fetches != nil))

	return r, nil
}
