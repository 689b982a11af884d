// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/userdirectory/internal/app/resources"
	"github.com/dalemusser/userdirectory/internal/app/system/timeouts"
	"github.com/dalemusser/userdirectory/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time initialization after DB connections and schema
// setup, before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{Fetch: appCfg.FetchTimeout})
	viewdata.Init(viewdata.DefaultSiteName)
	resources.LoadSharedTemplates()

	logger.Info("user directory ready",
		zap.String("source_url", appCfg.SourceURL),
		zap.Int("source_results", appCfg.SourceResults),
		zap.Duration("fetch_timeout", timeouts.Fetch()),
		zap.Bool("fetch_log", deps.MongoDatabase != nil))
	return nil
}
