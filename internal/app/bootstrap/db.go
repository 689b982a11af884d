// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/userdirectory/internal/app/store/fetchlog"
	"github.com/dalemusser/userdirectory/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB connects to MongoDB when the fetch log is enabled. With no
// mongo_uri it returns empty DBDeps and the app runs without a database.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if !appCfg.FetchLogEnabled() {
		logger.Info("mongo_uri not set; fetch log disabled")
		return DBDeps{}, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the fetch log indexes when the log is enabled.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	if err := fetchlog.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		logger.Error("fetch log indexes failed", zap.Error(err))
		return err
	}
	return nil
}
