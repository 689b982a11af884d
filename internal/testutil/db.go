package testutil

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DefaultTestMongoURI is used when USERDIR_TEST_MONGO_URI is not set.
const DefaultTestMongoURI = "mongodb://localhost:27017"

// TestContext returns a context bounded for a single test's database work.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// SetupTestDB connects to the test MongoDB and returns a fresh database that
// is dropped when the test ends. The test is skipped when no server answers.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("USERDIR_TEST_MONGO_URI")
	if uri == "" {
		uri = DefaultTestMongoURI
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(2*time.Second))
	if err != nil {
		t.Skipf("mongo unavailable at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongo unavailable at %s: %v", uri, err)
	}

	name := "userdir_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	db := client.Database(name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}
