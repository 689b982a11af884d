package fetchlog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/userdirectory/internal/app/store/fetchlog"
	"github.com/dalemusser/userdirectory/internal/app/system/directory"
	"github.com/dalemusser/userdirectory/internal/domain/models"
	"github.com/dalemusser/userdirectory/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := fetchlog.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := models.FetchRecord{
		ViewID:    "view-1",
		SourceURL: "https://randomuser.me/api",
		Requested: 100,
		Received:  100,
		Accepted:  99,
		Success:   true,
	}
	if err := store.Create(ctx, rec); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var found models.FetchRecord
	err := db.Collection("fetch_records").FindOne(ctx, bson.M{"view_id": "view-1"}).Decode(&found)
	if err != nil {
		t.Fatalf("failed to find fetch record: %v", err)
	}
	if found.Accepted != 99 {
		t.Errorf("Accepted: got %d, want 99", found.Accepted)
	}
	if !found.Success {
		t.Error("expected Success to be true")
	}
	if found.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_WithExplicitTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := fetchlog.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	at := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	if err := store.Create(ctx, models.FetchRecord{ViewID: "view-1", CreatedAt: at}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var found models.FetchRecord
	if err := db.Collection("fetch_records").FindOne(ctx, bson.M{"view_id": "view-1"}).Decode(&found); err != nil {
		t.Fatalf("failed to find fetch record: %v", err)
	}
	if !found.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt: got %v, want %v", found.CreatedAt, at)
	}
}

func TestStore_Recent_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := fetchlog.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		rec := models.FetchRecord{ViewID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := store.Create(ctx, rec); err != nil {
			t.Fatalf("Create(%s) failed: %v", id, err)
		}
	}

	got, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ViewID != "new" || got[1].ViewID != "mid" {
		t.Errorf("order: got %s, %s", got[0].ViewID, got[1].ViewID)
	}
}

func TestStore_Recent_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := fetchlog.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestRecorder_RecordLoad(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := fetchlog.New(db)
	rec := fetchlog.NewRecorder(store, "https://randomuser.me/api", 100, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec.RecordLoad(context.Background(), "ok-view", directory.LoadResult{
		Received: 100, Accepted: 100, Duration: 250 * time.Millisecond,
	})
	rec.RecordLoad(context.Background(), "failed-view", directory.LoadResult{
		Err: errors.New("network down"),
	})
	rec.RecordLoad(context.Background(), "skipped-view", directory.LoadResult{Skipped: true})

	var ok models.FetchRecord
	if err := db.Collection("fetch_records").FindOne(ctx, bson.M{"view_id": "ok-view"}).Decode(&ok); err != nil {
		t.Fatalf("ok-view record missing: %v", err)
	}
	if !ok.Success || ok.DurationMS != 250 || ok.Requested != 100 {
		t.Errorf("ok-view record: %+v", ok)
	}

	var failed models.FetchRecord
	if err := db.Collection("fetch_records").FindOne(ctx, bson.M{"view_id": "failed-view"}).Decode(&failed); err != nil {
		t.Fatalf("failed-view record missing: %v", err)
	}
	if failed.Success || failed.Error != "network down" {
		t.Errorf("failed-view record: %+v", failed)
	}

	n, err := db.Collection("fetch_records").CountDocuments(ctx, bson.M{"view_id": "skipped-view"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected no record for skipped load, got %d", n)
	}
}
