// internal/app/store/fetchlog/store.go
package fetchlog

import (
	"context"
	"time"

	"github.com/dalemusser/userdirectory/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collection = "fetch_records"

// DefaultRecent is how many records Recent returns for a non-positive limit.
const DefaultRecent = 20

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(collection)}
}

// EnsureIndexes creates the created_at index used by Recent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_fetch_records_created_at"),
	})
	return err
}

// Create inserts a FetchRecord. If CreatedAt is zero, it's set to time.Now().UTC().
func (s *Store) Create(ctx context.Context, rec models.FetchRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, rec)
	return err
}

// Recent returns the newest records first.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.FetchRecord, error) {
	if limit <= 0 {
		limit = DefaultRecent
	}
	find := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.FetchRecord{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
