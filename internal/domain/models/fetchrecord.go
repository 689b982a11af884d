// internal/domain/models/fetchrecord.go
package models

import "time"

// FetchRecord captures one initial-load attempt made for a view.
// CreatedAt is indexed for the recent-fetches listing.
type FetchRecord struct {
	ViewID     string    `bson:"view_id" json:"view_id"`
	SourceURL  string    `bson:"source_url" json:"source_url"`
	Requested  int       `bson:"requested" json:"requested"`
	Received   int       `bson:"received" json:"received"`
	Accepted   int       `bson:"accepted" json:"accepted"`
	Success    bool      `bson:"success" json:"success"`
	Error      string    `bson:"error,omitempty" json:"error,omitempty"`
	DurationMS int64     `bson:"duration_ms" json:"duration_ms"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
