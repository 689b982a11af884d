package fetchlog

import (
	"context"

	"github.com/dalemusser/userdirectory/internal/app/system/directory"
	"github.com/dalemusser/userdirectory/internal/app/system/timeouts"
	"github.com/dalemusser/userdirectory/internal/domain/models"
	"go.uber.org/zap"
)

// Recorder writes one FetchRecord per view load. Write failures are logged
// and otherwise ignored; the view never depends on the log.
type Recorder struct {
	store     *Store
	sourceURL string
	requested int
	log       *zap.Logger
}

func NewRecorder(store *Store, sourceURL string, requested int, logger *zap.Logger) *Recorder {
	return &Recorder{
		store:     store,
		sourceURL: sourceURL,
		requested: requested,
		log:       logger,
	}
}

// RecordLoad implements viewstate.LoadRecorder.
func (r *Recorder) RecordLoad(ctx context.Context, viewID string, res directory.LoadResult) {
	if res.Skipped {
		return
	}

	rec := models.FetchRecord{
		ViewID:     viewID,
		SourceURL:  r.sourceURL,
		Requested:  r.requested,
		Received:   res.Received,
		Accepted:   res.Accepted,
		Success:    res.Err == nil,
		DurationMS: res.Duration.Milliseconds(),
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.Short())
	defer cancel()

	if err := r.store.Create(ctx, rec); err != nil {
		r.log.Warn("fetch log write failed",
			zap.String("view_id", viewID),
			zap.Error(err))
	}
}
