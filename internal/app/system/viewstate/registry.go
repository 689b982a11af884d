// Package viewstate keeps one directory.View per browser, keyed by the view
// id stored in the browser's session cookie.
package viewstate

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/userdirectory/internal/app/system/directory"
	"github.com/dalemusser/userdirectory/internal/app/system/timeouts"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultMaxViews = 1000
	DefaultTTL      = 30 * time.Minute
)

// ErrNoViewID is returned by Lookup for a blank id.
var ErrNoViewID = errors.New("viewstate: empty view id")

// LoadRecorder is told about every initial load a registry performs.
type LoadRecorder interface {
	RecordLoad(ctx context.Context, viewID string, res directory.LoadResult)
}

// Config bounds the registry. Zero values use the defaults.
type Config struct {
	MaxViews int
	TTL      time.Duration
}

// Registry creates views on first use and forgets them when they go idle
// for longer than the TTL or are pushed out by newer views.
type Registry struct {
	views    *expirable.LRU[string, *directory.View]
	group    singleflight.Group
	source   directory.Source
	cmp      directory.CompareFunc
	recorder LoadRecorder
	log      *zap.Logger
}

// New builds a Registry. recorder may be nil.
func New(cfg Config, src directory.Source, cmp directory.CompareFunc, recorder LoadRecorder, logger *zap.Logger) *Registry {
	size := cfg.MaxViews
	if size <= 0 {
		size = DefaultMaxViews
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	r := &Registry{
		source:   src,
		cmp:      cmp,
		recorder: recorder,
		log:      logger,
	}
	r.views = expirable.NewLRU[string, *directory.View](size, r.onEvict, ttl)
	return r
}

func (r *Registry) onEvict(id string, _ *directory.View) {
	r.log.Debug("view released", zap.String("view_id", id))
}

// Get returns an existing view without creating one.
func (r *Registry) Get(id string) (*directory.View, bool) {
	return r.views.Get(id)
}

// Len reports the number of live views.
func (r *Registry) Len() int {
	return r.views.Len()
}

type lookupResult struct {
	view    *directory.View
	created bool
}

// Lookup returns the view for id, creating and loading it when missing.
// Concurrent lookups of a new id share a single load. The load ignores ctx
// cancellation and is bounded by timeouts.Fetch instead.
func (r *Registry) Lookup(ctx context.Context, id string) (*directory.View, bool, error) {
	if id == "" {
		return nil, false, ErrNoViewID
	}

	if v, ok := r.views.Get(id); ok {
		// Re-adding refreshes the idle deadline.
		r.views.Add(id, v)
		return v, false, nil
	}

	res, err, _ := r.group.Do(id, func() (any, error) {
		if v, ok := r.views.Get(id); ok {
			return lookupResult{view: v}, nil
		}

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.Fetch())
		defer cancel()

		v := directory.NewView(id, r.cmp, r.log)
		lr := v.Load(loadCtx, r.source)
		if r.recorder != nil {
			r.recorder.RecordLoad(loadCtx, id, lr)
		}

		r.views.Add(id, v)
		r.log.Debug("view created",
			zap.String("view_id", id),
			zap.Int("live_views", r.views.Len()))
		return lookupResult{view: v, created: true}, nil
	})
	if err != nil {
		return nil, false, err
	}

	lr := res.(lookupResult)
	return lr.view, lr.created, nil
}
