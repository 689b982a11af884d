// Package directory holds the per-browser view of a fetched user batch: the
// original and current record sets, the view parameters, and the derived
// filtered-then-sorted sequence.
package directory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dalemusser/userdirectory/internal/app/system/normalize"
	"github.com/dalemusser/userdirectory/internal/domain/models"
	"go.uber.org/zap"
)

// Source supplies the batch a view loads once.
type Source interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
}

// Params are the three independent view parameters.
type Params struct {
	Colorize bool
	Sort     SortKey
	Country  string
}

// LoadResult describes what happened during Load.
type LoadResult struct {
	Received int
	Accepted int
	Duration time.Duration
	Err      error
	// Skipped is set when the view had already loaded.
	Skipped bool
}

// Snapshot is a consistent read of a view for rendering.
type Snapshot struct {
	Params   Params
	Users    []models.User
	Original int
	Current  int
	Loaded   bool
}

// View owns one browser's record sets. The original set is captured once by
// Load and never changed; the current set only shrinks through DeleteUser
// and is restored by Reset. Methods are serialized so each call behaves as a
// single event.
type View struct {
	mu  sync.Mutex
	id  string
	cmp CompareFunc
	log *zap.Logger

	loaded   bool
	original []models.User
	current  []models.User
	params   Params

	derived []models.User
	fresh   bool
}

// NewView creates an empty, unloaded view. cmp orders sorted fields.
func NewView(id string, cmp CompareFunc, logger *zap.Logger) *View {
	return &View{
		id:     id,
		cmp:    cmp,
		log:    logger,
		params: Params{Sort: SortNone},
	}
}

// ID returns the view id.
func (v *View) ID() string { return v.id }

// Load fetches the base batch. It runs at most once per view; a failed load
// is logged, leaves both sets empty, and is not retried.
func (v *View) Load(ctx context.Context, src Source) LoadResult {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loaded {
		return LoadResult{Skipped: true}
	}
	v.loaded = true

	start := time.Now()
	batch, err := src.FetchUsers(ctx)
	res := LoadResult{Duration: time.Since(start), Err: err}
	if err != nil {
		v.log.Error("user batch fetch failed",
			zap.String("view_id", v.id),
			zap.Duration("duration", res.Duration),
			zap.Error(err))
		return res
	}

	accepted := Accept(batch, v.log)
	res.Received = len(batch)
	res.Accepted = len(accepted)

	v.original = accepted
	v.current = slices.Clone(accepted)
	v.fresh = false

	v.log.Info("user batch loaded",
		zap.String("view_id", v.id),
		zap.Int("received", res.Received),
		zap.Int("accepted", res.Accepted),
		zap.Duration("duration", res.Duration))
	return res
}

// ToggleColors flips the row-coloring flag. The derived sequence is unaffected.
func (v *View) ToggleColors() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.params.Colorize = !v.params.Colorize
	return v.params.Colorize
}

// ChangeSort selects the sort key.
func (v *View) ChangeSort(key SortKey) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if key == "" {
		key = SortNone
	}
	if v.params.Sort == key {
		return
	}
	v.params.Sort = key
	v.fresh = false
}

// ToggleCountrySort flips between unsorted and sorted-by-country. Any other
// active key counts as sorted and flips to unsorted. It returns the new key.
func (v *View) ToggleCountrySort() SortKey {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.params.Sort == SortNone {
		v.params.Sort = SortCountry
	} else {
		v.params.Sort = SortNone
	}
	v.fresh = false
	return v.params.Sort
}

// ChangeFilter replaces the country filter. Empty text disables filtering;
// text is matched as given, spaces included.
func (v *View) ChangeFilter(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.params.Country == text {
		return
	}
	v.params.Country = text
	v.fresh = false
}

// DeleteUser removes the record with the given email from the current set.
// It reports whether a record was removed; a missing email is a no-op.
func (v *View) DeleteUser(email string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	key := normalize.Email(email)
	if key == "" {
		return false
	}
	i := slices.IndexFunc(v.current, func(u models.User) bool {
		return normalize.Email(u.Email) == key
	})
	if i < 0 {
		return false
	}

	next := make([]models.User, 0, len(v.current)-1)
	next = append(next, v.current[:i]...)
	next = append(next, v.current[i+1:]...)
	v.current = next
	v.fresh = false
	return true
}

// Reset restores the current set from the original set. View parameters
// are left alone.
func (v *View) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.current = slices.Clone(v.original)
	v.fresh = false
}

// Params returns the current view parameters.
func (v *View) Params() Params {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.params
}

// Users returns the derived sequence: the current set filtered by country and
// then sorted. The result is a copy the caller may keep.
func (v *View) Users() []models.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.derive())
}

// Original returns a copy of the original set.
func (v *View) Original() []models.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.original)
}

// Current returns a copy of the current set in its stored order.
func (v *View) Current() []models.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.current)
}

// Snapshot reads parameters, counts, and the derived sequence together.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		Params:   v.params,
		Users:    slices.Clone(v.derive()),
		Original: len(v.original),
		Current:  len(v.current),
		Loaded:   v.loaded,
	}
}

// derive returns the cached derived sequence, recomputing it when an input
// changed. Callers hold v.mu.
func (v *View) derive() []models.User {
	if !v.fresh {
		v.derived = Derive(v.current, v.params.Country, v.params.Sort, v.cmp)
		v.fresh = true
	}
	return v.derived
}
