package userlist

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/userdirectory/internal/app/features/errors"
	"github.com/dalemusser/userdirectory/internal/app/system/directory"
	"github.com/dalemusser/userdirectory/internal/app/system/ratelimit"
	"github.com/dalemusser/userdirectory/internal/app/system/viewsession"
	"github.com/dalemusser/userdirectory/internal/app/system/viewstate"
	"github.com/dalemusser/userdirectory/internal/domain/models"
	"go.uber.org/zap"
)

// FetchLister reads the fetch log. It is nil when the log is disabled.
type FetchLister interface {
	Recent(ctx context.Context, limit int64) ([]models.FetchRecord, error)
}

// Handler serves the user list page, its controls, and its JSON views.
type Handler struct {
	Views    *viewstate.Registry
	Fetches  FetchLister
	NewViews *ratelimit.Limiter // nil means unlimited
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a user list Handler. fetches and newViews may be nil.
func NewHandler(views *viewstate.Registry, fetches FetchLister, newViews *ratelimit.Limiter, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Views:    views,
		Fetches:  fetches,
		NewViews: newViews,
		ErrLog:   errLog,
		Log:      logger,
	}
}

// currentView resolves the request's view, creating and loading it on the
// browser's first request. On failure it has already written the response.
func (h *Handler) currentView(w http.ResponseWriter, r *http.Request) (*directory.View, bool) {
	id, ok := viewsession.CurrentViewID(r)
	if !ok {
		h.ErrLog.LogServerError(w, r, "request has no view id", nil, "Session unavailable.")
		return nil, false
	}

	// Each new view costs one outbound fetch; cap how fast a client can start them.
	if _, live := h.Views.Get(id); !live && h.NewViews != nil {
		ip := ratelimit.ClientIP(r)
		if !h.NewViews.Allow(ip) {
			h.Log.Warn("new view rate limited", zap.String("view_id", id), zap.String("ip", ip))
			http.Error(w, "Too many new sessions. Please wait a minute and try again.", http.StatusTooManyRequests)
			return nil, false
		}
		h.Log.Debug("new view admitted",
			zap.String("view_id", id),
			zap.String("ip", ip),
			zap.Int("remaining", h.NewViews.Remaining(ip)))
	}

	v, created, err := h.Views.Lookup(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "view lookup failed", err, "Unable to load the user list.")
		return nil, false
	}
	if created {
		h.Log.Info("view started", zap.String("view_id", id))
	}
	return v, true
}
