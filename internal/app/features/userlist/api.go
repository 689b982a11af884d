// internal/app/features/userlist/api.go
package userlist

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dalemusser/userdirectory/internal/app/store/fetchlog"
	"github.com/dalemusser/userdirectory/internal/app/system/normalize"
	"github.com/dalemusser/userdirectory/internal/app/system/timeouts"
	"github.com/dalemusser/userdirectory/internal/domain/models"
)

const maxFetchLimit = 100

type viewResponse struct {
	ViewID   string        `json:"view_id"`
	Colorize bool          `json:"colorize"`
	Sort     string        `json:"sort"`
	Country  string        `json:"country"`
	Loaded   bool          `json:"loaded"`
	Original int           `json:"original"`
	Current  int           `json:"current"`
	Shown    int           `json:"shown"`
	Users    []models.User `json:"users"`
}

type fetchesResponse struct {
	Enabled bool                 `json:"enabled"`
	Fetches []models.FetchRecord `json:"fetches"`
}

// ServeViewJSON reports the view parameters, set sizes, and derived users.
func (h *Handler) ServeViewJSON(w http.ResponseWriter, r *http.Request) {
	v, ok := h.currentView(w, r)
	if !ok {
		return
	}
	snap := v.Snapshot()

	users := snap.Users
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, viewResponse{
		ViewID:   v.ID(),
		Colorize: snap.Params.Colorize,
		Sort:     string(snap.Params.Sort),
		Country:  snap.Params.Country,
		Loaded:   snap.Loaded,
		Original: snap.Original,
		Current:  snap.Current,
		Shown:    len(snap.Users),
		Users:    users,
	})
}

// ServeFetches lists recent initial-load attempts, newest first. The
// optional "limit" query parameter is capped at 100.
func (h *Handler) ServeFetches(w http.ResponseWriter, r *http.Request) {
	if h.Fetches == nil {
		writeJSON(w, http.StatusOK, fetchesResponse{Fetches: []models.FetchRecord{}})
		return
	}

	limit := int64(fetchlog.DefaultRecent)
	if s := normalize.QueryParam(r.URL.Query().Get("limit")); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n <= 0 {
			h.ErrLog.LogBadRequest(w, r, "bad fetch limit", err, "limit must be a positive integer.")
			return
		}
		limit = min(n, maxFetchLimit)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	recs, err := h.Fetches.Recent(ctx, limit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list fetch records failed", err, "Unable to read the fetch log.")
		return
	}
	if recs == nil {
		recs = []models.FetchRecord{}
	}
	writeJSON(w, http.StatusOK, fetchesResponse{Enabled: true, Fetches: recs})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
