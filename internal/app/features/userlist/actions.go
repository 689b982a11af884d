// internal/app/features/userlist/actions.go
package userlist

import (
	"net/http"

	"github.com/dalemusser/userdirectory/internal/app/system/directory"
	"github.com/dalemusser/userdirectory/internal/app/system/limits"
	"github.com/dalemusser/userdirectory/internal/app/system/normalize"
	"go.uber.org/zap"
)

// sortToggle selects the two-state country toggle instead of a direct key.
const sortToggle = "toggle"

// HandleColors flips row coloring.
func (h *Handler) HandleColors(w http.ResponseWriter, r *http.Request) {
	v, ok := h.currentView(w, r)
	if !ok {
		return
	}
	on := v.ToggleColors()
	h.Log.Debug("colors toggled", zap.String("view_id", v.ID()), zap.Bool("colorize", on))
	backToList(w, r)
}

// HandleSort sets the sort key from form field "key".
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	raw := r.FormValue("key")
	var key directory.SortKey
	toggle := normalize.SortKey(raw) == sortToggle
	if !toggle {
		var err error
		key, err = directory.ParseSortKey(raw)
		if err != nil {
			h.ErrLog.LogBadRequest(w, r, "unknown sort key", err, "Unknown sort key.")
			return
		}
	}

	v, ok := h.currentView(w, r)
	if !ok {
		return
	}
	if toggle {
		key = v.ToggleCountrySort()
	} else {
		v.ChangeSort(key)
	}
	h.Log.Debug("sort changed", zap.String("view_id", v.ID()), zap.String("sort", string(key)))
	backToList(w, r)
}

// HandleFilter replaces the country filter with form field "country".
func (h *Handler) HandleFilter(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	v, ok := h.currentView(w, r)
	if !ok {
		return
	}
	v.ChangeFilter(r.FormValue("country"))
	backToList(w, r)
}

// HandleReset restores the current set from the original batch.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	v, ok := h.currentView(w, r)
	if !ok {
		return
	}
	v.Reset()
	h.Log.Debug("view reset", zap.String("view_id", v.ID()))
	backToList(w, r)
}

// HandleDelete removes the record named by form field "email" from the
// current set. A missing email is not an error.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	v, ok := h.currentView(w, r)
	if !ok {
		return
	}
	email := r.FormValue("email")
	removed := v.DeleteUser(email)
	h.Log.Debug("delete user",
		zap.String("view_id", v.ID()),
		zap.String("email", normalize.Email(email)),
		zap.Bool("removed", removed))
	backToList(w, r)
}

// parseForm reads a size-limited control form. On failure it has already
// written the response.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.")
		return false
	}
	return true
}

// backToList ends every control post.
func backToList(w http.ResponseWriter, r *http.Request) {
	// HTMX flow: redirect via HX-Redirect
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
