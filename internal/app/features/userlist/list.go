// internal/app/features/userlist/list.go
package userlist

import (
	"net/http"

	"github.com/dalemusser/userdirectory/internal/app/system/directory"
	"github.com/dalemusser/userdirectory/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServePage renders the directory: title, control bar, and the table of
// derived users.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	v, ok := h.currentView(w, r)
	if !ok {
		return
	}

	data := buildPageData(viewdata.NewBaseVM(r, viewdata.SiteName(), "/"), v.Snapshot())

	// HTMX partial table refresh
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "directory-table-wrap" {
		templates.RenderSnippet(w, "userlist_table", data)
		return
	}

	templates.Render(w, r, "userlist_page", data)
}

func buildPageData(base viewdata.BaseVM, snap directory.Snapshot) pageData {
	return pageData{
		BaseVM:      base,
		Colorize:    snap.Params.Colorize,
		Sort:        string(snap.Params.Sort),
		SortLabel:   snap.Params.Sort.Label(),
		Country:     snap.Params.Country,
		Loaded:      snap.Loaded,
		Original:    snap.Original,
		Current:     snap.Current,
		Shown:       len(snap.Users),
		SortOptions: sortOptions(snap.Params.Sort),
		Rows:        Rows(snap.Users, snap.Params.Colorize),
	}
}
