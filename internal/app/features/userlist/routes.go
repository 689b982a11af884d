package userlist

import (
	"github.com/dalemusser/userdirectory/internal/app/system/viewsession"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user list at the root of the site.
//
// Example mount from bootstrap:
//
//	h := userlist.NewHandler(registry, fetchStore, newViews, errLog, logger)
//	r.Mount("/", userlist.Routes(h, sessionMgr))
func Routes(h *Handler, sm *viewsession.Manager) chi.Router {
	r := chi.NewRouter()

	// Every request belongs to a view; the cookie names it.
	r.Use(sm.LoadViewID)

	r.Get("/", h.ServePage)

	// Controls
	r.Post("/colors", h.HandleColors)
	r.Post("/sort", h.HandleSort)
	r.Post("/filter", h.HandleFilter)
	r.Post("/reset", h.HandleReset)
	r.Post("/users/delete", h.HandleDelete)

	// JSON
	r.Get("/api/view", h.ServeViewJSON)
	r.Get("/api/fetches", h.ServeFetches)

	return r
}
