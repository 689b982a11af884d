// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/userdirectory/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler is the errors feature handler.
// No state needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page with a 404 status.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found", "/"),
		Message: "There is nothing at this address.",
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}
