package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/dalemusser/userdirectory/internal/app/system/viewsession"
)

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewFormRequest creates a form-encoded request for testing POST handlers.
func NewFormRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// WithView places a view id in the request context, bypassing the session cookie.
func WithView(r *http.Request, viewID string) *http.Request {
	return viewsession.WithViewID(r, viewID)
}
