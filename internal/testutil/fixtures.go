package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/dalemusser/userdirectory/internal/domain/models"
)

// User builds a minimal record with the fields the view reads.
func User(email, first, last, country string) models.User {
	return models.User{
		Email:    email,
		Name:     models.Name{First: first, Last: last},
		Location: models.Location{Country: country},
		Picture:  models.Picture{Thumbnail: "https://example.com/" + first + ".jpg"},
	}
}

// ScenarioUsers is the two-record batch used across handler tests.
func ScenarioUsers() []models.User {
	return []models.User{
		User("a@x.com", "Ana", "Quispe", "Perú"),
		User("b@x.com", "Benjamín", "Rojas", "Chile"),
	}
}

// UserAPI is a fake random-user endpoint.
type UserAPI struct {
	*httptest.Server
	hits int32
}

// Hits reports how many requests the fake has served.
func (a *UserAPI) Hits() int {
	return int(atomic.LoadInt32(&a.hits))
}

// NewUserAPI serves {"results": users} to every request. A status other
// than 200 is answered with an error body instead.
func NewUserAPI(t *testing.T, status int, users []models.User) *UserAPI {
	t.Helper()
	api := &UserAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&api.hits, 1)
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"unavailable"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": users,
			"info":    map[string]any{"results": len(users), "page": 1},
		})
	}))
	t.Cleanup(api.Server.Close)
	return api
}
