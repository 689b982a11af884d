package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/userdirectory/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ViewCounter reports how many browser views are live.
type ViewCounter interface {
	Len() int
}

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client // nil when the fetch log is disabled
	Views  ViewCounter
	Log    *zap.Logger
}

// NewHandler constructs a health Handler. client may be nil.
func NewHandler(client *mongo.Client, views ViewCounter, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Views:  views,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Views    int    `json:"views"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "views":3 }
//
// "database" is "disabled" when no MongoDB is configured. On ping failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "disabled",
	}
	if h.Views != nil {
		resp.Views = h.Views.Len()
	}

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()

		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Error("health-check: mongo ping failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Message = "Database unavailable"
			resp.Error = err.Error()
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		resp.Database = "connected"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
