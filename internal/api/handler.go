// Package api exposes the console's own HTTP surface: derived view models,
// the CSV export, filter state updates, the upload proxy, and the SSE event
// stream.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tmaxmax/go-sse"

	"github.com/codecraft26/aeroniva-console/internal/bus"
	"github.com/codecraft26/aeroniva-console/internal/geo"
	"github.com/codecraft26/aeroniva-console/internal/options"
	"github.com/codecraft26/aeroniva-console/internal/upstream"
)

// Handler carries the console's collaborators. Fields are wired in main.
type Handler struct {
	Refresher    *upstream.Refresher
	Upstream     *upstream.Client
	Options      *options.Cache
	Bus          *bus.Publisher
	SSE          *sse.Server
	Logger       *slog.Logger
	Bounds       geo.Bounds
	Palette      func(string) string
	UploadDelay  time.Duration
	MaxUploadMiB int64
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Use(bearerToken)
		r.Route("/views", func(r chi.Router) {
			r.Get("/table", h.handleTableView)
			r.Get("/table/export.csv", h.handleTableExport)
			r.Get("/map", h.handleMapView)
			r.Get("/dashboard", h.handleDashboardView)
		})
		r.Route("/filters", func(r chi.Router) {
			r.Get("/", h.handleFilterOptions)
			r.Put("/", h.handleFilterUpdate)
			r.Delete("/", h.handleFilterClear)
		})
		r.Post("/reports/upload", h.handleUpload)
		r.Get("/events", h.handleEvents)
	})
}

// bearerToken forwards the caller's bearer credential to upstream calls
// made on behalf of this request. Requests without one proceed unauthenticated;
// the backend decides what they may see.
func bearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
			r = r.WithContext(upstream.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}

// snapshot returns the latest published snapshot, warming the refresher on
// the first request. A failed warm-up is the caller's error; a failed
// refresh behind an existing snapshot never is, so views keep rendering the
// last good data.
func (h *Handler) snapshot(r *http.Request) (upstream.Snapshot, error) {
	if snap, ok := h.Refresher.Current(); ok {
		return snap, nil
	}
	return h.Refresher.Refresh(r.Context())
}

func (h *Handler) palette() func(string) string {
	if h.Palette != nil {
		return h.Palette
	}
	return geo.MarkerColor
}

func (h *Handler) writeUpstreamError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	if se, ok := err.(*upstream.StatusError); ok && se.StatusCode >= 400 {
		status = se.StatusCode
	}
	writeJSON(w, status, map[string]any{"ok": false, "message": err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
