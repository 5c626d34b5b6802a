package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tmaxmax/go-sse"

	"github.com/codecraft26/aeroniva-console/internal/bus"
	"github.com/codecraft26/aeroniva-console/internal/upstream"
)

// handleEvents serves the SSE stream sibling views subscribe to, so the
// table, map and dashboard refresh together instead of polling separately.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	h.SSE.ServeHTTP(w, r)
}

// PublishSnapshot is the refresher's publish hook: every newly installed
// snapshot is announced over SSE and on the bus.
func (h *Handler) PublishSnapshot(snap upstream.Snapshot) {
	h.publishEvent("snapshot", map[string]any{
		"generation": snap.Generation,
		"filter":     snap.Filter,
		"total":      len(snap.Violations),
		"takenAt":    snap.TakenAt,
	})
	if err := h.Bus.Publish(bus.SubjectSnapshotRefreshed, map[string]any{
		"generation": snap.Generation,
		"total":      len(snap.Violations),
	}); err != nil {
		h.Logger.Warn("snapshot event publish failed", slog.String("error", err.Error()))
	}
}

func (h *Handler) publishEvent(event string, payload map[string]any) {
	if h.SSE == nil {
		return
	}
	payload["event"] = event
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	msg := &sse.Message{}
	msg.AppendData(data)
	h.SSE.Publish(msg)
}
