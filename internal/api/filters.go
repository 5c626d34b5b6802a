package api

import (
	"errors"
	"net/http"

	"github.com/codecraft26/aeroniva-console/internal/reports"
	"github.com/codecraft26/aeroniva-console/internal/upstream"
)

// handleFilterOptions serves the selectable filter values from the shared
// cache; only a cache miss reaches the backend.
func (h *Handler) handleFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.Options.Options(r.Context())
	if err != nil {
		h.writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

// handleFilterUpdate merges a patch into the shared filter state and
// refreshes the snapshot under a new generation. Filter values are not
// validated here; an unknown drone id simply yields an empty collection
// from the backend.
func (h *Handler) handleFilterUpdate(w http.ResponseWriter, r *http.Request) {
	var patch reports.FilterPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "message": err.Error()})
		return
	}
	snap, err := h.Refresher.UpdateFilter(r.Context(), patch)
	if err != nil {
		h.writeFilterRefreshError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filterResponse(snap))
}

// handleFilterClear resets every filter dimension.
func (h *Handler) handleFilterClear(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Refresher.ClearFilter(r.Context())
	if err != nil {
		h.writeFilterRefreshError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, filterResponse(snap))
}

// A stale result means a newer filter update already superseded this one;
// that is not a failure the caller can act on.
func (h *Handler) writeFilterRefreshError(w http.ResponseWriter, err error) {
	if errors.Is(err, upstream.ErrStale) {
		writeJSON(w, http.StatusConflict, map[string]any{"ok": false, "message": "superseded by a newer filter update"})
		return
	}
	h.writeUpstreamError(w, err)
}

func filterResponse(snap upstream.Snapshot) map[string]any {
	return map[string]any{
		"ok":         true,
		"filter":     snap.Filter,
		"total":      len(snap.Violations),
		"generation": snap.Generation,
	}
}
