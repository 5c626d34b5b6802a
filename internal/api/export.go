package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/codecraft26/aeroniva-console/internal/export"
)

// handleTableExport streams the current sorted, filtered table as CSV,
// under the same query/sort/dir parameters as the table view.
func (h *Handler) handleTableExport(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot(r)
	if err != nil {
		h.writeUpstreamError(w, err)
		return
	}
	sorted, _, _, _ := tableQuery(r, snap)

	filename := export.Filename(time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteCSV(w, sorted); err != nil {
		h.Logger.Error("csv export write failed", slog.String("error", err.Error()))
	}
}
