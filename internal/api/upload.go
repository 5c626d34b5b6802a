package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/codecraft26/aeroniva-console/internal/bus"
)

const defaultMaxUploadMiB = 10

// handleUpload validates and forwards one JSON report file to the backend.
// Non-JSON content is rejected here, before any network call. Backend
// errors pass through with their body verbatim. On success the filter
// option cache is invalidated, an upload event goes out, and a countdown
// refresh is armed so the views advance together a few seconds later.
func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxMiB := h.MaxUploadMiB
	if maxMiB <= 0 {
		maxMiB = defaultMaxUploadMiB
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxMiB<<20)

	file, header, err := r.FormFile("report")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "message": "missing report file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "message": "could not read report file"})
		return
	}
	if !json.Valid(content) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "message": "Only JSON files are allowed."})
		return
	}

	uploadID := uuid.NewString()
	h.Logger.Info("forwarding report upload",
		slog.String("upload_id", uploadID),
		slog.String("filename", header.Filename),
		slog.Int("bytes", len(content)))

	result, err := h.Upstream.Upload(r.Context(), header.Filename, content)
	if err != nil {
		h.Logger.Warn("report upload rejected",
			slog.String("upload_id", uploadID),
			slog.String("error", err.Error()))
		h.writeUpstreamError(w, err)
		return
	}

	h.Options.Invalidate(r.Context())
	if err := h.Bus.Publish(bus.SubjectReportUploaded, map[string]any{
		"upload_id":        uploadID,
		"filename":         header.Filename,
		"violations_count": result.ViolationsCount,
	}); err != nil {
		h.Logger.Warn("upload event publish failed",
			slog.String("upload_id", uploadID),
			slog.String("error", err.Error()))
	}
	h.publishEvent("upload", map[string]any{
		"uploadId":        uploadID,
		"violationsCount": result.ViolationsCount,
		"refreshIn":       h.UploadDelay.Seconds(),
	})
	h.Refresher.ScheduleRefresh(h.UploadDelay)

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":              true,
		"violationsCount": result.ViolationsCount,
		"refreshIn":       h.UploadDelay.Seconds(),
	})
}
