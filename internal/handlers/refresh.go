package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/kegelclub/club-stats/internal/models"
)

// RefreshReports queues standings rebuilds for the given formats
// @Summary Refresh standings
// @Description Rebuilds standings bypassing the cache and records a snapshot per format
// @Tags System
// @Accept json
// @Produce json
// @Success 202 {object} models.RefreshResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /reports/refresh [post]
func (h *Handler) RefreshReports(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	window, err := h.parseWindowRequest(models.WindowRequest{Window: req.Window})
	if err != nil {
		h.reportError(w, err, "refresh")
		return
	}

	formats := models.AllFormats
	if len(req.Formats) > 0 {
		formats = make([]models.Format, 0, len(req.Formats))
		for _, name := range req.Formats {
			f, err := models.ParseFormat(name)
			if err != nil {
				h.reportError(w, err, "refresh")
				return
			}
			formats = append(formats, f)
		}
	}

	resp := models.RefreshResponse{Jobs: make([]string, 0, len(formats))}
	for _, f := range formats {
		id, ok := h.pool.Enqueue(f, window)
		if !ok {
			h.logger.Warnw("Refresh queue full, dropping remaining formats", "format", f, "queued", len(resp.Jobs))
			if len(resp.Jobs) == 0 {
				h.errorResponse(w, http.StatusServiceUnavailable, "Refresh queue full")
				return
			}
			break
		}
		resp.Jobs = append(resp.Jobs, id.String())
	}

	h.jsonResponse(w, http.StatusAccepted, resp)
}
