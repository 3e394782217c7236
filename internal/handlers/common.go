package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kegelclub/club-stats/internal/logic"
	"github.com/kegelclub/club-stats/internal/models"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check all dependencies
	checks := map[string]bool{
		"postgres": h.pg.Ping(ctx) == nil,
		"redis":    h.redis.Ping(ctx).Err() == nil,
	}
	if h.ch != nil {
		checks["clickhouse"] = h.ch.Ping(ctx) == nil
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if !allHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":      allHealthy,
		"checks":     checks,
		"queueDepth": h.pool.QueueDepth(),
	})
}

// parseWindow reads window, from and to query parameters.
func (h *Handler) parseWindow(r *http.Request) (models.Window, error) {
	q := r.URL.Query()
	return h.parseWindowRequest(models.WindowRequest{
		Window: q.Get("window"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	})
}

func (h *Handler) parseWindowRequest(req models.WindowRequest) (models.Window, error) {
	if err := h.validator.Struct(&req); err != nil {
		return models.Window{}, fmt.Errorf("%w: %v", models.ErrInvalidWindow, err)
	}
	return logic.ResolveWindow(req, h.now(), h.seasonStartMonth)
}

// parseFormat reads the {format} URL parameter.
func parseFormat(r *http.Request) (models.Format, error) {
	return models.ParseFormat(chi.URLParam(r, "format"))
}

// reportError maps request errors to 400 and everything else to 500.
func (h *Handler) reportError(w http.ResponseWriter, err error, report string) {
	if errors.Is(err, models.ErrUnknownFormat) || errors.Is(err, models.ErrInvalidWindow) {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Errorw("Failed to build report", "report", report, "error", err)
	h.errorResponse(w, http.StatusInternalServerError, "Failed to build "+report)
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	// team names are joined with " & "
	enc.SetEscapeHTML(false)
	enc.Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
