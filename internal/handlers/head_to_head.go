package handlers

import (
	"net/http"
	"strconv"

	"github.com/kegelclub/club-stats/internal/models"
)

// GetHeadToHead returns the per-opponent win/draw/loss ledger
// @Summary Head-to-head ledger
// @Tags Standings
// @Produce json
// @Param window query string false "current, previous, range or all" default(current)
// @Param participant query int false "Limit the ledger to one participant's row"
// @Router /head-to-head [get]
func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	window, err := h.parseWindow(r)
	if err != nil {
		h.reportError(w, err, "head-to-head")
		return
	}

	var only *models.ParticipantID
	if raw := r.URL.Query().Get("participant"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid participant id")
			return
		}
		pid := models.ParticipantID(id)
		only = &pid
	}

	ledger, err := h.reports.HeadToHead(r.Context(), window)
	if err != nil {
		h.reportError(w, err, "head-to-head")
		return
	}

	if only != nil {
		row, ok := ledger.Row(*only)
		if !ok {
			h.errorResponse(w, http.StatusNotFound, "Participant not found")
			return
		}
		h.jsonResponse(w, http.StatusOK, row)
		return
	}

	h.jsonResponse(w, http.StatusOK, ledger)
}
