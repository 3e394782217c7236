package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kegelclub/club-stats/internal/models"
)

// ============================================================================
// DAILY PLACEMENT ENDPOINTS
// ============================================================================

// GetPlacements returns per-matchday relay placements with individual and team tallies
func (h *Handler) GetPlacements(w http.ResponseWriter, r *http.Request) {
	window, err := h.parseWindow(r)
	if err != nil {
		h.reportError(w, err, "placements")
		return
	}

	tables, err := h.reports.Placements(r.Context(), window)
	if err != nil {
		h.reportError(w, err, "placements")
		return
	}

	h.jsonResponse(w, http.StatusOK, tables)
}

// GetParticipantTeams returns the team tallies of every pairing a participant played in
func (h *Handler) GetParticipantTeams(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "participantID"), 10, 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid participant id")
		return
	}
	window, err := h.parseWindow(r)
	if err != nil {
		h.reportError(w, err, "placements")
		return
	}

	tables, err := h.reports.Placements(r.Context(), window)
	if err != nil {
		h.reportError(w, err, "placements")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"participant_id": id,
		"slots":          tables.Slots,
		"teams":          tables.TeamsOf(models.ParticipantID(id)),
	})
}

// GetChampions returns the best solo score per matchday and format
func (h *Handler) GetChampions(w http.ResponseWriter, r *http.Request) {
	window, err := h.parseWindow(r)
	if err != nil {
		h.reportError(w, err, "champions")
		return
	}

	champions, err := h.reports.Champions(r.Context(), window)
	if err != nil {
		h.reportError(w, err, "champions")
		return
	}
	if champions == nil {
		champions = []models.Champion{}
	}

	h.jsonResponse(w, http.StatusOK, champions)
}
