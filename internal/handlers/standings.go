package handlers

import (
	"net/http"

	"github.com/kegelclub/club-stats/internal/export"
	"github.com/kegelclub/club-stats/internal/models"
)

// ============================================================================
// STANDINGS ENDPOINTS
// ============================================================================

type standingsResponse struct {
	Label string `json:"label"`
	*models.Standings
}

// GetStandings returns the ranked standings table for one format
// @Summary Format Standings
// @Tags Standings
// @Produce json
// @Param format path string true "wood, points, combined, nines, rats, relay or ranking"
// @Param window query string false "current, previous, range or all" default(current)
// @Param export query string false "xlsx"
// @Router /standings/{format} [get]
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	format, err := parseFormat(r)
	if err != nil {
		h.reportError(w, err, "standings")
		return
	}
	window, err := h.parseWindow(r)
	if err != nil {
		h.reportError(w, err, "standings")
		return
	}

	standings, err := h.reports.Standings(r.Context(), format, window)
	if err != nil {
		h.reportError(w, err, "standings")
		return
	}

	label := h.league.Label(format)
	if r.URL.Query().Get("export") == "xlsx" {
		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="standings-`+string(format)+`.xlsx"`)
		if err := export.WriteStandings(w, standings, label); err != nil {
			h.logger.Errorw("Failed to export standings", "format", format, "error", err)
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, standingsResponse{Label: label, Standings: standings})
}
