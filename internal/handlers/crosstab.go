package handlers

import (
	"net/http"

	"github.com/kegelclub/club-stats/internal/export"
)

// GetCrossTab returns the round-robin grid of a pairwise format
// @Summary Cross-tabulation grid
// @Tags Standings
// @Produce json
// @Param format path string true "wood, points or combined"
// @Param window query string false "current, previous, range or all" default(current)
// @Param export query string false "xlsx"
// @Router /crosstab/{format} [get]
func (h *Handler) GetCrossTab(w http.ResponseWriter, r *http.Request) {
	format, err := parseFormat(r)
	if err != nil {
		h.reportError(w, err, "cross-tab")
		return
	}
	window, err := h.parseWindow(r)
	if err != nil {
		h.reportError(w, err, "cross-tab")
		return
	}

	grid, err := h.reports.CrossTab(r.Context(), format, window)
	if err != nil {
		h.reportError(w, err, "cross-tab")
		return
	}

	if r.URL.Query().Get("export") == "xlsx" {
		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="crosstab-`+string(format)+`.xlsx"`)
		if err := export.WriteCrossTab(w, grid, h.league.Label(format)); err != nil {
			h.logger.Errorw("Failed to export cross-tab", "format", format, "error", err)
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, grid)
}
