package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the report API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/standings/{format}", h.GetStandings)
	r.Get("/head-to-head", h.GetHeadToHead)
	r.Get("/crosstab/{format}", h.GetCrossTab)
	r.Get("/placements", h.GetPlacements)
	r.Get("/placements/teams/{participantID}", h.GetParticipantTeams)
	r.Get("/champions", h.GetChampions)

	r.Post("/reports/refresh", h.RefreshReports)
	r.Post("/system/install", h.InstallDatabase)

	return r
}
