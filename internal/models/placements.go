package models

import "time"

// TeamKey identifies a pairing-as-team by its sorted participant ids.
type TeamKey [2]ParticipantID

// NewTeamKey orders the two ids so that (a, b) and (b, a) share a key.
func NewTeamKey(a, b ParticipantID) TeamKey {
	if b < a {
		a, b = b, a
	}
	return TeamKey{a, b}
}

// Has reports whether the participant is one of the two team members.
func (k TeamKey) Has(id ParticipantID) bool {
	return k[0] == id || k[1] == id
}

// PlacementRow is a participant's placement histogram across matchdays.
type PlacementRow struct {
	ParticipantID ParticipantID `json:"participant_id"`
	Name          string        `json:"name"`
	Histogram     Histogram     `json:"histogram"`
}

// TeamRow is a team's placement histogram. Name is the canonical team key:
// both display names sorted and joined.
type TeamRow struct {
	Key       TeamKey   `json:"key"`
	Name      string    `json:"name"`
	Histogram Histogram `json:"histogram"`
}

// MatchdayPlacements holds the derived placements of one matchday.
type MatchdayPlacements struct {
	MatchdayID int64              `json:"matchday_id"`
	PlayedOn   time.Time          `json:"played_on"`
	Placements []DerivedPlacement `json:"placements"`
}

// PlacementTables is the output of the relay placement pipeline.
type PlacementTables struct {
	Window       Window               `json:"window"`
	Slots        int                  `json:"slots"`
	Matchdays    []MatchdayPlacements `json:"matchdays"`
	Participants []PlacementRow       `json:"participants"`
	Teams        []TeamRow            `json:"teams"`
}

// TeamsOf lists every team row the participant belongs to, in team table order.
func (t PlacementTables) TeamsOf(id ParticipantID) []TeamRow {
	out := make([]TeamRow, 0)
	for _, team := range t.Teams {
		if team.Key.Has(id) {
			out = append(out, team)
		}
	}
	return out
}

// Champion is the best solo score of a matchday in one category.
type Champion struct {
	MatchdayID    int64         `json:"matchday_id"`
	PlayedOn      time.Time     `json:"played_on"`
	Format        Format        `json:"format"`
	ParticipantID ParticipantID `json:"participant_id,omitempty"`
	Name          string        `json:"name,omitempty"`
	Score         int           `json:"score"`
	NoWinner      bool          `json:"no_winner"`
}
