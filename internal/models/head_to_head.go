package models

// Category names an independent head-to-head competition category.
type Category string

const (
	CategoryWood         Category = "wood"
	CategoryPoints       Category = "points"
	CategoryThreeToEight Category = "three_to_eight"
	CategoryFivePin      Category = "five_pin"
	CategoryCombined     Category = "combined"
)

// Outcome tallies results against one opponent.
type Outcome struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// Games returns the number of tallied games.
func (o Outcome) Games() int {
	return o.Wins + o.Draws + o.Losses
}

// Opponent is an opponent resolved for rendering.
type Opponent struct {
	ID   ParticipantID `json:"id"`
	Name string        `json:"name"`
}

// HeadToHeadRow is the per-participant ledger across all categories.
type HeadToHeadRow struct {
	Participant Participant                            `json:"participant"`
	Categories  map[Category]map[ParticipantID]Outcome `json:"categories"`
	Opponents   []Opponent                             `json:"opponents"`
}

// Against returns the outcome against an opponent in a category.
func (r HeadToHeadRow) Against(c Category, opponent ParticipantID) Outcome {
	return r.Categories[c][opponent]
}

// HeadToHeadLedger is the head-to-head report, rows in roster order.
type HeadToHeadLedger struct {
	Window Window          `json:"window"`
	Rows   []HeadToHeadRow `json:"rows"`
}

// Row finds the ledger row for a participant.
func (l HeadToHeadLedger) Row(id ParticipantID) (HeadToHeadRow, bool) {
	for _, r := range l.Rows {
		if r.Participant.ID == id {
			return r, true
		}
	}
	return HeadToHeadRow{}, false
}
