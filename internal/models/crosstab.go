package models

import "strconv"

// LegScore is a leg's score in a cross-tab cell. An unplayed leg is blank, which is not the same as 0.
type LegScore struct {
	Value  int  `json:"value"`
	Played bool `json:"played"`
}

// String renders the score, or "" for a leg that was never played.
func (s LegScore) String() string {
	if !s.Played {
		return ""
	}
	return strconv.Itoa(s.Value)
}

// Plus adds two leg scores. The result is blank only if both are blank.
func (s LegScore) Plus(o LegScore) LegScore {
	return LegScore{Value: s.Value + o.Value, Played: s.Played || o.Played}
}

// SelfMarker is rendered on the diagonal of a cross-tab grid.
const SelfMarker = "X"

// Cell is one (row, column) pairing of a cross-tab grid.
type Cell struct {
	Self     bool     `json:"self"`
	First    LegScore `json:"first"`
	Second   LegScore `json:"second"`
	Combined LegScore `json:"combined"`
}

// Label renders the combined value, the self marker, or blank.
func (c Cell) Label() string {
	if c.Self {
		return SelfMarker
	}
	return c.Combined.String()
}

// CrossTabRow is one participant's row with totals and rank badge.
type CrossTabRow struct {
	ParticipantID ParticipantID `json:"participant_id"`
	Name          string        `json:"name"`
	Cells         []Cell        `json:"cells"`
	FirstTotal    int           `json:"first_total"`
	SecondTotal   int           `json:"second_total"`
	GrandTotal    int           `json:"grand_total"`
	Rank          int           `json:"rank"`
}

// CrossTabGrid is the square round-robin matrix, rows and columns in the same order.
type CrossTabGrid struct {
	Format       Format        `json:"format"`
	Window       Window        `json:"window"`
	Rows         []CrossTabRow `json:"rows"`
	ColumnTotals []int         `json:"column_totals"`
}

// Size returns N for an N×N grid.
func (g CrossTabGrid) Size() int {
	return len(g.Rows)
}
