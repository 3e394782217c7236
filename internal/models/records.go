package models

import "time"

// Format identifies one of the club's competition formats.
type Format string

const (
	FormatWood     Format = "wood"     // round-robin singles, wood count
	FormatPoints   Format = "points"   // pairwise points game
	FormatCombined Format = "combined" // 3-to-8 plus 5-pin
	FormatNines    Format = "nines"
	FormatRats     Format = "rats"
	FormatRelay    Format = "relay"   // multi-heat relay, placement derived per matchday
	FormatRanking  Format = "ranking" // placement entered by the recorder
)

// AllFormats lists the formats in the order reports present them.
var AllFormats = []Format{
	FormatWood, FormatPoints, FormatCombined, FormatNines, FormatRats, FormatRelay, FormatRanking,
}

// ParseFormat validates a format name coming from a request or config file.
func ParseFormat(s string) (Format, error) {
	for _, f := range AllFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", ErrUnknownFormat
}

// IsPairwise reports whether the format is logged as pairwise records.
func (f Format) IsPairwise() bool {
	return f == FormatWood || f == FormatPoints || f == FormatCombined
}

// IsSoloScore reports whether the format is logged as solo count records.
func (f Format) IsSoloScore() bool {
	return f == FormatNines || f == FormatRats
}

// HasHistogram reports whether standings of the format carry a bucket histogram.
func (f Format) HasHistogram() bool {
	return f.IsSoloScore() || f == FormatRanking || f == FormatRelay
}

// ScoreField names one numeric score on a side of a pairwise record.
type ScoreField string

const (
	FieldWood         ScoreField = "wood"
	FieldPoints       ScoreField = "points"
	FieldThreeToEight ScoreField = "three_to_eight"
	FieldFivePin      ScoreField = "five_pin"
)

// Fields returns the score fields summed for a pairwise format.
func (f Format) Fields() []ScoreField {
	switch f {
	case FormatWood:
		return []ScoreField{FieldWood}
	case FormatPoints:
		return []ScoreField{FieldPoints}
	case FormatCombined:
		return []ScoreField{FieldThreeToEight, FieldFivePin}
	}
	return nil
}

// Leg is one half of a round-robin pairing.
type Leg int

const (
	LegFirst  Leg = 1
	LegSecond Leg = 2
)

// Side is one participant's half of a pairwise record.
type Side struct {
	ParticipantID ParticipantID      `json:"participant_id"`
	Scores        map[ScoreField]int `json:"scores"`
}

// Total sums the given fields. Missing fields count as zero.
func (s Side) Total(fields ...ScoreField) int {
	total := 0
	for _, f := range fields {
		total += s.Scores[f]
	}
	return total
}

// PairwiseRecord is one logged game between two participants.
type PairwiseRecord struct {
	ID         int64     `json:"id"`
	Format     Format    `json:"format"`
	MatchdayID int64     `json:"matchday_id"`
	PlayedOn   time.Time `json:"played_on"`
	Leg        Leg       `json:"leg"`
	A          Side      `json:"a"`
	B          Side      `json:"b"`
}

// Involves reports whether the participant occupies either side.
func (r PairwiseRecord) Involves(id ParticipantID) bool {
	return r.A.ParticipantID == id || r.B.ParticipantID == id
}

// SoloScore is a raw count-style result such as nines or rats thrown.
type SoloScore struct {
	Value int `json:"value"`
}

// ManualPlacement is a placement entered by the recorder. It is taken verbatim and never recomputed.
type ManualPlacement struct {
	Place int `json:"place"`
}

// SoloRecord is one logged result for a single participant. Exactly one of Score or Placement is set.
type SoloRecord struct {
	ID            int64            `json:"id"`
	Format        Format           `json:"format"`
	MatchdayID    int64            `json:"matchday_id"`
	PlayedOn      time.Time        `json:"played_on"`
	ParticipantID ParticipantID    `json:"participant_id"`
	Score         *SoloScore       `json:"score,omitempty"`
	Placement     *ManualPlacement `json:"placement,omitempty"`
}

// PlacementRecord is a relay heat result for a pairing on a matchday.
// Its placement is derived from Rounds and Points, never stored.
type PlacementRecord struct {
	ID         int64         `json:"id"`
	MatchdayID int64         `json:"matchday_id"`
	PlayedOn   time.Time     `json:"played_on"`
	Game       int           `json:"game"`
	First      ParticipantID `json:"first"`
	Second     ParticipantID `json:"second"`
	Rounds     int           `json:"rounds"`
	Points     int           `json:"points"`
}

// DerivedPlacement is the place computed for a PlacementRecord within its matchday.
type DerivedPlacement struct {
	Record PlacementRecord `json:"record"`
	Place  int             `json:"place"`
}
