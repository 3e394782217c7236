package logic

import "github.com/kegelclub/club-stats/internal/models"

// Metric names stored in StandingsEntry.Metrics for pairwise formats.
const (
	MetricAgainst = "against"
	MetricWins    = "wins"
	MetricDraws   = "draws"
	MetricLosses  = "losses"
	MetricBest    = "best"
)

// SoloRule describes how solo count records are folded.
type SoloRule struct {
	// Bucketed records only count positive values towards participation and the histogram.
	Bucketed bool
	// Slots is the histogram size; the last slot is the overflow bucket.
	Slots int
}

// DefaultSoloSlots is the bucket count for count-style formats: 1..9 plus 10 and above.
const DefaultSoloSlots = 10

// aggregate keeps one running entry per participant in first-seen order.
type aggregate struct {
	slots int
	order []models.ParticipantID
	byID  map[models.ParticipantID]*models.StandingsEntry
}

func newAggregate(slots int) *aggregate {
	return &aggregate{
		slots: slots,
		byID:  make(map[models.ParticipantID]*models.StandingsEntry),
	}
}

func (a *aggregate) entry(id models.ParticipantID) *models.StandingsEntry {
	if e, ok := a.byID[id]; ok {
		return e
	}
	e := &models.StandingsEntry{
		ParticipantID: id,
		Metrics:       make(map[string]int),
	}
	if a.slots > 0 {
		e.Histogram = models.NewHistogram(a.slots)
	}
	a.byID[id] = e
	a.order = append(a.order, id)
	return e
}

// result resolves display names and returns the entries in first-seen order.
func (a *aggregate) result(roster models.Roster) []models.StandingsEntry {
	out := make([]models.StandingsEntry, 0, len(a.order))
	for _, id := range a.order {
		e := a.byID[id]
		e.Name = roster.Name(id)
		out = append(out, *e)
	}
	return out
}

// AggregatePairwise folds pairwise records into one entry per participant. Every record counts
// for both participants, each with the sum of fields on their own side.
func AggregatePairwise(records []models.PairwiseRecord, fields []models.ScoreField, roster models.Roster) []models.StandingsEntry {
	agg := newAggregate(0)
	for _, r := range records {
		for _, id := range participantsOf(r) {
			own, opp, _ := ResolveSide(r, id)
			e := agg.entry(id)

			ownTotal, oppTotal := own.Total(fields...), opp.Total(fields...)
			e.Sum += ownTotal
			e.Participation++
			e.Metrics[MetricAgainst] += oppTotal
			for _, f := range fields {
				e.Metrics[string(f)] += own.Scores[f]
			}

			switch {
			case ownTotal > oppTotal:
				e.Metrics[MetricWins]++
			case ownTotal < oppTotal:
				e.Metrics[MetricLosses]++
			default:
				e.Metrics[MetricDraws]++
			}
		}
	}
	return agg.result(roster)
}

// AggregateSolo folds solo count records. Every value is added to the sum; with a bucketed rule only
// positive values count towards participation and the histogram. Placement records are skipped.
func AggregateSolo(records []models.SoloRecord, rule SoloRule, roster models.Roster) []models.StandingsEntry {
	slots := rule.Slots
	if rule.Bucketed && slots <= 0 {
		slots = DefaultSoloSlots
	}
	if !rule.Bucketed {
		slots = 0
	}

	agg := newAggregate(slots)
	for _, r := range records {
		if r.Score == nil {
			continue
		}
		v := r.Score.Value
		_, seen := agg.byID[r.ParticipantID]
		e := agg.entry(r.ParticipantID)

		e.Sum += v
		if !seen || v > e.Metrics[MetricBest] {
			e.Metrics[MetricBest] = v
		}

		if !rule.Bucketed {
			e.Participation++
			continue
		}
		if v > 0 {
			e.Participation++
			e.Histogram.Add(v)
		}
	}
	return agg.result(roster)
}

// AggregatePlacements folds manually entered placements into a placement histogram.
// Sum is the number of first places.
func AggregatePlacements(records []models.SoloRecord, slots int, roster models.Roster) []models.StandingsEntry {
	if slots <= 0 {
		slots = 1
	}
	agg := newAggregate(slots)
	for _, r := range records {
		if r.Placement == nil {
			continue
		}
		e := agg.entry(r.ParticipantID)
		e.Participation++
		e.Histogram.Add(r.Placement.Place)
		if r.Placement.Place == 1 {
			e.Sum++
		}
	}
	return agg.result(roster)
}
