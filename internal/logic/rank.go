package logic

import (
	"sort"

	"github.com/kegelclub/club-stats/internal/models"
)

// SortKey extracts a descending sort value from a standings entry.
type SortKey func(e models.StandingsEntry) int

func BySum(e models.StandingsEntry) int { return e.Sum }

func ByParticipation(e models.StandingsEntry) int { return e.Participation }

// ByMetric sorts on a named entry metric.
func ByMetric(name string) SortKey {
	return func(e models.StandingsEntry) int { return e.Metrics[name] }
}

// ByBucket sorts on a histogram slot count, e.g. ByBucket(1) for first places.
func ByBucket(value int) SortKey {
	return func(e models.StandingsEntry) int { return e.Histogram.Get(value) }
}

// AssignDenseRanks returns a copy of entries sorted by primary then tiebreaks, all descending,
// with dense ranks: an entry shares the previous rank iff its primary key is equal, otherwise it
// gets previous rank + 1. Tiebreaks only fix display order, they never split a rank.
// [50 50 30 10 10] ranks as [1 1 2 3 3].
func AssignDenseRanks(entries []models.StandingsEntry, primary SortKey, tiebreaks ...SortKey) []models.StandingsEntry {
	out := make([]models.StandingsEntry, len(entries))
	copy(out, entries)

	keys := append([]SortKey{primary}, tiebreaks...)
	sort.SliceStable(out, func(i, j int) bool {
		for _, key := range keys {
			a, b := key(out[i]), key(out[j])
			if a != b {
				return a > b
			}
		}
		return false
	})

	rank := 0
	for i := range out {
		if i == 0 || primary(out[i]) != primary(out[i-1]) {
			rank++
		}
		r := rank
		out[i].Rank = &r
	}
	return out
}
