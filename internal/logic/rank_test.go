package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kegelclub/club-stats/internal/models"
)

func TestAssignDenseRanks(t *testing.T) {
	entry := func(id models.ParticipantID, sum, wins int) models.StandingsEntry {
		return models.StandingsEntry{ParticipantID: id, Sum: sum, Metrics: map[string]int{MetricWins: wins}}
	}

	tests := []struct {
		name      string
		entries   []models.StandingsEntry
		tiebreaks []SortKey
		wantIDs   []models.ParticipantID
		wantRanks []int
	}{
		{
			name:      "Equal sums share a rank, next rank is dense",
			entries:   []models.StandingsEntry{entry(1, 10, 0), entry(2, 50, 0), entry(3, 30, 0), entry(4, 50, 0), entry(5, 10, 0)},
			wantIDs:   []models.ParticipantID{2, 4, 3, 1, 5},
			wantRanks: []int{1, 1, 2, 3, 3},
		},
		{
			name:      "Tiebreak orders but does not split",
			entries:   []models.StandingsEntry{entry(1, 20, 1), entry(2, 20, 4), entry(3, 5, 9)},
			tiebreaks: []SortKey{ByMetric(MetricWins)},
			wantIDs:   []models.ParticipantID{2, 1, 3},
			wantRanks: []int{1, 1, 2},
		},
		{
			name:      "Full ties keep input order",
			entries:   []models.StandingsEntry{entry(7, 3, 0), entry(5, 3, 0), entry(6, 3, 0)},
			wantIDs:   []models.ParticipantID{7, 5, 6},
			wantRanks: []int{1, 1, 1},
		},
		{
			name:      "Empty input",
			entries:   nil,
			wantIDs:   []models.ParticipantID{},
			wantRanks: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssignDenseRanks(tt.entries, BySum, tt.tiebreaks...)

			if diff := cmp.Diff(tt.wantIDs, idsOf(got)); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantRanks, ranksOf(got)); diff != "" {
				t.Errorf("rank mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAssignDenseRanks_Invariants(t *testing.T) {
	sums := []int{4, 9, 9, 0, 4, 4, 12, 0, 7}
	entries := make([]models.StandingsEntry, len(sums))
	for i, s := range sums {
		entries[i] = models.StandingsEntry{ParticipantID: models.ParticipantID(i + 1), Sum: s}
	}

	got := AssignDenseRanks(entries, BySum)

	if got[0].RankValue() != 1 {
		t.Fatalf("first rank = %d, want 1", got[0].RankValue())
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.Sum > prev.Sum {
			t.Errorf("entry %d sum %d sorted after smaller sum %d", i, cur.Sum, prev.Sum)
		}
		sameKey := cur.Sum == prev.Sum
		sameRank := cur.RankValue() == prev.RankValue()
		if sameKey != sameRank {
			t.Errorf("entry %d: equal key %v but equal rank %v", i, sameKey, sameRank)
		}
		if !sameRank && cur.RankValue() != prev.RankValue()+1 {
			t.Errorf("entry %d: rank jumped from %d to %d", i, prev.RankValue(), cur.RankValue())
		}
	}

	for _, e := range entries {
		if e.Rank != nil {
			t.Fatal("input entries must not be modified")
		}
	}
}

func TestByBucket(t *testing.T) {
	h := models.NewHistogram(3)
	h.Add(2)
	h.Add(2)
	h.Add(5)
	e := models.StandingsEntry{Histogram: h}

	if got := ByBucket(2)(e); got != 2 {
		t.Errorf("ByBucket(2) = %d, want 2", got)
	}
	if got := ByBucket(3)(e); got != 1 {
		t.Errorf("ByBucket(3) = %d, want 1 (overflow)", got)
	}
	if got := ByBucket(1)(e); got != 0 {
		t.Errorf("ByBucket(1) = %d, want 0", got)
	}
}
