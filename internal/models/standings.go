package models

// Histogram counts discrete outcome values in fixed slots 1..N.
// The last slot collects every value >= N.
type Histogram struct {
	Counts []int `json:"counts"`
}

// NewHistogram allocates a histogram with the given number of slots.
func NewHistogram(slots int) Histogram {
	if slots < 1 {
		slots = 1
	}
	return Histogram{Counts: make([]int, slots)}
}

// Slots returns the number of slots.
func (h Histogram) Slots() int {
	return len(h.Counts)
}

// Add counts one occurrence of value. Values below 1 are ignored.
func (h Histogram) Add(value int) {
	if value < 1 || len(h.Counts) == 0 {
		return
	}
	if value > len(h.Counts) {
		value = len(h.Counts)
	}
	h.Counts[value-1]++
}

// Get returns the count stored for value's slot.
func (h Histogram) Get(value int) int {
	if value < 1 || len(h.Counts) == 0 {
		return 0
	}
	if value > len(h.Counts) {
		value = len(h.Counts)
	}
	return h.Counts[value-1]
}

// Bucket is a non-empty histogram slot.
type Bucket struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// Buckets returns the non-empty slots in ascending order.
func (h Histogram) Buckets() []Bucket {
	out := make([]Bucket, 0, len(h.Counts))
	for i, c := range h.Counts {
		if c > 0 {
			out = append(out, Bucket{Value: i + 1, Count: c})
		}
	}
	return out
}

// Total returns the number of counted occurrences.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// StandingsEntry is one participant's row in a ranked standings table.
type StandingsEntry struct {
	ParticipantID ParticipantID  `json:"participant_id"`
	Name          string         `json:"name"`
	Sum           int            `json:"sum"`
	Metrics       map[string]int `json:"metrics,omitempty"`
	Participation int            `json:"participation"`
	Histogram     Histogram      `json:"histogram"`
	Rank          *int           `json:"rank"`
}

// RankValue returns the assigned rank or 0 when unranked.
func (e StandingsEntry) RankValue() int {
	if e.Rank == nil {
		return 0
	}
	return *e.Rank
}

// Standings is the report payload for a single format.
type Standings struct {
	Format  Format           `json:"format"`
	Window  Window           `json:"window"`
	Entries []StandingsEntry `json:"entries"`
}
