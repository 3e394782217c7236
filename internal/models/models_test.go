package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestHistogram(t *testing.T) {
	h := NewHistogram(4)
	for _, v := range []int{0, -2, 1, 3, 3, 4, 9} {
		h.Add(v)
	}

	if got := h.Slots(); got != 4 {
		t.Fatalf("Slots = %d, want 4", got)
	}
	want := []int{1, 0, 2, 2}
	for i, c := range want {
		if h.Counts[i] != c {
			t.Errorf("slot %d = %d, want %d", i+1, h.Counts[i], c)
		}
	}
	if h.Get(100) != 2 {
		t.Errorf("Get above range should read the overflow slot, got %d", h.Get(100))
	}
	if h.Get(0) != 0 {
		t.Errorf("Get(0) = %d, want 0", h.Get(0))
	}
	if h.Total() != 5 {
		t.Errorf("Total = %d, want 5", h.Total())
	}

	buckets := h.Buckets()
	if len(buckets) != 3 || buckets[0].Value != 1 || buckets[2].Value != 4 {
		t.Errorf("Buckets = %+v, want ascending non-empty slots 1, 3, 4", buckets)
	}
}

func TestHistogram_ZeroValue(t *testing.T) {
	var h Histogram
	h.Add(3)
	if h.Total() != 0 || h.Get(3) != 0 || len(h.Buckets()) != 0 {
		t.Errorf("zero histogram must ignore adds, got %+v", h)
	}
	if NewHistogram(0).Slots() != 1 {
		t.Error("NewHistogram must allocate at least one slot")
	}
}

func TestLegScore(t *testing.T) {
	blank := LegScore{}
	zero := LegScore{Value: 0, Played: true}
	seven := LegScore{Value: 7, Played: true}

	if blank.String() != "" {
		t.Errorf("blank renders %q, want empty", blank.String())
	}
	if zero.String() != "0" {
		t.Errorf("played zero renders %q, want 0", zero.String())
	}
	if got := blank.Plus(blank); got.Played {
		t.Error("blank + blank must stay blank")
	}
	if got := blank.Plus(zero); !got.Played || got.Value != 0 {
		t.Errorf("blank + 0 = %+v, want played 0", got)
	}
	if got := zero.Plus(seven); got.Value != 7 {
		t.Errorf("0 + 7 = %+v", got)
	}

	if (Cell{Self: true, Combined: seven}).Label() != SelfMarker {
		t.Error("self cell must render the self marker")
	}
	if (Cell{Combined: blank}).Label() != "" {
		t.Error("unplayed cell must render blank")
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats {
		got, err := ParseFormat(string(f))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("skittles"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}

	if !FormatCombined.IsPairwise() || FormatNines.IsPairwise() {
		t.Error("IsPairwise misclassified")
	}
	if !FormatRats.IsSoloScore() || FormatRanking.IsSoloScore() {
		t.Error("IsSoloScore misclassified")
	}
	if len(FormatCombined.Fields()) != 2 || FormatRelay.Fields() != nil {
		t.Error("Fields misconfigured")
	}
	for _, f := range AllFormats {
		want := f == FormatNines || f == FormatRats || f == FormatRanking || f == FormatRelay
		if f.HasHistogram() != want {
			t.Errorf("%s.HasHistogram() = %v", f, !want)
		}
	}
}

func TestRoster(t *testing.T) {
	roster := NewRoster([]Participant{
		{ID: 3, FirstName: "Eva", LastName: "Berg"},
		{ID: 1, FirstName: "Jo", LastName: "Arndt", Nickname: "  "},
		{ID: 2, FirstName: "Eva", LastName: "Berg"},
		{ID: 4, FirstName: "Karl", LastName: "Arndt", Nickname: "Kalle"},
	})

	if got := roster.Name(4); got != "Kalle" {
		t.Errorf("Name(4) = %q, want nickname", got)
	}
	if got := roster.Name(1); got != "Jo" {
		t.Errorf("Name(1) = %q, blank nickname must fall back to first name", got)
	}
	if got := roster.Name(42); got != "" {
		t.Errorf("unknown id rendered %q", got)
	}

	var ids []ParticipantID
	for _, p := range roster.Sorted() {
		ids = append(ids, p.ID)
	}
	want := []ParticipantID{1, 4, 2, 3}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("Sorted ids = %v, want %v", ids, want)
		}
	}
}

func TestWindow(t *testing.T) {
	w := Window{
		Kind: WindowRange,
		From: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
	}
	if !w.Contains(w.From) {
		t.Error("window must contain its start")
	}
	if w.Contains(w.To) {
		t.Error("window must exclude its end")
	}
	if got := w.CacheKey(); got != "range:2024-10-01:2024-11-01" {
		t.Errorf("CacheKey = %q", got)
	}

	all := Window{Kind: WindowAll}
	if !all.Contains(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("unbounded window must contain everything")
	}
	if got := all.CacheKey(); got != "all:-:-" {
		t.Errorf("CacheKey = %q", got)
	}
}

func TestTeamKey(t *testing.T) {
	if NewTeamKey(9, 2) != NewTeamKey(2, 9) {
		t.Error("team key must not depend on order")
	}
	k := NewTeamKey(9, 2)
	if !k.Has(2) || !k.Has(9) || k.Has(3) {
		t.Errorf("Has misbehaves for %v", k)
	}
}

func TestHeadToHeadJSON(t *testing.T) {
	row := HeadToHeadRow{
		Participant: Participant{ID: 1, FirstName: "Anna"},
		Categories: map[Category]map[ParticipantID]Outcome{
			CategoryWood: {2: {Wins: 1}},
		},
	}
	raw, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back HeadToHeadRow
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Against(CategoryWood, 2).Wins != 1 {
		t.Errorf("integer-keyed opponent map lost in JSON: %s", raw)
	}
}
