package logic

import (
	"errors"
	"testing"
	"time"

	"github.com/kegelclub/club-stats/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonStart(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		month int
		want  time.Time
	}{
		{"Spring belongs to previous year's season", date(2025, 3, 10), 8, date(2024, 8, 1)},
		{"Start month begins the season", date(2025, 8, 1), 8, date(2025, 8, 1)},
		{"January start", date(2025, 3, 10), 1, date(2025, 1, 1)},
		{"Invalid month falls back to August", date(2025, 9, 2), 13, date(2025, 8, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeasonStart(tt.now, tt.month); !got.Equal(tt.want) {
				t.Errorf("SeasonStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveWindow(t *testing.T) {
	now := date(2025, 3, 10)

	tests := []struct {
		name     string
		req      models.WindowRequest
		wantKind models.WindowKind
		wantFrom time.Time
		wantTo   time.Time
		wantErr  bool
	}{
		{
			name:     "Empty means current season",
			req:      models.WindowRequest{},
			wantKind: models.WindowCurrent,
			wantFrom: date(2024, 8, 1),
			wantTo:   date(2025, 8, 1),
		},
		{
			name:     "Previous season",
			req:      models.WindowRequest{Window: "previous"},
			wantKind: models.WindowPrevious,
			wantFrom: date(2023, 8, 1),
			wantTo:   date(2024, 8, 1),
		},
		{
			name:     "All time is unbounded",
			req:      models.WindowRequest{Window: "all"},
			wantKind: models.WindowAll,
		},
		{
			name:     "Range includes the end date",
			req:      models.WindowRequest{Window: "range", From: "2024-10-01", To: "2024-10-31"},
			wantKind: models.WindowRange,
			wantFrom: date(2024, 10, 1),
			wantTo:   date(2024, 11, 1),
		},
		{
			name:    "Range end before start",
			req:     models.WindowRequest{Window: "range", From: "2024-10-31", To: "2024-10-01"},
			wantErr: true,
		},
		{
			name:    "Malformed date",
			req:     models.WindowRequest{Window: "range", From: "10/01/2024", To: "2024-10-31"},
			wantErr: true,
		},
		{
			name:    "Unknown kind",
			req:     models.WindowRequest{Window: "fortnight"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveWindow(tt.req, now, 8)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidWindow) {
					t.Fatalf("expected ErrInvalidWindow, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if !got.From.Equal(tt.wantFrom) || !got.To.Equal(tt.wantTo) {
				t.Errorf("bounds = [%v, %v), want [%v, %v)", got.From, got.To, tt.wantFrom, tt.wantTo)
			}
		})
	}
}
