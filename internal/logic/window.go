package logic

import (
	"fmt"
	"time"

	"github.com/kegelclub/club-stats/internal/models"
)

const dateLayout = "2006-01-02"

// SeasonStart returns the first day of the season containing now.
func SeasonStart(now time.Time, startMonth int) time.Time {
	if startMonth < 1 || startMonth > 12 {
		startMonth = 8
	}
	year := now.Year()
	if int(now.Month()) < startMonth {
		year--
	}
	return time.Date(year, time.Month(startMonth), 1, 0, 0, 0, 0, now.Location())
}

// ResolveWindow turns a window request into concrete bounds. An empty kind means the current season.
// Explicit ranges are inclusive of the To date.
func ResolveWindow(req models.WindowRequest, now time.Time, seasonStartMonth int) (models.Window, error) {
	kind := models.WindowKind(req.Window)
	if kind == "" {
		kind = models.WindowCurrent
	}

	switch kind {
	case models.WindowCurrent:
		start := SeasonStart(now, seasonStartMonth)
		return models.Window{Kind: kind, From: start, To: start.AddDate(1, 0, 0)}, nil
	case models.WindowPrevious:
		start := SeasonStart(now, seasonStartMonth)
		return models.Window{Kind: kind, From: start.AddDate(-1, 0, 0), To: start}, nil
	case models.WindowAll:
		return models.Window{Kind: kind}, nil
	case models.WindowRange:
		from, err := time.ParseInLocation(dateLayout, req.From, now.Location())
		if err != nil {
			return models.Window{}, fmt.Errorf("%w: from: %v", models.ErrInvalidWindow, err)
		}
		to, err := time.ParseInLocation(dateLayout, req.To, now.Location())
		if err != nil {
			return models.Window{}, fmt.Errorf("%w: to: %v", models.ErrInvalidWindow, err)
		}
		if to.Before(from) {
			return models.Window{}, fmt.Errorf("%w: to before from", models.ErrInvalidWindow)
		}
		return models.Window{Kind: kind, From: from, To: to.AddDate(0, 0, 1)}, nil
	}
	return models.Window{}, fmt.Errorf("%w: kind %q", models.ErrInvalidWindow, kind)
}
