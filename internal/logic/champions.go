package logic

import (
	"sort"

	"github.com/kegelclub/club-stats/internal/models"
)

// DailyChampions picks, per matchday and solo score format, the participant with the single highest
// score. The first record seen wins a tie. A best score of zero or less yields a NoWinner entry.
func DailyChampions(records []models.SoloRecord, roster models.Roster) []models.Champion {
	type dayFormat struct {
		day    int64
		format models.Format
	}

	var order []dayFormat
	best := make(map[dayFormat]*models.Champion)
	for _, r := range records {
		if r.Score == nil {
			continue
		}
		key := dayFormat{day: r.MatchdayID, format: r.Format}
		c, ok := best[key]
		if !ok {
			best[key] = &models.Champion{
				MatchdayID:    r.MatchdayID,
				PlayedOn:      r.PlayedOn,
				Format:        r.Format,
				ParticipantID: r.ParticipantID,
				Score:         r.Score.Value,
			}
			order = append(order, key)
			continue
		}
		if r.Score.Value > c.Score {
			c.ParticipantID = r.ParticipantID
			c.Score = r.Score.Value
		}
	}

	formatIndex := make(map[models.Format]int, len(models.AllFormats))
	for i, f := range models.AllFormats {
		formatIndex[f] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := best[order[i]], best[order[j]]
		if !a.PlayedOn.Equal(b.PlayedOn) {
			return a.PlayedOn.Before(b.PlayedOn)
		}
		if a.MatchdayID != b.MatchdayID {
			return a.MatchdayID < b.MatchdayID
		}
		return formatIndex[a.Format] < formatIndex[b.Format]
	})

	out := make([]models.Champion, 0, len(order))
	for _, key := range order {
		c := *best[key]
		if c.Score <= 0 {
			c.NoWinner = true
			c.ParticipantID = 0
		} else {
			c.Name = roster.Name(c.ParticipantID)
		}
		out = append(out, c)
	}
	return out
}
