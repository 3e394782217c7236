package logic

import "github.com/kegelclub/club-stats/internal/models"

type legKey struct {
	low, high models.ParticipantID
	leg       models.Leg
}

func newLegKey(a, b models.ParticipantID, leg models.Leg) legKey {
	if b < a {
		a, b = b, a
	}
	if leg != models.LegSecond {
		leg = models.LegFirst
	}
	return legKey{low: a, high: b, leg: leg}
}

// BuildCrossTab builds the round-robin grid for ranked standings. Rows and columns follow the
// standings order; the rank badge is copied from the standings, never recomputed.
//
// Cell (i, j) holds participant i's own score from the first- and second-leg record against j;
// the first record found for a leg wins and an unplayed leg stays blank. Row totals re-scan every
// record of participant i, so they match AggregatePairwise for the same fields.
func BuildCrossTab(standings []models.StandingsEntry, records []models.PairwiseRecord, fields []models.ScoreField) models.CrossTabGrid {
	legs := make(map[legKey]models.PairwiseRecord, len(records))
	for _, r := range records {
		if r.A.ParticipantID == r.B.ParticipantID {
			continue
		}
		key := newLegKey(r.A.ParticipantID, r.B.ParticipantID, r.Leg)
		if _, ok := legs[key]; !ok {
			legs[key] = r
		}
	}

	n := len(standings)
	grid := models.CrossTabGrid{
		Rows:         make([]models.CrossTabRow, n),
		ColumnTotals: make([]int, n),
	}

	for i, subject := range standings {
		row := models.CrossTabRow{
			ParticipantID: subject.ParticipantID,
			Name:          subject.Name,
			Cells:         make([]models.Cell, n),
			Rank:          subject.RankValue(),
		}

		for j, opponent := range standings {
			if i == j {
				row.Cells[j] = models.Cell{Self: true}
				continue
			}
			cell := models.Cell{
				First:  legScore(legs, subject.ParticipantID, opponent.ParticipantID, models.LegFirst, fields),
				Second: legScore(legs, subject.ParticipantID, opponent.ParticipantID, models.LegSecond, fields),
			}
			cell.Combined = cell.First.Plus(cell.Second)
			row.Cells[j] = cell
		}

		for _, r := range records {
			own, _, ok := ResolveSide(r, subject.ParticipantID)
			if !ok {
				continue
			}
			if r.Leg == models.LegSecond {
				row.SecondTotal += own.Total(fields...)
			} else {
				row.FirstTotal += own.Total(fields...)
			}
		}
		row.GrandTotal = row.FirstTotal + row.SecondTotal
		grid.Rows[i] = row
	}

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if i != j {
				grid.ColumnTotals[j] += grid.Rows[i].Cells[j].Combined.Value
			}
		}
	}
	return grid
}

func legScore(legs map[legKey]models.PairwiseRecord, subject, opponent models.ParticipantID, leg models.Leg, fields []models.ScoreField) models.LegScore {
	r, ok := legs[newLegKey(subject, opponent, leg)]
	if !ok {
		return models.LegScore{}
	}
	own, _, _ := ResolveSide(r, subject)
	return models.LegScore{Value: own.Total(fields...), Played: true}
}
