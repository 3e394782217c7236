package logic

import (
	"sort"

	"github.com/kegelclub/club-stats/internal/models"
)

// Category is one independent head-to-head competition. Outcomes compare the sum of Fields per side.
type Category struct {
	Name    models.Category
	Records []models.PairwiseRecord
	Fields  []models.ScoreField
}

// PairwiseCategory builds the single category of a wood or points format.
func PairwiseCategory(format models.Format, records []models.PairwiseRecord) Category {
	name := models.CategoryWood
	if format == models.FormatPoints {
		name = models.CategoryPoints
	}
	return Category{Name: name, Records: records, Fields: format.Fields()}
}

// CombinedCategories derives three parallel categories from one set of combined records:
// each sub-score on its own and the sum of both.
func CombinedCategories(records []models.PairwiseRecord) []Category {
	return []Category{
		{Name: models.CategoryThreeToEight, Records: records, Fields: []models.ScoreField{models.FieldThreeToEight}},
		{Name: models.CategoryFivePin, Records: records, Fields: []models.ScoreField{models.FieldFivePin}},
		{Name: models.CategoryCombined, Records: records, Fields: []models.ScoreField{models.FieldThreeToEight, models.FieldFivePin}},
	}
}

// BuildHeadToHead tallies wins, draws and losses per participant, category and opponent.
// Rows follow the roster's surname order. A participant without games in a category gets an
// empty map for it; self-pairings are ignored.
func BuildHeadToHead(roster models.Roster, categories []Category) []models.HeadToHeadRow {
	type ledger = map[models.ParticipantID]map[models.ParticipantID]models.Outcome

	tallies := make(map[models.Category]ledger, len(categories))
	for _, c := range categories {
		l, ok := tallies[c.Name]
		if !ok {
			l = make(ledger)
			tallies[c.Name] = l
		}
		for _, r := range c.Records {
			if r.A.ParticipantID == r.B.ParticipantID {
				continue
			}
			for _, id := range participantsOf(r) {
				own, opp, _ := ResolveSide(r, id)
				byOpp, ok := l[id]
				if !ok {
					byOpp = make(map[models.ParticipantID]models.Outcome)
					l[id] = byOpp
				}
				o := byOpp[opp.ParticipantID]
				ownTotal, oppTotal := own.Total(c.Fields...), opp.Total(c.Fields...)
				switch {
				case ownTotal == oppTotal:
					o.Draws++
				case ownTotal > oppTotal:
					o.Wins++
				default:
					o.Losses++
				}
				byOpp[opp.ParticipantID] = o
			}
		}
	}

	participants := roster.Sorted()
	rows := make([]models.HeadToHeadRow, 0, len(participants))
	for _, p := range participants {
		row := models.HeadToHeadRow{
			Participant: p,
			Categories:  make(map[models.Category]map[models.ParticipantID]models.Outcome, len(tallies)),
		}
		seen := make(map[models.ParticipantID]struct{})
		for name, l := range tallies {
			byOpp := l[p.ID]
			if byOpp == nil {
				byOpp = make(map[models.ParticipantID]models.Outcome)
			}
			row.Categories[name] = byOpp
			for opp := range byOpp {
				seen[opp] = struct{}{}
			}
		}
		row.Opponents = sortedOpponents(seen, roster)
		rows = append(rows, row)
	}
	return rows
}

// sortedOpponents resolves names and orders opponents alphabetically, id breaking name ties.
func sortedOpponents(ids map[models.ParticipantID]struct{}, roster models.Roster) []models.Opponent {
	out := make([]models.Opponent, 0, len(ids))
	for id := range ids {
		out = append(out, models.Opponent{ID: id, Name: roster.Name(id)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}
