package logic

import (
	"time"

	"github.com/kegelclub/club-stats/internal/models"
)

var (
	day1 = time.Date(2024, 9, 6, 0, 0, 0, 0, time.UTC)
	day2 = day1.AddDate(0, 0, 7)
)

// testRoster sorts by surname as Bernie(2), Anna(1), Clara(3), Dieter(4).
func testRoster() models.Roster {
	return models.NewRoster([]models.Participant{
		{ID: 1, FirstName: "Anna", LastName: "Huber"},
		{ID: 2, FirstName: "Bernd", LastName: "Adler", Nickname: "Bernie"},
		{ID: 3, FirstName: "Clara", LastName: "Maier"},
		{ID: 4, FirstName: "Dieter", LastName: "Zeller"},
	})
}

func side(id models.ParticipantID, scores map[models.ScoreField]int) models.Side {
	return models.Side{ParticipantID: id, Scores: scores}
}

func woodGame(id int64, leg models.Leg, a models.ParticipantID, aWood int, b models.ParticipantID, bWood int) models.PairwiseRecord {
	return models.PairwiseRecord{
		ID:         id,
		Format:     models.FormatWood,
		MatchdayID: 1,
		PlayedOn:   day1,
		Leg:        leg,
		A:          side(a, map[models.ScoreField]int{models.FieldWood: aWood}),
		B:          side(b, map[models.ScoreField]int{models.FieldWood: bWood}),
	}
}

func combinedGame(id int64, a models.ParticipantID, a38, a5 int, b models.ParticipantID, b38, b5 int) models.PairwiseRecord {
	return models.PairwiseRecord{
		ID:         id,
		Format:     models.FormatCombined,
		MatchdayID: 1,
		PlayedOn:   day1,
		Leg:        models.LegFirst,
		A:          side(a, map[models.ScoreField]int{models.FieldThreeToEight: a38, models.FieldFivePin: a5}),
		B:          side(b, map[models.ScoreField]int{models.FieldThreeToEight: b38, models.FieldFivePin: b5}),
	}
}

func soloScore(id, matchday int64, on time.Time, format models.Format, p models.ParticipantID, value int) models.SoloRecord {
	return models.SoloRecord{
		ID:            id,
		Format:        format,
		MatchdayID:    matchday,
		PlayedOn:      on,
		ParticipantID: p,
		Score:         &models.SoloScore{Value: value},
	}
}

func manualPlace(id int64, p models.ParticipantID, place int) models.SoloRecord {
	return models.SoloRecord{
		ID:            id,
		Format:        models.FormatRanking,
		MatchdayID:    1,
		PlayedOn:      day1,
		ParticipantID: p,
		Placement:     &models.ManualPlacement{Place: place},
	}
}

func relayGame(id, matchday int64, on time.Time, game int, first, second models.ParticipantID, rounds, points int) models.PlacementRecord {
	return models.PlacementRecord{
		ID:         id,
		MatchdayID: matchday,
		PlayedOn:   on,
		Game:       game,
		First:      first,
		Second:     second,
		Rounds:     rounds,
		Points:     points,
	}
}

func ranksOf(entries []models.StandingsEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.RankValue()
	}
	return out
}

func idsOf(entries []models.StandingsEntry) []models.ParticipantID {
	out := make([]models.ParticipantID, len(entries))
	for i, e := range entries {
		out[i] = e.ParticipantID
	}
	return out
}
