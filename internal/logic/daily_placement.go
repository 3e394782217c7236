package logic

import (
	"sort"
	"strings"

	"github.com/kegelclub/club-stats/internal/models"
)

// DefaultRelaySlots is the number of placement slots tracked for the relay format.
const DefaultRelaySlots = 10

// RankMatchday assigns placements within one matchday: rounds desc, then points desc, equal keys
// keeping ascending game order. Every record gets a distinct place 1..N; ties are never shared here.
func RankMatchday(records []models.PlacementRecord) []models.DerivedPlacement {
	sorted := make([]models.PlacementRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Rounds != b.Rounds {
			return a.Rounds > b.Rounds
		}
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		return a.Game < b.Game
	})

	out := make([]models.DerivedPlacement, len(sorted))
	for i, r := range sorted {
		out[i] = models.DerivedPlacement{Record: r, Place: i + 1}
	}
	return out
}

// AccumulatePlacements ranks every matchday and counts placements per participant and per team.
// Both participants of a record receive its place, as does the team they form.
func AccumulatePlacements(records []models.PlacementRecord, roster models.Roster, slots int) models.PlacementTables {
	if slots <= 0 {
		slots = DefaultRelaySlots
	}

	var dayOrder []int64
	byDay := make(map[int64][]models.PlacementRecord)
	for _, r := range records {
		if _, ok := byDay[r.MatchdayID]; !ok {
			dayOrder = append(dayOrder, r.MatchdayID)
		}
		byDay[r.MatchdayID] = append(byDay[r.MatchdayID], r)
	}
	sort.SliceStable(dayOrder, func(i, j int) bool {
		a, b := byDay[dayOrder[i]][0].PlayedOn, byDay[dayOrder[j]][0].PlayedOn
		if !a.Equal(b) {
			return a.Before(b)
		}
		return dayOrder[i] < dayOrder[j]
	})

	var participantOrder []models.ParticipantID
	participants := make(map[models.ParticipantID]*models.PlacementRow)
	var teamOrder []models.TeamKey
	teams := make(map[models.TeamKey]*models.TeamRow)

	countParticipant := func(id models.ParticipantID, place int) {
		row, ok := participants[id]
		if !ok {
			row = &models.PlacementRow{ParticipantID: id, Histogram: models.NewHistogram(slots)}
			participants[id] = row
			participantOrder = append(participantOrder, id)
		}
		row.Histogram.Add(place)
	}

	tables := models.PlacementTables{Slots: slots}
	for _, day := range dayOrder {
		placements := RankMatchday(byDay[day])
		tables.Matchdays = append(tables.Matchdays, models.MatchdayPlacements{
			MatchdayID: day,
			PlayedOn:   byDay[day][0].PlayedOn,
			Placements: placements,
		})

		for _, p := range placements {
			countParticipant(p.Record.First, p.Place)
			if p.Record.Second != p.Record.First {
				countParticipant(p.Record.Second, p.Place)
			}

			key := models.NewTeamKey(p.Record.First, p.Record.Second)
			team, ok := teams[key]
			if !ok {
				team = &models.TeamRow{Key: key, Histogram: models.NewHistogram(slots)}
				teams[key] = team
				teamOrder = append(teamOrder, key)
			}
			team.Histogram.Add(p.Place)
		}
	}

	for _, id := range participantOrder {
		row := participants[id]
		row.Name = roster.Name(id)
		tables.Participants = append(tables.Participants, *row)
	}
	for _, key := range teamOrder {
		team := teams[key]
		team.Name = TeamName(key, roster)
		tables.Teams = append(tables.Teams, *team)
	}
	return tables
}

// TeamName is the canonical team key: both display names sorted and joined.
func TeamName(key models.TeamKey, roster models.Roster) string {
	if key[0] == key[1] {
		return roster.Name(key[0])
	}
	names := []string{roster.Name(key[0]), roster.Name(key[1])}
	sort.Strings(names)
	return strings.Join(names, " & ")
}

// PlacementStandings ranks placement rows through the dense rank contract:
// first places decide the rank, second and third places only order ties.
func PlacementStandings(rows []models.PlacementRow) []models.StandingsEntry {
	entries := make([]models.StandingsEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.StandingsEntry{
			ParticipantID: row.ParticipantID,
			Name:          row.Name,
			Sum:           row.Histogram.Get(1),
			Participation: row.Histogram.Total(),
			Histogram:     row.Histogram,
		})
	}
	return AssignDenseRanks(entries, BySum, ByBucket(2), ByBucket(3))
}
