package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kegelclub/club-stats/internal/logic"
	"github.com/kegelclub/club-stats/internal/models"
)

// Postgres reads roster and match records. Record entry lives elsewhere; this store never writes.
type Postgres struct {
	pg logic.PgPool
}

func NewPostgres(pg logic.PgPool) *Postgres {
	return &Postgres{pg: pg}
}

const rosterQuery = `
	SELECT id, first_name, last_name, COALESCE(nickname, '')
	FROM participants
	WHERE is_active = true
	ORDER BY last_name, first_name, id
`

// Roster returns every active participant.
func (s *Postgres) Roster(ctx context.Context) ([]models.Participant, error) {
	rows, err := s.pg.Query(ctx, rosterQuery)
	if err != nil {
		return nil, fmt.Errorf("roster query failed: %w", err)
	}
	defer rows.Close()

	participants := make([]models.Participant, 0)
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Nickname); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

const pairwiseQuery = `
	SELECT g.id, g.format, g.matchday_id, m.played_on, g.leg,
		g.a_id, g.a_wood, g.a_points, g.a_three_to_eight, g.a_five_pin,
		g.b_id, g.b_wood, g.b_points, g.b_three_to_eight, g.b_five_pin
	FROM pairwise_games g
	JOIN matchdays m ON m.id = g.matchday_id
	WHERE g.format = $1`

// PairwiseRecords returns the pairwise games of a format inside the window.
func (s *Postgres) PairwiseRecords(ctx context.Context, format models.Format, window models.Window) ([]models.PairwiseRecord, error) {
	sql, args := newRecordQuery(pairwiseQuery, string(format)).
		window("m.played_on", window).
		orderBy("m.played_on, g.id").
		build()

	rows, err := s.pg.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("pairwise query failed: %w", err)
	}
	defer rows.Close()

	records := make([]models.PairwiseRecord, 0)
	for rows.Next() {
		r, err := scanPairwise(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func scanPairwise(rows pgx.Rows) (models.PairwiseRecord, error) {
	var (
		r                       models.PairwiseRecord
		format                  string
		leg                     int
		aWood, aPts, a38, aFive int
		bWood, bPts, b38, bFive int
	)
	if err := rows.Scan(
		&r.ID, &format, &r.MatchdayID, &r.PlayedOn, &leg,
		&r.A.ParticipantID, &aWood, &aPts, &a38, &aFive,
		&r.B.ParticipantID, &bWood, &bPts, &b38, &bFive,
	); err != nil {
		return r, fmt.Errorf("scan pairwise game: %w", err)
	}
	r.Format = models.Format(format)
	r.Leg = models.Leg(leg)
	r.A.Scores = sideScores(r.Format, aWood, aPts, a38, aFive)
	r.B.Scores = sideScores(r.Format, bWood, bPts, b38, bFive)
	return r, nil
}

// sideScores keeps only the fields the format actually scores.
func sideScores(format models.Format, wood, points, threeToEight, fivePin int) map[models.ScoreField]int {
	all := map[models.ScoreField]int{
		models.FieldWood:         wood,
		models.FieldPoints:       points,
		models.FieldThreeToEight: threeToEight,
		models.FieldFivePin:      fivePin,
	}
	scores := make(map[models.ScoreField]int, 2)
	for _, f := range format.Fields() {
		scores[f] = all[f]
	}
	return scores
}

const soloQuery = `
	SELECT r.id, r.format, r.matchday_id, m.played_on, r.participant_id, r.value, r.place
	FROM solo_results r
	JOIN matchdays m ON m.id = r.matchday_id
	WHERE r.format = ANY($1)`

// SoloRecords returns solo results for the formats inside the window. Rows with a place become
// manual placements, all others count-style scores.
func (s *Postgres) SoloRecords(ctx context.Context, formats []models.Format, window models.Window) ([]models.SoloRecord, error) {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}

	sql, args := newRecordQuery(soloQuery, names).
		window("m.played_on", window).
		orderBy("m.played_on, r.id").
		build()

	rows, err := s.pg.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("solo query failed: %w", err)
	}
	defer rows.Close()

	records := make([]models.SoloRecord, 0)
	for rows.Next() {
		var (
			r      models.SoloRecord
			format string
			value  *int
			place  *int
		)
		if err := rows.Scan(&r.ID, &format, &r.MatchdayID, &r.PlayedOn, &r.ParticipantID, &value, &place); err != nil {
			return nil, fmt.Errorf("scan solo result: %w", err)
		}
		r.Format = models.Format(format)
		switch {
		case place != nil:
			r.Placement = &models.ManualPlacement{Place: *place}
		case value != nil:
			r.Score = &models.SoloScore{Value: *value}
		default:
			r.Score = &models.SoloScore{}
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

const placementQuery = `
	SELECT g.id, g.matchday_id, m.played_on, g.game, g.first_id, g.second_id, g.rounds, g.points
	FROM relay_games g
	JOIN matchdays m ON m.id = g.matchday_id
	WHERE true`

// PlacementRecords returns relay heats inside the window.
func (s *Postgres) PlacementRecords(ctx context.Context, window models.Window) ([]models.PlacementRecord, error) {
	sql, args := newRecordQuery(placementQuery).
		window("m.played_on", window).
		orderBy("m.played_on, g.matchday_id, g.game").
		build()

	rows, err := s.pg.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("placement query failed: %w", err)
	}
	defer rows.Close()

	records := make([]models.PlacementRecord, 0)
	for rows.Next() {
		var r models.PlacementRecord
		if err := rows.Scan(&r.ID, &r.MatchdayID, &r.PlayedOn, &r.Game, &r.First, &r.Second, &r.Rounds, &r.Points); err != nil {
			return nil, fmt.Errorf("scan relay game: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
