package logic

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"

	"github.com/kegelclub/club-stats/internal/models"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisClient defines the interface for Redis client
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RecordStore supplies the materialised records a report is built from.
type RecordStore interface {
	Roster(ctx context.Context) ([]models.Participant, error)
	PairwiseRecords(ctx context.Context, format models.Format, window models.Window) ([]models.PairwiseRecord, error)
	SoloRecords(ctx context.Context, formats []models.Format, window models.Window) ([]models.SoloRecord, error)
	PlacementRecords(ctx context.Context, window models.Window) ([]models.PlacementRecord, error)
}

// ReportCache stores rendered reports. A miss returns false with a nil error.
type ReportCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// ReportService builds every report the API serves.
type ReportService interface {
	Standings(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error)
	RefreshStandings(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error)
	HeadToHead(ctx context.Context, window models.Window) (*models.HeadToHeadLedger, error)
	CrossTab(ctx context.Context, format models.Format, window models.Window) (*models.CrossTabGrid, error)
	Placements(ctx context.Context, window models.Window) (*models.PlacementTables, error)
	Champions(ctx context.Context, window models.Window) ([]models.Champion, error)
}
