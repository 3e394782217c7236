package handlers

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kegelclub/club-stats/internal/config"
	"github.com/kegelclub/club-stats/internal/logic"
	"github.com/kegelclub/club-stats/internal/models"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// RefreshQueue defines the interface for the standings refresh worker pool
type RefreshQueue interface {
	Enqueue(format models.Format, window models.Window) (uuid.UUID, bool)
	QueueDepth() int
}

// PgConn is the part of the Postgres pool used for readiness and schema install
type PgConn interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// RedisPinger is the part of the Redis client used for readiness
type RedisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type Config struct {
	WorkerPool RefreshQueue
	Postgres   PgConn
	ClickHouse driver.Conn // nil when snapshots are disabled
	Redis      RedisPinger
	Logger     *zap.Logger
	League     *config.League
	// Season start month used when the league file does not set one
	SeasonStartMonth int
	// Services
	Reports logic.ReportService
}

type Handler struct {
	pool             RefreshQueue
	pg               PgConn
	ch               driver.Conn
	redis            RedisPinger
	logger           *zap.SugaredLogger
	validator        *validator.Validate
	league           *config.League
	seasonStartMonth int
	now              func() time.Time
	reports          logic.ReportService
}

func New(cfg Config) *Handler {
	league := cfg.League
	if league == nil {
		league = &config.League{}
	}
	return &Handler{
		pool:             cfg.WorkerPool,
		pg:               cfg.Postgres,
		ch:               cfg.ClickHouse,
		redis:            cfg.Redis,
		logger:           cfg.Logger.Sugar(),
		validator:        validator.New(),
		league:           league,
		seasonStartMonth: league.SeasonStart(cfg.SeasonStartMonth),
		now:              time.Now,
		reports:          cfg.Reports,
	}
}
