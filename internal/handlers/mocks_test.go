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
	"github.com/kegelclub/club-stats/internal/models"
)

// MockReportService implements logic.ReportService for testing
type MockReportService struct {
	StandingsFunc  func(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error)
	HeadToHeadFunc func(ctx context.Context, window models.Window) (*models.HeadToHeadLedger, error)
	CrossTabFunc   func(ctx context.Context, format models.Format, window models.Window) (*models.CrossTabGrid, error)
	PlacementsFunc func(ctx context.Context, window models.Window) (*models.PlacementTables, error)
	ChampionsFunc  func(ctx context.Context, window models.Window) ([]models.Champion, error)
	LastWindow     models.Window
}

func (m *MockReportService) Standings(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error) {
	m.LastWindow = window
	if m.StandingsFunc != nil {
		return m.StandingsFunc(ctx, format, window)
	}
	return &models.Standings{Format: format, Window: window}, nil
}

func (m *MockReportService) RefreshStandings(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error) {
	return m.Standings(ctx, format, window)
}

func (m *MockReportService) HeadToHead(ctx context.Context, window models.Window) (*models.HeadToHeadLedger, error) {
	m.LastWindow = window
	if m.HeadToHeadFunc != nil {
		return m.HeadToHeadFunc(ctx, window)
	}
	return &models.HeadToHeadLedger{Window: window}, nil
}

func (m *MockReportService) CrossTab(ctx context.Context, format models.Format, window models.Window) (*models.CrossTabGrid, error) {
	m.LastWindow = window
	if m.CrossTabFunc != nil {
		return m.CrossTabFunc(ctx, format, window)
	}
	return &models.CrossTabGrid{Format: format, Window: window}, nil
}

func (m *MockReportService) Placements(ctx context.Context, window models.Window) (*models.PlacementTables, error) {
	m.LastWindow = window
	if m.PlacementsFunc != nil {
		return m.PlacementsFunc(ctx, window)
	}
	return &models.PlacementTables{Window: window}, nil
}

func (m *MockReportService) Champions(ctx context.Context, window models.Window) ([]models.Champion, error) {
	m.LastWindow = window
	if m.ChampionsFunc != nil {
		return m.ChampionsFunc(ctx, window)
	}
	return nil, nil
}

// MockRefreshQueue
type MockRefreshQueue struct {
	Capacity int
	Jobs     []models.Format
	Windows  []models.Window
}

func (m *MockRefreshQueue) Enqueue(format models.Format, window models.Window) (uuid.UUID, bool) {
	if m.Capacity > 0 && len(m.Jobs) >= m.Capacity {
		return uuid.Nil, false
	}
	m.Jobs = append(m.Jobs, format)
	m.Windows = append(m.Windows, window)
	return uuid.New(), true
}

func (m *MockRefreshQueue) QueueDepth() int { return len(m.Jobs) }

// MockPgConn records executed SQL
type MockPgConn struct {
	PingErr    error
	ExecErr    error
	Statements []string
}

func (m *MockPgConn) Ping(ctx context.Context) error { return m.PingErr }

func (m *MockPgConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if m.ExecErr != nil {
		return pgconn.CommandTag{}, m.ExecErr
	}
	m.Statements = append(m.Statements, sql)
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

// MockRedis answers pings
type MockRedis struct {
	Err error
}

func (m *MockRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", m.Err)
}

// MockClickHouseConn implements driver.Conn for testing
type MockClickHouseConn struct {
	driver.Conn
	PingErr    error
	ExecErr    error
	Statements []string
}

func (m *MockClickHouseConn) Ping(ctx context.Context) error { return m.PingErr }

func (m *MockClickHouseConn) Exec(ctx context.Context, query string, args ...any) error {
	if m.ExecErr != nil {
		return m.ExecErr
	}
	m.Statements = append(m.Statements, query)
	return nil
}

// fixedNow is mid-season 2024/25.
var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestHandler(reports *MockReportService, pool *MockRefreshQueue, league *config.League) *Handler {
	if league == nil {
		league = &config.League{}
	}
	return &Handler{
		pool:             pool,
		logger:           zap.NewNop().Sugar(),
		validator:        validator.New(),
		league:           league,
		seasonStartMonth: 8,
		now:              func() time.Time { return fixedNow },
		reports:          reports,
	}
}
