package worker

import (
	"context"
	"sync"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/kegelclub/club-stats/internal/models"
)

// MockReportService implements logic.ReportService for testing
type MockReportService struct {
	mu                   sync.Mutex
	Calls                []models.Format
	RefreshStandingsFunc func(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error)
}

func (m *MockReportService) RefreshStandings(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, format)
	m.mu.Unlock()
	if m.RefreshStandingsFunc != nil {
		return m.RefreshStandingsFunc(ctx, format, window)
	}
	return &models.Standings{Format: format, Window: window}, nil
}

func (m *MockReportService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Stubs for interface compliance
func (m *MockReportService) Standings(ctx context.Context, format models.Format, window models.Window) (*models.Standings, error) {
	return nil, nil
}
func (m *MockReportService) HeadToHead(ctx context.Context, window models.Window) (*models.HeadToHeadLedger, error) {
	return nil, nil
}
func (m *MockReportService) CrossTab(ctx context.Context, format models.Format, window models.Window) (*models.CrossTabGrid, error) {
	return nil, nil
}
func (m *MockReportService) Placements(ctx context.Context, window models.Window) (*models.PlacementTables, error) {
	return nil, nil
}
func (m *MockReportService) Champions(ctx context.Context, window models.Window) ([]models.Champion, error) {
	return nil, nil
}

// MockClickHouseConn implements driver.Conn for testing
type MockClickHouseConn struct {
	driver.Conn
	mu      sync.Mutex
	Batches []*MockBatch
}

func (m *MockClickHouseConn) PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := &MockBatch{Query: query}
	m.Batches = append(m.Batches, b)
	return b, nil
}

// MockBatch records appended rows
type MockBatch struct {
	driver.Batch
	Query    string
	Appended [][]interface{}
	Sent     bool
}

func (m *MockBatch) Append(v ...interface{}) error {
	m.Appended = append(m.Appended, v)
	return nil
}

func (m *MockBatch) Rows() int {
	return len(m.Appended)
}

func (m *MockBatch) Send() error {
	m.Sent = true
	return nil
}
