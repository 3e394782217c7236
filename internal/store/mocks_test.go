package store

import (
	"context"
	"reflect"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

// MockPgPool records the last query and serves canned rows
type MockPgPool struct {
	Rows     [][]any
	Err      error
	LastSQL  string
	LastArgs []any
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	m.LastSQL = sql
	m.LastArgs = args
	if m.Err != nil {
		return nil, m.Err
	}
	return &MockPGXRows{Data: m.Rows}, nil
}

func (m *MockPgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (m *MockPgPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

// MockPGXRows
type MockPGXRows struct {
	Data  [][]any
	Index int
}

func (m *MockPGXRows) Close()                                       {}
func (m *MockPGXRows) Err() error                                   { return nil }
func (m *MockPGXRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (m *MockPGXRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (m *MockPGXRows) Values() ([]any, error)                       { return nil, nil }
func (m *MockPGXRows) RawValues() [][]byte                          { return nil }
func (m *MockPGXRows) Conn() *pgx.Conn                              { return nil }

func (m *MockPGXRows) Next() bool {
	m.Index++
	return m.Index <= len(m.Data)
}

func (m *MockPGXRows) Scan(dest ...any) error {
	row := m.Data[m.Index-1]
	for i, val := range row {
		if i < len(dest) {
			setDest(dest[i], val)
		}
	}
	return nil
}

func setDest(dest any, val any) {
	v := reflect.ValueOf(dest).Elem()
	if val == nil {
		v.Set(reflect.Zero(v.Type()))
		return
	}
	valV := reflect.ValueOf(val)
	// Handle nullable columns scanned into pointers
	if v.Kind() == reflect.Ptr && !valV.Type().ConvertibleTo(v.Type()) {
		p := reflect.New(v.Type().Elem())
		p.Elem().Set(valV.Convert(v.Type().Elem()))
		v.Set(p)
		return
	}
	// Handle type conversion if needed (e.g. int to int64)
	if valV.Type().ConvertibleTo(v.Type()) {
		v.Set(valV.Convert(v.Type()))
	} else {
		v.Set(valV)
	}
}

// MockRedisClient stores raw values in a map
type MockRedisClient struct {
	Data    map[string]string
	TTL     time.Duration
	GetErr  error
	SetErr  error
	GetKeys []string
}

func newMockRedis() *MockRedisClient {
	return &MockRedisClient{Data: map[string]string{}}
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	m.GetKeys = append(m.GetKeys, key)
	if m.GetErr != nil {
		return redis.NewStringResult("", m.GetErr)
	}
	val, ok := m.Data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if m.SetErr != nil {
		return redis.NewStatusResult("", m.SetErr)
	}
	switch v := value.(type) {
	case []byte:
		m.Data[key] = string(v)
	case string:
		m.Data[key] = v
	}
	m.TTL = expiration
	return redis.NewStatusResult("OK", nil)
}
