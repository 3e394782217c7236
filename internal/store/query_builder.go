package store

import (
	"fmt"

	"github.com/kegelclub/club-stats/internal/models"
)

// recordQuery accumulates a parameterised Postgres query.
type recordQuery struct {
	sql  string
	args []any
}

func newRecordQuery(base string, args ...any) *recordQuery {
	return &recordQuery{sql: base, args: args}
}

// arg appends a value and returns its placeholder.
func (q *recordQuery) arg(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

// where appends an AND condition; %s in cond is replaced by the placeholder for v.
func (q *recordQuery) where(cond string, v any) *recordQuery {
	q.sql += " AND " + fmt.Sprintf(cond, q.arg(v))
	return q
}

// window restricts the matchday date column to the report window. Unbounded sides add nothing.
func (q *recordQuery) window(column string, w models.Window) *recordQuery {
	if !w.From.IsZero() {
		q.where(column+" >= %s", w.From)
	}
	if !w.To.IsZero() {
		q.where(column+" < %s", w.To)
	}
	return q
}

func (q *recordQuery) orderBy(expr string) *recordQuery {
	q.sql += " ORDER BY " + expr
	return q
}

func (q *recordQuery) build() (string, []any) {
	return q.sql, q.args
}
