package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MigrationsDir holds one directory of *.sql files per database, applied in name order.
var MigrationsDir = "migrations"

// InstallResponse reports the schema install outcome per database.
type InstallResponse struct {
	Results map[string]string   `json:"results"`
	Applied map[string][]string `json:"applied"`
	Error   bool                `json:"error"`
}

// InstallDatabase creates the record tables and, when configured, the snapshot table
// @Summary Install Database Schema
// @Description Applies migrations/postgres and, when ClickHouse is configured, migrations/clickhouse
// @Tags System
// @Produce json
// @Success 200 {object} InstallResponse
// @Failure 500 {object} InstallResponse
// @Router /system/install [post]
func (h *Handler) InstallDatabase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := InstallResponse{Results: map[string]string{}, Applied: map[string][]string{}}

	record := func(db string, applied []string, err error) {
		resp.Applied[db] = applied
		if err != nil {
			resp.Results[db] = "failed: " + err.Error()
			resp.Error = true
			return
		}
		resp.Results[db] = "success"
	}

	// Postgres takes a whole file per round trip
	applied, err := h.applySchema(ctx, "postgres", false, func(ctx context.Context, sql string) error {
		_, err := h.pg.Exec(ctx, sql)
		return err
	})
	record("postgres", applied, err)

	if h.ch == nil {
		resp.Results["clickhouse"] = "skipped"
	} else {
		applied, err := h.applySchema(ctx, "clickhouse", true, func(ctx context.Context, sql string) error {
			return h.ch.Exec(ctx, sql)
		})
		record("clickhouse", applied, err)
	}

	status := http.StatusOK
	if resp.Error {
		status = http.StatusInternalServerError
	}
	h.jsonResponse(w, status, resp)
}

// applySchema runs every file of one database directory and returns the names applied
// before the first failure.
func (h *Handler) applySchema(ctx context.Context, db string, split bool, exec func(context.Context, string) error) ([]string, error) {
	dir := filepath.Join(MigrationsDir, db)
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		h.logger.Errorw("No schema files found", "db", db, "dir", dir)
		return nil, fmt.Errorf("no schema files in %s", dir)
	}

	applied := make([]string, 0, len(files))
	for _, path := range files {
		name := filepath.Base(path)
		content, err := os.ReadFile(path)
		if err != nil {
			return applied, fmt.Errorf("read %s: %w", name, err)
		}

		statements := []string{string(content)}
		if split {
			statements = splitStatements(string(content))
		}
		for _, stmt := range statements {
			if err := exec(ctx, stmt); err != nil {
				h.logger.Errorw("Schema statement failed", "db", db, "file", name, "statement", preview(stmt), "error", err)
				return applied, fmt.Errorf("%s: %w", name, err)
			}
		}
		applied = append(applied, name)
	}

	h.logger.Infow("Installed schema", "db", db, "files", applied)
	return applied, nil
}

// splitStatements drops "--" comment lines and splits on ";". The ClickHouse driver
// accepts one statement per Exec.
func splitStatements(sql string) []string {
	var b strings.Builder
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var out []string
	for _, stmt := range strings.Split(b.String(), ";") {
		if trimmed := strings.TrimSpace(stmt); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func preview(stmt string) string {
	stmt = strings.Join(strings.Fields(stmt), " ")
	if len(stmt) > 50 {
		return stmt[:50] + "..."
	}
	return stmt
}
