package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"academy/config"
	deliverycontext "academy/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func sqlResult(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_TraceTagsOperationAndTable(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		operation string
		table     string
	}{
		{name: "soft delete", sql: `UPDATE "programs" SET "is_active"=false WHERE id = '1'`, operation: "UPDATE", table: "programs"},
		{name: "hard delete", sql: `DELETE FROM "testimonials" WHERE id = '1'`, operation: "DELETE", table: "testimonials"},
		{name: "count", sql: `SELECT count(*) FROM "coaches" WHERE is_active = true`, operation: "SELECT", table: "coaches"},
		{name: "insert", sql: `INSERT INTO "admin_users" ("username") VALUES ('bob')`, operation: "INSERT", table: "admin_users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), nil).LogMode(logger.Info)

			l.Trace(context.Background(), time.Now(), sqlResult(tt.sql, 1), nil)

			lines := decodeLogLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "Query", lines[0]["msg"])
			assert.Equal(t, tt.operation, lines[0]["operation"])
			assert.Equal(t, tt.table, lines[0]["table"])
			assert.Equal(t, tt.sql, lines[0]["sql"])
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&base, nil)), nil)
	requestLogger := slog.New(slog.NewJSONHandler(&scoped, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), sqlResult(`SELECT * FROM "settings"`, 0), errors.New("connection reset"))

	assert.Empty(t, base.String())
	lines := decodeLogLines(t, &scoped)
	require.Len(t, lines, 1)
	assert.Equal(t, "Query failed", lines[0]["msg"])
	assert.Equal(t, "req-42", lines[0]["request_id"])
	assert.Equal(t, "settings", lines[0]["table"])
	assert.Equal(t, "connection reset", lines[0]["error"])
}

func TestGormSlogLogger_LevelsAndThresholds(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Postgres: &config.PostgresConfig{SlowQueryThreshold: 50 * time.Millisecond}}
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)
	ctx := context.Background()

	// Fast queries and missing rows stay quiet outside debug.
	l.Trace(ctx, time.Now(), sqlResult(`SELECT * FROM "programs"`, 3), nil)
	l.Trace(ctx, time.Now(), sqlResult(`SELECT * FROM "programs"`, 0), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(ctx, time.Now().Add(-time.Second), sqlResult(`SELECT * FROM "programs"`, 3), nil)
	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "Slow query", lines[0]["msg"])
	assert.Equal(t, "WARN", lines[0]["level"])

	buf.Reset()
	l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlResult(`SELECT 1`, 1), errors.New("boom"))
	assert.Empty(t, buf.String())
}

func TestNewGormSlogLogger_DebugAndDefaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	debug, ok := newGormSlogLogger(slog.New(slog.DiscardHandler), cfg).(*gormSlogLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Info, debug.level)
	assert.Equal(t, defaultGormSlowThreshold, debug.slowThreshold)

	quiet, ok := newGormSlogLogger(slog.New(slog.DiscardHandler), nil).(*gormSlogLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Warn, quiet.level)
}
