// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/goccy/go-json"

	"github.com/verdantgeo/verdant/internal/config"
	"github.com/verdantgeo/verdant/internal/logging"
	"github.com/verdantgeo/verdant/internal/metrics"
	"github.com/verdantgeo/verdant/internal/models"
)

// Store persists the append-only analytics event log.
type Store interface {
	LogEvent(ctx context.Context, eventType string, data json.RawMessage) error
	LogEventAt(ctx context.Context, eventType string, data json.RawMessage, ts time.Time) error
	QueryEvents(ctx context.Context, q models.EventQuery) (*models.EventPage, error)
	Summary(ctx context.Context, since, until int64) (*models.Summary, error)
	ClearAll(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, horizon time.Time) (int64, error)
	Close() error
}

// Query paging bounds. Requests outside these are clamped, not rejected.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// DuckDBStore implements Store on an embedded DuckDB database.
type DuckDBStore struct {
	db *sql.DB
}

var _ Store = (*DuckDBStore)(nil)

// NewDuckDBStore opens (or creates) the event database at cfg.Path and
// prepares the schema.
func NewDuckDBStore(ctx context.Context, cfg config.DatabaseConfig) (*DuckDBStore, error) {
	db, err := sql.Open("duckdb", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb at %s: %w", cfg.Path, err)
	}

	// Embedded engine, single writer. Serializing access through one
	// connection avoids write-write conflicts.
	db.SetMaxOpenConns(1)

	s := &DuckDBStore{db: db}
	if err := s.configure(ctx, cfg); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.createSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logging.Info().Str("path", cfg.Path).Msg("analytics store ready")
	return s, nil
}

func (s *DuckDBStore) configure(ctx context.Context, cfg config.DatabaseConfig) error {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	pragmas := []string{
		fmt.Sprintf("SET threads TO %d", threads),
	}
	if cfg.MaxMemory != "" {
		pragmas = append(pragmas, fmt.Sprintf("SET memory_limit = '%s'", cfg.MaxMemory))
	}
	for _, p := range pragmas {
		if _, err := s.db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	return nil
}

func (s *DuckDBStore) createSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE SEQUENCE IF NOT EXISTS analytics_events_id_seq START 1`,
		`CREATE TABLE IF NOT EXISTS analytics_events (
			id         BIGINT PRIMARY KEY DEFAULT nextval('analytics_events_id_seq'),
			event_type VARCHAR NOT NULL,
			data       JSON,
			ts_ms      BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analytics_events_ts ON analytics_events (ts_ms)`,
		`CREATE INDEX IF NOT EXISTS idx_analytics_events_type ON analytics_events (event_type)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create analytics schema: %w", err)
		}
	}
	return nil
}

// LogEvent appends one event stamped with the current time.
func (s *DuckDBStore) LogEvent(ctx context.Context, eventType string, data json.RawMessage) error {
	return s.LogEventAt(ctx, eventType, data, time.Now())
}

// LogEventAt appends one event with an explicit timestamp. Used by
// ingestion paths that carry client-side timestamps.
func (s *DuckDBStore) LogEventAt(ctx context.Context, eventType string, data json.RawMessage, ts time.Time) error {
	if eventType == "" {
		return fmt.Errorf("event_type must not be empty")
	}

	start := time.Now()
	var dataArg interface{}
	if len(data) > 0 {
		dataArg = string(data)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO analytics_events (event_type, data, ts_ms) VALUES (?, ?, ?)`,
		eventType, dataArg, ts.UnixMilli())
	metrics.AnalyticsQueryDuration.WithLabelValues("log_event").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AnalyticsQueryErrors.WithLabelValues("log_event").Inc()
		return fmt.Errorf("failed to insert analytics event: %w", err)
	}
	metrics.AnalyticsEventsLogged.WithLabelValues(eventType).Inc()
	return nil
}

// QueryEvents returns one page of events newest first. Filters are
// conjunctive and time bounds are inclusive. Page and limit are clamped
// to sane values rather than rejected.
func (s *DuckDBStore) QueryEvents(ctx context.Context, q models.EventQuery) (*models.EventPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}

	where, args := buildEventFilter(q)

	start := time.Now()
	defer func() {
		metrics.AnalyticsQueryDuration.WithLabelValues("query_events").Observe(time.Since(start).Seconds())
	}()

	var total int64
	countSQL := "SELECT COUNT(*) FROM analytics_events" + where
	if err := s.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		metrics.AnalyticsQueryErrors.WithLabelValues("query_events").Inc()
		return nil, fmt.Errorf("failed to count analytics events: %w", err)
	}

	querySQL := `SELECT id, event_type, COALESCE(CAST(data AS VARCHAR), ''), ts_ms
		FROM analytics_events` + where + `
		ORDER BY ts_ms DESC, id DESC
		LIMIT ? OFFSET ?`
	args = append(args, q.Limit, (q.Page-1)*q.Limit)

	rows, err := s.db.QueryContext(ctx, querySQL, args...)
	if err != nil {
		metrics.AnalyticsQueryErrors.WithLabelValues("query_events").Inc()
		return nil, fmt.Errorf("failed to query analytics events: %w", err)
	}
	defer rows.Close()

	events := make([]models.AnalyticsEvent, 0, q.Limit)
	for rows.Next() {
		var ev models.AnalyticsEvent
		var data string
		if err := rows.Scan(&ev.ID, &ev.EventType, &data, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan analytics event: %w", err)
		}
		if data != "" {
			ev.Data = json.RawMessage(data)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analytics events: %w", err)
	}

	return &models.EventPage{
		Events: events,
		Page:   q.Page,
		Limit:  q.Limit,
		Total:  total,
	}, nil
}

func buildEventFilter(q models.EventQuery) (string, []interface{}) {
	var clauses []string
	var args []interface{}
	if q.EventType != "" {
		clauses = append(clauses, "event_type = ?")
		args = append(args, q.EventType)
	}
	if q.Since > 0 {
		clauses = append(clauses, "ts_ms >= ?")
		args = append(args, q.Since)
	}
	if q.Until > 0 {
		clauses = append(clauses, "ts_ms <= ?")
		args = append(args, q.Until)
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// Summary aggregates the event log by type plus overall time bounds.
// since and until are inclusive epoch-ms filters; zero means unbounded.
func (s *DuckDBStore) Summary(ctx context.Context, since, until int64) (*models.Summary, error) {
	start := time.Now()
	defer func() {
		metrics.AnalyticsQueryDuration.WithLabelValues("summary").Observe(time.Since(start).Seconds())
	}()

	sum := &models.Summary{ByType: make(map[string]int64)}

	where, args := buildEventFilter(models.EventQuery{Since: since, Until: until})
	rows, err := s.db.QueryContext(ctx,
		`SELECT event_type, COUNT(*) FROM analytics_events`+where+` GROUP BY event_type`, args...)
	if err != nil {
		metrics.AnalyticsQueryErrors.WithLabelValues("summary").Inc()
		return nil, fmt.Errorf("failed to aggregate analytics events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var typ string
		var count int64
		if err := rows.Scan(&typ, &count); err != nil {
			return nil, fmt.Errorf("failed to scan analytics summary: %w", err)
		}
		sum.ByType[typ] = count
		sum.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analytics summary: %w", err)
	}

	if sum.Total > 0 {
		var oldest, newest int64
		err := s.db.QueryRowContext(ctx,
			`SELECT MIN(ts_ms), MAX(ts_ms) FROM analytics_events`+where, args...).Scan(&oldest, &newest)
		if err != nil {
			metrics.AnalyticsQueryErrors.WithLabelValues("summary").Inc()
			return nil, fmt.Errorf("failed to read analytics bounds: %w", err)
		}
		sum.Oldest, sum.Newest = oldest, newest
	}

	return sum, nil
}

// ClearAll removes every event and returns how many were deleted.
func (s *DuckDBStore) ClearAll(ctx context.Context) (int64, error) {
	start := time.Now()
	res, err := s.db.ExecContext(ctx, `DELETE FROM analytics_events`)
	metrics.AnalyticsQueryDuration.WithLabelValues("clear_all").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AnalyticsQueryErrors.WithLabelValues("clear_all").Inc()
		return 0, fmt.Errorf("failed to clear analytics events: %w", err)
	}
	deleted, _ := res.RowsAffected()
	logging.Info().Int64("deleted", deleted).Msg("analytics event log cleared")
	return deleted, nil
}

// DeleteOlderThan removes events strictly older than the horizon and
// returns how many were deleted. Used by the retention sweep.
func (s *DuckDBStore) DeleteOlderThan(ctx context.Context, horizon time.Time) (int64, error) {
	start := time.Now()
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM analytics_events WHERE ts_ms < ?`, horizon.UnixMilli())
	metrics.AnalyticsQueryDuration.WithLabelValues("retention").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AnalyticsQueryErrors.WithLabelValues("retention").Inc()
		return 0, fmt.Errorf("failed to delete expired analytics events: %w", err)
	}
	deleted, _ := res.RowsAffected()
	return deleted, nil
}

// Close releases the database handle.
func (s *DuckDBStore) Close() error {
	return s.db.Close()
}
