package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

type SQLite struct {
	conn *sql.DB
}

func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	conn, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Info().Str("path", path).Msg("Opened SQLite database")

	return &SQLite{conn: conn}, nil
}

func (s *SQLite) Close() error {
	return s.conn.Close()
}

// SnapshotTables holds generated records; snapshots itself is kept as history
var SnapshotTables = []string{
	"agencies",
	"routes",
	"trips",
	"stops",
	"trip_stops",
	"calendars",
	"calendar_dates",
}

func (s *SQLite) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return s.conn.QueryRowContext(ctx, query, args...)
}

// CountRows counts the rows a dataset has in table
func (s *SQLite) CountRows(ctx context.Context, table string, datasetID string) (int, error) {
	var count int
	err := s.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE dataset_id = ?", table), datasetID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}

	return count, nil
}

// Snapshot is one transaction that upserts a generated dataset
type Snapshot struct {
	ID        string
	DatasetID string

	tx *sql.Tx
}

func (s *SQLite) BeginSnapshot(ctx context.Context, datasetID string) (*Snapshot, error) {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	snapshot := &Snapshot{
		ID:        uuid.New().String(),
		DatasetID: datasetID,
		tx:        tx,
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO snapshots (snapshot_id, dataset_id, generated_at_utc) VALUES (?, ?, ?)",
		snapshot.ID, datasetID, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create snapshot: %w", err)
	}

	return snapshot, nil
}

// Upsert inserts a row into table, replacing any row with the same key
func (s *Snapshot) Upsert(ctx context.Context, table string, columns []string, values ...interface{}) error {
	query := fmt.Sprintf("INSERT OR REPLACE INTO %s (dataset_id, snapshot_id", table)
	placeholders := "?, ?"
	for _, column := range columns {
		query += ", " + column
		placeholders += ", ?"
	}
	query += ") VALUES (" + placeholders + ")"

	args := append([]interface{}{s.DatasetID, s.ID}, values...)
	if _, err := s.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}

	return nil
}

// Prune deletes the dataset's rows in table left by any other snapshot
func (s *Snapshot) Prune(ctx context.Context, table string) (int64, error) {
	result, err := s.tx.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE dataset_id = ? AND snapshot_id <> ?", table),
		s.DatasetID, s.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("prune %s: %w", table, err)
	}

	return result.RowsAffected()
}

func (s *Snapshot) Commit() error {
	return s.tx.Commit()
}

func (s *Snapshot) Rollback() error {
	return s.tx.Rollback()
}
