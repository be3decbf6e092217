// Package state persists suggestion acknowledgments in SQLite so repeated
// checks can skip guidance a developer has already seen. The core engine
// stays pure; state is consulted only at the CLI layer.
package state

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Manager stores acknowledgments keyed by project, rule and file path.
type Manager struct {
	db        *sql.DB
	projectID string
}

// NewManager opens (and if needed creates) the state database at dbPath.
func NewManager(dbPath, projectID string) (*Manager, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	ctx := context.Background()
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if err := runSchemaMigration(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run schema migration: %w", err)
	}

	return &Manager{db: db, projectID: projectID}, nil
}

// runSchemaMigration ensures the acknowledgments table exists.
func runSchemaMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS acknowledgments (
			project_id TEXT NOT NULL,
			rule_id TEXT NOT NULL,
			file_path TEXT NOT NULL,
			acked_at INTEGER NOT NULL DEFAULT (unixepoch()),
			PRIMARY KEY (project_id, rule_id, file_path)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create acknowledgments table: %w", err)
	}
	return nil
}

// Acknowledge records that the suggestion for ruleID on filePath was seen.
func (m *Manager) Acknowledge(ctx context.Context, ruleID, filePath string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO acknowledgments (project_id, rule_id, file_path)
		VALUES (?, ?, ?)
		ON CONFLICT (project_id, rule_id, file_path)
		DO UPDATE SET acked_at = unixepoch()
	`, m.projectID, ruleID, filePath)
	if err != nil {
		return fmt.Errorf("failed to record acknowledgment: %w", err)
	}
	return nil
}

// IsAcknowledged reports whether the suggestion for ruleID on filePath was
// already acknowledged in this project.
func (m *Manager) IsAcknowledged(ctx context.Context, ruleID, filePath string) (bool, error) {
	var count int
	err := m.db.QueryRowContext(ctx, `
		SELECT COUNT(1) FROM acknowledgments
		WHERE project_id = ? AND rule_id = ? AND file_path = ?
	`, m.projectID, ruleID, filePath).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query acknowledgment: %w", err)
	}
	return count > 0, nil
}

// Close closes the state database.
func (m *Manager) Close() error {
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
