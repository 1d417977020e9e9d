// Package storage persists the run history: one row per analyze run plus the
// per-(file, prover) stats that run produced, in a local SQLite database.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"proofscan/internal/config"
	pserrors "proofscan/internal/errors"
	"proofscan/internal/logging"
)

// DB wraps the history database connection.
type DB struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Open opens or creates the history database at .proofscan/history.db under
// root, creating the schema on first use.
func Open(root string, logger *logging.Logger) (*DB, error) {
	dir := filepath.Join(root, config.ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, pserrors.New(pserrors.HistoryUnavailable,
			fmt.Sprintf("cannot create %s directory", dir), err)
	}

	dbPath := filepath.Join(dir, "history.db")
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, pserrors.New(pserrors.HistoryUnavailable,
			fmt.Sprintf("cannot open database %s", dbPath), err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",   // Write-Ahead Logging for better concurrency
		"PRAGMA synchronous=NORMAL", // Balance between safety and performance
		"PRAGMA foreign_keys=ON",    // Enable foreign key constraints
		"PRAGMA busy_timeout=5000",  // Wait up to 5 seconds on lock
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			_ = conn.Close()
			return nil, pserrors.New(pserrors.HistoryUnavailable, "cannot set pragma", err)
		}
	}

	db := &DB{conn: conn, logger: logger, dbPath: dbPath}
	if err := db.initializeSchema(); err != nil {
		_ = conn.Close()
		return nil, pserrors.New(pserrors.HistoryUnavailable, "cannot initialize schema", err)
	}

	logger.Debug("History database ready", map[string]interface{}{
		"path": dbPath,
	})
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.dbPath
}

func (db *DB) initializeSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		digest TEXT NOT NULL,
		started_at TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		report_count INTEGER NOT NULL,
		file_count INTEGER NOT NULL,
		prover_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_stats (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		file_name TEXT NOT NULL,
		rank INTEGER NOT NULL,
		prover TEXT NOT NULL,
		success REAL NOT NULL,
		failed REAL NOT NULL,
		max_success REAL NOT NULL,
		max_steps INTEGER NOT NULL,
		PRIMARY KEY (run_id, file_name, prover)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_run_stats_run ON run_stats(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}
