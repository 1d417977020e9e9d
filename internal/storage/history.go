package storage

import (
	"time"

	"github.com/google/uuid"

	"proofscan/internal/analysis"
)

// RunRecord is the summary row of one analyze run.
type RunRecord struct {
	ID          string    `json:"id"`
	Digest      string    `json:"digest"`
	StartedAt   time.Time `json:"startedAt"`
	DurationMs  int64     `json:"durationMs"`
	ReportCount int       `json:"reportCount"`
	FileCount   int       `json:"fileCount"`
	ProverCount int       `json:"proverCount"`
}

// RecordRun persists one analyze run and its ranked per-file prover stats.
// It returns the generated run id.
func (db *DB) RecordRun(digest string, startedAt time.Time, duration time.Duration, reportCount int, files []analysis.FileData) (string, error) {
	runID := uuid.NewString()

	provers := make(map[string]struct{})
	for _, f := range files {
		for _, p := range f.Provers {
			provers[p.Prover] = struct{}{}
		}
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO runs (id, digest, started_at, duration_ms, report_count, file_count, prover_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, digest, startedAt.UTC().Format(time.RFC3339), duration.Milliseconds(),
		reportCount, len(files), len(provers))
	if err != nil {
		return "", err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO run_stats (run_id, file_name, rank, prover, success, failed, max_success, max_steps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", err
	}
	defer func() { _ = stmt.Close() }()

	for _, f := range files {
		for rank, p := range f.Provers {
			if _, err := stmt.Exec(runID, f.Name, rank, p.Prover,
				p.Stats.Success, p.Stats.Failed, p.Stats.MaxSuccess, p.Stats.MaxSteps); err != nil {
				return "", err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	db.logger.Debug("Recorded run", map[string]interface{}{
		"runId": runID,
		"files": len(files),
	})
	return runID, nil
}

// ListRuns returns the most recent runs, newest first, capped at limit.
func (db *DB) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := db.conn.Query(`
		SELECT id, digest, started_at, duration_ms, report_count, file_count, prover_count
		FROM runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var startedAt string
		if err := rows.Scan(&r.ID, &r.Digest, &startedAt, &r.DurationMs,
			&r.ReportCount, &r.FileCount, &r.ProverCount); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunStats returns the ranked stats recorded for one run, in stored order.
func (db *DB) RunStats(runID string) ([]analysis.FileData, error) {
	rows, err := db.conn.Query(`
		SELECT file_name, prover, success, failed, max_success, max_steps
		FROM run_stats
		WHERE run_id = ?
		ORDER BY file_name ASC, rank ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var files []analysis.FileData
	for rows.Next() {
		var name string
		var p analysis.ProverData
		if err := rows.Scan(&name, &p.Prover, &p.Stats.Success, &p.Stats.Failed,
			&p.Stats.MaxSuccess, &p.Stats.MaxSteps); err != nil {
			return nil, err
		}
		if len(files) == 0 || files[len(files)-1].Name != name {
			files = append(files, analysis.FileData{Name: name})
		}
		last := &files[len(files)-1]
		last.Provers = append(last.Provers, p)
	}
	return files, rows.Err()
}
