package runs

import (
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded analysis invocation.
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	Analysis     string
	InputPath    string
	OutputDir    string
	TopN         int
	GenreCount   int
	SuccessCount int
	FailedCount  int
}

// Output is one genre's outcome within a run.
type Output struct {
	OutputID     int64
	RunID        int64
	Genre        string
	Status       string
	ErrorType    string
	ErrorMessage string
	RowCount     int
	FilePath     string
}

// Output statuses.
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// CreateRun inserts a new run and returns its ID.
func (db *DB) CreateRun(analysis, inputPath, outputDir string, topN, genreCount int) (int64, error) {
	res, err := db.Exec(`
		INSERT INTO runs (analysis, input_path, output_dir, top_n, genre_count)
		VALUES (?, ?, ?, ?, ?)`,
		analysis, inputPath, outputDir, topN, genreCount)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// RecordOutput stores one genre's outcome for a run.
func (db *DB) RecordOutput(output Output) error {
	_, err := db.Exec(`
		INSERT INTO run_outputs (run_id, genre, status, error_type, error_message, row_count, file_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, genre) DO UPDATE SET
			status = excluded.status,
			error_type = excluded.error_type,
			error_message = excluded.error_message,
			row_count = excluded.row_count,
			file_path = excluded.file_path`,
		output.RunID, output.Genre, output.Status, nullable(output.ErrorType),
		nullable(output.ErrorMessage), output.RowCount, nullable(output.FilePath))
	if err != nil {
		return fmt.Errorf("failed to record output for %s: %w", output.Genre, err)
	}
	return nil
}

// FinishRun updates the run's success/failure tallies.
func (db *DB) FinishRun(runID int64, successCount, failedCount int) error {
	_, err := db.Exec(`
		UPDATE runs SET success_count = ?, failed_count = ? WHERE run_id = ?`,
		successCount, failedCount, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run %d: %w", runID, err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, created_at, analysis,
		       COALESCE(input_path, ''), COALESCE(output_dir, ''),
		       COALESCE(top_n, 0), genre_count, success_count, failed_count
		FROM runs ORDER BY created_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var result []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.Analysis, &r.InputPath,
			&r.OutputDir, &r.TopN, &r.GenreCount, &r.SuccessCount, &r.FailedCount); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetRunOutputs returns the per-genre outcomes for a run.
func (db *DB) GetRunOutputs(runID int64) ([]Output, error) {
	rows, err := db.Query(`
		SELECT output_id, run_id, genre, status,
		       COALESCE(error_type, ''), COALESCE(error_message, ''),
		       row_count, COALESCE(file_path, '')
		FROM run_outputs WHERE run_id = ? ORDER BY output_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run outputs: %w", err)
	}
	defer rows.Close()

	var result []Output
	for rows.Next() {
		var o Output
		if err := rows.Scan(&o.OutputID, &o.RunID, &o.Genre, &o.Status,
			&o.ErrorType, &o.ErrorMessage, &o.RowCount, &o.FilePath); err != nil {
			return nil, fmt.Errorf("failed to scan output: %w", err)
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
