package runs

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs: one row per analysis invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    analysis TEXT NOT NULL,          -- keyness, radar, diff
    input_path TEXT,
    output_dir TEXT,
    top_n INTEGER,
    genre_count INTEGER NOT NULL,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_analysis ON runs(analysis);

-- Run outputs: per-genre outcome within a run
CREATE TABLE IF NOT EXISTS run_outputs (
    output_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    genre TEXT NOT NULL,
    status TEXT NOT NULL,            -- success, skipped, failed
    error_type TEXT,                 -- empty_result, render_error, write_error
    error_message TEXT,
    row_count INTEGER DEFAULT 0,
    file_path TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, genre)
);

CREATE INDEX IF NOT EXISTS idx_run_outputs_run ON run_outputs(run_id);
CREATE INDEX IF NOT EXISTS idx_run_outputs_status ON run_outputs(status);
`
