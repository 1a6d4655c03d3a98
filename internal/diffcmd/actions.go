// Package diffcmd implements the diff command: a two-genre term-frequency
// comparison scatter with the most divergent terms labeled.
package diffcmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/boekenvak/impactviz/internal/common"
	"github.com/boekenvak/impactviz/pkg/artifacts"
	"github.com/boekenvak/impactviz/pkg/keyness"
	"github.com/boekenvak/impactviz/pkg/render"
	"github.com/boekenvak/impactviz/pkg/runs"
	"github.com/boekenvak/impactviz/pkg/table"
)

// diffSummary is the structured output for one comparison.
type diffSummary struct {
	Status      string  `json:"status"`
	RunID       int64   `json:"run_id,omitempty"`
	GenreA      string  `json:"genre_a"`
	GenreB      string  `json:"genre_b"`
	Terms       int     `json:"terms"`
	MoreInA     int     `json:"more_in_a"`
	MoreInB     int     `json:"more_in_b"`
	MeanAbsDiff float64 `json:"mean_abs_diff"`
	FilePath    string  `json:"file_path,omitempty"`
	Error       string  `json:"error,omitempty"`
}

func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	config, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	input := config.PrevalenceTable
	if c.IsSet("input") {
		input = c.String("input")
	}
	if input == "" {
		return fmt.Errorf("no prevalence table provided via --input flag or config")
	}

	genres, err := common.ParseGenres(c.String("compare"))
	if err != nil {
		return err
	}
	if len(genres) != 2 {
		return fmt.Errorf("diff needs exactly two genres via --compare, got %d", len(genres))
	}
	genreA, genreB := genres[0], genres[1]

	records, err := table.LoadImpactTerms(input, '\t')
	if err != nil {
		return fmt.Errorf("failed to load prevalence table: %w", err)
	}
	logger.Info("Loaded prevalence table", "path", input, "rows", len(records))

	manager, err := artifacts.NewManager(config.OutputDir)
	if err != nil {
		return err
	}
	store, err := runs.Open(config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open run database: %w", err)
	}
	defer store.Close()

	runID, err := store.CreateRun("diff", input, manager.BaseDir(), config.TopN, 2)
	if err != nil {
		return err
	}

	summary := diffSummary{RunID: runID, GenreA: genreA, GenreB: genreB}
	rows, err := keyness.GenreDiff(records, genreA, genreB, config.TopN)
	switch {
	case errors.Is(err, keyness.ErrEmptyResult):
		logger.Warn("No shared terms between genres, skipping plot", "genre_a", genreA, "genre_b", genreB)
		summary.Status = "skipped"
		recordPair(logger, store, runID, genreA, genreB, runs.StatusSkipped, "empty_result", "", 0, "")
	case err != nil:
		return err
	default:
		stats := keyness.Summarize(rows)
		summary.Terms = len(rows)
		summary.MoreInA = stats.MoreInA
		summary.MoreInB = stats.MoreInB
		summary.MeanAbsDiff = stats.MeanAbsDiff

		path := manager.DiffPlotPath(genreA, genreB)
		if err := render.DiffScatter(rows, genreA, genreB, config.ScatterDPI, path); err != nil {
			logger.Error("Failed to render diff scatter", "error", err)
			summary.Status = "failed"
			summary.Error = err.Error()
			recordPair(logger, store, runID, genreA, genreB, runs.StatusFailed, "render_error", err.Error(), len(rows), "")
		} else {
			logger.Info("Rendered diff scatter", "terms", len(rows), "file_path", path)
			summary.Status = "success"
			summary.FilePath = path
			recordPair(logger, store, runID, genreA, genreB, runs.StatusSuccess, "", "", len(rows), path)
		}
	}

	success, failed := 0, 0
	switch summary.Status {
	case "success":
		success = 1
	case "failed":
		failed = 1
	}
	if err := store.FinishRun(runID, success, failed); err != nil {
		logger.Warn("Failed to finish run", "run_id", runID, "error", err)
	}

	outputData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(outputData))
	return nil
}

func recordPair(logger *slog.Logger, store *runs.DB, runID int64,
	genreA, genreB, status, errorType, errorMessage string, rowCount int, filePath string) {
	if err := store.RecordOutput(runs.Output{
		RunID:        runID,
		Genre:        genreA + "-" + genreB,
		Status:       status,
		ErrorType:    errorType,
		ErrorMessage: errorMessage,
		RowCount:     rowCount,
		FilePath:     filePath,
	}); err != nil {
		logger.Warn("Failed to record output", "error", err)
	}
}
