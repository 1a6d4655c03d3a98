// Package keynesscmd implements the keyness command: genre-vs-rest keyness
// scatter plots for every genre in the configured order.
package keynesscmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/boekenvak/impactviz/internal/common"
	"github.com/boekenvak/impactviz/models"
	"github.com/boekenvak/impactviz/pkg/artifacts"
	"github.com/boekenvak/impactviz/pkg/keyness"
	"github.com/boekenvak/impactviz/pkg/render"
	"github.com/boekenvak/impactviz/pkg/runs"
	"github.com/boekenvak/impactviz/pkg/table"
)

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
	colorByType := config.ColorByImpactType
	if c.IsSet("color-by-impact-type") {
		colorByType = c.Bool("color-by-impact-type")
	}

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

	runID, err := store.CreateRun("keyness", input, manager.BaseDir(), config.TopN, len(config.GenreOrder))
	if err != nil {
		return err
	}

	summary := &common.Summary{RunID: runID}
	for _, genre := range config.GenreOrder {
		result := processGenre(logger, manager, records, genre, config, colorByType)
		summary.Results = append(summary.Results, result)

		if err := store.RecordOutput(runs.Output{
			RunID:        runID,
			Genre:        genre,
			Status:       result.Status,
			ErrorType:    result.ErrorType,
			ErrorMessage: result.Error,
			RowCount:     result.RowCount,
			FilePath:     result.FilePath,
		}); err != nil {
			logger.Warn("Failed to record output", "genre", genre, "error", err)
		}
	}

	summary.Tally()
	if err := store.FinishRun(runID, summary.Stats.Successful, summary.Stats.Failed); err != nil {
		logger.Warn("Failed to finish run", "run_id", runID, "error", err)
	}

	outputData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(outputData))
	return nil
}

// processGenre runs one genre's aggregation and rendering. Failures are
// captured in the result, never propagated: one genre must not abort the
// rest of the batch.
func processGenre(logger *slog.Logger, manager *artifacts.Manager, records []models.ImpactTermRecord,
	genre string, config *models.Config, colorByType bool) common.GenreResult {
	result := common.GenreResult{Genre: genre}

	rows, err := keyness.Aggregate(records, keyness.Options{
		TargetGenre:       genre,
		TopN:              config.TopN,
		ColorByImpactType: colorByType,
	})
	if errors.Is(err, keyness.ErrEmptyResult) {
		logger.Warn("No plottable terms for genre, skipping plot", "genre", genre)
		result.Status = runs.StatusSkipped
		result.ErrorType = "empty_result"
		result.Error = err.Error()
		return result
	}
	if err != nil {
		logger.Error("Keyness aggregation failed", "genre", genre, "error", err)
		result.Status = runs.StatusFailed
		result.ErrorType = "aggregate_error"
		result.Error = err.Error()
		return result
	}

	path := manager.PlotPath(artifacts.KeynessScatter, genre)
	if err := render.KeynessScatter(rows, genre, config.ScatterDPI, path); err != nil {
		logger.Error("Failed to render keyness scatter", "genre", genre, "error", err)
		result.Status = runs.StatusFailed
		result.ErrorType = "render_error"
		result.Error = err.Error()
		return result
	}

	logger.Info("Rendered keyness scatter", "genre", genre, "rows", len(rows), "file_path", path)
	result.Status = runs.StatusSuccess
	result.RowCount = len(rows)
	result.FilePath = path
	return result
}
