// Package radarcmd implements the radar command: per-genre radial histograms
// of topic-category proportions.
package radarcmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/boekenvak/impactviz/internal/common"
	"github.com/boekenvak/impactviz/models"
	"github.com/boekenvak/impactviz/pkg/artifacts"
	"github.com/boekenvak/impactviz/pkg/render"
	"github.com/boekenvak/impactviz/pkg/runs"
	"github.com/boekenvak/impactviz/pkg/table"
	"github.com/boekenvak/impactviz/pkg/topics"
)

func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	config, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	input := config.TopicTable
	if c.IsSet("input") {
		input = c.String("input")
	}
	if input == "" {
		return fmt.Errorf("no topic table provided via --input flag or config")
	}

	records, err := table.LoadTopicProportions(input, '\t')
	if err != nil {
		return fmt.Errorf("failed to load topic table: %w", err)
	}
	logger.Info("Loaded topic table", "path", input, "rows", len(records))

	// Category labels are normalized before any aggregation.
	records = topics.ApplyRenames(records, config.CategoryRenames)
	adjusted := topics.Adjust(records)
	profiles := topics.Profiles(adjusted, config.GenreOrder)

	manager, err := artifacts.NewManager(config.OutputDir)
	if err != nil {
		return err
	}
	store, err := runs.Open(config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open run database: %w", err)
	}
	defer store.Close()

	runID, err := store.CreateRun("radar", input, manager.BaseDir(), 0, len(profiles))
	if err != nil {
		return err
	}

	summary := &common.Summary{RunID: runID}
	for _, profile := range profiles {
		result := processProfile(logger, manager, profile, config.RadarDPI)
		summary.Results = append(summary.Results, result)

		if err := store.RecordOutput(runs.Output{
			RunID:        runID,
			Genre:        profile.Genre,
			Status:       result.Status,
			ErrorType:    result.ErrorType,
			ErrorMessage: result.Error,
			RowCount:     result.RowCount,
			FilePath:     result.FilePath,
		}); err != nil {
			logger.Warn("Failed to record output", "genre", profile.Genre, "error", err)
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

// processProfile renders one genre's radial histogram. A genre without data
// still has a valid zero profile; it is skipped with a warning rather than
// rendered as an empty chart, and never aborts the batch.
func processProfile(logger *slog.Logger, manager *artifacts.Manager, profile models.GenreCategoryProfile, dpi int) common.GenreResult {
	result := common.GenreResult{Genre: profile.Genre}

	if len(profile.Categories) == 0 || profile.IsZero() {
		logger.Warn("No topic mass for genre, skipping plot", "genre", profile.Genre)
		result.Status = runs.StatusSkipped
		result.ErrorType = "empty_result"
		return result
	}

	path := manager.PlotPath(artifacts.RadarHistogram, profile.Genre)
	if err := render.Radar(profile, dpi, path); err != nil {
		logger.Error("Failed to render radar plot", "genre", profile.Genre, "error", err)
		result.Status = runs.StatusFailed
		result.ErrorType = "render_error"
		result.Error = err.Error()
		return result
	}

	logger.Info("Rendered radar plot", "genre", profile.Genre, "categories", len(profile.Categories), "file_path", path)
	result.Status = runs.StatusSuccess
	result.RowCount = len(profile.Categories)
	result.FilePath = path
	return result
}
