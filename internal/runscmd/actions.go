// Package runscmd implements the runs command: inspect recorded analysis runs.
package runscmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/boekenvak/impactviz/internal/common"
	"github.com/boekenvak/impactviz/pkg/runs"
)

type runInfo struct {
	RunID      int64        `json:"run_id"`
	CreatedAt  string       `json:"created_at"`
	Analysis   string       `json:"analysis"`
	InputPath  string       `json:"input_path,omitempty"`
	OutputDir  string       `json:"output_dir,omitempty"`
	TopN       int          `json:"top_n,omitempty"`
	GenreCount int          `json:"genre_count"`
	Successful int          `json:"successful"`
	Failed     int          `json:"failed"`
	Outputs    []outputInfo `json:"outputs,omitempty"`
}

type outputInfo struct {
	Genre    string `json:"genre"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	RowCount int    `json:"row_count,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

func Action(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	config, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	store, err := runs.Open(config.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open run database: %w", err)
	}
	defer store.Close()

	limit := c.Int("limit")
	if limit <= 0 {
		limit = 10
	}
	recorded, err := store.ListRuns(limit)
	if err != nil {
		return err
	}
	logger.Info("Listing runs", "count", len(recorded), "db", store.Path())

	infos := make([]runInfo, 0, len(recorded))
	for _, r := range recorded {
		info := runInfo{
			RunID:      r.RunID,
			CreatedAt:  r.CreatedAt.Format(time.RFC3339),
			Analysis:   r.Analysis,
			InputPath:  r.InputPath,
			OutputDir:  r.OutputDir,
			TopN:       r.TopN,
			GenreCount: r.GenreCount,
			Successful: r.SuccessCount,
			Failed:     r.FailedCount,
		}
		if c.Bool("outputs") {
			outputs, err := store.GetRunOutputs(r.RunID)
			if err != nil {
				logger.Warn("Failed to load run outputs", "run_id", r.RunID, "error", err)
			}
			for _, o := range outputs {
				info.Outputs = append(info.Outputs, outputInfo{
					Genre:    o.Genre,
					Status:   o.Status,
					Error:    o.ErrorMessage,
					RowCount: o.RowCount,
					FilePath: o.FilePath,
				})
			}
		}
		infos = append(infos, info)
	}

	outputData, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(outputData))
	return nil
}
