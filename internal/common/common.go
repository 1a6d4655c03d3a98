// Package common holds helpers shared by the CLI command actions.
package common

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/boekenvak/impactviz/models"
)

// NewLogger builds the JSON logger the actions log to. Quiet mode only
// surfaces errors.
func NewLogger(quiet bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// LoadConfig reads the YAML config named by --config and overlays the flags
// every command shares.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("db") {
		config.DBPath = c.String("db")
	}
	if c.IsSet("top-n") {
		config.TopN = c.Int("top-n")
	}
	if genres := c.String("genres"); genres != "" {
		order, err := ParseGenres(genres)
		if err != nil {
			return nil, err
		}
		config.GenreOrder = order
	}
	return config, nil
}

// ParseGenres splits a comma-separated genre list and validates each label
// against the study's genre set.
func ParseGenres(s string) ([]string, error) {
	var genres []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !models.IsKnownGenre(part) {
			return nil, fmt.Errorf("unknown genre: %s", part)
		}
		genres = append(genres, part)
	}
	if len(genres) == 0 {
		return nil, fmt.Errorf("no genres provided")
	}
	return genres, nil
}

// GenreResult is the per-genre outcome reported in a command's final summary.
type GenreResult struct {
	Genre     string `json:"genre"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
	RowCount  int    `json:"row_count,omitempty"`
	FilePath  string `json:"file_path,omitempty"`
}

// Stats tallies a batch over the genre set.
type Stats struct {
	TotalGenres int `json:"total_genres"`
	Successful  int `json:"successful"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
}

// Summary is the structured output printed to stdout when a batch finishes.
type Summary struct {
	Status  string        `json:"status"`
	RunID   int64         `json:"run_id,omitempty"`
	Results []GenreResult `json:"results"`
	Stats   Stats         `json:"stats"`
}

// Tally fills the stats from the collected results and sets the overall
// status. A batch only counts as failed when every genre failed.
func (s *Summary) Tally() {
	s.Stats.TotalGenres = len(s.Results)
	for _, r := range s.Results {
		switch r.Status {
		case "success":
			s.Stats.Successful++
		case "skipped":
			s.Stats.Skipped++
		default:
			s.Stats.Failed++
		}
	}
	s.Status = "success"
	if s.Stats.Successful == 0 && s.Stats.TotalGenres > 0 {
		s.Status = "failed"
	}
}
