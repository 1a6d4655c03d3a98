// Package artifacts manages the output directory for rendered charts and
// derived tables.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const DefaultBaseDir = "images"

// Analysis names each chart-producing pipeline; it selects the filename
// pattern for a genre's output.
type Analysis string

const (
	KeynessScatter Analysis = "keyness"
	RadarHistogram Analysis = "radar"
	GenreDiff      Analysis = "diff"
)

// Manager resolves artifact paths below a base directory.
type Manager struct {
	baseDir string
}

// NewManager creates a Manager and ensures the base directory exists.
func NewManager(baseDir string) (*Manager, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if err := os.MkdirAll(baseDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Manager{baseDir: baseDir}, nil
}

// BaseDir returns the managed output directory.
func (m *Manager) BaseDir() string {
	return m.baseDir
}

var invalidFilenameChar = regexp.MustCompile(`[^a-zA-Z0-9\-_]+`)

// Slug makes a genre or theme label filesystem-safe. The original plots used
// the same scheme: " & " and " / " become double underscores, everything else
// outside [a-zA-Z0-9-_] collapses to a single underscore.
func Slug(label string) string {
	label = strings.ReplaceAll(label, " & ", "__")
	label = strings.ReplaceAll(label, " / ", "__")
	safe := invalidFilenameChar.ReplaceAllString(label, "_")
	return strings.Trim(safe, "_")
}

// PlotPath returns the deterministic PNG path for one genre's chart.
func (m *Manager) PlotPath(analysis Analysis, genre string) string {
	var name string
	switch analysis {
	case KeynessScatter:
		name = fmt.Sprintf("prevalence_term_association_%s.png", Slug(genre))
	case RadarHistogram:
		name = fmt.Sprintf("radar_plot_%s.png", Slug(genre))
	default:
		name = fmt.Sprintf("%s_%s.png", analysis, Slug(genre))
	}
	return filepath.Join(m.baseDir, name)
}

// DiffPlotPath returns the PNG path for a two-genre comparison chart.
func (m *Manager) DiffPlotPath(genreA, genreB string) string {
	name := fmt.Sprintf("doc_prop_scatter_%s-%s.png", Slug(genreA), Slug(genreB))
	return filepath.Join(m.baseDir, name)
}

// WriteTable saves a derived table next to the charts. Failure is fatal for
// this one file only; callers continue with the remaining genres.
func (m *Manager) WriteTable(name string, data []byte) (string, error) {
	path := filepath.Join(m.baseDir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write table %s: %w", name, err)
	}
	return path, nil
}
