package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the analysis commands.
// Values come from a YAML file; CLI flags override individual fields.
type Config struct {
	// Inputs
	PrevalenceTable string `yaml:"prevalence_table"`
	TopicTable      string `yaml:"topic_table"`

	// Keyness
	TopN              int  `yaml:"top_n"`
	ColorByImpactType bool `yaml:"color_by_impact_type"`

	// Topic proportions. CategoryRenames maps historical label variants to
	// their canonical spelling and is applied before any aggregation.
	CategoryRenames map[string]string `yaml:"category_renames"`

	// GenreOrder fixes the iteration and output ordering. Empty means the
	// canonical study order.
	GenreOrder []string `yaml:"genre_order"`

	// Outputs
	OutputDir  string `yaml:"output_dir"`
	DBPath     string `yaml:"db_path"`
	ScatterDPI int    `yaml:"scatter_dpi"`
	RadarDPI   int    `yaml:"radar_dpi"`
}

// LoadConfig reads a YAML config file and fills in defaults.
// A missing file is not an error: everything can come from flags.
func LoadConfig(path string) (*Config, error) {
	config := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.TopN <= 0 {
		c.TopN = 10
	}
	if len(c.GenreOrder) == 0 {
		c.GenreOrder = append([]string{}, DefaultGenreOrder...)
	}
	if c.OutputDir == "" {
		c.OutputDir = "images"
	}
	if c.ScatterDPI <= 0 {
		c.ScatterDPI = 150
	}
	if c.RadarDPI <= 0 {
		c.RadarDPI = 150
	}
}
