// Package config loads the YAML job configuration describing which table
// formats to run and how conversion should behave.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/exdata/tabex/pkg/tabex"
)

// ConfigFileName is the default job config file name.
const ConfigFileName = "tabex.yaml"

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FormatConfig describes one named table format and its conversion output
// naming.
type FormatConfig struct {
	Name            string `yaml:"name"`
	MinRows         int    `yaml:"min_rows"`
	MinCols         int    `yaml:"min_cols"`
	HeaderRowOffset int    `yaml:"header_row_offset"`
	SheetPrefix     string `yaml:"sheet_prefix,omitempty"`
	FilePrefix      string `yaml:"file_prefix,omitempty"`
	CSVTail         string `yaml:"csv_tail,omitempty"`
	Transform       string `yaml:"transform,omitempty"`
}

// ConvertConfig holds directory-conversion options.
type ConvertConfig struct {
	SkipConverted bool `yaml:"skip_converted"`
	BackupSource  bool `yaml:"backup_source"`
}

// JobConfig is the root of the job configuration.
type JobConfig struct {
	Formats []FormatConfig `yaml:"formats"`
	Convert ConvertConfig  `yaml:"convert"`
}

// Load reads and validates a job config file.
func Load(path string) (*JobConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg JobConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in job config: a measurement-table format with
// name-label columns and a metadata format, both restricted to "zz_TEP"
// workbooks.
func Default() *JobConfig {
	return &JobConfig{
		Formats: []FormatConfig{
			{
				Name:            "tep",
				MinRows:         3,
				MinCols:         4,
				HeaderRowOffset: 1,
				SheetPrefix:     "TEP",
				FilePrefix:      "zz_TEP",
				CSVTail:         "_TEP",
				Transform:       "name_columns",
			},
			{
				Name:            "meta",
				MinRows:         4,
				MinCols:         6,
				HeaderRowOffset: 2,
				SheetPrefix:     "META",
				FilePrefix:      "zz_TEP",
				CSVTail:         "_META",
			},
		},
		Convert: ConvertConfig{
			SkipConverted: true,
			BackupSource:  true,
		},
	}
}

// Validate checks every format entry.
func (c *JobConfig) Validate() error {
	if len(c.Formats) == 0 {
		return errors.New("config defines no formats")
	}
	seen := make(map[string]bool)
	for _, fc := range c.Formats {
		if fc.Name == "" {
			return errors.New("config format entry is missing a name")
		}
		if seen[fc.Name] {
			return fmt.Errorf("duplicate format name %q", fc.Name)
		}
		seen[fc.Name] = true
		if err := fc.TableFormat().Validate(); err != nil {
			return fmt.Errorf("format %q: %w", fc.Name, err)
		}
		if _, err := fc.TransformFunc(); err != nil {
			return fmt.Errorf("format %q: %w", fc.Name, err)
		}
	}
	return nil
}

// TableFormat converts the entry to its library representation.
func (fc FormatConfig) TableFormat() tabex.TableFormat {
	return tabex.TableFormat{
		MinRows:         fc.MinRows,
		MinCols:         fc.MinCols,
		HeaderRowOffset: fc.HeaderRowOffset,
		SheetPrefix:     fc.SheetPrefix,
		FilePrefix:      fc.FilePrefix,
	}
}

// TransformFunc resolves the configured transform name.
func (fc FormatConfig) TransformFunc() (tabex.TransformFunc, error) {
	switch fc.Transform {
	case "", "identity":
		return tabex.IdentityTransform, nil
	case "name_columns":
		return tabex.AddNameColumns, nil
	default:
		return nil, fmt.Errorf("unknown transform %q", fc.Transform)
	}
}
