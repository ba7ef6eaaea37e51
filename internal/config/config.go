// Package config provides configuration for cleaning pipeline runs.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options holds the per-stage toggles for an automatic cleaning run.
// Each stage of the fixed pipeline order can be switched off
// independently; the order itself is not configurable.
type Options struct {
	StandardizeNames bool `json:"standardize_names" yaml:"standardize_names"` // Canonicalize column names
	ConvertTypes     bool `json:"convert_types" yaml:"convert_types"`         // Reclassify text columns as numeric/datetime
	RemoveDuplicates bool `json:"remove_duplicates" yaml:"remove_duplicates"` // Drop exact duplicate rows
	HandleMissing    bool `json:"handle_missing" yaml:"handle_missing"`       // Resolve missing cells (auto strategy)
	HandleOutliers   bool `json:"handle_outliers" yaml:"handle_outliers"`     // Cap numeric extremes (off by default)
}

// NewOptions returns the default configuration: every stage enabled
// except outlier handling, which can be aggressive and is opt-in.
func NewOptions() Options {
	return Options{
		StandardizeNames: true,
		ConvertTypes:     true,
		RemoveDuplicates: true,
		HandleMissing:    true,
		HandleOutliers:   false,
	}
}

// LoadFromFile reads options from a YAML or JSON file, chosen by
// extension. Keys absent from the file keep their default values.
func LoadFromFile(path string) (Options, error) {
	opts := NewOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading options file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parsing YAML options: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parsing JSON options: %w", err)
		}
	default:
		return opts, fmt.Errorf("unsupported options file format: %s", path)
	}

	return opts, nil
}
