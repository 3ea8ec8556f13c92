// Package config loads and validates the application configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Species taxonomy IDs supported out of the box. Any other NCBI taxonomy ID
// can still be supplied directly.
const (
	SpeciesHuman     = 9606
	SpeciesMouse     = 10090
	SpeciesRat       = 10116
	SpeciesZebrafish = 7955
	SpeciesFruitFly  = 7227
	SpeciesYeast     = 4932
	SpeciesEColiK12  = 83333
)

// SpeciesCatalog maps display names to taxonomy IDs.
var SpeciesCatalog = map[string]int{
	"Human (Homo sapiens)":                SpeciesHuman,
	"Mouse (Mus musculus)":                SpeciesMouse,
	"Rat (Rattus norvegicus)":             SpeciesRat,
	"Zebrafish (Danio rerio)":             SpeciesZebrafish,
	"Fruit fly (Drosophila melanogaster)": SpeciesFruitFly,
	"Yeast (Saccharomyces cerevisiae)":    SpeciesYeast,
	"E. coli (Escherichia coli K12)":      SpeciesEColiK12,
}

// APIConfig configures the upstream interaction-data provider.
type APIConfig struct {
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	CallerIdentity string `yaml:"caller_identity" validate:"required"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"min=1,max=300"`
}

// AnalysisConfig configures graph analysis defaults.
type AnalysisConfig struct {
	TopN     int     `yaml:"top_n" validate:"min=0"`
	MinScore float64 `yaml:"min_score" validate:"min=0,max=1"`
	Species  int     `yaml:"species" validate:"min=0"`
}

// LayoutConfig configures the force-directed layout defaults.
type LayoutConfig struct {
	Width      float64 `yaml:"width" validate:"gt=0"`
	Height     float64 `yaml:"height" validate:"gt=0"`
	Padding    float64 `yaml:"padding" validate:"min=0"`
	Iterations int     `yaml:"iterations" validate:"min=1,max=10000"`
	Seed       int64   `yaml:"seed"`
	SpacingK   float64 `yaml:"spacing_k" validate:"gt=0"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// Config is the top-level application configuration.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Layout   LayoutConfig   `yaml:"layout"`
	Logging  LoggingConfig  `yaml:"logging"`
}

var validate = validator.New()

// Default returns the built-in configuration, matching upstream behavior:
// score threshold 0.4, top 5 hubs, human proteins, seed 42 spring layout.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "https://string-db.org/api",
			CallerIdentity: "prothub",
			TimeoutSeconds: 30,
		},
		Analysis: AnalysisConfig{
			TopN:     5,
			MinScore: 0.4,
			Species:  SpeciesHuman,
		},
		Layout: LayoutConfig{
			Width:      1000,
			Height:     800,
			Padding:    50,
			Iterations: 50,
			Seed:       42,
			SpacingK:   1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result. A
// missing path keeps the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks all constraint tags and returns the first violation in a
// readable form.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fmt.Errorf("config validation failed: field %s violates %q", first.Namespace(), first.Tag())
	}
	return fmt.Errorf("config validation failed: %w", err)
}
