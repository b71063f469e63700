package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering, from lowest to highest precedence:
//  1. Default()
//  2. a YAML file, when path is non-empty
//  3. environment variables with prefix GROOVE_, e.g.
//     GROOVE_SWING.MIN_NOTES overrides swing.min_notes
func Load(path string) (*Config, error) {
	cfg := *Default()

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("GROOVE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GROOVE_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment overrides: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Onset.HistogramBins <= 0 {
		return fmt.Errorf("onset.histogram_bins must be positive, got %d", cfg.Onset.HistogramBins)
	}
	if cfg.Swing.MinNotes <= 0 {
		return fmt.Errorf("swing.min_notes must be positive, got %d", cfg.Swing.MinNotes)
	}
	if cfg.Swing.Tolerance <= 0 {
		return fmt.Errorf("swing.tolerance must be positive, got %g", cfg.Swing.Tolerance)
	}
	if cfg.Tempo.MinBPM <= 0 || cfg.Tempo.MaxBPM <= cfg.Tempo.MinBPM {
		return fmt.Errorf("tempo bpm band [%g, %g] is not ascending positive", cfg.Tempo.MinBPM, cfg.Tempo.MaxBPM)
	}
	if len(cfg.Cascade.DynamicIntensity) == 0 {
		return fmt.Errorf("cascade.dynamic_intensity table must not be empty")
	}
	return nil
}
