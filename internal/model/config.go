package model

import "time"

// Config holds all teamlens configuration
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis" json:"analysis"`
	Input       InputConfig       `yaml:"input" json:"input"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// AnalysisConfig controls the analytical core parameters
type AnalysisConfig struct {
	Rate int `yaml:"rate" json:"rate"` // Themes taken from each end of a profile
}

// InputConfig controls table decoding
type InputConfig struct {
	Validation ValidationMode `yaml:"validation" json:"validation"` // warn, reject, pass
}

// CacheConfig controls the in-memory report cache used by batch mode
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
	Top           int  `yaml:"top" json:"top"` // Histogram rows to show (0 = all)
}

// DefaultConfig returns the standard teamlens configuration
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Rate: 5,
		},
		Input: InputConfig{
			Validation: ValidateWarn,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
			Top:           0,
		},
	}
}
