// Package config handles modelgen configuration loading and management.
package config

import "github.com/Faultbox/blockmodels/internal/store"

// Config holds all modelgen settings.
type Config struct {
	Models  ModelsConfig  `yaml:"models"`
	Compile CompileConfig `yaml:"compile"`
	Logging LoggingConfig `yaml:"logging"`
}

// ModelsConfig says where compiled models live and how they are encoded.
type ModelsConfig struct {
	Dir               string   `yaml:"dir"`                 // output directory for the dir store
	Format            string   `yaml:"format"`              // binary, yaml or toml
	Store             string   `yaml:"store"`               // dir or sqlite
	SQLitePath        string   `yaml:"sqlite_path"`         // database file for the sqlite store
	Only              []string `yaml:"only"`                // restrict generation to these models
	InvertBottomFaces bool     `yaml:"invert_bottom_faces"` // flip V of downfaces on load
}

// CompileConfig holds mesh compiler settings.
type CompileConfig struct {
	ScaleFactor  float32 `yaml:"scale_factor"`
	PivotMarkers bool    `yaml:"pivot_markers"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Models: ModelsConfig{
			Dir:        "models",
			Format:     "binary",
			Store:      store.KindDir,
			SQLitePath: "models.db",
		},
		Compile: CompileConfig{
			ScaleFactor:  1,
			PivotMarkers: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// StorePath returns the location the configured store opens.
func (c *Config) StorePath() string {
	if c.Models.Store == store.KindSQLite {
		return c.Models.SQLitePath
	}
	return c.Models.Dir
}
