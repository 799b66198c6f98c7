package config

import (
	"flag"
	"strings"
)

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagDir    = flag.String("dir", "", "Model output directory")
	flagFormat = flag.String("format", "", "Model format (binary, yaml, toml)")
	flagStore  = flag.String("store", "", "Model store (dir, sqlite)")
	flagDB     = flag.String("db", "", "SQLite database path")
	flagOnly   = flag.String("only", "", "Comma-separated model names to generate")
	flagScale  = flag.Float64("scale", 0, "Extra scale factor applied to every model")
	flagPivots = flag.Bool("pivots", false, "Add pivot marker meshes")
	flagLog    = flag.String("log", "", "Log file path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDir != "" {
		cfg.Models.Dir = *flagDir
	}
	if *flagFormat != "" {
		cfg.Models.Format = *flagFormat
	}
	if *flagStore != "" {
		cfg.Models.Store = *flagStore
	}
	if *flagDB != "" {
		cfg.Models.SQLitePath = *flagDB
	}
	if *flagOnly != "" {
		cfg.Models.Only = splitList(*flagOnly)
	}
	if *flagScale > 0 {
		cfg.Compile.ScaleFactor = float32(*flagScale)
	}
	if *flagPivots {
		cfg.Compile.PivotMarkers = true
	}
	if *flagLog != "" {
		cfg.Logging.LogFile = *flagLog
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
