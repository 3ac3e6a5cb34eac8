package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tilekit/docktree/pkg/layout"
)

// Config holds user preferences loaded from the config file.
// All fields are optional; zero values fall back to built-in defaults.
type Config struct {
	// Direction is the default split orientation: "horizontal" or "vertical".
	Direction string `toml:"direction"`

	// SplitSize is the share (percent, 0-100 exclusive) given to the
	// surviving panel when a split is created.
	SplitSize float64 `toml:"split_size"`

	// Listen is the default address for the serve command.
	Listen string `toml:"listen"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Direction: layout.Horizontal.String(),
		SplitSize: layout.DefaultSplitSize,
		Listen:    "localhost:7421",
	}
}

// LoadConfig reads the user config file, layering it over DefaultConfig.
// A missing or unreadable file is not an error; defaults are returned.
func LoadConfig() Config {
	cfg := DefaultConfig()
	dir, err := configDir()
	if err != nil {
		return cfg
	}
	loadConfigFile(filepath.Join(dir, "config.toml"), &cfg)
	return cfg
}

// loadConfigFile decodes path into cfg, leaving cfg untouched on any error.
func loadConfigFile(path string, cfg *Config) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fileCfg Config
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return
	}
	if fileCfg.Direction != "" {
		if _, err := layout.ParseDirection(fileCfg.Direction); err == nil {
			cfg.Direction = fileCfg.Direction
		}
	}
	if fileCfg.SplitSize > 0 && fileCfg.SplitSize < 100 {
		cfg.SplitSize = fileCfg.SplitSize
	}
	if fileCfg.Listen != "" {
		cfg.Listen = fileCfg.Listen
	}
}
