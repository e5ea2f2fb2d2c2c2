package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// configFilename is the user configuration file inside configDir.
const configFilename = "config.toml"

// Config holds user preferences for chart generation, read from
// ~/.config/textspark/config.toml. All fields are optional:
//
//	type = "sparkline"
//	height = 2
type Config struct {
	Type   string `toml:"type"`
	Height int    `toml:"height"`
}

// defaultConfig returns the built-in defaults applied when no config file
// exists or fields are unset.
func defaultConfig() Config {
	return Config{
		Type:   "sparkline",
		Height: 1,
	}
}

// LoadConfig reads the user configuration file, falling back to defaults
// when the file is missing or malformed. A broken config file must never
// prevent the CLI from starting.
func LoadConfig() Config {
	dir, err := configDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFile(filepath.Join(dir, configFilename))
}

// loadConfigFile reads and merges a specific config file over the defaults.
func loadConfigFile(path string) Config {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var fileCfg Config
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return cfg
	}

	if fileCfg.Type != "" {
		cfg.Type = fileCfg.Type
	}
	if fileCfg.Height > 0 {
		cfg.Height = fileCfg.Height
	}
	return cfg
}
