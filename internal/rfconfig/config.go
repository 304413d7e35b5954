// Package rfconfig loads the optional TOML configuration file read by
// the rulesfinder entry point (ruledump reads no configuration file).
// Every setting it carries also has a corresponding CLI flag; a flag set
// to a non-default value wins over the file, while a flag left at its
// default value takes the file's value.
package rfconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config mirrors the search parameters a run is tuned by.
type Config struct {
	Search struct {
		MinSize     int  `toml:"min_size"`
		Cutoff      int  `toml:"cutoff"`
		Threads     int  `toml:"threads"`
		Preallocate bool `toml:"preallocate"`
	} `toml:"search"`

	Output struct {
		Hashcat bool `toml:"hashcat"`
		Details bool `toml:"details"`
	} `toml:"output"`

	Monitor struct {
		Enabled bool `toml:"enabled"`
	} `toml:"monitor"`
}

// Default returns a Config populated with the CLI's documented defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Search.MinSize = 4
	cfg.Search.Threads = 4
	cfg.Search.Preallocate = false
	cfg.Output.Hashcat = false
	cfg.Output.Details = false
	cfg.Monitor.Enabled = false
	return cfg
}

// Path returns the platform-specific config file location.
func Path() string {
	var dir string
	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "rulesfinder")
	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "rulesfinder.toml"
		}
		dir = filepath.Join(home, ".config", "rulesfinder")
	default:
		return "rulesfinder.toml"
	}
	return filepath.Join(dir, "rulesfinder.toml")
}

// Load reads Config from the default path, returning defaults
// untouched if the file does not exist.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads Config from an explicit path.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
