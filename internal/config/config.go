package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds server settings loadable from a YAML file.
type Config struct {
	// Addr is the listen address.
	Addr string `yaml:"addr"`
	// DBPath is the SQLite database file path.
	DBPath string `yaml:"db"`
	// LogPath optionally tees logs to a file.
	LogPath string `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:   ":8080",
		DBPath: "inventoryd.sqlite3",
	}
}

// Load reads a YAML config file and overlays it on the defaults.
// Returns the defaults (not an error) if path is empty or the file
// does not exist.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
