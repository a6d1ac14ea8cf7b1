// Package config loads the wkmstats TOML configuration. A missing file is
// not an error: every field has a usable default so the tool works out of
// the box next to the two dataset files.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// StatsPath points at the marathon dataset (event -> entries).
	StatsPath string `toml:"stats_path"`
	// UsersPath points at the username roster used for suggestions.
	UsersPath string `toml:"users_path"`
	// AssetsDir holds the theme background images.
	AssetsDir string `toml:"assets_dir"`
	// Accent is a palette color name or hex value for cards and charts.
	Accent string `toml:"accent"`
	// Range is the default range mode: "all" or "recent".
	Range string `toml:"range"`
}

func Default() *Config {
	return &Config{
		StatsPath: "all_stats.json",
		UsersPath: "users.json",
		AssetsDir: ".",
		Accent:    "WK Pink",
		Range:     "all",
	}
}

// Load reads path, filling unset fields with defaults. A nonexistent path
// yields the full default config.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config %s: %w", path, err)
	}
	def := Default()
	if cfg.StatsPath == "" {
		cfg.StatsPath = def.StatsPath
	}
	if cfg.UsersPath == "" {
		cfg.UsersPath = def.UsersPath
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = def.AssetsDir
	}
	if cfg.Accent == "" {
		cfg.Accent = def.Accent
	}
	if cfg.Range == "" {
		cfg.Range = def.Range
	}
	return cfg, nil
}
