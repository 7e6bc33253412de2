// Package config loads the gridboard application configuration.
//
// Configuration lives in a TOML file (default
// ~/.config/gridboard/config.toml) with three sections:
//
//	[grid]
//	columns   = 8
//	rows      = 0      # 0 = unbounded
//	cell_size = 100.0
//	spacing   = 4.0
//	[grid.padding]
//	top = 8.0
//
//	[store]
//	backend = "file"   # file | redis | mongo | none
//	path    = ""       # file backend; defaults under ~/.config/gridboard
//	redis_addr = "localhost:6379"
//	mongo_uri  = "mongodb://localhost:27017"
//
//	[autosave]
//	enabled  = true
//	interval = "2s"
//	layout   = "default"
//
// A missing file yields the defaults; a malformed file is an error. Missing
// fields within an existing file fall back to their defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gridboard/gridboard/pkg/autosave"
	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
)

// Store backend names accepted in [store].backend.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// DefaultLayoutName is the layout auto-save writes to when none is
// configured.
const DefaultLayoutName = "default"

// Duration wraps time.Duration so TOML values can be written as "2s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// Grid configures the cell grid.
type Grid struct {
	Columns  int         `toml:"columns"`
	Rows     int         `toml:"rows"`
	CellSize float64     `toml:"cell_size"`
	Spacing  float64     `toml:"spacing"`
	Padding  grid.Insets `toml:"padding"`
}

// ToGrid converts the section to a normalized grid configuration.
func (g Grid) ToGrid() grid.Config {
	return grid.Config{
		Columns:  g.Columns,
		Rows:     g.Rows,
		CellSize: g.CellSize,
		Spacing:  g.Spacing,
		Padding:  g.Padding,
	}.Normalize()
}

// StoreConfig selects and configures the layout store backend.
type StoreConfig struct {
	Backend       string `toml:"backend"`
	Path          string `toml:"path"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// Autosave configures the debounced snapshot saver.
type Autosave struct {
	Enabled  bool     `toml:"enabled"`
	Interval Duration `toml:"interval"`
	Layout   string   `toml:"layout"`
}

// Config is the full application configuration.
type Config struct {
	Grid     Grid        `toml:"grid"`
	Store    StoreConfig `toml:"store"`
	Autosave Autosave    `toml:"autosave"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Grid: Grid{
			Columns:  grid.DefaultColumns,
			CellSize: grid.DefaultCellSize,
			Spacing:  grid.DefaultSpacing,
		},
		Store: StoreConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			MongoURI:  "mongodb://localhost:27017",
		},
		Autosave: Autosave{
			Enabled:  true,
			Interval: Duration{autosave.DefaultInterval},
			Layout:   DefaultLayoutName,
		},
	}
}

// Load reads the configuration file at path. If path is empty the default
// location is used. A missing file is not an error: the defaults are
// returned. Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}

	cfg.normalize()
	return cfg, nil
}

// DefaultPath returns ~/.config/gridboard/config.toml, honoring
// XDG_CONFIG_HOME when set.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "gridboard", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gridboard", "config.toml"), nil
}

// normalize clamps decoded values back into range.
func (c *Config) normalize() {
	switch c.Store.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendNone:
	default:
		c.Store.Backend = BackendFile
	}
	if c.Autosave.Interval.Duration <= 0 {
		c.Autosave.Interval = Duration{autosave.DefaultInterval}
	}
	if c.Autosave.Layout == "" {
		c.Autosave.Layout = DefaultLayoutName
	}
}
