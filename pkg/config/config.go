// Package config loads gridfit settings from a TOML file.
//
// A missing file is not an error: every field has a default, and a file only
// needs the keys it changes.
//
//	[grid]
//	columns = 24
//	slack_rows = 10
//	alternatives = 4
//
//	[weights]
//	gap_fill_bonus = 800
//
//	[server]
//	addr = ":8080"
//	read_timeout = "10s"
//
//	[widgets.chart]
//	title = "Chart"
//	w = 6
//	h = 4
//	min_w = 3
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package config

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridfit/pkg/dashboard"
	"github.com/matzehuels/gridfit/pkg/errors"
	"github.com/matzehuels/gridfit/pkg/placement"
)

const (
	// appName is the directory name under the user config directory.
	appName = "gridfit"

	// fileName is the config file name inside that directory.
	fileName = "config.toml"

	// DefaultAddr is the default listen address for the HTTP API.
	DefaultAddr = ":8080"

	// DefaultReadTimeout is the default HTTP read timeout.
	DefaultReadTimeout = "10s"
)

// Config is the complete gridfit configuration.
type Config struct {
	Grid    Grid                    `toml:"grid"`
	Weights placement.Weights       `toml:"weights"`
	Server  Server                  `toml:"server"`
	Widgets map[string]WidgetConfig `toml:"widgets,omitempty"`
}

// Grid holds the placement search settings.
type Grid struct {
	Columns      int `toml:"columns"`
	SlackRows    int `toml:"slack_rows"`
	Alternatives int `toml:"alternatives"`
}

// Server holds HTTP API settings.
type Server struct {
	Addr        string `toml:"addr"`
	ReadTimeout string `toml:"read_timeout"`
}

// WidgetConfig is a catalog entry as written in the config file.
type WidgetConfig struct {
	Title string `toml:"title,omitempty"`
	W     int    `toml:"w"`
	H     int    `toml:"h"`
	MinW  int    `toml:"min_w,omitempty"`
	MinH  int    `toml:"min_h,omitempty"`
	MaxW  int    `toml:"max_w,omitempty"`
	MaxH  int    `toml:"max_h,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: Grid{
			Columns:      placement.DefaultColumns,
			SlackRows:    placement.DefaultSlackRows,
			Alternatives: placement.DefaultAlternatives,
		},
		Weights: placement.DefaultWeights(),
		Server: Server{
			Addr:        DefaultAddr,
			ReadTimeout: DefaultReadTimeout,
		},
	}
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/gridfit/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the config file at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg to w as TOML.
func Encode(cfg Config, w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Validate checks value ranges and the widget catalog.
func (c Config) Validate() error {
	if c.Grid.Columns < 1 || c.Grid.Columns > dashboard.MaxColumns {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.columns must be between 1 and %d, got %d", dashboard.MaxColumns, c.Grid.Columns)
	}
	if c.Grid.SlackRows < 0 || c.Grid.SlackRows > dashboard.MaxRows {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.slack_rows must be between 0 and %d, got %d", dashboard.MaxRows, c.Grid.SlackRows)
	}
	if c.Grid.Alternatives < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid.alternatives must not be negative, got %d", c.Grid.Alternatives)
	}
	if _, err := c.ReadTimeout(); err != nil {
		return err
	}
	if err := c.Catalog().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "widgets")
	}
	return nil
}

// ReadTimeout parses the server read timeout.
func (c Config) ReadTimeout() (time.Duration, error) {
	if c.Server.ReadTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Server.ReadTimeout)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "server.read_timeout: invalid duration %q", c.Server.ReadTimeout)
	}
	return d, nil
}

// PlacementOptions returns the placer settings described by the config.
func (c Config) PlacementOptions() placement.Options {
	return placement.Options{
		Columns:      c.Grid.Columns,
		SlackRows:    c.Grid.SlackRows,
		Alternatives: c.Grid.Alternatives,
		Weights:      c.Weights,
	}
}

// Placer builds a placer from the config.
func (c Config) Placer(opts ...placement.Option) *placement.Placer {
	all := append([]placement.Option{placement.WithOptions(c.PlacementOptions())}, opts...)
	return placement.New(all...)
}

// Catalog returns the configured widget catalog, or the built-in catalog
// when the config defines no widgets.
func (c Config) Catalog() dashboard.Catalog {
	if len(c.Widgets) == 0 {
		return dashboard.DefaultCatalog()
	}
	cat := make(dashboard.Catalog, len(c.Widgets))
	for name, w := range c.Widgets {
		cat[name] = dashboard.Definition{
			Type:    name,
			Title:   w.Title,
			Default: placement.Size{W: w.W, H: w.H},
			Min:     placement.Size{W: w.MinW, H: w.MinH},
			Max:     placement.Size{W: w.MaxW, H: w.MaxH},
		}
	}
	return cat
}

// WidgetsFromCatalog converts a catalog to its config file form.
func WidgetsFromCatalog(cat dashboard.Catalog) map[string]WidgetConfig {
	out := make(map[string]WidgetConfig, len(cat))
	for name, d := range cat {
		out[name] = WidgetConfig{
			Title: d.Title,
			W:     d.Default.W,
			H:     d.Default.H,
			MinW:  d.Min.W,
			MinH:  d.Min.H,
			MaxW:  d.Max.W,
			MaxH:  d.Max.H,
		}
	}
	return out
}
