// Package config loads fengshui settings from a TOML file.
//
// Every setting has a default, so the file is optional. A typical file:
//
//	[canvas]
//	width = 1280
//	height = 800
//	count = 10
//	seed = 42          # 0 picks a random seed
//
//	[scoring]
//	proximity_threshold = 100
//	proximity_penalty = 1
//
//	[server]
//	addr = ":8080"
//	session_ttl = "30m"
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fengshui/pkg/appeal"
	"github.com/matzehuels/fengshui/pkg/errors"
	"github.com/matzehuels/fengshui/pkg/furniture"
)

const appName = "fengshui"

// MaxCount bounds the number of generated items.
const MaxCount = 200

// Config is the full application configuration.
type Config struct {
	Canvas  Canvas        `toml:"canvas"`
	Scoring appeal.Params `toml:"scoring"`
	Server  Server        `toml:"server"`
}

// Canvas controls the generated layout.
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Count  int     `toml:"count"`
	Seed   uint64  `toml:"seed"`
}

// Bounds returns the canvas extent.
func (c Canvas) Bounds() furniture.Bounds {
	return furniture.Bounds{Width: c.Width, Height: c.Height}
}

// Server controls `fengshui serve`.
type Server struct {
	Addr           string   `toml:"addr"`
	SessionTTL     Duration `toml:"session_ttl"`
	CleanupEvery   Duration `toml:"cleanup_every"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Duration is a time.Duration written as a Go duration string ("30m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:  1280,
			Height: 800,
			Count:  furniture.DefaultCount,
		},
		Scoring: appeal.DefaultParams(),
		Server: Server{
			Addr:           ":8080",
			SessionTTL:     Duration{time.Hour},
			CleanupEvery:   Duration{5 * time.Minute},
			AllowedOrigins: []string{"*"},
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/fengshui/config.toml, falling back to
// ~/.config/fengshui/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path on top of the defaults. With an empty
// path the default location is tried and a missing file is not an error; an
// explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "stat %s", path)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if err := errors.ValidateSize("canvas.width", c.Canvas.Width); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "canvas")
	}
	if err := errors.ValidateSize("canvas.height", c.Canvas.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "canvas")
	}
	if err := errors.ValidateCount(c.Canvas.Count, MaxCount); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "canvas")
	}

	s := c.Scoring
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"base", s.Base},
		{"proximity_threshold", s.ProximityThreshold},
		{"proximity_penalty", s.ProximityPenalty},
		{"color_threshold", s.ColorThreshold},
		{"color_reward", s.ColorReward},
	} {
		if err := errors.ValidateCoordinate("scoring."+p.name, p.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "scoring")
		}
		if p.v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "scoring.%s must not be negative", p.name)
		}
	}
	if s.Base > appeal.MaxScore {
		return errors.New(errors.ErrCodeInvalidConfig, "scoring.base must be within [0, 100]")
	}

	if c.Server.SessionTTL.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.session_ttl must be positive")
	}
	if c.Server.CleanupEvery.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.cleanup_every must be positive")
	}
	return nil
}

// Write encodes c as TOML to path, creating parent directories.
func Write(c Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(c, f)
}

// Encode writes c as TOML to w.
func Encode(c Config, w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
