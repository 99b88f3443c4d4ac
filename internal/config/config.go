package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	EnvConfigPath = "GWEN_CONFIG"
	EnvLogLevel   = "GWEN_LOG_LEVEL"
)

// Config holds the application settings read from an optional TOML file.
type Config struct {
	Title          string     `toml:"title"`
	LogLevel       string     `toml:"log_level"`
	PollIntervalMS int        `toml:"poll_interval_ms"`
	NestedGroups   bool       `toml:"nested_groups"`
	Projectile     Projectile `toml:"projectile"`
}

// Projectile holds the demo's starting values.
type Projectile struct {
	Height       float64    `toml:"height"`
	Velocity     [2]float64 `toml:"velocity"`
	Timestep     float64    `toml:"timestep"`
	TotalTime    float64    `toml:"total_time"`
	Drag         float64    `toml:"drag"`
	Reflection   float64    `toml:"reflection"`
	Gravity      [2]float64 `toml:"gravity"`
	RealtimePace bool       `toml:"realtime_pace"`
}

func Default() Config {
	return Config{
		Title:          "Projectile Motion Simulator",
		LogLevel:       "info",
		PollIntervalMS: 50,
		Projectile: Projectile{
			Height:       50,
			Velocity:     [2]float64{1, 1},
			Timestep:     0.1,
			TotalTime:    7,
			Drag:         0,
			Reflection:   0.75,
			Gravity:      [2]float64{0, -9.81},
			RealtimePace: true,
		},
	}
}

// Load reads path over the defaults. An empty path skips the file.
// GWEN_LOG_LEVEL overrides the file's log level.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode parses TOML text over the defaults.
func Decode(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("poll_interval_ms must be positive, got %d", c.PollIntervalMS)
	}
	if c.Projectile.Timestep <= 0 {
		return fmt.Errorf("projectile.timestep must be positive, got %g", c.Projectile.Timestep)
	}
	return nil
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}
