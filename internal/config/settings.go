// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Exhaustion policies for what waves do once the final stage has run its course.
const (
	ExhaustionRepeatFinal = "repeat_final"
	ExhaustionHalt        = "halt"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	World   WorldConfig   `toml:"world"`
	Spawn   SpawnConfig   `toml:"spawn"`
	Player  PlayerConfig  `toml:"player"`
	Data    DataConfig    `toml:"data"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type WorldConfig struct {
	Width  float64 `toml:"width"`  // half extent on X
	Height float64 `toml:"height"` // half extent on Y
}

type SpawnConfig struct {
	Distance      float64       `toml:"distance"`
	WaveInterval  time.Duration `toml:"wave_interval"`
	StageInterval time.Duration `toml:"stage_interval"`
	Exhaustion    string        `toml:"exhaustion"` // "repeat_final" or "halt"
	Table         string        `toml:"table"`
	Seed          int64         `toml:"seed"` // 0 = time based
}

type PlayerConfig struct {
	Speed  float64 `toml:"speed"`
	Bounds float64 `toml:"bounds"`
}

type DataConfig struct {
	Dir       string `toml:"dir"`
	AssetsDir string `toml:"assets_dir"`
	Watch     bool   `toml:"watch"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  WindowTitle,
		},
		World: WorldConfig{
			Width:  MapWidth,
			Height: MapHeight,
		},
		Spawn: SpawnConfig{
			Distance:      SpawnDistance,
			WaveInterval:  time.Duration(WaveInterval * float64(time.Second)),
			StageInterval: time.Duration(StageInterval * float64(time.Second)),
			Exhaustion:    ExhaustionRepeatFinal,
			Table:         "first_level",
		},
		Player: PlayerConfig{
			Speed:  PlayerSpeed,
			Bounds: PlayerBounds,
		},
		Data: DataConfig{
			Dir:       "data",
			AssetsDir: "assets",
			Watch:     true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world bounds %vx%v", ErrInvalidConfig, c.World.Width, c.World.Height)
	case c.Spawn.Distance <= 0:
		return fmt.Errorf("%w: spawn distance %v", ErrInvalidConfig, c.Spawn.Distance)
	case c.Spawn.WaveInterval <= 0:
		return fmt.Errorf("%w: wave interval %v", ErrInvalidConfig, c.Spawn.WaveInterval)
	case c.Spawn.StageInterval <= 0:
		return fmt.Errorf("%w: stage interval %v", ErrInvalidConfig, c.Spawn.StageInterval)
	case c.Spawn.Exhaustion != ExhaustionRepeatFinal && c.Spawn.Exhaustion != ExhaustionHalt:
		return fmt.Errorf("%w: exhaustion policy %q", ErrInvalidConfig, c.Spawn.Exhaustion)
	case c.Spawn.Table == "":
		return fmt.Errorf("%w: empty spawn table name", ErrInvalidConfig)
	case c.Player.Speed < 0:
		return fmt.Errorf("%w: player speed %v", ErrInvalidConfig, c.Player.Speed)
	case c.Player.Bounds <= 0:
		return fmt.Errorf("%w: player bounds %v", ErrInvalidConfig, c.Player.Bounds)
	}
	return nil
}
