// Package config holds the tunable arena, actor and engine settings. Defaults
// come from the parameter package and can be overridden from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/mirror-arena/parameter"
	"github.com/pelletier/go-toml"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete runtime configuration
type Config struct {
	Arena  ArenaConfig  `toml:"arena"`
	Actor  ActorConfig  `toml:"actor"`
	Mirror MirrorConfig `toml:"mirror"`
	Engine EngineConfig `toml:"engine"`
}

// ArenaConfig sizes the playfield and its boundary walls
type ArenaConfig struct {
	HalfWidth     float32 `toml:"half_width"`
	HalfHeight    float32 `toml:"half_height"`
	WallThickness float32 `toml:"wall_thickness"`
}

// ActorConfig tunes the controllable circle
type ActorConfig struct {
	Radius       float32 `toml:"radius"`
	AngularSpeed float32 `toml:"angular_speed"`
	InputDelta   float32 `toml:"input_delta"`
}

// MirrorConfig sizes mirrors and the interior region they spawn in
type MirrorConfig struct {
	HalfWidth     float32 `toml:"half_width"`
	HalfHeight    float32 `toml:"half_height"`
	SpawnFraction float32 `toml:"spawn_fraction"`
}

// EngineConfig controls the tick loop and randomness
type EngineConfig struct {
	TickRate     int   `toml:"tick_rate"`
	Seed         int64 `toml:"seed"`
	HoldWindowMs int   `toml:"hold_window_ms"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			HalfWidth:     parameter.ArenaHalfWidth,
			HalfHeight:    parameter.ArenaHalfHeight,
			WallThickness: parameter.WallThickness,
		},
		Actor: ActorConfig{
			Radius:       parameter.ActorRadius,
			AngularSpeed: parameter.AngularSpeed,
			InputDelta:   parameter.InputVelocityDelta,
		},
		Mirror: MirrorConfig{
			HalfWidth:     parameter.MirrorHalfWidth,
			HalfHeight:    parameter.MirrorHalfHeight,
			SpawnFraction: parameter.MirrorSpawnFraction,
		},
		Engine: EngineConfig{
			TickRate:     parameter.TickRate,
			Seed:         1,
			HoldWindowMs: int(parameter.HoldWindow / time.Millisecond),
		},
	}
}

// Load reads the TOML file at path on top of the defaults and validates the result
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveDefault writes the default configuration to path. It refuses to overwrite an existing file.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate reports every setting that would make the arena geometry or the tick meaningless
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("arena.half_width", c.Arena.HalfWidth)
	positive("arena.half_height", c.Arena.HalfHeight)
	positive("arena.wall_thickness", c.Arena.WallThickness)
	positive("actor.radius", c.Actor.Radius)
	positive("mirror.half_width", c.Mirror.HalfWidth)
	positive("mirror.half_height", c.Mirror.HalfHeight)

	if !(c.Mirror.SpawnFraction > 0 && c.Mirror.SpawnFraction < 1) {
		errs = append(errs, fmt.Errorf("%w: mirror.spawn_fraction must be in (0,1), got %v", ErrInvalidConfig, c.Mirror.SpawnFraction))
	}
	if c.Engine.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: engine.tick_rate must be > 0, got %d", ErrInvalidConfig, c.Engine.TickRate))
	}
	if c.Engine.HoldWindowMs < 0 {
		errs = append(errs, fmt.Errorf("%w: engine.hold_window_ms must be >= 0, got %d", ErrInvalidConfig, c.Engine.HoldWindowMs))
	}

	return errors.Join(errs...)
}

// TickDuration is the fixed simulation step in seconds
func (c Config) TickDuration() float32 {
	return 1 / float32(c.Engine.TickRate)
}

// TickInterval is the fixed simulation step as a wall-clock duration
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Engine.TickRate)
}

// HoldWindow is how long a direction stays held after its last key event
func (c Config) HoldWindow() time.Duration {
	return time.Duration(c.Engine.HoldWindowMs) * time.Millisecond
}
