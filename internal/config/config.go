package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"bounce/internal/entity"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Duration decodes TOML strings such as "42ms" or "1s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// BallConfig bounds generated balls. Bounds are inclusive.
type BallConfig struct {
	RadiusMin  int `toml:"radius_min"`
	RadiusMax  int `toml:"radius_max"`
	SpeedMin   int `toml:"speed_min"`
	SpeedMax   int `toml:"speed_max"`
	GravityMin int `toml:"gravity_min"`
	GravityMax int `toml:"gravity_max"`
}

// TerminalConfig maps terminal cells onto the pixel space of the simulation.
type TerminalConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

type Config struct {
	// Title identifies the drawing surface (window title).
	Title         string `toml:"title"`
	StartingBalls int    `toml:"starting_balls"`
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	// Seed for the random source. Zero seeds from the clock.
	Seed int64 `toml:"seed"`

	// FixedStep replaces measured frame time when non-zero.
	FixedStep Duration `toml:"fixed_step"`
	// TickInterval paces hosts that schedule their own ticks.
	TickInterval Duration `toml:"tick_interval"`

	EndOnPointerLeave bool `toml:"end_on_pointer_leave"`
	EscalateEvery     int  `toml:"escalate_every"`
	EscalateBalls     int  `toml:"escalate_balls"`

	Balls    BallConfig     `toml:"balls"`
	Terminal TerminalConfig `toml:"terminal"`
}

// Default returns a config with every tunable set. Title and StartingBalls
// are left empty on purpose; the caller has to supply them.
func Default() Config {
	r := entity.DefaultRanges
	return Config{
		Width:             800,
		Height:            600,
		TickInterval:      Duration{16 * time.Millisecond},
		EndOnPointerLeave: true,
		EscalateEvery:     40,
		EscalateBalls:     10,
		Balls: BallConfig{
			RadiusMin:  r.RadiusMin,
			RadiusMax:  r.RadiusMax,
			SpeedMin:   r.SpeedMin,
			SpeedMax:   r.SpeedMax,
			GravityMin: r.GravityMin,
			GravityMax: r.GravityMax,
		},
		Terminal: TerminalConfig{CellWidth: 8, CellHeight: 16},
	}
}

// Load decodes the TOML file at path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with BOUNCE_* variables read through getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv("BOUNCE_TITLE"); v != "" {
		cfg.Title = v
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"BOUNCE_STARTING_BALLS", &cfg.StartingBalls},
		{"BOUNCE_WIDTH", &cfg.Width},
		{"BOUNCE_HEIGHT", &cfg.Height},
		{"BOUNCE_ESCALATE_EVERY", &cfg.EscalateEvery},
		{"BOUNCE_ESCALATE_BALLS", &cfg.EscalateBalls},
	}
	for _, e := range ints {
		v := getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}

	if v := getenv("BOUNCE_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("BOUNCE_SEED: %w", err)
		}
		cfg.Seed = n
	}
	if v := getenv("BOUNCE_FIXED_STEP"); v != "" {
		if err := cfg.FixedStep.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("BOUNCE_FIXED_STEP: %w", err)
		}
	}
	if v := getenv("BOUNCE_END_ON_POINTER_LEAVE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("BOUNCE_END_ON_POINTER_LEAVE: %w", err)
		}
		cfg.EndOnPointerLeave = b
	}
	return nil
}

// Validate rejects configs that cannot start a game.
func (c Config) Validate() error {
	b := c.Balls
	switch {
	case c.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidConfig)
	case c.StartingBalls <= 0:
		return fmt.Errorf("%w: starting_balls must be positive, got %d", ErrInvalidConfig, c.StartingBalls)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport %dx%d is empty", ErrInvalidConfig, c.Width, c.Height)
	case b.RadiusMin <= 0 || b.RadiusMin > b.RadiusMax:
		return fmt.Errorf("%w: radius range [%d, %d]", ErrInvalidConfig, b.RadiusMin, b.RadiusMax)
	case b.SpeedMin < 0 || b.SpeedMin > b.SpeedMax:
		return fmt.Errorf("%w: speed range [%d, %d]", ErrInvalidConfig, b.SpeedMin, b.SpeedMax)
	case b.GravityMin < 0 || b.GravityMin > b.GravityMax:
		return fmt.Errorf("%w: gravity range [%d, %d]", ErrInvalidConfig, b.GravityMin, b.GravityMax)
	case c.Width < 2*b.RadiusMax || c.Height/2 < 2*b.RadiusMax:
		return fmt.Errorf("%w: viewport %dx%d too small for radius %d", ErrInvalidConfig, c.Width, c.Height, b.RadiusMax)
	case c.EscalateEvery <= 0 || c.EscalateBalls < 0:
		return fmt.Errorf("%w: escalation every %d by %d", ErrInvalidConfig, c.EscalateEvery, c.EscalateBalls)
	case c.FixedStep.Duration < 0 || c.TickInterval.Duration <= 0:
		return fmt.Errorf("%w: fixed_step %s tick_interval %s", ErrInvalidConfig, c.FixedStep.Duration, c.TickInterval.Duration)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("%w: terminal cell %dx%d", ErrInvalidConfig, c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	return nil
}

// TickCadence is how often a host should tick. A fixed step is also the
// cadence, so simulated time keeps pace with the wall clock.
func (c Config) TickCadence() time.Duration {
	if c.FixedStep.Duration > 0 {
		return c.FixedStep.Duration
	}
	return c.TickInterval.Duration
}

// TPS is the ticks per second matching FixedStep, or 0 when frame time is
// measured and the host keeps its own rate.
func (c Config) TPS() int {
	if c.FixedStep.Duration <= 0 {
		return 0
	}
	return max(1, int(time.Second/c.FixedStep.Duration))
}

// Ranges converts the ball section for the generator.
func (c Config) Ranges() entity.Ranges {
	return entity.Ranges{
		RadiusMin:  c.Balls.RadiusMin,
		RadiusMax:  c.Balls.RadiusMax,
		SpeedMin:   c.Balls.SpeedMin,
		SpeedMax:   c.Balls.SpeedMax,
		GravityMin: c.Balls.GravityMin,
		GravityMax: c.Balls.GravityMax,
	}
}

// FromSources layers the config file at path and the environment (after
// loading envFile) over Default. An optional path that does not exist is skipped.
func FromSources(path string, optional bool, envFile string) (Config, error) {
	if err := LoadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	if optional {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}
