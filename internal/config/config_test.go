package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() Config {
	cfg := Default()
	cfg.Title = "bounce"
	cfg.StartingBalls = 5
	return cfg
}

func TestDefaultNeedsCallerInput(t *testing.T) {
	if err := Default().Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Default().Validate() = %v, want ErrInvalidConfig", err)
	}
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("validConfig().Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"Missing title", func(c *Config) { c.Title = "" }},
		{"Zero balls", func(c *Config) { c.StartingBalls = 0 }},
		{"Negative balls", func(c *Config) { c.StartingBalls = -3 }},
		{"Zero width", func(c *Config) { c.Width = 0 }},
		{"Zero height", func(c *Config) { c.Height = 0 }},
		{"Too narrow", func(c *Config) { c.Width = 100 }},
		{"Too short", func(c *Config) { c.Height = 200 }},
		{"Inverted radius", func(c *Config) { c.Balls.RadiusMin = 80 }},
		{"Zero radius", func(c *Config) { c.Balls.RadiusMin = 0 }},
		{"Inverted speed", func(c *Config) { c.Balls.SpeedMax = 50 }},
		{"Inverted gravity", func(c *Config) { c.Balls.GravityMin = 500 }},
		{"Zero escalation period", func(c *Config) { c.EscalateEvery = 0 }},
		{"Negative escalation", func(c *Config) { c.EscalateBalls = -1 }},
		{"Negative fixed step", func(c *Config) { c.FixedStep.Duration = -time.Millisecond }},
		{"Zero tick interval", func(c *Config) { c.TickInterval.Duration = 0 }},
		{"Zero cell", func(c *Config) { c.Terminal.CellWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.toml")
	data := `
title = "test surface"
starting_balls = 7
seed = 11
fixed_step = "42ms"
end_on_pointer_leave = false

[balls]
speed_max = 400
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Title != "test surface" || cfg.StartingBalls != 7 || cfg.Seed != 11 {
		t.Errorf("top-level fields not decoded: %+v", cfg)
	}
	if cfg.FixedStep.Duration != 42*time.Millisecond {
		t.Errorf("FixedStep = %s, want 42ms", cfg.FixedStep.Duration)
	}
	if cfg.EndOnPointerLeave {
		t.Error("Expected EndOnPointerLeave to be overridden to false")
	}
	if cfg.Balls.SpeedMax != 400 {
		t.Errorf("SpeedMax = %d, want 400", cfg.Balls.SpeedMax)
	}
	// untouched keys keep their defaults
	if cfg.Balls.RadiusMin != 30 || cfg.EscalateEvery != 40 || cfg.Width != 800 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Width != Default().Width {
		t.Errorf("Load(\"\") should return defaults")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bounce.toml")
	cfg := validConfig()
	cfg.FixedStep.Duration = 42 * time.Millisecond

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BOUNCE_TITLE":                "from env",
		"BOUNCE_STARTING_BALLS":       "12",
		"BOUNCE_SEED":                 "-4",
		"BOUNCE_FIXED_STEP":           "20ms",
		"BOUNCE_END_ON_POINTER_LEAVE": "false",
		"BOUNCE_ESCALATE_EVERY":       "25",
	}
	cfg := Default()
	if err := ApplyEnv(&cfg, func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Title != "from env" || cfg.StartingBalls != 12 || cfg.Seed != -4 {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.FixedStep.Duration != 20*time.Millisecond || cfg.EndOnPointerLeave || cfg.EscalateEvery != 25 {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Width != 800 {
		t.Errorf("Width = %d, unset vars must not change fields", cfg.Width)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	tests := []string{"BOUNCE_STARTING_BALLS", "BOUNCE_SEED", "BOUNCE_FIXED_STEP", "BOUNCE_END_ON_POINTER_LEAVE"}
	for _, key := range tests {
		t.Run(key, func(t *testing.T) {
			cfg := Default()
			err := ApplyEnv(&cfg, func(k string) string {
				if k == key {
					return "garbage"
				}
				return ""
			})
			if err == nil {
				t.Errorf("Expected error for %s=garbage", key)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BOUNCE_TEST_ONLY_KEY=hello\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BOUNCE_TEST_ONLY_KEY", "")
	os.Unsetenv("BOUNCE_TEST_ONLY_KEY")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := os.Getenv("BOUNCE_TEST_ONLY_KEY"); got != "hello" {
		t.Errorf("BOUNCE_TEST_ONLY_KEY = %q, want hello", got)
	}
}

func TestFromSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bounce.toml")
	if err := os.WriteFile(path, []byte("title = \"file\"\nstarting_balls = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BOUNCE_STARTING_BALLS", "9")

	cfg, err := FromSources(path, false, filepath.Join(dir, "none.env"))
	if err != nil {
		t.Fatalf("FromSources() error = %v", err)
	}
	if cfg.Title != "file" || cfg.StartingBalls != 9 {
		t.Errorf("env should win over file: %+v", cfg)
	}

	if _, err := FromSources(filepath.Join(dir, "missing.toml"), false, ""); err == nil {
		t.Error("Expected error for a required missing file")
	}
	if _, err := FromSources(filepath.Join(dir, "missing.toml"), true, ""); err != nil {
		t.Errorf("optional missing file should be skipped, got %v", err)
	}
}

func TestTickCadence(t *testing.T) {
	tests := []struct {
		name     string
		fixed    time.Duration
		wantTick time.Duration
		wantTPS  int
	}{
		{"Measured", 0, 16 * time.Millisecond, 0},
		{"Fixed 42ms", 42 * time.Millisecond, 42 * time.Millisecond, 23},
		{"Fixed 10ms", 10 * time.Millisecond, 10 * time.Millisecond, 100},
		{"Longer than a second", 2 * time.Second, 2 * time.Second, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.FixedStep.Duration = tt.fixed
			if got := cfg.TickCadence(); got != tt.wantTick {
				t.Errorf("TickCadence() = %v, want %v", got, tt.wantTick)
			}
			if got := cfg.TPS(); got != tt.wantTPS {
				t.Errorf("TPS() = %d, want %d", got, tt.wantTPS)
			}
		})
	}
}
