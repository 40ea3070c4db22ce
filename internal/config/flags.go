package config

import (
	"flag"
	"time"
)

// Flags are the command-line overrides shared by every host.
type Flags struct {
	Path        string
	EnvFile     string
	WriteConfig string
	Debug       bool

	Title string
	Balls int
	Seed  int64
	Fixed time.Duration

	fs *flag.FlagSet
}

func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "bounce.toml", "TOML config file")
	fs.StringVar(&f.EnvFile, "env", ".env", "dotenv file with BOUNCE_* overrides")
	fs.StringVar(&f.WriteConfig, "write-config", "", "write the effective config to this file and exit")
	fs.BoolVar(&f.Debug, "debug", false, "write logs to logs/bounce.log")
	fs.StringVar(&f.Title, "title", "", "surface title")
	fs.IntVar(&f.Balls, "balls", 0, "starting ball count")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed (0 = clock)")
	fs.DurationVar(&f.Fixed, "fixed", 0, "fixed time step instead of measured frame time")
	return f
}

// Load resolves file, environment and flags, in increasing priority.
// The default config path may be missing; an explicit one may not.
func (f *Flags) Load() (Config, error) {
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	cfg, err := FromSources(f.Path, !set["config"], f.EnvFile)
	if err != nil {
		return cfg, err
	}

	if set["title"] {
		cfg.Title = f.Title
	}
	if set["balls"] {
		cfg.StartingBalls = f.Balls
	}
	if set["seed"] {
		cfg.Seed = f.Seed
	}
	if set["fixed"] {
		cfg.FixedStep.Duration = f.Fixed
	}
	return cfg, nil
}
