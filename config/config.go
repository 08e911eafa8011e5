// Package config loads runtime settings from the environment and command-line flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "PARALLAX_"

var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of a run
// Defaults mirror the parameter package; env overrides defaults and flags override env
type Config struct {
	FPS          int     `env:"FPS" envDefault:"60"`
	ContentPath  string  `env:"CONTENT"`
	AssetDir     string  `env:"ASSET_DIR"`
	Mute         bool    `env:"MUTE"`
	Debug        bool    `env:"DEBUG"`
	ClampOpacity bool    `env:"CLAMP_OPACITY" envDefault:"true"`
	WheelStep    float64 `env:"WHEEL_STEP" envDefault:"48"`
	CellPixels   float64 `env:"CELL_PIXELS" envDefault:"16"`
	CameraZ      float64 `env:"CAMERA_Z" envDefault:"10"`
	FOV          float64 `env:"FOV" envDefault:"75"`
}

// FromEnv parses PARALLAX_* variables over the defaults
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RegisterFlags binds fs to cfg, using the current values as flag defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.FPS, "fps", c.FPS, "frame rate")
	fs.StringVar(&c.ContentPath, "content", c.ContentPath, "TOML page descriptor (built-in page when empty)")
	fs.StringVar(&c.AssetDir, "assets", c.AssetDir, "base directory for relative image paths")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable the regime transition tone")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write logs to logs/parallax.log")
	fs.BoolVar(&c.ClampOpacity, "clamp-opacity", c.ClampOpacity, "clamp layer opacity to [0,1]")
	fs.Float64Var(&c.WheelStep, "wheel-step", c.WheelStep, "scroll pixels per wheel notch or line key")
	fs.Float64Var(&c.CellPixels, "cell-pixels", c.CellPixels, "virtual pixel height of a terminal row")
	fs.Float64Var(&c.CameraZ, "camera-z", c.CameraZ, "camera distance from the scene")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "vertical field of view in degrees")
}

// Load parses env, then args, then validates
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg.RegisterFlags(fs)
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the frame loop or projection cannot run with
func (c Config) Validate() error {
	switch {
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	case c.WheelStep <= 0:
		return fmt.Errorf("%w: wheel step %g", ErrInvalid, c.WheelStep)
	case c.CellPixels <= 0:
		return fmt.Errorf("%w: cell pixels %g", ErrInvalid, c.CellPixels)
	case c.CameraZ <= 0:
		return fmt.Errorf("%w: camera z %g", ErrInvalid, c.CameraZ)
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("%w: fov %g", ErrInvalid, c.FOV)
	}
	return nil
}

// FrameInterval is the ticker period for FPS
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
