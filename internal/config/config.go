package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"roadrush/internal/audio"
	"roadrush/internal/game"
)

// FileName is looked up in the directory passed to Load.
const FileName = "roadrush.cfg.json"

// EnvPrefix namespaces environment overrides, e.g. ROADRUSH_SURFACE_WIDTH.
const EnvPrefix = "ROADRUSH"

var ErrInvalid = errors.New("invalid config")

const (
	FrontendDesktop  = "desktop"
	FrontendTerminal = "terminal"
)

type SurfaceConfig struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

type SpawnConfig struct {
	ObstacleChance   float64 `json:"obstacleChance" mapstructure:"obstacleChance"`
	OpponentChance   float64 `json:"opponentChance" mapstructure:"opponentChance"`
	OpponentMinSpeed float64 `json:"opponentMinSpeed" mapstructure:"opponentMinSpeed"`
	OpponentMaxSpeed float64 `json:"opponentMaxSpeed" mapstructure:"opponentMaxSpeed"`
	MaxObstacles     int     `json:"maxObstacles" mapstructure:"maxObstacles"`
	MaxOpponents     int     `json:"maxOpponents" mapstructure:"maxOpponents"`
}

type AudioConfig struct {
	Enabled     bool    `json:"enabled" mapstructure:"enabled"`
	MusicVolume float64 `json:"musicVolume" mapstructure:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume" mapstructure:"sfxVolume"`
}

type TerminalConfig struct {
	FrameMillis   int `json:"frameMillis" mapstructure:"frameMillis"`
	KeyHoldFrames int `json:"keyHoldFrames" mapstructure:"keyHoldFrames"`
}

type WindowConfig struct {
	Title string  `json:"title" mapstructure:"title"`
	Scale float64 `json:"scale" mapstructure:"scale"`
}

// Config is the typed view of every setting.
type Config struct {
	LogLevel string         `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string         `json:"logFile" mapstructure:"logFile"`
	Frontend string         `json:"frontend" mapstructure:"frontend"`
	Seed     uint64         `json:"seed" mapstructure:"seed"`
	Surface  SurfaceConfig  `json:"surface" mapstructure:"surface"`
	Spawn    SpawnConfig    `json:"spawn" mapstructure:"spawn"`
	Audio    AudioConfig    `json:"audio" mapstructure:"audio"`
	Terminal TerminalConfig `json:"terminal" mapstructure:"terminal"`
	Window   WindowConfig   `json:"window" mapstructure:"window"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFile", "roadrush.log")
	viper.SetDefault("frontend", FrontendDesktop)
	viper.SetDefault("seed", 0)

	viper.SetDefault("surface.width", game.DefaultSurfaceWidth)
	viper.SetDefault("surface.height", game.DefaultSurfaceHeight)

	viper.SetDefault("spawn.obstacleChance", game.ObstacleChance)
	viper.SetDefault("spawn.opponentChance", game.OpponentChance)
	viper.SetDefault("spawn.opponentMinSpeed", game.OpponentMinSpeed)
	viper.SetDefault("spawn.opponentMaxSpeed", game.OpponentMaxSpeed)
	viper.SetDefault("spawn.maxObstacles", game.MaxObstacles)
	viper.SetDefault("spawn.maxOpponents", game.MaxOpponents)

	opts := audio.DefaultOptions()
	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.musicVolume", opts.MusicVolume)
	viper.SetDefault("audio.sfxVolume", opts.SFXVolume)

	viper.SetDefault("terminal.frameMillis", 16)
	viper.SetDefault("terminal.keyHoldFrames", 8)

	viper.SetDefault("window.title", "Road Rush")
	viper.SetDefault("window.scale", 1.5)
}

// Load sets defaults, reads the optional config file from configDir and
// applies ROADRUSH_* environment overrides. A missing file is not an error.
func Load(configDir string) (*Config, error) {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configDir != "" {
		viper.SetConfigName(FileName)
		viper.AddConfigPath(configDir)
		viper.SetConfigType("json")

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch c.Frontend {
	case FrontendDesktop, FrontendTerminal:
	default:
		return fmt.Errorf("%w: frontend %q", ErrInvalid, c.Frontend)
	}
	if c.Surface.Width < game.PlayerWidth || c.Surface.Height < game.PlayerBottomGap {
		return fmt.Errorf("%w: surface %vx%v too small", ErrInvalid, c.Surface.Width, c.Surface.Height)
	}
	if c.Spawn.ObstacleChance < 0 || c.Spawn.ObstacleChance > 1 ||
		c.Spawn.OpponentChance < 0 || c.Spawn.OpponentChance > 1 {
		return fmt.Errorf("%w: spawn chances must lie in [0,1]", ErrInvalid)
	}
	if c.Spawn.OpponentMinSpeed > c.Spawn.OpponentMaxSpeed {
		return fmt.Errorf("%w: opponent speed range %v..%v", ErrInvalid, c.Spawn.OpponentMinSpeed, c.Spawn.OpponentMaxSpeed)
	}
	if c.Terminal.FrameMillis <= 0 {
		return fmt.Errorf("%w: terminal.frameMillis must be positive", ErrInvalid)
	}
	if c.Terminal.KeyHoldFrames <= 0 {
		return fmt.Errorf("%w: terminal.keyHoldFrames must be positive", ErrInvalid)
	}
	return nil
}

// Settings converts the config into simulation tunables.
func (c *Config) Settings() game.Settings {
	return game.Settings{
		SurfaceWidth:     c.Surface.Width,
		SurfaceHeight:    c.Surface.Height,
		ObstacleChance:   c.Spawn.ObstacleChance,
		OpponentChance:   c.Spawn.OpponentChance,
		OpponentMinSpeed: c.Spawn.OpponentMinSpeed,
		OpponentMaxSpeed: c.Spawn.OpponentMaxSpeed,
		MaxObstacles:     c.Spawn.MaxObstacles,
		MaxOpponents:     c.Spawn.MaxOpponents,
		Seed:             c.Seed,
	}
}

func (c *Config) AudioOptions() audio.Options {
	return audio.Options{
		MusicVolume: c.Audio.MusicVolume,
		SFXVolume:   c.Audio.SFXVolume,
		Seed:        c.Seed,
	}.Clamp()
}
