package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadrush/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "roadrush.log", cfg.LogFile)
	assert.Equal(t, FrontendDesktop, cfg.Frontend)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 400.0, cfg.Surface.Width)
	assert.Equal(t, 600.0, cfg.Surface.Height)
	assert.Equal(t, 0.01, cfg.Spawn.ObstacleChance)
	assert.Equal(t, 0.005, cfg.Spawn.OpponentChance)
	assert.Equal(t, 2.0, cfg.Spawn.OpponentMinSpeed)
	assert.Equal(t, 5.0, cfg.Spawn.OpponentMaxSpeed)
	assert.Equal(t, 32, cfg.Spawn.MaxObstacles)
	assert.Equal(t, 16, cfg.Spawn.MaxOpponents)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 16, cfg.Terminal.FrameMillis)
	assert.Equal(t, 8, cfg.Terminal.KeyHoldFrames)
	assert.Equal(t, "Road Rush", cfg.Window.Title)

	assert.Equal(t, game.DefaultSettings(), cfg.Settings())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"frontend": "terminal",
		"seed": 99,
		"spawn": { "obstacleChance": 0.05, "maxOpponents": 4 },
		"audio": { "enabled": false }
	}`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, 0.05, cfg.Spawn.ObstacleChance)
	assert.Equal(t, 4, cfg.Spawn.MaxOpponents)
	// Untouched siblings keep their defaults.
	assert.Equal(t, 0.005, cfg.Spawn.OpponentChance)
	assert.False(t, cfg.Audio.Enabled)

	s := cfg.Settings()
	assert.Equal(t, uint64(99), s.Seed)
	assert.Equal(t, 0.05, s.ObstacleChance)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, FrontendDesktop, cfg.Frontend)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	_, err := Load(writeConfig(t, `{"logLevel": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("ROADRUSH_SURFACE_WIDTH", "480")
	t.Setenv("ROADRUSH_FRONTEND", "terminal")

	cfg, err := Load(writeConfig(t, `{"frontend": "desktop"}`))
	require.NoError(t, err)
	assert.Equal(t, 480.0, cfg.Surface.Width)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.Equal(t, "terminal", viper.GetString("frontend"))
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown frontend", `{"frontend": "vr"}`},
		{"tiny surface", `{"surface": {"width": 10}}`},
		{"chance above one", `{"spawn": {"opponentChance": 1.5}}`},
		{"inverted speeds", `{"spawn": {"opponentMinSpeed": 6}}`},
		{"zero frame time", `{"terminal": {"frameMillis": 0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestAudioOptions_Clamped(t *testing.T) {
	cfg := &Config{Seed: 3, Audio: AudioConfig{MusicVolume: 2, SFXVolume: -1}}
	o := cfg.AudioOptions()
	assert.Equal(t, 1.0, o.MusicVolume)
	assert.Equal(t, 0.0, o.SFXVolume)
	assert.Equal(t, uint64(3), o.Seed)
}
