// File: utils/config_test.go
package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 370.0, cfg.BounceSplitX)
	assert.Equal(t, 225.0, cfg.BounceSplitY)
	assert.Equal(t, Period, cfg.TickPeriod)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.TickPeriod = 0 }},
		{"negative duration", func(c *Config) { c.MaxDuration = -time.Second }},
		{"zero court", func(c *Config) { c.CourtWidth = 0 }},
		{"zero wall", func(c *Config) { c.WallThickness = 0 }},
		{"zero ball", func(c *Config) { c.BallHeight = 0 }},
		{"zero speed", func(c *Config) { c.BallSpeed = 0 }},
		{"negative speed", func(c *Config) { c.BallSpeed = -1 }},
		{"paddle too tall", func(c *Config) { c.PaddleHeight = c.CourtHeight }},
		{"paddle inside wall", func(c *Config) { c.PaddleInset = c.WallThickness }},
		{"negative winning score", func(c *Config) { c.WinningScore = -1 }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.toml")
	content := `
tick_period = "20ms"
court_width = 640.0
court_height = 480.0
ball_speed = 0.5
winning_score = 3
log_format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 20*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, 640.0, cfg.CourtWidth)
	assert.Equal(t, 480.0, cfg.CourtHeight)
	assert.Equal(t, 0.5, cfg.BallSpeed)
	assert.Equal(t, 3, cfg.WinningScore)
	assert.Equal(t, "json", cfg.LogFormat)
	// untouched keys keep their defaults
	assert.Equal(t, PaddleHeight, cfg.PaddleHeight)
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.toml")
	require.NoError(t, os.WriteFile(path, []byte("ball_colour = \"red\"\n"), 0o644))

	_, err := LoadConfig(path, filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("PONG_WINNING_SCORE=7\nPONG_RANDOM_SERVE=true\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("PONG_WINNING_SCORE")
		os.Unsetenv("PONG_RANDOM_SERVE")
	})

	cfg, err := LoadConfig("", envPath)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.WinningScore)
	assert.True(t, cfg.RandomServe)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PONG_TICK_PERIOD":    "5ms",
		"PONG_BALL_SPEED":     "0.75",
		"PONG_BOUNCE_SPLIT_X": "400",
		"PONG_SEED":           "42",
		"PONG_LOG_LEVEL":      "debug",
		"PONG_PADDLE_HEIGHT":  "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(&cfg, lookup))

	assert.Equal(t, 5*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, 0.75, cfg.BallSpeed)
	assert.Equal(t, 400.0, cfg.BounceSplitX)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, PaddleHeight, cfg.PaddleHeight, "empty values are ignored")
}

func TestApplyEnv_BadValue(t *testing.T) {
	testCases := map[string]string{
		"PONG_TICK_PERIOD":   "soon",
		"PONG_BALL_SPEED":    "fast",
		"PONG_WINNING_SCORE": "ten",
		"PONG_RANDOM_SERVE":  "maybe",
		"PONG_SEED":          "-1",
	}
	for key, value := range testCases {
		t.Run(key, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ApplyEnv(&cfg, func(k string) (string, bool) {
				if k == key {
					return value, true
				}
				return "", false
			})
			assert.Error(t, err)
		})
	}
}
