// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configurable match parameters.
type Config struct {
	// Timing
	TickPeriod  time.Duration `toml:"tick_period" json:"tickPeriod"`   // Time between match steps
	MaxDuration time.Duration `toml:"max_duration" json:"maxDuration"` // Headless run limit, 0 means until game over

	// Court
	CourtWidth    float64 `toml:"court_width" json:"courtWidth"`
	CourtHeight   float64 `toml:"court_height" json:"courtHeight"`
	WallThickness float64 `toml:"wall_thickness" json:"wallThickness"`
	BounceSplitX  float64 `toml:"bounce_split_x" json:"bounceSplitX"` // x threshold of the bounce table
	BounceSplitY  float64 `toml:"bounce_split_y" json:"bounceSplitY"` // y threshold of the bounce table

	// Ball
	BallWidth  float64 `toml:"ball_width" json:"ballWidth"`
	BallHeight float64 `toml:"ball_height" json:"ballHeight"`
	BallSpeed  float64 `toml:"ball_speed" json:"ballSpeed"` // Larger is slower: step = elapsed / speed / 10

	// Paddles
	PaddleWidth  float64 `toml:"paddle_width" json:"paddleWidth"`
	PaddleHeight float64 `toml:"paddle_height" json:"paddleHeight"`
	PaddleInset  float64 `toml:"paddle_inset" json:"paddleInset"` // Paddle center distance from the court edge

	// Match
	WinningScore int    `toml:"winning_score" json:"winningScore"` // 0 disables the win condition
	RandomServe  bool   `toml:"random_serve" json:"randomServe"`
	Seed         uint64 `toml:"seed" json:"seed"` // 0 seeds from the clock

	// Logging
	LogLevel  string `toml:"log_level" json:"logLevel"`
	LogFormat string `toml:"log_format" json:"logFormat"` // "text" or "json"
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		TickPeriod:  Period,
		MaxDuration: 0,

		CourtWidth:    CourtWidth,
		CourtHeight:   CourtHeight,
		WallThickness: WallThickness,
		BounceSplitX:  BounceSplitX,
		BounceSplitY:  BounceSplitY,

		BallWidth:  BallSize,
		BallHeight: BallSize,
		BallSpeed:  BallSpeed,

		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		PaddleInset:  PaddleInset,

		WinningScore: WinningScore,
		RandomServe:  false,
		Seed:         0,

		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadConfig decodes the TOML file at path over the defaults, loads the given
// dotenv files (".env" when none is given, missing files are skipped) and then
// applies PONG_* environment overrides. An empty path skips the TOML step.
func LoadConfig(path string, envFiles ...string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("%w: unknown keys in %s: %v", ErrInvalidConfig, path, undecoded)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load env file %s: %w", file, err)
		}
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overrides cfg fields from PONG_* variables found through lookup.
// Empty values are ignored.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	durations := map[string]*time.Duration{
		"TICK_PERIOD":  &cfg.TickPeriod,
		"MAX_DURATION": &cfg.MaxDuration,
	}
	floats := map[string]*float64{
		"COURT_WIDTH":    &cfg.CourtWidth,
		"COURT_HEIGHT":   &cfg.CourtHeight,
		"WALL_THICKNESS": &cfg.WallThickness,
		"BOUNCE_SPLIT_X": &cfg.BounceSplitX,
		"BOUNCE_SPLIT_Y": &cfg.BounceSplitY,
		"BALL_WIDTH":     &cfg.BallWidth,
		"BALL_HEIGHT":    &cfg.BallHeight,
		"BALL_SPEED":     &cfg.BallSpeed,
		"PADDLE_WIDTH":   &cfg.PaddleWidth,
		"PADDLE_HEIGHT":  &cfg.PaddleHeight,
		"PADDLE_INSET":   &cfg.PaddleInset,
	}
	strs := map[string]*string{
		"LOG_LEVEL":  &cfg.LogLevel,
		"LOG_FORMAT": &cfg.LogFormat,
	}

	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	for key, dst := range durations {
		if v, ok := get(key); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("env %s%s: %w", EnvPrefix, key, err)
			}
			*dst = d
		}
	}
	for key, dst := range floats {
		if v, ok := get(key); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("env %s%s: %w", EnvPrefix, key, err)
			}
			*dst = f
		}
	}
	for key, dst := range strs {
		if v, ok := get(key); ok {
			*dst = v
		}
	}
	if v, ok := get("WINNING_SCORE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env %sWINNING_SCORE: %w", EnvPrefix, err)
		}
		cfg.WinningScore = n
	}
	if v, ok := get("RANDOM_SERVE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("env %sRANDOM_SERVE: %w", EnvPrefix, err)
		}
		cfg.RandomServe = b
	}
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("env %sSEED: %w", EnvPrefix, err)
		}
		cfg.Seed = n
	}
	return nil
}

// Validate checks the values a match cannot run without.
func (c Config) Validate() error {
	var problems []string

	if c.TickPeriod <= 0 {
		problems = append(problems, "tick_period must be positive")
	}
	if c.MaxDuration < 0 {
		problems = append(problems, "max_duration must not be negative")
	}
	if c.CourtWidth <= 0 || c.CourtHeight <= 0 {
		problems = append(problems, "court dimensions must be positive")
	}
	if c.WallThickness <= 0 {
		problems = append(problems, "wall_thickness must be positive")
	}
	if c.BallWidth <= 0 || c.BallHeight <= 0 {
		problems = append(problems, "ball dimensions must be positive")
	}
	if c.BallSpeed <= 0 {
		problems = append(problems, "ball_speed must be positive")
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		problems = append(problems, "paddle dimensions must be positive")
	}
	if c.PaddleHeight > c.CourtHeight-2*c.WallThickness {
		problems = append(problems, "paddle_height does not fit between the walls")
	}
	if c.PaddleInset <= c.WallThickness || c.PaddleInset >= c.CourtWidth/2 {
		problems = append(problems, "paddle_inset must place paddles inside the court")
	}
	if c.WinningScore < 0 {
		problems = append(problems, "winning_score must not be negative")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		problems = append(problems, fmt.Sprintf("unknown log_format %q", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
