package shell

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"gridsnake/game/types"
)

// Config holds host configuration.
type Config struct {
	Difficulty   types.Difficulty `env:"SNAKE_DIFFICULTY"     envDefault:"medium"`
	Wrap         bool             `env:"SNAKE_WRAP"`
	Seed         uint64           `env:"SNAKE_SEED"`
	Autopilot    bool             `env:"SNAKE_AUTOPILOT"`
	WindowWidth  int              `env:"SNAKE_WINDOW_WIDTH"   envDefault:"1280"`
	WindowHeight int              `env:"SNAKE_WINDOW_HEIGHT"  envDefault:"800"`
	TargetFPS    int              `env:"SNAKE_FPS"            envDefault:"60"`
	HistorySize  int              `env:"SNAKE_HISTORY"        envDefault:"50"`
}

// ParseConfig loads env defaults and then lets flags override them.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.TextVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "starting difficulty: easy, medium or hard")
	fs.BoolVar(&cfg.Wrap, "wrap", cfg.Wrap, "wrap around the board edges instead of dying on walls")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed (0 derives one from the clock)")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "let the Q-learning agent steer")
	fs.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width in pixels")
	fs.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height in pixels")
	fs.IntVar(&cfg.TargetFPS, "fps", cfg.TargetFPS, "target frame rate")
	fs.IntVar(&cfg.HistorySize, "history", cfg.HistorySize, "number of finished sessions kept for stats")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the window or the stats panel cannot use.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TargetFPS <= 0 {
		return errors.New("fps must be positive")
	}
	if c.HistorySize < 0 {
		return errors.New("history size must not be negative")
	}
	return nil
}
