package console

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the console host configuration, loaded from .env / environment.
type Config struct {
	DataPath    string  `env:"CONSOLE_DATA_PATH" envDefault:"data/console.json"`
	HistoryPath string  `env:"CONSOLE_HISTORY_PATH" envDefault:"data/history.txt"`
	LogPath     string  `env:"CONSOLE_LOG_PATH" envDefault:"data/console.log"`
	Prompt      string  `env:"CONSOLE_PROMPT" envDefault:"> "`
	Debug       bool    `env:"CONSOLE_DEBUG" envDefault:"false"`
	FloodRPS    float64 `env:"CONSOLE_FLOOD_RPS" envDefault:"0"`
	FloodBurst  int     `env:"CONSOLE_FLOOD_BURST" envDefault:"5"`
}

// NewConfig loads .env when present, then the environment.
func NewConfig() (*Config, error) {
	// No .env is fine; system environment still applies.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse console config: %w", err)
	}
	return cfg, nil
}
