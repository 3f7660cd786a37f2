package cliparse

import (
	"errors"
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"3318"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`

	// AI completion service. An empty API key disables the external call
	// entirely; poll creation then always uses the fallback option set.
	AIAPIKey  string        `env:"AI_API_KEY"`
	AIBaseURL string        `env:"AI_BASE_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	AIModel   string        `env:"AI_MODEL" envDefault:"gpt-4o-mini"`
	AITimeout time.Duration `env:"AI_TIMEOUT" envDefault:"10s"`
}

// ParseFlags builds the configuration from the environment, then lets CLI
// flags override individual values (useful for dev).
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("decide-server", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.AIAPIKey, "ai-key", cfg.AIAPIKey, "AI completion API key (prefer env)")
	fs.StringVar(&cfg.AIBaseURL, "ai-url", cfg.AIBaseURL, "AI completion endpoint URL")
	fs.StringVar(&cfg.AIModel, "ai-model", cfg.AIModel, "AI completion model")
	fs.DurationVar(&cfg.AITimeout, "ai-timeout", cfg.AITimeout, "AI completion timeout")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	return cfg, nil
}
