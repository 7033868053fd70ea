package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Config struct {
	Env          string `env:"ENVIRONMENT"`
	ServerPort   int    `env:"PORT" envDefault:"3001"`
	DatabaseDSN  string `env:"DATABASE_DSN"`
	DatabasePath string `env:"ANIME_DB_PATH" envDefault:"animetracker.sqlite"`

	CatalogBaseURL string        `env:"CATALOG_BASE_URL" envDefault:"https://api.jikan.moe/v4"`
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
	NotifyPlatform string        `env:"NOTIFY_PLATFORM" envDefault:"log"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	LLM struct {
		APIURL string `env:"LLM_API_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
		APIKey string `env:"LLM_API_KEY"`
		Model  string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	}

	Mailgun struct {
		Domain      string `env:"MAILGUN_DOMAIN"`
		APIKey      string `env:"MAILGUN_API_KEY"`
		SenderFrom  string `env:"MAILGUN_SENDER"`
		TimeoutSecs int    `env:"MAILGUN_TIMEOUT_SECS" envDefault:"10"`
	}

	log *zap.Logger
}

func NewConfig(lc fx.Lifecycle, log *zap.Logger) *Config {
	cfg := &Config{log: log}
	if err := env.Parse(cfg); err != nil {
		log.Sugar().Panicf("failed to parse config from environment: %v", err)
	}

	if cfg.NotifyPlatform == "email" && cfg.Mailgun.Domain == "" {
		cfg.log.Sugar().Info("NOTIFY_PLATFORM=email but Mailgun is not configured, falling back to log delivery")
		cfg.NotifyPlatform = "log"
	}

	return cfg
}
