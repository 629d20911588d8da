package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool   `env:"TEST_MODE" envDefault:"false"`
	Port       uint16 `env:"PORT" envDefault:"8080"`

	Secret           string        `env:"SECRET,required"`
	BcryptHasherCost int           `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	SessionTokenTTL  time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"24h"`

	PasswordResetValidDuration time.Duration `env:"PASSWORD_RESET_VALID_DURATION" envDefault:"10m"`

	PostgresqlURL string `env:"POSTGRESQL_URL,required"`
	RedisURL      string `env:"REDIS_URL,required"`

	AwsRegion                     string  `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey                  string  `env:"AWS_ACCESS_KEY"`
	AwsSecretKey                  string  `env:"AWS_SECRET_KEY"`
	AwsEmailSender                string  `env:"AWS_EMAIL_SENDER"`
	AwsEmailPasswordResetTemplate string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE" envDefault:"password-reset"`
	AwsEmailPasswordResetBaseUrl  url.URL `env:"AWS_EMAIL_PASSWORD_RESET_BASE_URL"`

	SentryDsn *url.URL `env:"SENTRY_DSN"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	return cfg, nil
}
