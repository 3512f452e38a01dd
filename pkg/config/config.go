package config

import (
	"errors"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Config holds the settings of a formkit binary.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"formkit"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`

	// LogFile receives log records while a terminal UI owns stdout and stderr.
	LogFile string `env:"LOG_FILE"`

	// SchemaPath points to a YAML form schema; empty means the embedded default.
	SchemaPath         string `env:"FORM_SCHEMA"`
	ValidationDisabled bool   `env:"FORM_VALIDATION_DISABLED" envDefault:"false"`
}

// Load reads .env files into the process environment and parses Config.
//
// Without arguments the default .env is loaded if present; a missing file is
// not an error. Explicit files must exist. Variables already set in the
// environment take precedence over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic("failed to load required configuration: " + err.Error())
	}
	return cfg
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	err := validator.Apply(
		validator.OneOf("development", "staging", "production", "prod", "stage")("APP_ENV", c.Env),
		validator.Required("SERVICE_NAME", c.Service),
		validator.OneOf("text", "json")("LOG_FORMAT", c.LogFormat),
	)
	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}
