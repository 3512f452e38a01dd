// Package config loads formkit binary settings from the environment.
//
// Load first reads .env files with github.com/joho/godotenv, then parses the
// environment into Config with github.com/caarlos0/env/v11 and validates the
// enumerated values with the validator package.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//
// Recognised variables: APP_ENV, SERVICE_NAME, LOG_LEVEL, LOG_FORMAT,
// FORM_SCHEMA and FORM_VALIDATION_DISABLED.
//
// Errors wrap ErrLoadingEnvFile, ErrParsingConfig or ErrInvalidConfig and can
// be matched with errors.Is.
package config
