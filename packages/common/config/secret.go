package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type secrets struct {
	DatabaseURL string `validate:"required"`

	JWTKey []byte `validate:"required,min=16"`

	CacheURI      string `validate:"required"`
	CachePassword string `validate:"exists"`
	CacheDB       int    `validate:"min=0"`

	MailerEmail         string `validate:"required,email"`
	MailerEmailPassword string `validate:"required"`

	// Sentry is disabled if empty
	SentryDSN string `validate:"exists"`
}

var Secret secrets

func godotenvLoad() error {
	return godotenv.Load()
}

func getEnv(key string) string {
	env, _ := os.LookupEnv(key)

	configLogger.Trace("Loaded: "+key, nil)

	return env
}

var requiredEnvVars = []string{
	"DATABASE_URL",
	"JWT_KEY",
	"CACHE_URI",
	"MAILER_EMAIL",
	"MAILER_EMAIL_PASSWORD",
}

// Reads secrets from environment variables and validates them.
func LoadSecrets() (*secrets, error) {
	configLogger.Info("Loading environment variables...", nil)

	// Check is all required env variables exists
	for _, variable := range requiredEnvVars {
		if _, exists := os.LookupEnv(variable); !exists {
			return nil, fmt.Errorf("missing required env variable: %s", variable)
		}
	}

	s := new(secrets)

	if raw := getEnv("CACHE_DB"); raw != "" {
		cacheDB, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CACHE_DB env variable: %w", err)
		}
		s.CacheDB = cacheDB
	}

	s.DatabaseURL = getEnv("DATABASE_URL")
	s.JWTKey = []byte(getEnv("JWT_KEY"))
	s.CacheURI = getEnv("CACHE_URI")
	s.CachePassword = getEnv("CACHE_PASSWORD")
	s.MailerEmail = getEnv("MAILER_EMAIL")
	s.MailerEmailPassword = getEnv("MAILER_EMAIL_PASSWORD")
	s.SentryDSN = getEnv("SENTRY_DSN")

	configLogger.Info("Loading environment variables: OK", nil)

	configLogger.Info("Validating secrets...", nil)

	if err := newValidator().Struct(s); err != nil {
		return nil, err
	}

	configLogger.Info("Validating secrets: OK", nil)

	return s, nil
}
