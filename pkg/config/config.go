package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read at startup.
const (
	EnvURL      = "HOMEBRIDGE_URL"
	EnvUsername = "HOMEBRIDGE_USERNAME"
	EnvPassword = "HOMEBRIDGE_PASSWORD"
)

// Config holds the connection settings for the Homebridge UI API.
type Config struct {
	BaseURL  string
	Username string
	Password string
}

// MissingVarError indicates a required environment variable is absent or empty.
type MissingVarError struct {
	Var string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Var)
}

// Load resolves the configuration from the environment. If envFile is
// non-empty, the dotenv file at that path is loaded first; values already
// present in the environment take precedence over file values.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	cfg := Config{
		BaseURL:  strings.TrimSpace(os.Getenv(EnvURL)),
		Username: strings.TrimSpace(os.Getenv(EnvUsername)),
		Password: os.Getenv(EnvPassword),
	}

	switch {
	case cfg.BaseURL == "":
		return Config{}, &MissingVarError{Var: EnvURL}
	case cfg.Username == "":
		return Config{}, &MissingVarError{Var: EnvUsername}
	case cfg.Password == "":
		return Config{}, &MissingVarError{Var: EnvPassword}
	}

	return cfg, nil
}
