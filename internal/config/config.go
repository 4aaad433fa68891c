package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, storage and birthday queries.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel is the minimum level of log messages written to stderr
	LogLevel string `env:"LOG_LEVEL" env-default:"warn" yaml:"logLevel"`

	// Storage contains address book persistence settings
	Storage struct {
		// Path is the file the address book is loaded from and saved to
		Path string `env:"STORAGE_PATH" env-default:"address_book.msgpack" yaml:"path"`
	} `yaml:"storage"`

	// Birthdays contains settings of the upcoming birthdays query
	Birthdays struct {
		// Days is the number of days, starting today, searched for birthdays
		Days int `env:"BIRTHDAYS_DAYS" env-default:"7" yaml:"days"`
	} `yaml:"birthdays"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// When the file does not exist, only environment variables and defaults are used.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
