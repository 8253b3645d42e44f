package utils

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// Config holds all service settings, parsed from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Google Sheets backend
	GoogleCredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE" envDefault:"credentials.json"`
	SpreadsheetID         string `env:"SPREADSHEET_ID"`
	SheetName             string `env:"SHEET_NAME" envDefault:"Sheet1"`

	// Force the in-memory fallback store, useful for local development.
	UseMemoryStore bool `env:"USE_MEMORY_STORE" envDefault:"false"`
}

// LoadConfig parses the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
