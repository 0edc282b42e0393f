package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds all server settings, sourced from the environment.
// GeocodeAPIKey may be empty: location resolution then fails soft and
// moods are stored without a label.
type Config struct {
	Port             string        `env:"PORT,default=8080"`
	AWSRegion        string        `env:"AWS_REGION,default=us-east-1"`
	MoodsTable       string        `env:"MOODS_TABLE,default=Moods"`
	GeocodeBaseURL   string        `env:"GEOCODE_BASE_URL,default=https://api.opencagedata.com/geocode/v1/json"`
	GeocodeAPIKey    string        `env:"GEOCODE_API_KEY"`
	GeocodeLanguage  string        `env:"GEOCODE_LANGUAGE,default=en"`
	HostReadyTimeout time.Duration `env:"HOST_READY_TIMEOUT,default=10s"`
}

// Load reads an optional .env file and decodes the environment into a Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return &cfg, nil
}
