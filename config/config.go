package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the process reads from the environment.
// SupabaseURL and SupabaseKey are required; startup must not proceed
// without them.
type Config struct {
	SupabaseURL   string `envconfig:"SUPABASE_URL" required:"true"`
	SupabaseKey   string `envconfig:"SUPABASE_KEY" required:"true"`
	Port          string `envconfig:"PORT" default:"8080"`
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"http://localhost:3000"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
