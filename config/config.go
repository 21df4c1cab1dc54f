package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration. Values come from config.yaml when the
// file exists, with environment variables taking precedence over both the
// file and the built-in defaults.
type Config struct {
	Listen        string `yaml:"listen"`
	DatabasePath  string `yaml:"databasePath"`
	SigningSecret string `yaml:"signingSecret"` // base64; empty disables auth
}

// Load reads the configuration from path (pass "" for ./config.yaml). A
// missing file is fine; a malformed one is not.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Listen:       ":8090",
		DatabasePath: "timescan.db",
	}

	if path == "" {
		path = "config.yaml"
	}
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.Listen = getEnv("LISTEN", cfg.Listen)
	cfg.DatabasePath = getEnv("DB_PATH", cfg.DatabasePath)
	cfg.SigningSecret = getEnv("SIGNING_SECRET", cfg.SigningSecret)
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
