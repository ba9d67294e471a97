package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
	CORSOrigin    string        `yaml:"cors_origin"`
}

// LoadConfig builds the configuration from environment variables (a local
// .env file is honored when present) and, if path is non-empty, overrides
// from a YAML file.
func LoadConfig(path string) (*Config, error) {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:          getEnv("INTERVYOU_ADDR", ":8080"),
		JWTSecret:     getEnv("INTERVYOU_JWT_SECRET", "change-me-in-env"),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("INTERVYOU_DATABASE_PATH", "intervyou.db"),
		TokenDuration: 7 * 24 * time.Hour,
		CORSOrigin:    getEnv("INTERVYOU_CORS_ORIGIN", "*"),
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.TokenDuration <= 0 {
		return fmt.Errorf("token_duration must be positive")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
