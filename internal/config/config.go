package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider string `yaml:"provider"` // yahoo, rest or static
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
		Days     int    `yaml:"days"`
	} `yaml:"data_source"`
	Prediction struct {
		Symbol    string `yaml:"symbol"`
		Horizon   int    `yaml:"horizon"`
		SMAPeriod int    `yaml:"sma_period"`
	} `yaml:"prediction"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Proxy string `yaml:"proxy"`
}

// Default returns the configuration used for keys absent from the file and environment.
func Default() *Config {
	cfg := &Config{}
	cfg.DataSource.Provider = "yahoo"
	cfg.DataSource.Days = 365
	cfg.Prediction.Symbol = "AAPL"
	cfg.Prediction.Horizon = 30
	cfg.Prediction.SMAPeriod = 20
	cfg.Server.Addr = ":8080"
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "text"
	return cfg
}

// Load reads config from a YAML file over the defaults, then applies .env and
// environment variable overrides. A missing config file is not an error. Keys
// present in the file keep their value even when it is zero.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env never overrides variables already set in the process environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("TRENDCAST_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("TRENDCAST_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("TRENDCAST_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("TRENDCAST_SYMBOL"); v != "" {
		cfg.Prediction.Symbol = v
	}
	if v := os.Getenv("TRENDCAST_HORIZON"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse TRENDCAST_HORIZON: %w", err)
		}
		cfg.Prediction.Horizon = n
	}
	if v := os.Getenv("TRENDCAST_REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("TRENDCAST_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values. The prediction horizon is
// left to the session, which rejects it with *model.InvalidHorizonError.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo", "static":
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	default:
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	if c.DataSource.Days < 2 {
		return fmt.Errorf("data_source.days must be at least 2")
	}
	if c.Prediction.SMAPeriod <= 0 {
		return fmt.Errorf("prediction.sma_period must be positive")
	}
	return nil
}
