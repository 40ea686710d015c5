// Package config loads runtime settings for the client. Sources are layered;
// later sources override earlier ones:
//
//	defaults -> .env / environment -> JSON file (-c/-config) -> flags
package config

import "time"

// Config holds runtime settings for the client.
//
// RequestTimeout bounds every HTTP request; zero keeps requests unbounded,
// matching the historical behavior of the app.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	KeyFilePath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.DatabasePath = "authkit.db"
	c.KeyFilePath = "authkit.key"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config from all sources in precedence order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
