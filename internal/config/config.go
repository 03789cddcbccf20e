package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Backend BackendConfig `mapstructure:"backend"`
	Webhook WebhookConfig `mapstructure:"webhook"`
	DB      DBConfig      `mapstructure:"db"`
	Sim     SimConfig     `mapstructure:"sim"`
	Upload  UploadConfig  `mapstructure:"upload"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// BackendConfig selects which backend variant serves the API:
// simulated, webhook or hybrid.
type BackendConfig struct {
	Mode string `mapstructure:"mode"`
}

type WebhookConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type SimConfig struct {
	Seed int64 `mapstructure:"seed"`
}

type UploadConfig struct {
	Dir      string `mapstructure:"dir"`
	MaxBytes int64  `mapstructure:"maxBytes"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.schemapilot/")
	v.AddConfigPath("/etc/schemapilot/")

	// Enable environment variable override with SCHEMAPILOT_ prefix
	v.SetEnvPrefix("SCHEMAPILOT")
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file; a missing file falls back to defaults and env vars
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("backend.mode", "simulated")
	v.SetDefault("webhook.timeout", 30*time.Second)
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("sim.seed", 42)
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.maxBytes", 16<<20)
}
