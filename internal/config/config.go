package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Static StaticConfig `yaml:"static"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig selects the registry backend. Driver is "memory" or "sqlite";
// DSN only applies to sqlite and defaults to ":memory:" so state still
// resets on restart.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type StaticConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Store: StoreConfig{
			Driver: "memory",
			DSN:    ":memory:",
		},
		Static: StaticConfig{
			Dir: "static",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("ACTIVITIES_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("ACTIVITIES_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("ACTIVITIES_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ACTIVITIES_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if driver := os.Getenv("ACTIVITIES_STORE_DRIVER"); driver != "" {
		cfg.Store.Driver = driver
	}
	if dsn := os.Getenv("ACTIVITIES_SQLITE_DSN"); dsn != "" {
		cfg.Store.DSN = dsn
	}
	if dir := os.Getenv("ACTIVITIES_STATIC_DIR"); dir != "" {
		cfg.Static.Dir = dir
	}
	if level := os.Getenv("ACTIVITIES_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Store.Driver != "memory" && cfg.Store.Driver != "sqlite" {
		return Config{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
