package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Catalog source selectors.
const (
	CatalogMemory   = "memory"
	CatalogPostgres = "postgres"
)

// Config holds all configuration for the service, loaded from config.yaml
// with environment variable overrides (SERVER_PORT, DATABASE_URL, ...).
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// CatalogConfig selects where the shipping catalog is read from: the seeded
// in-memory dataset or Postgres.
type CatalogConfig struct {
	Source string `mapstructure:"source"`
}

// Load reads config.yaml from the working directory when present and applies
// env overrides on top of the defaults. A missing file is not an error; the
// defaults run the service against the in-memory catalog.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.Catalog.Source == CatalogPostgres && strings.TrimSpace(config.Database.URL) == "" {
		return nil, fmt.Errorf("catalog.source is %q but database.url is not set", CatalogPostgres)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "")
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("database.url", "")

	viper.SetDefault("catalog.source", CatalogMemory)
}
