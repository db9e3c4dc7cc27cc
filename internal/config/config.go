package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage backend types. Callers pick one at configuration time; backends
// are never mixed within a deployment.
const (
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// DefaultRegion is used when no region is specified.
const DefaultRegion = "us"

// Config holds all configuration for the application
type Config struct {
	Scraper  ScraperConfig           `mapstructure:"scraper"`
	Storage  StorageConfig           `mapstructure:"storage"`
	Redis    RedisConfig             `mapstructure:"redis"`
	Postgres PostgresConfig          `mapstructure:"postgres"`
	Regions  map[string]RegionConfig `mapstructure:"regions"`
}

// ScraperConfig holds pricing site configuration
type ScraperConfig struct {
	ListURL              string `mapstructure:"list_url"`
	MainURL              string `mapstructure:"main_url"`
	Timeout              int    `mapstructure:"timeout"`
	MaxRetries           int    `mapstructure:"max_retries"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	UserAgent            string `mapstructure:"user_agent"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Type    string `mapstructure:"type"`
	DataDir string `mapstructure:"data_dir"`
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// PostgresConfig holds database configuration
type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// RegionConfig is one pricing region: display name plus the site code the
// listing page uses to select it.
type RegionConfig struct {
	Name string `mapstructure:"name"`
	Site string `mapstructure:"site"`
}

// Load loads configuration from YAML file with environment variable overrides.
// A missing config.yaml is fine; defaults and env vars cover everything.
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

	if len(config.Regions) == 0 {
		config.Regions = DefaultRegions()
	}

	return &config, nil
}

// DefaultRegions returns the five pricing regions offered by the site's
// region selector.
func DefaultRegions() map[string]RegionConfig {
	return map[string]RegionConfig{
		"us":      {Name: "US (US1, US3, US5)", Site: "us"},
		"us1-fed": {Name: "US1-FED", Site: "us1-fed"},
		"eu1":     {Name: "EU1", Site: "eu1"},
		"ap1":     {Name: "AP1", Site: "ap1"},
		"ap2":     {Name: "AP2", Site: "ap2"},
	}
}

func setDefaults() {
	viper.SetDefault("scraper.list_url", "https://www.datadoghq.com/pricing/list/")
	viper.SetDefault("scraper.main_url", "https://www.datadoghq.com/pricing/")
	viper.SetDefault("scraper.timeout", 30)
	viper.SetDefault("scraper.max_retries", 3)
	viper.SetDefault("scraper.max_requests_per_second", 2)
	viper.SetDefault("scraper.user_agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	viper.SetDefault("storage.type", StorageFile)
	viper.SetDefault("storage.data_dir", "./data")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.database", 0)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.name", "pricehound")
	viper.SetDefault("postgres.user", "pricehound_user")
	viper.SetDefault("postgres.password", "pricehound_pass")
}
