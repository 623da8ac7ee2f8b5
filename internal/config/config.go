// Package config provides configuration loading and validation.
package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Markets   MarketsConfig   `mapstructure:"markets"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	TUIMode     bool   `mapstructure:"-"` // Set at runtime, not from config file
}

// MarketsConfig holds the input file locations.
type MarketsConfig struct {
	PoolCachePath string `mapstructure:"pool_cache_path"`
	SnapshotPath  string `mapstructure:"snapshot_path"`
	BlacklistPath string `mapstructure:"blacklist_path"`
}

// PathsConfig holds path generation and simulation settings.
type PathsConfig struct {
	BaseToken  string  `mapstructure:"base_token"`
	Workers    int     `mapstructure:"workers"`
	AmountsIn  []int64 `mapstructure:"amounts_in"` // whole tokens of the base token
	TopResults int     `mapstructure:"top_results"`
}

// BaseTokenAddress returns the base token as common.Address.
func (c *PathsConfig) BaseTokenAddress() common.Address {
	return common.HexToAddress(c.BaseToken)
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables
	v.SetEnvPrefix("ARB")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "ARB_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "ARB_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "ARB_LOG_LEVEL", "LOG_LEVEL")

	// Markets
	v.BindEnv("markets.pool_cache_path", "ARB_POOL_CACHE", "POOL_CACHE")
	v.BindEnv("markets.snapshot_path", "ARB_SNAPSHOT", "SNAPSHOT")
	v.BindEnv("markets.blacklist_path", "ARB_BLACKLIST", "BLACKLIST")

	// Paths
	v.BindEnv("paths.base_token", "ARB_BASE_TOKEN", "BASE_TOKEN")
	v.BindEnv("paths.workers", "ARB_WORKERS")
	v.BindEnv("paths.top_results", "ARB_TOP_RESULTS")

	// Telemetry
	v.BindEnv("telemetry.enabled", "ARB_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "ARB_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.otlp_endpoint", "ARB_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "pathfinder")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	// Markets defaults
	v.SetDefault("markets.pool_cache_path", ".cached-pools.csv")

	// Paths defaults: WETH base token
	v.SetDefault("paths.base_token", "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	v.SetDefault("paths.workers", 4)
	v.SetDefault("paths.amounts_in", []int64{1})
	v.SetDefault("paths.top_results", 10)

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "pathfinder")
	v.SetDefault("telemetry.prometheus_port", 9090)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Markets.PoolCachePath == "" {
		return fmt.Errorf("markets.pool_cache_path is required")
	}
	if !common.IsHexAddress(c.Paths.BaseToken) {
		return fmt.Errorf("invalid paths.base_token: %s", c.Paths.BaseToken)
	}
	if c.Paths.Workers < 1 {
		return fmt.Errorf("paths.workers must be >= 1")
	}
	if len(c.Paths.AmountsIn) == 0 {
		return fmt.Errorf("paths.amounts_in cannot be empty")
	}
	for _, a := range c.Paths.AmountsIn {
		if a < 0 {
			return fmt.Errorf("paths.amounts_in cannot contain negative amounts")
		}
	}
	return nil
}
