// Package config provides configuration management for the race report API.
package config

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Data     DataConfig     `mapstructure:"data" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host                string  `mapstructure:"host" validate:"required"`
	Port                int     `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSeconds  int     `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSeconds int     `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	CORSEnabled         bool    `mapstructure:"cors_enabled"`
	RateLimitPerSecond  float64 `mapstructure:"rate_limit_per_second" validate:"gte=0"`
	RateLimitBurst      int     `mapstructure:"rate_limit_burst" validate:"gte=0"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host           string `mapstructure:"host" validate:"required"`
	Port           int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name           string `mapstructure:"name" validate:"required"`
	User           string `mapstructure:"user" validate:"required"`
	Password       string `mapstructure:"password" validate:"required"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"required,gt=0"`
}

// DataConfig names the startup ingestion inputs
type DataConfig struct {
	Abbreviations string `mapstructure:"abbreviations" validate:"required"`
	StartLog      string `mapstructure:"start_log" validate:"required"`
	EndLog        string `mapstructure:"end_log" validate:"required"`
}

// CacheConfig represents the query result cache configuration
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds" validate:"required,gt=0"`
}

// MetricsConfig represents metrics configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
