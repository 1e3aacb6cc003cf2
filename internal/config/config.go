package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// DefaultBackendURL is used when BACKEND_URL is not set
const DefaultBackendURL = "http://localhost:8000"

// Config application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Backend BackendConfig `mapstructure:"backend"`
	Auth    AuthConfig    `mapstructure:"auth"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Host               string        `mapstructure:"host" env:"AIDA_SERVER_HOST" envDefault:"0.0.0.0"`
	Port               int           `mapstructure:"port" env:"AIDA_SERVER_PORT" envDefault:"8080"`
	Mode               string        `mapstructure:"mode" env:"AIDA_SERVER_MODE" envDefault:"release"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout" env:"AIDA_SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout" env:"AIDA_SERVER_WRITE_TIMEOUT" envDefault:"0s"`
	MaxRequestBodySize int           `mapstructure:"max_request_body_size" env:"AIDA_SERVER_MAX_REQUEST_BODY_SIZE" envDefault:"1"` // MB
}

// LogConfig logging settings
type LogConfig struct {
	Level     string `mapstructure:"level" env:"AIDA_LOG_LEVEL" envDefault:"info"`
	Format    string `mapstructure:"format" env:"AIDA_LOG_FORMAT" envDefault:"json"`
	Output    string `mapstructure:"output" env:"AIDA_LOG_OUTPUT" envDefault:"stdout"`
	FilePath  string `mapstructure:"file_path" env:"AIDA_LOG_FILE_PATH"`
	AddSource bool   `mapstructure:"add_source" env:"AIDA_LOG_ADD_SOURCE"`
}

// BackendConfig chat backend settings
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url" env:"BACKEND_URL" envDefault:"http://localhost:8000"`
	Timeout time.Duration `mapstructure:"timeout" env:"BACKEND_TIMEOUT" envDefault:"0s"` // 0 waits indefinitely
}

// AuthConfig auth provider settings. Both values are required for signup to
// work, but a missing value does not stop the server from starting.
type AuthConfig struct {
	URL     string `mapstructure:"url" env:"SUPABASE_URL"`
	AnonKey string `mapstructure:"anon_key" env:"SUPABASE_ANON_KEY"`
}

// CORSConfig cross-origin settings
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" env:"AIDA_CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Load reads the optional config file, then applies environment overrides
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("AIDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names shared with the browser client deployment
	_ = v.BindEnv("backend.base_url", "BACKEND_URL", "AIDA_BACKEND_BASE_URL")
	_ = v.BindEnv("backend.timeout", "BACKEND_TIMEOUT", "AIDA_BACKEND_TIMEOUT")
	_ = v.BindEnv("auth.url", "SUPABASE_URL", "AUTH_PROVIDER_URL", "AIDA_AUTH_URL")
	_ = v.BindEnv("auth.anon_key", "SUPABASE_ANON_KEY", "AUTH_PROVIDER_KEY", "AIDA_AUTH_ANON_KEY")

	if err := v.ReadInConfig(); err != nil {
		if !isMissingConfig(err, configPath) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Note: Don't log here, logger will be initialized after config is loaded

	return &cfg, nil
}

// FromEnv builds the configuration from environment variables only.
// Used where there is no config file, e.g. inside a Lambda container.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", time.Duration(0))
	v.SetDefault("server.max_request_body_size", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("backend.base_url", DefaultBackendURL)
	v.SetDefault("backend.timeout", time.Duration(0))

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// isMissingConfig reports whether err only means there is no config file.
// An explicitly requested file that does not exist is still an error.
func isMissingConfig(err error, configPath string) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return configPath == "" && errors.Is(err, os.ErrNotExist)
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server mode: %s, must be 'debug' or 'release'", c.Server.Mode)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid backend.base_url: %q", c.Backend.BaseURL)
	}

	if c.Backend.Timeout < 0 {
		return fmt.Errorf("backend.timeout must not be negative")
	}

	return nil
}

// GetServerAddr returns host:port
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetReadTimeout returns the read timeout
func (c *Config) GetReadTimeout() time.Duration {
	return c.Server.ReadTimeout
}

// GetWriteTimeout returns the write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Server.WriteTimeout
}

// AuthConfigured reports whether both auth provider settings are present
func (c *Config) AuthConfigured() bool {
	return c.Auth.URL != "" && c.Auth.AnonKey != ""
}
