package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "BOOKGW"

// Config is the whole application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Upstream UpstreamConfig `mapstructure:"upstream" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
}

// ServerConfig controls the inbound HTTP server.
type ServerConfig struct {
	Port               string        `mapstructure:"port" validate:"required,numeric"`
	RoutePrefix        string        `mapstructure:"route_prefix" validate:"omitempty,startswith=/"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout        time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins" validate:"min=1"`
}

// UpstreamConfig locates the best-sellers API and holds its access key.
type UpstreamConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	APIKey  string        `mapstructure:"api_key" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level       string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Encoding    string `mapstructure:"encoding" validate:"oneof=json console"`
	Development bool   `mapstructure:"development"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.route_prefix", "/apiv3")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("upstream.base_url", "https://api.nytimes.com/svc/books/v3")
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("upstream.timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")
	v.SetDefault("log.development", false)
}

// LoadConfig reads configuration from the file at path (or config.json /
// config.yaml in . and ./config when path is empty), then from BOOKGW_*
// environment variables, which take precedence. A missing config file is not
// an error; a missing api key is.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Server.RoutePrefix = strings.TrimRight(cfg.Server.RoutePrefix, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
