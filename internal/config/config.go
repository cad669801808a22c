package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	OpenWeather OpenWeatherConfig
	Server      ServerConfig
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

type OpenWeatherConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	BaseURL       string        `mapstructure:"base_url"`
	LookupTimeout time.Duration `mapstructure:"lookup_timeout"`
	SearchTimeout time.Duration `mapstructure:"search_timeout"`
}

type ServerConfig struct {
	Mode     string `mapstructure:"mode"`
	HTTPAddr string `mapstructure:"http_addr"`
}

const (
	ModeStdio = "stdio"
	ModeHTTP  = "http"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/weather-server/")

	v.AutomaticEnv()

	v.SetDefault("app.name", "weather-server")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("openweather.base_url", "http://api.openweathermap.org")
	v.SetDefault("openweather.lookup_timeout", 10*time.Second)
	v.SetDefault("openweather.search_timeout", 5*time.Second)
	v.SetDefault("server.mode", ModeStdio)
	v.SetDefault("server.http_addr", ":8080")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if apiKey := os.Getenv("API_KEY"); apiKey != "" {
		v.Set("openweather.api_key", apiKey)
	}

	if apiKey := os.Getenv("OPENWEATHER_API_KEY"); apiKey != "" {
		v.Set("openweather.api_key", apiKey)
	}

	if baseURL := os.Getenv("OPENWEATHER_BASE_URL"); baseURL != "" {
		v.Set("openweather.base_url", baseURL)
	}

	if mode := os.Getenv("SERVER_MODE"); mode != "" {
		v.Set("server.mode", mode)
	}

	if addr := os.Getenv("SERVER_HTTP_ADDR"); addr != "" {
		v.Set("server.http_addr", addr)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		v.Set("app.log_level", level)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.OpenWeather.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable is required")
	}

	if cfg.OpenWeather.BaseURL == "" {
		return fmt.Errorf("OpenWeather base URL cannot be empty")
	}

	if cfg.OpenWeather.LookupTimeout <= 0 || cfg.OpenWeather.SearchTimeout <= 0 {
		return fmt.Errorf("request timeouts must be positive")
	}

	if cfg.Server.Mode != ModeStdio && cfg.Server.Mode != ModeHTTP {
		return fmt.Errorf("server mode must be %q or %q, got %q", ModeStdio, ModeHTTP, cfg.Server.Mode)
	}

	return nil
}
