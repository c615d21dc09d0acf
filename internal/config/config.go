package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Upload     UploadConfig     `mapstructure:"upload"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port" default:"8080"`
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

type UploadConfig struct {
	// MaxSizeBytes caps one multipart upload. Scanned reports run a
	// few MB; anything past this is rejected before processing.
	MaxSizeBytes int64 `mapstructure:"max_size_bytes" split_words:"true" default:"10485760"`
}

type ExtractionConfig struct {
	CacheTTL      time.Duration `mapstructure:"cache_ttl" split_words:"true" default:"15m"`
	CacheCleanup  time.Duration `mapstructure:"cache_cleanup" split_words:"true" default:"1h"`
	CacheDisabled bool          `mapstructure:"cache_disabled" split_words:"true" default:"false"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" default:"50"`
	Burst int     `mapstructure:"burst" default:"100"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" default:"info"`
	Pretty bool   `mapstructure:"pretty" default:"true"`
}

// LoadConfig reads config.yaml when present; a missing file falls
// back to environment variables under the EXTRACT_ prefix, so
// container deployments need no file at all.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		var config Config
		if err := envconfig.Process("extract", &config); err != nil {
			return nil, fmt.Errorf("failed to process environment config: %w", err)
		}
		return &config, nil
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("upload.max_size_bytes", 10<<20)
	viper.SetDefault("extraction.cache_ttl", "15m")
	viper.SetDefault("extraction.cache_cleanup", "1h")
	viper.SetDefault("extraction.cache_disabled", false)
	viper.SetDefault("rate_limit.rps", 50.0)
	viper.SetDefault("rate_limit.burst", 100)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)
}
