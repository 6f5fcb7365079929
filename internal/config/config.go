package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	TMDB     TMDBConfig     `mapstructure:"tmdb"`
	Fanart   FanartConfig   `mapstructure:"fanart"`
	Metadata MetadataConfig `mapstructure:"metadata"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// TMDBConfig holds primary metadata provider configuration.
type TMDBConfig struct {
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
	ImageBaseURL string `mapstructure:"image_base_url"`
	Timeout      int    `mapstructure:"timeout"` // seconds
	Locale       string `mapstructure:"locale"`
}

// FanartConfig holds fanart.tv art provider configuration. An empty
// API key disables the provider entirely.
type FanartConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// MetadataConfig holds the per-artifact generation switches.
type MetadataConfig struct {
	SeriesMetadata  bool `mapstructure:"series_metadata"`
	EpisodeMetadata bool `mapstructure:"episode_metadata"`
	SeriesImages    bool `mapstructure:"series_images"`
	SeasonImages    bool `mapstructure:"season_images"`
	EpisodeImages   bool `mapstructure:"episode_images"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Path   string `mapstructure:"path"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		TMDB: TMDBConfig{
			APIKey:       EmbeddedTMDBKey,
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			Timeout:      30,
			Locale:       "es",
		},
		Fanart: FanartConfig{
			APIKey:  EmbeddedFanartKey,
			BaseURL: "http://webservice.fanart.tv/v3",
			Timeout: 30,
		},
		Metadata: MetadataConfig{
			SeriesMetadata:  true,
			EpisodeMetadata: true,
			SeriesImages:    true,
			SeasonImages:    true,
			EpisodeImages:   true,
		},
		Database: DatabaseConfig{
			Path: "./data/sidecarr.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from file and environment variables.
// Priority: environment variables > config file > defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.sidecarr")
	}

	v.SetEnvPrefix("SIDECARR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults + env vars
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("tmdb.api_key", EmbeddedTMDBKey)
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.image_base_url", "https://image.tmdb.org/t/p")
	v.SetDefault("tmdb.timeout", 30)
	v.SetDefault("tmdb.locale", "es")

	v.SetDefault("fanart.api_key", EmbeddedFanartKey)
	v.SetDefault("fanart.base_url", "http://webservice.fanart.tv/v3")
	v.SetDefault("fanart.timeout", 30)

	v.SetDefault("metadata.series_metadata", true)
	v.SetDefault("metadata.episode_metadata", true)
	v.SetDefault("metadata.series_images", true)
	v.SetDefault("metadata.season_images", true)
	v.SetDefault("metadata.episode_images", true)

	v.SetDefault("database.path", "./data/sidecarr.db")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.path", "")
}
