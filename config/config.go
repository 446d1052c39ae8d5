// Package config loads the service settings from built-in defaults and the
// environment. An environment variable overrides the setting with the same
// name in lower case, so YOUTUBE_API_KEY sets youtube_api_key.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	APIPort   int    `koanf:"api_port" validate:"min=1,max=65535"`
	LogLevel  string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	YoutubeAPIKey string  `koanf:"youtube_api_key"`
	YoutubeRPS    float64 `koanf:"youtube_rps" validate:"gt=0"`
	OpenAIAPIKey  string  `koanf:"openai_api_key"`
	OpenAIModel   string  `koanf:"openai_model"`
	OpenAIBaseURL string  `koanf:"openai_base_url" validate:"omitempty,url"`

	TextTimeout      time.Duration `koanf:"text_timeout" validate:"gt=0"`
	SearchTimeout    time.Duration `koanf:"search_timeout" validate:"gt=0"`
	ProbeTimeout     time.Duration `koanf:"probe_timeout" validate:"gt=0"`
	VideoParallelism int           `koanf:"video_parallelism" validate:"min=1,max=7"`

	PostgresHost     string `koanf:"postgres_host"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresUser     string `koanf:"postgres_user"`
	PostgresPassword string `koanf:"postgres_password"`
	PostgresDB       string `koanf:"postgres_db"`

	WeaviateHost   string `koanf:"weaviate_host"`
	WeaviateAPIKey string `koanf:"weaviate_api_key"`

	RedisAddr      string        `koanf:"redis_addr"`
	SearchCacheTTL time.Duration `koanf:"search_cache_ttl" validate:"gt=0"`

	AffiliateTag string `koanf:"affiliate_tag"`
}

func defaultConfig() *Config {
	return &Config{
		APIPort:          8080,
		LogLevel:         "info",
		LogFormat:        "text",
		YoutubeRPS:       5,
		OpenAIModel:      "gpt-4o-mini",
		TextTimeout:      8 * time.Second,
		SearchTimeout:    4 * time.Second,
		ProbeTimeout:     2 * time.Second,
		VideoParallelism: 3,
		PostgresPort:     "5432",
		PostgresUser:     "hobbyplan",
		PostgresDB:       "hobbyplan",
		SearchCacheTTL:   24 * time.Hour,
	}
}

// Load layers the environment over the defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func (c *Config) PostgresEnabled() bool {
	return c.PostgresHost != ""
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB)
}
