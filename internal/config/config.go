package config

import (
	"github.com/caarlos0/env/v11"

	"stormy/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library;
// nested structs are parsed with the prefix given by their envPrefix tag.
// See the configs package for defaults. Use Load to construct a Config.
type Config struct {
	Env string `env:"ENV" envDefault:"dev"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	Psql  configs.Postgres `envPrefix:"PSQL_"`
	Redis configs.Redis    `envPrefix:"REDIS_"`

	YouTube   configs.YouTube   `envPrefix:"YOUTUBE_"`
	Twitch    configs.Twitch    `envPrefix:"TWITCH_"`
	TikTok    configs.TikTok    `envPrefix:"TIKTOK_"`
	Instagram configs.Instagram `envPrefix:"INSTAGRAM_"`
	Substack  configs.Substack  `envPrefix:"SUBSTACK_"`

	Search configs.Search `envPrefix:"SEARCH_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their defaults when no variable is set; absent
// platform credentials are not an error.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
