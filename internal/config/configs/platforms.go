package configs

import "time"

// YouTube configures the Data API v3 adapter. An empty APIKey disables it.
type YouTube struct {
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"BASE_URL" envDefault:"https://www.googleapis.com/youtube/v3"`
}

// Twitch configures the Helix adapter. Both ClientID and ClientSecret are
// needed to mint app tokens; without them the adapter is disabled.
type Twitch struct {
	ClientID     string        `env:"CLIENT_ID"`
	ClientSecret string        `env:"CLIENT_SECRET"`
	TokenURL     string        `env:"TOKEN_URL" envDefault:"https://id.twitch.tv/oauth2/token"`
	BaseURL      string        `env:"BASE_URL" envDefault:"https://api.twitch.tv/helix"`
	ChannelDelay time.Duration `env:"CHANNEL_DELAY" envDefault:"100ms"`
}

type TikTok struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://www.tiktok.com"`
}

type Instagram struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://www.instagram.com"`
	AppID   string `env:"APP_ID" envDefault:"936619743392459"`
}

// Substack configures the scraping adapter. PublicationURL is a format
// string receiving the publication subdomain.
type Substack struct {
	BaseURL        string `env:"BASE_URL" envDefault:"https://substack.com"`
	SearchURL      string `env:"SEARCH_URL" envDefault:"https://html.duckduckgo.com/html/"`
	PublicationURL string `env:"PUBLICATION_URL" envDefault:"https://%s.substack.com"`
}

// Search tunes the aggregator.
type Search struct {
	// MaxResultsPerPlatform is passed to every adapter.
	MaxResultsPerPlatform int `env:"MAX_RESULTS_PER_PLATFORM" envDefault:"20"`
	// ResultLimit truncates the aggregated, sorted response.
	ResultLimit int `env:"RESULT_LIMIT" envDefault:"20"`
	// MockDatasetSize is the number of generated fallback creators.
	MockDatasetSize int `env:"MOCK_DATASET_SIZE" envDefault:"100"`
}
