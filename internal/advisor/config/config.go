package config

import (
	"stock-advisor-api/pkg/config"
)

// Polygon holds the configuration for the Polygon.io market data API.
type Polygon struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// NewsAPI holds the configuration for the NewsAPI.org search API.
type NewsAPI struct {
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	PageSize            int    `mapstructure:"page_size"`
}

// OpenAI holds the configuration for the OpenAI chat completion API.
type OpenAI struct {
	BaseURL             string  `mapstructure:"base_url"`
	APIKey              string  `mapstructure:"api_key"`
	Model               string  `mapstructure:"model"`
	MaxTokens           int     `mapstructure:"max_tokens"`
	Temperature         float64 `mapstructure:"temperature"`
	MaxRequestPerMinute int     `mapstructure:"max_request_per_minute"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// AI selects which AI provider backs the analysis endpoint.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// News selects which provider backs the news endpoint.
type News struct {
	Provider string `mapstructure:"provider"`
	RSSURL   string `mapstructure:"rss_url"`
}

// Config holds the full configuration for the advisor service.
type Config struct {
	App     config.App    `mapstructure:"app"`
	Logger  config.Logger `mapstructure:"logger"`
	API     config.API    `mapstructure:"api"`
	Polygon Polygon       `mapstructure:"polygon"`
	NewsAPI NewsAPI       `mapstructure:"newsapi"`
	OpenAI  OpenAI        `mapstructure:"openai"`
	Gemini  Gemini        `mapstructure:"gemini"`
	AI      AI            `mapstructure:"ai"`
	News    News          `mapstructure:"news"`
}

// Load loads the advisor configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Polygon.BaseURL == "" {
		cfg.Polygon.BaseURL = "https://api.polygon.io"
	}
	if cfg.Polygon.MaxRequestPerMinute <= 0 {
		cfg.Polygon.MaxRequestPerMinute = 60
	}
	if cfg.NewsAPI.BaseURL == "" {
		cfg.NewsAPI.BaseURL = "https://newsapi.org"
	}
	if cfg.NewsAPI.MaxRequestPerMinute <= 0 {
		cfg.NewsAPI.MaxRequestPerMinute = 60
	}
	if cfg.NewsAPI.PageSize <= 0 {
		cfg.NewsAPI.PageSize = 10
	}
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = "https://api.openai.com/v1/chat/completions"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-3.5-turbo"
	}
	if cfg.OpenAI.MaxTokens <= 0 {
		cfg.OpenAI.MaxTokens = 800
	}
	if cfg.OpenAI.Temperature <= 0 {
		cfg.OpenAI.Temperature = 0.7
	}
	if cfg.OpenAI.MaxRequestPerMinute <= 0 {
		cfg.OpenAI.MaxRequestPerMinute = 60
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.0-flash"
	}
	if cfg.Gemini.MaxRequestPerMinute <= 0 {
		cfg.Gemini.MaxRequestPerMinute = 60
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "openai"
	}
	if cfg.News.Provider == "" {
		cfg.News.Provider = "newsapi"
	}
	if cfg.News.RSSURL == "" {
		cfg.News.RSSURL = "https://news.google.com/rss"
	}
}
