// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup. All values come from
// TEDDY_-prefixed environment variables; the OpenAI key also honors the
// conventional OPENAI_API_KEY.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// UpstreamBaseURL is the base URL of the external finance-record and
	// history-persistence API.
	UpstreamBaseURL string

	OpenAIAPIKey string
	OpenAIURL    string
	OpenAIModel  string

	// HTTPTimeout bounds every external call (record store and completion
	// provider alike).
	HTTPTimeout time.Duration

	// CacheMaxSize caps the session cache before eviction kicks in.
	CacheMaxSize int
}

// Load reads configuration from the environment, applying defaults. The
// OpenAI API key is the only required value.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TEDDY")
	v.AutomaticEnv()

	v.SetDefault("port", 8000)
	v.SetDefault("upstream_base_url", "https://teddybackend-mivk.onrender.com/api/v1")
	v.SetDefault("openai_url", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("http_timeout", "30s")
	v.SetDefault("cache_max_size", 100)
	if err := v.BindEnv("openai_api_key", "TEDDY_OPENAI_API_KEY", "OPENAI_API_KEY"); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:            v.GetInt("port"),
		UpstreamBaseURL: v.GetString("upstream_base_url"),
		OpenAIAPIKey:    v.GetString("openai_api_key"),
		OpenAIURL:       v.GetString("openai_url"),
		OpenAIModel:     v.GetString("openai_model"),
		HTTPTimeout:     v.GetDuration("http_timeout"),
		CacheMaxSize:    v.GetInt("cache_max_size"),
	}

	if cfg.OpenAIAPIKey == "" {
		return Config{}, errors.New("OPENAI_API_KEY is required in environment")
	}
	if !looksLikeAPIKey(cfg.OpenAIAPIKey) {
		slog.Warn("OpenAI API key does not look like an sk- key; completion calls may fail")
	}

	return cfg, nil
}

// looksLikeAPIKey is a basic sanity check: OpenAI keys start with "sk-" and
// run at least 51 characters.
func looksLikeAPIKey(key string) bool {
	return strings.HasPrefix(key, "sk-") && len(key) >= 51
}
