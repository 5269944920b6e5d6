// README: Config loader with env defaults for HTTP, LLM, DB, Redis, and maps settings.
package config

import (
	"os"
	"strconv"
)

// RateLimitConfig bounds generations per client inside a fixed window.
// A Limit of 0 or less disables the limiter.
type RateLimitConfig struct {
	Limit     int
	WindowSec int
}

// LLMConfig selects the chat provider and its sampling behaviour. API keys
// may be empty here; a missing key surfaces when a generation is attempted,
// not at startup.
type LLMConfig struct {
	Provider    string
	Model       string
	Temperature float64
	OpenAIKey   string
	GeminiKey   string
}

// Config carries everything the process reads from the environment. DB,
// Redis, and Maps are optional: an empty value disables that module.
type Config struct {
	HTTP struct {
		Addr string
	}
	LLM LLMConfig
	DB  struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	RateLimit RateLimitConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TABIPLAN_HTTP_ADDR", ":8080")
	cfg.LLM.Provider = envOrDefault("TABIPLAN_LLM_PROVIDER", "openai")
	cfg.LLM.Model = envOrDefault("TABIPLAN_LLM_MODEL", "")
	cfg.LLM.Temperature = envOrDefaultFloat("TABIPLAN_LLM_TEMPERATURE", 0.3)
	cfg.LLM.OpenAIKey = envOrDefault("OPENAI_API_KEY", "")
	cfg.LLM.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	cfg.DB.DSN = envOrDefault("TABIPLAN_DB_DSN", "")
	cfg.Redis.Addr = envOrDefault("TABIPLAN_REDIS_ADDR", "")
	cfg.Maps.APIKey = envOrDefault("MAPS_API_KEY", "")
	cfg.RateLimit.Limit = envOrDefaultInt("TABIPLAN_RATE_LIMIT", 10)
	cfg.RateLimit.WindowSec = envOrDefaultInt("TABIPLAN_RATE_WINDOW_SEC", 60)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
