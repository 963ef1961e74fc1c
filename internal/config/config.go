package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by ATELIER_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("ATELIER_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

// ArtistsDir is the root directory holding one subdirectory per artist.
func ArtistsDir() string {
	return getOr("ARTISTS_DIR", "artists")
}

// TemplatesDir holds custom artist templates (*.json, *.yaml).
func TemplatesDir() string {
	return getOr("TEMPLATES_DIR", "artist_templates")
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8000
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func AnthropicAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func CerebrasAPIKey() string {
	return os.Getenv("CEREBRAS_API_KEY")
}

// LLMProvider returns the configured LLM provider.
// Defaults to "gemini" if not set.
// Valid values: openai, anthropic, gemini, cerebras, mock
func LLMProvider() string {
	return getOr("LLM_PROVIDER", "gemini")
}

// LLMAPIKey returns the API key for the configured LLM provider.
func LLMAPIKey() string {
	return APIKeyFor(LLMProvider())
}

// APIKeyFor returns the API key for provider.
func APIKeyFor(provider string) string {
	switch provider {
	case "anthropic":
		return AnthropicAPIKey()
	case "openai":
		return OpenAIAPIKey()
	case "cerebras":
		return CerebrasAPIKey()
	case "mock":
		return ""
	default:
		return GeminiAPIKey()
	}
}

// LLMModel overrides the provider's default model when set.
func LLMModel() string {
	return os.Getenv("LLM_MODEL")
}

// LLMBaseURL points the provider client at a different endpoint.
func LLMBaseURL() string {
	return os.Getenv("LLM_BASE_URL")
}

// LLMTimeout bounds a single text generation call.
// Defaults to 60s if not set.
func LLMTimeout() time.Duration {
	return durationOr("LLM_TIMEOUT", 60*time.Second)
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	return getOr("LOG_LEVEL", "info")
}

// LogDevelopment switches to human readable console logs when LOG_FORMAT is
// "console". The default is JSON.
func LogDevelopment() bool {
	return getOr("LOG_FORMAT", "json") == "console"
}

// APIKey is the bearer token required on /api routes. Empty disables auth.
func APIKey() string {
	return os.Getenv("API_KEY")
}

// NATSURL enables event forwarding to NATS when set.
func NATSURL() string {
	return os.Getenv("NATS_URL")
}

// GalleryCacheTTL returns how long a rendered gallery is reused.
// Defaults to 30s if not set.
func GalleryCacheTTL() time.Duration {
	return durationOr("GALLERY_CACHE_TTL", 30*time.Second)
}

// ExchangeInterval schedules automatic exchange rounds in the server.
// Zero, the default, disables them.
func ExchangeInterval() time.Duration {
	return durationOr("EXCHANGE_INTERVAL", 0)
}

// RandomSeed pins drift and pairing randomness. Zero means time based.
func RandomSeed() int64 {
	seed, err := strconv.ParseInt(os.Getenv("RANDOM_SEED"), 10, 64)
	if err != nil {
		return 0
	}
	return seed
}

func getOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
