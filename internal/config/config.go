package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string
	SeedFile string

	// Scheduler tunables.
	DefaultQuestionCount      int
	MaxConsecutiveSameTag     int
	KeepAliveQuota            float64
	ConsecutiveErrorThreshold int

	// AI tutor settings. Empty API key disables the tutor (fallback text is used).
	TutorAPIKey    string
	TutorBaseURL   string
	TutorModel     string
	TutorMaxTokens int

	// Background explanation prefetch.
	TutorWorkerCount int
	TutorQueueSize   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:     envOr("ADDR", ":8080"),
		DBPath:   envOr("DB_PATH", "gmat_tutor.db"),
		LogLevel: envOr("LOG_LEVEL", "INFO"),
		SeedFile: envOr("SEED_FILE", "og_questions.json"),

		DefaultQuestionCount:      envIntOr("DEFAULT_QUESTION_COUNT", 20),
		MaxConsecutiveSameTag:     envIntOr("MAX_CONSECUTIVE_SAME_TAG", 3),
		KeepAliveQuota:            envFloatOr("KEEP_ALIVE_QUOTA", 0.10),
		ConsecutiveErrorThreshold: envIntOr("CONSECUTIVE_ERROR_THRESHOLD", 3),

		TutorAPIKey:    envOr("OPENAI_API_KEY", os.Getenv("ARK_API_KEY")),
		TutorBaseURL:   envOr("OPENAI_BASE_URL", ""),
		TutorModel:     envOr("TUTOR_MODEL", "gpt-4o-mini"),
		TutorMaxTokens: envIntOr("TUTOR_MAX_TOKENS", 1500),

		TutorWorkerCount: envIntOr("TUTOR_WORKER_COUNT", 2),
		TutorQueueSize:   envIntOr("TUTOR_QUEUE_SIZE", 32),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}
