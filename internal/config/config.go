// Package config centralises all environment configuration for the API.
// It should be imported only by `cmd/server` (and test code). Business-logic
// layers receive an already-built Config instance via dependency-injection.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Supported LLM providers.
const (
	ProviderGroq   = "groq"
	ProviderVertex = "vertex"
	ProviderDummy  = "dummy"
)

// Config holds every runtime option the server needs.
// Keep it flat and simple—prefer primitive types over embedding structs.
type Config struct {
	// Network
	Port string

	// Upstream services
	CatalogBaseURL string
	GroqAPIURL     string
	GroqAPIKey     string
	GroqModel      string

	// LLM provider selection: groq | vertex | dummy
	LLMProvider string

	// Vertex AI (only required when LLMProvider == "vertex")
	ProjectID string
	Location  string

	// Server tuning
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	UpstreamTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// Load parses the environment (and an optional .env file) into Config.
// It terminates the process on missing critical variables so
// mis-configurations fail fast instead of failing per-request.
func Load() Config {
	// godotenv.Load() is a no-op if .env doesn't exist—safe in production.
	_ = godotenv.Load()

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		CatalogBaseURL:  getEnv("DUMMYJSON_BASE_URL", "https://dummyjson.com"),
		GroqAPIURL:      getEnv("GROQ_API_URL", "https://api.groq.com/openai/v1"),
		GroqModel:       getEnv("GROQ_MODEL", "llama-3.1-8b-instant"),
		LLMProvider:     getEnv("LLM_PROVIDER", ProviderGroq),
		ReadTimeout:     getDuration("READ_TIMEOUT_SEC", 5),
		WriteTimeout:    getDuration("WRITE_TIMEOUT_SEC", 30),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT_SEC", 10),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
	}

	// Provider credentials are required at startup, never discovered missing
	// mid-request.
	switch cfg.LLMProvider {
	case ProviderGroq:
		cfg.GroqAPIKey = must("GROQ_API_KEY")
	case ProviderVertex:
		cfg.ProjectID = must("GCP_PROJECT_ID")
		cfg.Location = must("GCP_LOCATION")
	case ProviderDummy:
		// no credentials; local development only
	default:
		log.Fatalf("unsupported LLM_PROVIDER %q (want groq, vertex or dummy)", cfg.LLMProvider)
	}

	return cfg
}

// must fetches a required env var or terminates the program.
func must(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("env var %s is required", key)
	}
	return val
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			return time.Duration(sec) * time.Second
		}
		log.Printf("invalid %s=%q; using default %ds", key, v, defaultSec)
	}
	return time.Duration(defaultSec) * time.Second
}
