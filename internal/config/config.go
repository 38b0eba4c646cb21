package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Events  EventsConfig
	Tracing TracingConfig
	Client  ClientConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	EventLogFilePath   string
	CorsAllowedOrigins string
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

type SessionConfig struct {
	TTL             time.Duration
	CleanupInterval time.Duration
	ReplyLatency    time.Duration
	ViewCacheTTL    time.Duration
}

type EventsConfig struct {
	Topic    string
	NatsURL  string // empty disables the NATS publisher
	RedisURL string // empty disables cross-instance fan-out
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

type ClientConfig struct {
	APIBaseURL string
	Timeout    time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			EventLogFilePath:   getEnv("EVENT_LOG_FILE_PATH", "logs/session_events.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Session: SessionConfig{
			TTL:             getEnvAsDuration("SESSION_TTL", time.Hour),
			CleanupInterval: getEnvAsDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute),
			ReplyLatency:    getEnvAsDuration("COPILOT_REPLY_LATENCY", time.Second),
			ViewCacheTTL:    getEnvAsDuration("VIEW_CACHE_TTL", 5*time.Minute),
		},
		Events: EventsConfig{
			Topic:    getEnv("SESSION_EVENTS_TOPIC", "SESSION_EVENTS"),
			NatsURL:  getEnv("NATS_URL", ""),
			RedisURL: getEnv("REDIS_URL", ""),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "deal-insights-be"),
		},
		Client: ClientConfig{
			APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8000/api"),
			Timeout:    getEnvAsDuration("API_TIMEOUT", 10*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go duration strings ("1500ms", "2m") or a bare
// integer number of milliseconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if value, err := time.ParseDuration(strValue); err == nil && value >= 0 {
		return value
	}
	if ms := getEnvAsInt(key, -1); ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
