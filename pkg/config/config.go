package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Store backend kinds.
const (
	StoreBackendFile   = "file"
	StoreBackendRedis  = "redis"
	StoreBackendMemory = "memory"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Store     StoreConfig
	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Log       LogConfig
	Auth      AuthConfig
	Search    SearchConfig
	Assistant AssistantConfig
	Reports   ReportsConfig
}

// StoreConfig selects where the portal aggregate is persisted.
type StoreConfig struct {
	Backend string
	Path    string
	Key     string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AuthConfig configures the demo portal login. This is not a real credential
// system: every seeded student shares a single demo password, hashed with
// bcrypt at startup.
type AuthConfig struct {
	DemoPassword string
}

// SearchConfig tunes the global search overlay behaviour.
type SearchConfig struct {
	MinQueryLength int
	MaxResults     int
}

// AssistantConfig wires the generative AI features (chat, image analysis,
// audio transcription).
type AssistantConfig struct {
	Enabled     bool
	APIKey      string
	ChatModel   string
	VisionModel string
	MaxInline   int64
}

// ReportsConfig configures asynchronous progress-report PDF generation.
type ReportsConfig struct {
	Enabled           bool
	StorageDir        string
	SignedURLSecret   string
	SignedURLTTL      time.Duration
	CleanupInterval   time.Duration
	WorkerConcurrency int
	WorkerRetries     int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Store = StoreConfig{
		Backend: v.GetString("STORE_BACKEND"),
		Path:    v.GetString("STORE_PATH"),
		Key:     v.GetString("STORE_KEY"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Auth = AuthConfig{
		DemoPassword: v.GetString("AUTH_DEMO_PASSWORD"),
	}

	cfg.Search = SearchConfig{
		MinQueryLength: v.GetInt("SEARCH_MIN_QUERY_LENGTH"),
		MaxResults:     v.GetInt("SEARCH_MAX_RESULTS"),
	}

	maxInline := v.GetInt64("ASSISTANT_MAX_INLINE_BYTES")
	if maxInline <= 0 {
		maxInline = 4 * 1024 * 1024
	}
	cfg.Assistant = AssistantConfig{
		Enabled:     v.GetBool("ENABLE_ASSISTANT"),
		APIKey:      v.GetString("ASSISTANT_API_KEY"),
		ChatModel:   v.GetString("ASSISTANT_CHAT_MODEL"),
		VisionModel: v.GetString("ASSISTANT_VISION_MODEL"),
		MaxInline:   maxInline,
	}

	cfg.Reports = ReportsConfig{
		Enabled:           v.GetBool("ENABLE_REPORTS"),
		StorageDir:        v.GetString("REPORTS_STORAGE_DIR"),
		SignedURLSecret:   v.GetString("REPORTS_SIGNED_URL_SECRET"),
		SignedURLTTL:      parseDuration(v.GetString("REPORTS_SIGNED_URL_TTL"), 24*time.Hour),
		CleanupInterval:   parseDuration(v.GetString("REPORTS_CLEANUP_INTERVAL"), time.Hour),
		WorkerConcurrency: v.GetInt("REPORTS_WORKER_CONCURRENCY"),
		WorkerRetries:     v.GetInt("REPORTS_WORKER_RETRIES"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORE_BACKEND", StoreBackendFile)
	v.SetDefault("STORE_PATH", "./data/portal.json")
	v.SetDefault("STORE_KEY", "itunaSchoolDB")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("AUTH_DEMO_PASSWORD", "password123")

	v.SetDefault("SEARCH_MIN_QUERY_LENGTH", 2)
	v.SetDefault("SEARCH_MAX_RESULTS", 50)

	v.SetDefault("ENABLE_ASSISTANT", false)
	v.SetDefault("ASSISTANT_API_KEY", "")
	v.SetDefault("ASSISTANT_CHAT_MODEL", "gemini-2.5-flash-lite")
	v.SetDefault("ASSISTANT_VISION_MODEL", "gemini-2.5-flash")
	v.SetDefault("ASSISTANT_MAX_INLINE_BYTES", 4*1024*1024)

	v.SetDefault("ENABLE_REPORTS", false)
	v.SetDefault("REPORTS_STORAGE_DIR", "./exports")
	v.SetDefault("REPORTS_SIGNED_URL_SECRET", "dev_reports_secret")
	v.SetDefault("REPORTS_SIGNED_URL_TTL", "24h")
	v.SetDefault("REPORTS_CLEANUP_INTERVAL", "1h")
	v.SetDefault("REPORTS_WORKER_CONCURRENCY", 1)
	v.SetDefault("REPORTS_WORKER_RETRIES", 3)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
