package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Every pipeline gets
// its settings from here at construction time; nothing reads the
// environment mid-request.
type Config struct {
	Postgres  PostgresConfig
	Server    ServerConfig
	Auth      AuthConfig
	AI        AIConfig
	Assistant AssistantConfig
	Import    ImportConfig
}

// PostgresConfig holds PostgreSQL database configuration.
type PostgresConfig struct {
	DSN                string // full connection string, used when set
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host           string
	Port           int
	GinMode        string
	AllowedOrigins string
}

// AuthConfig holds bearer-token verification settings.
type AuthConfig struct {
	JWTSecret string
}

// AIConfig holds the chat-completion gateway configuration.
type AIConfig struct {
	APIKey         string
	APIBase        string
	ChatModel      string
	EmbeddingModel string
	Timeout        int // seconds
	Enabled        bool
}

// AssistantConfig holds the fixed limits of the conversational pipeline.
type AssistantConfig struct {
	QueryLimit       int // listings fetched per search turn
	DisplayLimit     int // listings returned for card rendering
	ExtractMaxTokens int
	ReplyMaxTokens   int
}

// ImportConfig holds the listing-import settings.
type ImportConfig struct {
	AllowedDomains []string
	MaxHTMLChars   int
	FetchTimeout   int // seconds
	UserAgent      string
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Optional .env file
	_ = godotenv.Load()

	cfg := &Config{
		Postgres: PostgresConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "carrosusados"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
		},
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		AI: AIConfig{
			APIKey:         getEnv("AI_API_KEY", ""),
			APIBase:        getEnv("AI_API_BASE", "https://ai.gateway.lovable.dev/v1"),
			ChatModel:      getEnv("AI_CHAT_MODEL", "google/gemini-2.5-flash"),
			EmbeddingModel: getEnv("AI_EMBEDDING_MODEL", "baai/bge-m3"),
			Timeout:        getEnvAsInt("AI_TIMEOUT", 30),
			Enabled:        getEnv("AI_API_KEY", "") != "",
		},
		Assistant: AssistantConfig{
			QueryLimit:       getEnvAsInt("ASSISTANT_QUERY_LIMIT", 10),
			DisplayLimit:     getEnvAsInt("ASSISTANT_DISPLAY_LIMIT", 5),
			ExtractMaxTokens: getEnvAsInt("ASSISTANT_EXTRACT_MAX_TOKENS", 200),
			ReplyMaxTokens:   getEnvAsInt("ASSISTANT_REPLY_MAX_TOKENS", 800),
		},
		Import: ImportConfig{
			AllowedDomains: getEnvAsList("IMPORT_ALLOWED_DOMAINS",
				[]string{"standvirtual.com", "olx.pt", "custojusto.pt", "autoscout24.pt"}),
			MaxHTMLChars: getEnvAsInt("IMPORT_MAX_HTML_CHARS", 50000),
			FetchTimeout: getEnvAsInt("IMPORT_FETCH_TIMEOUT", 15),
			UserAgent:    getEnv("IMPORT_USER_AGENT", defaultUserAgent),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// PostgresDSN returns the PostgreSQL connection string.
func (c *Config) PostgresDSN() string {
	if c.Postgres.DSN != "" {
		return c.Postgres.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.User,
		c.Postgres.Password,
		c.Postgres.Database,
		c.Postgres.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
