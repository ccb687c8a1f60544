package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	Gemini  GeminiConfig
	Match   MatchConfig
	Auth    AuthConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type DBConfig struct {
	// DSN vacío => repos en memoria.
	DSN string
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type MatchConfig struct {
	OracleTimeout time.Duration
	RatePerMinute int
	RateBurst     int
}

type AuthConfig struct {
	SessionTTL    time.Duration
	AdminUsername string
	AdminPassword string
	SecureCookie  bool
}

type CatalogConfig struct {
	// Seed carga el catálogo demo cuando no hay DB.
	Seed bool
}

// Load lee un .env opcional (no pisa variables ya definidas) y después el entorno.
// files vacío => ".env" en el directorio actual.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv arma la config solo con variables de entorno (sin .env).
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnvAsInt("PORT", 8080),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 5*time.Second),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		DB: DBConfig{
			DSN: strings.TrimSpace(getEnv("DB_DSN", "")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			App:    getEnv("APP_NAME", "pawprint"),
		},
		Gemini: GeminiConfig{
			APIKey:  strings.TrimSpace(getEnv("GEMINI_API_KEY", "")),
			Model:   getEnv("GEMINI_MODEL", "gemini-flash-latest"),
			BaseURL: getEnv("GEMINI_BASE_URL", ""),
		},
		Match: MatchConfig{
			OracleTimeout: getEnvAsDuration("ORACLE_TIMEOUT", 20*time.Second),
			RatePerMinute: getEnvAsInt("MATCH_RATE_PER_MINUTE", 10),
			RateBurst:     getEnvAsInt("MATCH_RATE_BURST", 3),
		},
		Auth: AuthConfig{
			SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			SecureCookie:  getEnvAsBool("COOKIE_SECURE", false),
		},
		Catalog: CatalogConfig{
			Seed: getEnvAsBool("SEED_CATALOG", true),
		},
	}
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Server.Port)
	}
	if c.Match.OracleTimeout <= 0 {
		return fmt.Errorf("config: ORACLE_TIMEOUT must be positive")
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("config: SESSION_TTL must be positive")
	}
	if c.Match.RateBurst < 0 {
		return fmt.Errorf("config: MATCH_RATE_BURST must be >= 0")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
