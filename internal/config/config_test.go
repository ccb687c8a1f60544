package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var configEnvKeys = []string{
	"PORT", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
	"DB_DSN", "LOG_LEVEL", "LOG_FORMAT", "APP_NAME",
	"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
	"ORACLE_TIMEOUT", "MATCH_RATE_PER_MINUTE", "MATCH_RATE_BURST",
	"SESSION_TTL", "ADMIN_USERNAME", "ADMIN_PASSWORD", "COOKIE_SECURE", "SEED_CATALOG",
}

// clearEnv deja las variables vacías durante el test (t.Setenv restaura al final).
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	got := FromEnv()
	want := &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log:    LogConfig{Level: "info", Format: "text", App: "pawprint"},
		Gemini: GeminiConfig{Model: "gemini-flash-latest"},
		Match: MatchConfig{
			OracleTimeout: 20 * time.Second,
			RatePerMinute: 10,
			RateBurst:     3,
		},
		Auth: AuthConfig{
			SessionTTL:    24 * time.Hour,
			AdminUsername: "admin",
		},
		Catalog: CatalogConfig{Seed: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if got.Server.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", got.Server.Addr())
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "  postgres://u:p@localhost/db  ")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("ORACLE_TIMEOUT", "5s")
	t.Setenv("MATCH_RATE_PER_MINUTE", "0")
	t.Setenv("SEED_CATALOG", "false")
	t.Setenv("COOKIE_SECURE", "true")
	// Valores inválidos caen al default.
	t.Setenv("SESSION_TTL", "forever")
	t.Setenv("MATCH_RATE_BURST", "many")

	got := FromEnv()
	if got.Server.Port != 9090 || got.DB.DSN != "postgres://u:p@localhost/db" {
		t.Fatalf("unexpected server/db config: %+v %+v", got.Server, got.DB)
	}
	if got.Gemini.APIKey != "key" || got.Match.OracleTimeout != 5*time.Second || got.Match.RatePerMinute != 0 {
		t.Fatalf("unexpected gemini/match config: %+v %+v", got.Gemini, got.Match)
	}
	if got.Catalog.Seed || !got.Auth.SecureCookie {
		t.Fatalf("unexpected bools: seed=%v secure=%v", got.Catalog.Seed, got.Auth.SecureCookie)
	}
	if got.Auth.SessionTTL != 24*time.Hour || got.Match.RateBurst != 3 {
		t.Fatalf("invalid values must fall back to defaults: %+v %+v", got.Auth, got.Match)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv no pisa variables definidas; las vaciamos del proceso para que
	// el archivo pueda cargarlas.
	for _, k := range []string{"PORT", "ADMIN_USERNAME"} {
		os.Unsetenv(k)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("PORT=7070\nADMIN_USERNAME=boss\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 7070 || cfg.Auth.AdminUsername != "boss" {
		t.Fatalf("dotenv values not applied: %+v %+v", cfg.Server, cfg.Auth)
	}
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ADMIN_USERNAME")
	})
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("missing .env must not fail: %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")

	if _, err := Load(filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Fatalf("expected error for invalid port")
	}
}
