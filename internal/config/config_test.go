package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"DEFAULT_AUTHOR",
		"DEFAULT_CATEGORY",
		"WORDS_PER_MINUTE",
		"DEFAULT_PAGE_SIZE",
		"MAX_PAGE_SIZE",
		"JWT_SECRET",
		"JWT_TTL",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "blog_cms" {
			t.Errorf("DBName = %v, want blog_cms", cfg.DBName)
		}
		if cfg.DefaultAuthor != "Admin" {
			t.Errorf("DefaultAuthor = %v, want Admin", cfg.DefaultAuthor)
		}
		if cfg.DefaultCategory != "General" {
			t.Errorf("DefaultCategory = %v, want General", cfg.DefaultCategory)
		}
		if cfg.WordsPerMinute != 200 {
			t.Errorf("WordsPerMinute = %v, want 200", cfg.WordsPerMinute)
		}
		if cfg.DefaultPageSize != 10 {
			t.Errorf("DefaultPageSize = %v, want 10", cfg.DefaultPageSize)
		}
		if cfg.MaxPageSize != 100 {
			t.Errorf("MaxPageSize = %v, want 100", cfg.MaxPageSize)
		}
		if cfg.JWTTTL != 24*time.Hour {
			t.Errorf("JWTTTL = %v, want 24h", cfg.JWTTTL)
		}
	})

	t.Run("custom values from environment", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "testuser")
		os.Setenv("DB_PASSWORD", "testpass")
		os.Setenv("DB_NAME", "testdb")
		os.Setenv("DEFAULT_AUTHOR", "Jane Doe")
		os.Setenv("DEFAULT_CATEGORY", "Engineering")
		os.Setenv("WORDS_PER_MINUTE", "225")
		os.Setenv("DEFAULT_PAGE_SIZE", "20")
		os.Setenv("MAX_PAGE_SIZE", "50")
		os.Setenv("JWT_SECRET", "test-secret")
		os.Setenv("JWT_TTL", "1h")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBHost != "db.example.com" {
			t.Errorf("DBHost = %v, want db.example.com", cfg.DBHost)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.DBUser != "testuser" {
			t.Errorf("DBUser = %v, want testuser", cfg.DBUser)
		}
		if cfg.DBName != "testdb" {
			t.Errorf("DBName = %v, want testdb", cfg.DBName)
		}
		if cfg.DefaultAuthor != "Jane Doe" {
			t.Errorf("DefaultAuthor = %v, want Jane Doe", cfg.DefaultAuthor)
		}
		if cfg.DefaultCategory != "Engineering" {
			t.Errorf("DefaultCategory = %v, want Engineering", cfg.DefaultCategory)
		}
		if cfg.WordsPerMinute != 225 {
			t.Errorf("WordsPerMinute = %v, want 225", cfg.WordsPerMinute)
		}
		if cfg.DefaultPageSize != 20 {
			t.Errorf("DefaultPageSize = %v, want 20", cfg.DefaultPageSize)
		}
		if cfg.MaxPageSize != 50 {
			t.Errorf("MaxPageSize = %v, want 50", cfg.MaxPageSize)
		}
		if cfg.JWTSecret != "test-secret" {
			t.Errorf("JWTSecret = %v, want test-secret", cfg.JWTSecret)
		}
		if cfg.JWTTTL != time.Hour {
			t.Errorf("JWTTTL = %v, want 1h", cfg.JWTTTL)
		}
	})

	t.Run("invalid words per minute fails validation", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}
		os.Setenv("WORDS_PER_MINUTE", "0")
		defer os.Unsetenv("WORDS_PER_MINUTE")

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for WORDS_PER_MINUTE=0, got nil")
		}
	})

	t.Run("max page size below default fails validation", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}
		os.Setenv("DEFAULT_PAGE_SIZE", "50")
		os.Setenv("MAX_PAGE_SIZE", "10")
		defer func() {
			os.Unsetenv("DEFAULT_PAGE_SIZE")
			os.Unsetenv("MAX_PAGE_SIZE")
		}()

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for MAX_PAGE_SIZE < DEFAULT_PAGE_SIZE, got nil")
		}
	})

	t.Run("duration fields have correct defaults", func(t *testing.T) {
		for _, env := range envVars {
			os.Unsetenv(env)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBMaxConnLifetime != time.Hour {
			t.Errorf("DBMaxConnLifetime = %v, want 1h", cfg.DBMaxConnLifetime)
		}
		if cfg.DBMaxConnIdleTime != 30*time.Minute {
			t.Errorf("DBMaxConnIdleTime = %v, want 30m", cfg.DBMaxConnIdleTime)
		}
		if cfg.DBHealthCheckPeriod != time.Minute {
			t.Errorf("DBHealthCheckPeriod = %v, want 1m", cfg.DBHealthCheckPeriod)
		}
	})
}
