package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Expected default driver postgres, got %s", cfg.Database.Driver)
	}
	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Errorf("Expected 7 day token TTL, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("Expected bcrypt cost 12, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Redis.Enabled {
		t.Error("Expected Redis to be disabled by default")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("TOKEN_TTL", "24h")
	os.Setenv("BCRYPT_COST", "4")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("TOKEN_TTL")
		os.Unsetenv("BCRYPT_COST")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Expected 24h token TTL, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost != 4 {
		t.Errorf("Expected bcrypt cost 4, got %d", cfg.Auth.BcryptCost)
	}
}

func TestLoadConfigProductionRequiresJWTSecret(t *testing.T) {
	os.Setenv("ENVIRONMENT", "production")
	os.Setenv("DB_PASSWORD", "something")
	defer func() {
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("DB_PASSWORD")
	}()

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error when JWT secret is unset in production")
	}
}

func TestLoadConfigProductionRequiresDBPassword(t *testing.T) {
	os.Setenv("ENVIRONMENT", "production")
	os.Setenv("JWT_SECRET", "real-secret")
	defer func() {
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("JWT_SECRET")
	}()

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error when database password is unset in production")
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	dsn := cfg.GetDatabaseDSN()
	if dsn == "" {
		t.Fatal("Expected a non-empty DSN")
	}

	cfg.Database.Driver = "sqlite"
	cfg.Database.Name = "todo.db"
	if got := cfg.GetDatabaseDSN(); got != "todo.db" {
		t.Errorf("Expected sqlite DSN to be the file path, got %q", got)
	}
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Environment = "development"
	if cfg.IsProduction() {
		t.Error("development must not report as production")
	}

	cfg.Server.Environment = "production"
	if !cfg.IsProduction() {
		t.Error("production must report as production")
	}
}
