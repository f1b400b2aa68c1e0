package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"API_PORT", "MONGO_URI", "MONGO_DATABASE", "REDIS_URL", "JWT_SECRET",
		"JWT_EXPIRY_HOURS", "BCRYPT_COST", "RESET_TOKEN_TTL_MINUTES", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.APIPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.APIPort)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Fatalf("expected 24h token expiry, got %v", cfg.JWTExpiry)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("expected bcrypt cost 10, got %d", cfg.BcryptCost)
	}
	if cfg.ResetTokenTTL != 15*time.Minute {
		t.Fatalf("expected 15m reset token TTL, got %v", cfg.ResetTokenTTL)
	}
	if cfg.AllowedOrigins != nil {
		t.Fatalf("expected nil (allow-all) origins, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("JWT_EXPIRY_HOURS", "1")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("ALLOWED_ORIGINS", "https://admin.example.com, https://app.example.com")

	cfg := Load()

	if cfg.APIPort != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.APIPort)
	}
	if cfg.JWTExpiry != time.Hour {
		t.Fatalf("expected 1h expiry, got %v", cfg.JWTExpiry)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://app.example.com" {
		t.Fatalf("expected two trimmed origins, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("BCRYPT_COST", "not-a-number")

	cfg := Load()
	if cfg.BcryptCost != 10 {
		t.Fatalf("expected fallback cost 10, got %d", cfg.BcryptCost)
	}
}
