package utils

import (
	"testing"
	"time"
)

var secret = []byte("unit-test-secret")

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT(secret, "64f0c9e2a1b2c3d4e5f60718", "staff@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(secret, token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "64f0c9e2a1b2c3d4e5f60718" {
		t.Fatalf("unexpected userId claim: %q", claims.UserID)
	}
	if claims.Email != "staff@example.com" {
		t.Fatalf("unexpected email claim: %q", claims.Email)
	}
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(secret, "user-1", "staff@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ValidateJWT([]byte("some-other-secret"), token); err == nil {
		t.Fatal("a token signed with another secret must not validate")
	}
}

func TestValidateJWTExpired(t *testing.T) {
	token, err := GenerateJWT(secret, "user-1", "staff@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ValidateJWT(secret, token); err == nil {
		t.Fatal("an expired token must not validate")
	}
}

func TestGenerateJWTEmptySecret(t *testing.T) {
	if _, err := GenerateJWT(nil, "user-1", "staff@example.com", time.Hour); err == nil {
		t.Fatal("expected an error with no secret configured")
	}
}
