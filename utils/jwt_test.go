package utils

import (
	"testing"
	"time"

	"flawless/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-42", "asha@example.com", "customer", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("failed to extract claims: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Fatalf("expected subject user-42, got %q", claims.UserID)
	}
	if claims.Email != "asha@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if claims.Role != "customer" {
		t.Fatalf("expected role claim, got %q", claims.Role)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-42", "asha@example.com", "customer", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := ExtractClaimsFromToken(token); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-42", "asha@example.com", "customer", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	config.AppConfig.JWTSecret = "a-different-secret"
	if _, err := ExtractClaimsFromToken(token); err == nil {
		t.Fatal("expected a token signed with another secret to be rejected")
	}
}
