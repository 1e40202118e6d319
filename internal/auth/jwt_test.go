package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateToken(secret, "u1", "Ana", "ana@b.si", false)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != "u1" {
		t.Errorf("expected user_id 'u1', got %q", claims.UserID)
	}
	if claims.Name != "Ana" {
		t.Errorf("expected name 'Ana', got %q", claims.Name)
	}
	if claims.Email != "ana@b.si" {
		t.Errorf("expected email 'ana@b.si', got %q", claims.Email)
	}
	if claims.Guest {
		t.Error("expected non-guest claims")
	}
}

func TestGuestToken(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateToken(secret, "", "", "", true)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !claims.Guest {
		t.Error("expected guest flag set")
	}
	if claims.UserID != "" {
		t.Errorf("guest token must carry no identity, got %q", claims.UserID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret1", "u1", "Ana", "ana@b.si", false)

	_, err := ValidateToken("secret2", token)
	if err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("secret", "not-a-token")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestTokenExpiry(t *testing.T) {
	// Just verify the expiry is set correctly.
	secret := "test"
	token, _ := GenerateToken(secret, "u1", "Ana", "ana@b.si", false)
	claims, _ := ValidateToken(secret, token)

	expiresAt := claims.ExpiresAt.Time
	expectedExpiry := time.Now().Add(TokenExpiry)

	// Should be within a few seconds.
	diff := expectedExpiry.Sub(expiresAt)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected: diff=%v", diff)
	}
}
