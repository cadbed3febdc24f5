package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Minute, time.Hour)

	tok, err := svc.GenerateAccessToken("a@b.co")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if claims.Email != "a@b.co" {
		t.Fatalf("unexpected email: %q", claims.Email)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected token type: %q", claims.TokenType)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token classified as refresh")
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Minute, time.Hour)

	tok, err := svc.GenerateRefreshToken("a@b.co")
	if err != nil {
		t.Fatalf("GenerateRefreshToken returned error: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("refresh token not classified as refresh")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewHMACService("access-a", "refresh-a", time.Minute, time.Hour)
	verifier := NewHMACService("access-b", "refresh-b", time.Minute, time.Hour)

	tok, err := issuer.GenerateAccessToken("a@b.co")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	_, err = verifier.ValidateToken(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewHMACService("access", "refresh", time.Minute, time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	tok, err := svc.GenerateAccessToken("a@b.co")
	if err != nil {
		t.Fatalf("GenerateAccessToken returned error: %v", err)
	}

	svc.now = time.Now
	_, err = svc.ValidateToken(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestGenerateWithoutSecret(t *testing.T) {
	svc := NewHMACService("", "refresh", time.Minute, time.Hour)

	if _, err := svc.GenerateAccessToken("a@b.co"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("want ErrTokenInvalid, got %v", err)
	}
}
