package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "alice@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)

	token, err := svc.GenerateToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecretRejected(t *testing.T) {
	token, err := NewHMACService("secret-a", time.Hour).GenerateToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = NewHMACService("secret-b", time.Hour).ValidateToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_GarbageRejected(t *testing.T) {
	_, err := NewHMACService("secret", time.Hour).ValidateToken("not-a-token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
