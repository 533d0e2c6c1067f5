package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)

	token, err := svc.GenerateSessionToken("mom@example.com", "email")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := svc.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("ValidateSessionToken: %v", err)
	}
	if claims.Identifier != "mom@example.com" || claims.Channel != "email" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _ := NewService("secret-a", time.Hour).GenerateSessionToken("mom@example.com", "email")

	if _, err := NewService("secret-b", time.Hour).ValidateSessionToken(token); err == nil {
		t.Error("token signed with a different secret must be rejected")
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewService("secret", -time.Minute)

	token, err := svc.GenerateSessionToken("mom@example.com", "email")
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.ValidateSessionToken(token)
	if err == nil {
		t.Fatal("expired token must be rejected")
	}
	if !errors.Is(err, ErrExpiredToken) && !errors.Is(err, ErrInvalidToken) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewService("secret", time.Hour)
	if _, err := svc.ValidateSessionToken("not.a.token"); err == nil {
		t.Error("garbage token must be rejected")
	}
}
