package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"bloglist/internal/model"
)

const testSecret = "test-secret-do-not-use-in-production"

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	issued := Claims{Username: "root", UserID: 42}
	token, err := svc.Issue(issued)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got.Username != issued.Username {
		t.Errorf("username = %q, want %q", got.Username, issued.Username)
	}
	if got.UserID != issued.UserID {
		t.Errorf("user id = %d, want %d", got.UserID, issued.UserID)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	// A negative TTL issues a token that is already past its expiry.
	svc := NewTokenService(testSecret, -time.Minute)

	token, err := svc.Issue(Claims{Username: "root", UserID: 1})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, model.ErrTokenExpired) {
		t.Errorf("error = %v, want %v", err, model.ErrTokenExpired)
	}
}

func TestTokenService_Verify_Tampered(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(Claims{Username: "root", UserID: 1})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Flip a byte in the payload segment; the signature no longer matches.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = svc.Verify(tampered)
	if !errors.Is(err, model.ErrTokenInvalid) {
		t.Errorf("error = %v, want %v", err, model.ErrTokenInvalid)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, time.Hour)
	verifier := NewTokenService("some-other-secret", time.Hour)

	token, err := issuer.Issue(Claims{Username: "root", UserID: 1})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, model.ErrTokenInvalid) {
		t.Errorf("error = %v, want %v", err, model.ErrTokenInvalid)
	}
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(raw); !errors.Is(err, model.ErrTokenInvalid) {
			t.Errorf("Verify(%q) error = %v, want %v", raw, err, model.ErrTokenInvalid)
		}
	}
}
