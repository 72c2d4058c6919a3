package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	signed, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user 42, got %d", userID)
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	signed, err := svc.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestVerifyTampered(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	signed, err := svc.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"truncated", signed[:len(signed)-5]},
		{"flipped payload", flipMiddleSegment(signed)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret-one", time.Hour)
	verifier := NewService("secret-two", time.Hour)

	signed, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(signed); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func flipMiddleSegment(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return token
	}
	parts[1] = "eyJ1c2VySWQiOjk5OTl9"
	return strings.Join(parts, ".")
}
