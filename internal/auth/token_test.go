// ABOUTME: Unit tests for JWT token verification and generation
// ABOUTME: Tests valid tokens, invalid tokens, and expired tokens

package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTVerifier_ValidToken(t *testing.T) {
	secret := []byte("test-secret-key-for-jwt-signing")
	verifier := NewJWTVerifier(secret)

	claims := Claims{
		Subject:     "user-123",
		Email:       "alice@example.com",
		DisplayName: "Alice",
	}
	token, err := verifier.Generate(claims, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	got, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if got.Subject != claims.Subject {
		t.Errorf("Verify() subject = %q, want %q", got.Subject, claims.Subject)
	}
	if got.Email != claims.Email {
		t.Errorf("Verify() email = %q, want %q", got.Email, claims.Email)
	}
	if got.DisplayName != claims.DisplayName {
		t.Errorf("Verify() display_name = %q, want %q", got.DisplayName, claims.DisplayName)
	}
}

func TestJWTVerifier_SubjectOnly(t *testing.T) {
	verifier := NewJWTVerifier([]byte("test-secret"))

	token, err := verifier.Generate(Claims{Subject: "user-456"}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	got, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got.Subject != "user-456" {
		t.Errorf("Verify() subject = %q, want %q", got.Subject, "user-456")
	}
	if got.Email != "" || got.DisplayName != "" {
		t.Errorf("Verify() optional claims should be empty, got email=%q display_name=%q", got.Email, got.DisplayName)
	}
}

func TestJWTVerifier_InvalidToken(t *testing.T) {
	secret := []byte("test-secret-key-for-jwt-signing")
	verifier := NewJWTVerifier(secret)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "garbage token",
			token: "not-a-jwt-token",
		},
		{
			name:  "malformed JWT",
			token: "header.payload.signature",
		},
		{
			name: "wrong secret",
			token: func() string {
				// Generate with different secret
				otherVerifier := NewJWTVerifier([]byte("different-secret"))
				token, _ := otherVerifier.Generate(Claims{Subject: "user-123"}, time.Hour)
				return token
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			if err == nil {
				t.Error("Verify() should have returned an error")
			}
		})
	}
}

func TestJWTVerifier_ExpiredToken(t *testing.T) {
	verifier := NewJWTVerifier([]byte("test-secret"))

	token, err := verifier.Generate(Claims{Subject: "user-123"}, -time.Minute)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Verify() error = %v, want ErrExpiredToken", err)
	}
}

func TestJWTVerifier_MissingSubject(t *testing.T) {
	verifier := NewJWTVerifier([]byte("test-secret"))

	token, err := verifier.Generate(Claims{}, time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrMissingClaim) {
		t.Errorf("Verify() error = %v, want ErrMissingClaim", err)
	}
}
