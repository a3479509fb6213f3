package service

import (
	"fmt"
	"testing"
	"time"

	"cartdesk-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

func signTestToken(t *testing.T, secret, tokenType string, userID int64, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        fmt.Sprintf("%d", userID),
		"token_type": tokenType,
		"exp":        exp.Unix(),
		"iat":        time.Now().Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestParseSubjectToken(t *testing.T) {
	const secret = "unit-secret"
	svc := AuthService{Config: config.Config{JWTSecret: secret}}
	future := time.Now().Add(10 * time.Minute)

	t.Run("valid reset token", func(t *testing.T) {
		token := signTestToken(t, secret, "reset", 42, future)
		userID, err := svc.parseSubjectToken(token, "reset")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userID != 42 {
			t.Errorf("userID = %d, want 42", userID)
		}
	})

	t.Run("refresh token rejected as reset", func(t *testing.T) {
		token := signTestToken(t, secret, "refresh", 42, future)
		if _, err := svc.parseSubjectToken(token, "reset"); err != ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token := signTestToken(t, secret, "reset", 42, time.Now().Add(-time.Minute))
		if _, err := svc.parseSubjectToken(token, "reset"); err != ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token := signTestToken(t, "other-secret", "reset", 42, future)
		if _, err := svc.parseSubjectToken(token, "reset"); err != ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := svc.parseSubjectToken("not-a-token", "reset"); err != ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})
}
