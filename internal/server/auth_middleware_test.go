package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cartdesk-backend/internal/domain"
	"cartdesk-backend/internal/server/authctx"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func accessClaims(role domain.UserRole) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":        "7",
		"email":      "owner@cartdesk.test",
		"role":       string(role),
		"token_type": "access",
		"exp":        time.Now().Add(time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}
}

func TestAuthMiddleware(t *testing.T) {
	var got *authctx.CurrentUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = authctx.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	mw := AuthMiddleware(testSecret)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{
			"refresh token rejected",
			"Bearer " + signToken(t, jwt.MapClaims{
				"sub":        "7",
				"token_type": "refresh",
				"exp":        time.Now().Add(time.Hour).Unix(),
			}),
			http.StatusUnauthorized,
		},
		{
			"expired token rejected",
			"Bearer " + signToken(t, jwt.MapClaims{
				"sub":        "7",
				"token_type": "access",
				"exp":        time.Now().Add(-time.Hour).Unix(),
			}),
			http.StatusUnauthorized,
		},
		{"valid access token", "Bearer " + signToken(t, accessClaims(domain.RoleOwner)), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = nil
			req := httptest.NewRequest("GET", "/inventory", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if got == nil || got.ID != 7 || got.Role != domain.RoleOwner {
					t.Errorf("context user = %+v, want id 7 with owner role", got)
				}
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chain := AuthMiddleware(testSecret)(RequireRole(domain.RoleOwner)(next))

	tests := []struct {
		name       string
		role       domain.UserRole
		wantStatus int
	}{
		{"owner allowed", domain.RoleOwner, http.StatusOK},
		{"staff forbidden", domain.RoleStaff, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/dashboard/summary", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, accessClaims(tt.role)))
			rec := httptest.NewRecorder()
			chain.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
