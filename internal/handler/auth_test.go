package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cartdesk-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// Requests below fail validation before any service call, so a bare
// AuthService is enough to prove the routes are mounted.
func TestAuthRoutes_PasswordReset(t *testing.T) {
	r := chi.NewRouter()
	AuthHandler{Service: &service.AuthService{}}.RegisterRoutes(r)

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"forgot-password bad json", "/auth/forgot-password", "{", http.StatusBadRequest},
		{"forgot-password missing email", "/auth/forgot-password", `{}`, http.StatusBadRequest},
		{"reset-password bad json", "/auth/reset-password", "{", http.StatusBadRequest},
		{"reset-password missing fields", "/auth/reset-password", `{"resetToken":""}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code == http.StatusNotFound {
				t.Fatalf("%s is not routed", tt.path)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
