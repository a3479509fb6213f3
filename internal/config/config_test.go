package config

import (
	"testing"
	"time"
)

func TestLoad_RequiredValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/cartdesk")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}

	t.Setenv("JWT_SECRET", "secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q, want default 8080", cfg.HTTPPort)
	}
	if cfg.DefaultCurrency != "USD" {
		t.Errorf("DefaultCurrency = %q, want USD", cfg.DefaultCurrency)
	}
}

func TestGetDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"empty uses fallback", "", 10 * time.Second},
		{"go duration", "90s", 90 * time.Second},
		{"bare integer is seconds", "45", 45 * time.Second},
		{"garbage uses fallback", "soon", 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			if got := getDuration("TEST_DURATION", 10*time.Second); got != tt.want {
				t.Errorf("getDuration(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
