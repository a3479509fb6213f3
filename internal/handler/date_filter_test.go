package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
		from    string
		to      string
	}{
		{"both bounds", "from=2025-03-01&to=2025-03-31", false, "2025-03-01", "2025-03-31"},
		{"open range", "", false, "", ""},
		{"only from", "from=2025-03-01", false, "2025-03-01", ""},
		{"equal bounds", "from=2025-03-01&to=2025-03-01", false, "2025-03-01", "2025-03-01"},
		{"inverted range", "from=2025-04-01&to=2025-03-01", true, "", ""},
		{"bad from", "from=yesterday", true, "", ""},
		{"bad to", "from=2025-03-01&to=31-03-2025", true, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			from, to, err := parseDateRange(req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := formatBound(from); got != tt.from {
				t.Errorf("from = %q, want %q", got, tt.from)
			}
			if got := formatBound(to); got != tt.to {
				t.Errorf("to = %q, want %q", got, tt.to)
			}
		})
	}
}

func formatBound(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
