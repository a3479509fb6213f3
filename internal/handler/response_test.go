package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, 200, map[string]string{"hello": "world"})

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status field = %q, want ok", resp.Status)
	}
	if resp.Error != nil {
		t.Errorf("error field should be omitted on success, got %+v", resp.Error)
	}
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, 404, "goal not found")

	if rec.Code != 404 {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "error" || resp.Message != "goal not found" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
	if resp.Error == nil || resp.Error.Code != 404 {
		t.Errorf("error detail missing or wrong: %+v", resp.Error)
	}
}

func TestWriteError_ClampsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, 200, "boom")
	if rec.Code != 500 {
		t.Errorf("sub-400 status should clamp to 500, got %d", rec.Code)
	}
}

func TestCentsString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{14500, "145.00"},
		{-3050, "-30.50"},
		{199, "1.99"},
	}
	for _, tt := range tests {
		if got := centsString(tt.cents); got != tt.want {
			t.Errorf("centsString(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
