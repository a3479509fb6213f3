package handler

import (
	"encoding/json"
	"testing"

	"cartdesk-backend/internal/service"
)

func TestDrawerCounts_LenientDecoding(t *testing.T) {
	// Counts arrive as an arbitrary JSON object; anything that is not a
	// number contributes zero rather than failing the request.
	var raw map[string]any
	body := `{"100": 1, "20": "two", "10": null, "5": true, "1": 5.9}`
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	counts := drawerCounts(raw)
	if counts["100"] != 1 {
		t.Errorf("counts[100] = %d, want 1", counts["100"])
	}
	if counts["20"] != 0 {
		t.Errorf("counts[20] = %d, want 0 for non-numeric value", counts["20"])
	}
	if counts["10"] != 0 {
		t.Errorf("counts[10] = %d, want 0 for null", counts["10"])
	}
	if counts["5"] != 0 {
		t.Errorf("counts[5] = %d, want 0 for boolean", counts["5"])
	}
	if counts["1"] != 5 {
		t.Errorf("counts[1] = %d, want truncation to 5", counts["1"])
	}

	got := service.DrawerTotal(counts)
	if got.Amount != 105_00 {
		t.Errorf("DrawerTotal = %d, want 10500", got.Amount)
	}
}
