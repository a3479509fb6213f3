package service

import (
	"testing"
	"time"

	"cartdesk-backend/internal/domain"
)

func TestIsLow(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		reorder  int
		want     bool
	}{
		{"below threshold", 2, 5, true},
		{"at threshold", 5, 5, true},
		{"above threshold", 6, 5, false},
		{"zero threshold disables alert", 2, 0, false},
		{"zero quantity zero threshold", 0, 0, false},
		{"zero quantity with threshold", 0, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.InventoryItem{Quantity: tt.quantity, ReorderThreshold: tt.reorder}
			if got := IsLow(item); got != tt.want {
				t.Errorf("IsLow(qty=%d, threshold=%d) = %v, want %v", tt.quantity, tt.reorder, got, tt.want)
			}
		})
	}
}

func TestLowStockItems_PreservesOrder(t *testing.T) {
	items := []domain.InventoryItem{
		{Name: "espresso beans", Quantity: 1, ReorderThreshold: 2},
		{Name: "oat milk", Quantity: 10, ReorderThreshold: 4},
		{Name: "vanilla syrup", Quantity: 0, ReorderThreshold: 1},
		{Name: "cups 12oz", Quantity: 50, ReorderThreshold: 0},
	}
	low := LowStockItems(items)
	if len(low) != 2 {
		t.Fatalf("expected 2 low items, got %d", len(low))
	}
	if low[0].Name != "espresso beans" || low[1].Name != "vanilla syrup" {
		t.Errorf("low stock order not preserved: %v, %v", low[0].Name, low[1].Name)
	}
}

func TestEventCounts(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 30)
	day := func(offset int) time.Time { return from.AddDate(0, 0, offset) }

	events := []domain.Event{
		{Date: day(0), Type: domain.EventMarket, Status: domain.StatusBooked},
		{Date: day(5), Type: domain.EventMarket, Status: domain.StatusInquiry},
		{Date: day(12), Type: domain.EventPopup, Status: domain.StatusBooked},
		{Date: day(30), Type: domain.EventWedding, Status: domain.StatusProposalSent}, // last inclusive day
		{Date: day(31), Type: domain.EventMarket, Status: domain.StatusBooked},        // outside
		{Date: day(-1), Type: domain.EventPopup, Status: domain.StatusBooked},         // outside
	}

	tally := EventCounts(events, from, to)
	if tally.Total != 4 {
		t.Errorf("Total = %d, want 4", tally.Total)
	}
	if tally.Booked != 2 {
		t.Errorf("Booked = %d, want 2", tally.Booked)
	}
	if tally.ByType[domain.EventMarket] != 2 {
		t.Errorf("market count = %d, want 2", tally.ByType[domain.EventMarket])
	}
	if tally.ByType[domain.EventPopup] != 1 {
		t.Errorf("popup count = %d, want 1", tally.ByType[domain.EventPopup])
	}
	if tally.ByType[domain.EventWedding] != 1 {
		t.Errorf("wedding count = %d, want 1", tally.ByType[domain.EventWedding])
	}

	empty := EventCounts(nil, from, to)
	if empty.Total != 0 || empty.Booked != 0 || len(empty.ByType) != 0 {
		t.Errorf("empty input should yield empty tally, got %+v", empty)
	}
}

func TestUpcomingEvents_SkipsCancelled(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 30)
	events := []domain.Event{
		{Title: "farmers market", Date: from.AddDate(0, 0, 2), Status: domain.StatusBooked},
		{Title: "cancelled popup", Date: from.AddDate(0, 0, 3), Status: domain.StatusCancelled},
		{Title: "wedding", Date: from.AddDate(0, 0, 40), Status: domain.StatusBooked},
	}
	got := UpcomingEvents(events, from, to)
	if len(got) != 1 || got[0].Title != "farmers market" {
		t.Errorf("UpcomingEvents = %v, want only the farmers market", got)
	}
}

func TestGroupActiveGoalsByMonth(t *testing.T) {
	goals := []domain.Goal{
		{ID: 1, Month: "2025-03", IsDone: false},
		{ID: 2, Month: "2025-01", IsDone: false},
		{ID: 3, Month: "2025-01", IsDone: true},
	}

	buckets := GroupActiveGoalsByMonth(goals)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Month != "2025-01" || buckets[1].Month != "2025-03" {
		t.Errorf("bucket order = [%s, %s], want ascending by month", buckets[0].Month, buckets[1].Month)
	}
	if len(buckets[0].Goals) != 1 || buckets[0].Goals[0].ID != 2 {
		t.Errorf("2025-01 bucket = %+v, want goal 2 only", buckets[0].Goals)
	}

	done := CompletedGoals(goals)
	if len(done) != 1 || done[0].ID != 3 {
		t.Errorf("CompletedGoals = %+v, want goal 3 only", done)
	}
}

// Active buckets plus completed goals must partition the input with no
// overlap and no loss.
func TestGoalPartition(t *testing.T) {
	goals := []domain.Goal{
		{ID: 1, Month: "2025-02", IsDone: false},
		{ID: 2, Month: "2025-02", IsDone: true},
		{ID: 3, Month: "2025-05", IsDone: false},
		{ID: 4, Month: "2025-01", IsDone: false},
		{ID: 5, Month: "2025-05", IsDone: true},
	}

	seen := map[int64]int{}
	for _, b := range GroupActiveGoalsByMonth(goals) {
		for _, g := range b.Goals {
			if g.IsDone {
				t.Errorf("goal %d is done but appeared in active bucket %s", g.ID, b.Month)
			}
			seen[g.ID]++
		}
	}
	for _, g := range CompletedGoals(goals) {
		seen[g.ID]++
	}

	if len(seen) != len(goals) {
		t.Fatalf("partition covers %d goals, want %d", len(seen), len(goals))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("goal %d appeared %d times across the partition", id, n)
		}
	}
}

func TestGroupActiveGoalsByMonth_InsertionOrderWithinBucket(t *testing.T) {
	goals := []domain.Goal{
		{ID: 10, Month: "2025-04"},
		{ID: 11, Month: "2025-04"},
		{ID: 12, Month: "2025-04"},
	}
	buckets := GroupActiveGoalsByMonth(goals)
	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	for i, g := range buckets[0].Goals {
		if g.ID != int64(10+i) {
			t.Errorf("bucket position %d holds goal %d, insertion order lost", i, g.ID)
		}
	}
}

func TestDefaultEventWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	from, to := DefaultEventWindow(now)
	if from.Hour() != 0 || from.Day() != 15 {
		t.Errorf("window start = %v, want midnight of today", from)
	}
	if to.Sub(from) != 30*24*time.Hour {
		t.Errorf("window span = %v, want 30 days", to.Sub(from))
	}
}
