package service

import (
	"testing"
	"time"

	"cartdesk-backend/internal/domain"
)

func TestDrawerTotal(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int64
		want   int64
	}{
		{"empty drawer", map[string]int64{}, 0},
		{"nil counts", nil, 0},
		{"hundred plus twenties plus ones", map[string]int64{"100": 1, "20": 2, "1": 5}, 145_00},
		{"all faces once", map[string]int64{"100": 1, "50": 1, "20": 1, "10": 1, "5": 1, "1": 1}, 186_00},
		{"unknown face ignored", map[string]int64{"2": 10, "500": 3, "10": 2}, 20_00},
		{"negative count treated as zero", map[string]int64{"20": -4, "5": 2}, 10_00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DrawerTotal(tt.counts)
			if got.Amount != tt.want {
				t.Errorf("DrawerTotal() = %d cents, want %d", got.Amount, tt.want)
			}
			if got.Amount < 0 {
				t.Errorf("DrawerTotal() must never be negative, got %d", got.Amount)
			}
		})
	}
}

func TestNetCash(t *testing.T) {
	opening := DrawerTotal(map[string]int64{"5": 2})  // 10.00
	closing := DrawerTotal(map[string]int64{"10": 3}) // 30.00
	fee := domain.Money{Amount: 2_00}
	payouts := domain.Money{Amount: 3_00}

	got := NetCash(opening, closing, fee, payouts)
	if got.Amount != 15_00 {
		t.Errorf("NetCash = %d cents, want 1500", got.Amount)
	}
}

func TestNetCash_Linearity(t *testing.T) {
	tests := []struct {
		opening, closing, fee, payouts int64
		want                           int64
	}{
		{0, 0, 0, 0, 0},
		{10_00, 30_00, 2_00, 3_00, 15_00},
		{50_00, 20_00, 0, 0, -30_00}, // short drawer goes negative
		{0, 100_00, 100_00, 0, 0},
	}
	for _, tt := range tests {
		got := NetCash(
			domain.Money{Amount: tt.opening},
			domain.Money{Amount: tt.closing},
			domain.Money{Amount: tt.fee},
			domain.Money{Amount: tt.payouts},
		)
		if got.Amount != tt.want {
			t.Errorf("NetCash(%d,%d,%d,%d) = %d, want %d",
				tt.opening, tt.closing, tt.fee, tt.payouts, got.Amount, tt.want)
		}
	}
}

func TestSessionNetCash(t *testing.T) {
	s := domain.CashSession{
		OpeningTotal: domain.Money{Amount: 75_00},
		ClosingTotal: domain.Money{Amount: 312_00},
		StallFee:     domain.Money{Amount: 40_00},
		Payouts:      domain.Money{Amount: 12_50},
	}
	if got := SessionNetCash(s); got.Amount != 184_50 {
		t.Errorf("SessionNetCash = %d cents, want 18450", got.Amount)
	}
}

func TestWeeklyDates(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	dates := WeeklyDates(start, 3)
	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	for i, d := range dates {
		want := start.AddDate(0, 0, 7*i)
		if !d.Equal(want) {
			t.Errorf("dates[%d] = %v, want %v", i, d, want)
		}
	}

	// Zero or negative weeks still produce the start date.
	if got := WeeklyDates(start, 0); len(got) != 1 || !got[0].Equal(start) {
		t.Errorf("WeeklyDates(start, 0) = %v, want just the start date", got)
	}
}
