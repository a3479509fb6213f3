package service

import (
	"time"

	"cartdesk-backend/internal/domain"
)

// drawerFaces maps the bill denominations counted on the reconciliation
// sheet to their value in cents. Counts for any other key are ignored.
var drawerFaces = map[string]int64{
	"100": 100_00,
	"50":  50_00,
	"20":  20_00,
	"10":  10_00,
	"5":   5_00,
	"1":   1_00,
}

// DrawerTotal sums denomination counts into cents. Negative counts and
// unknown denominations contribute nothing; an empty map totals zero.
func DrawerTotal(counts map[string]int64) domain.Money {
	var total int64
	for face, cents := range drawerFaces {
		count := counts[face]
		if count <= 0 {
			continue
		}
		total += count * cents
	}
	return domain.Money{Amount: total}
}

// NetCash computes closing - opening - stallFee - payouts.
func NetCash(opening, closing, stallFee, payouts domain.Money) domain.Money {
	return domain.Money{
		Amount:   closing.Amount - opening.Amount - stallFee.Amount - payouts.Amount,
		Currency: closing.Currency,
	}
}

// SessionNetCash re-derives net cash from a stored session's components.
func SessionNetCash(s domain.CashSession) domain.Money {
	return NetCash(s.OpeningTotal, s.ClosingTotal, s.StallFee, s.Payouts)
}

// WeeklyDates expands a start date into n dates spaced exactly seven days
// apart, start included. n below one yields just the start date.
func WeeklyDates(start time.Time, n int) []time.Time {
	if n < 1 {
		n = 1
	}
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, 7*i))
	}
	return dates
}
