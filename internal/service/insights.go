package service

import (
	"sort"
	"time"

	"cartdesk-backend/internal/domain"
)

// IsLow reports whether an item has fallen to or below its reorder
// threshold. A zero threshold means alerts are disabled for the item.
func IsLow(item domain.InventoryItem) bool {
	return item.ReorderThreshold > 0 && item.Quantity <= item.ReorderThreshold
}

// LowStockItems filters items to those needing reorder, preserving input
// order (callers sort by category then name).
func LowStockItems(items []domain.InventoryItem) []domain.InventoryItem {
	low := make([]domain.InventoryItem, 0)
	for _, it := range items {
		if IsLow(it) {
			low = append(low, it)
		}
	}
	return low
}

// EventTally summarizes events inside a date window.
type EventTally struct {
	Total  int
	Booked int
	ByType map[domain.EventType]int
}

// DefaultEventWindow is the dashboard's window: today through today+30,
// inclusive on both ends.
func DefaultEventWindow(now time.Time) (time.Time, time.Time) {
	from := dayOf(now)
	return from, from.AddDate(0, 0, 30)
}

// EventCounts tallies events whose date falls in [from, to] at day
// granularity: total, count per type, and count with status booked.
func EventCounts(events []domain.Event, from, to time.Time) EventTally {
	tally := EventTally{ByType: map[domain.EventType]int{}}
	for _, ev := range events {
		if !inWindow(ev.Date, from, to) {
			continue
		}
		tally.Total++
		tally.ByType[ev.Type]++
		if ev.Status == domain.StatusBooked {
			tally.Booked++
		}
	}
	return tally
}

// UpcomingEvents filters events to the window, dropping cancelled ones.
// Input order is preserved (callers sort by date).
func UpcomingEvents(events []domain.Event, from, to time.Time) []domain.Event {
	upcoming := make([]domain.Event, 0)
	for _, ev := range events {
		if ev.Status == domain.StatusCancelled {
			continue
		}
		if inWindow(ev.Date, from, to) {
			upcoming = append(upcoming, ev)
		}
	}
	return upcoming
}

// GoalBucket holds one month's active goals.
type GoalBucket struct {
	Month string
	Goals []domain.Goal
}

// GroupActiveGoalsByMonth partitions goals with IsDone == false into
// per-month buckets. Goals keep their insertion order inside a bucket;
// buckets are ordered ascending by month key ("YYYY-MM" sorts
// chronologically).
func GroupActiveGoalsByMonth(goals []domain.Goal) []GoalBucket {
	index := map[string]int{}
	buckets := make([]GoalBucket, 0)
	for _, g := range goals {
		if g.IsDone {
			continue
		}
		i, ok := index[g.Month]
		if !ok {
			i = len(buckets)
			index[g.Month] = i
			buckets = append(buckets, GoalBucket{Month: g.Month})
		}
		buckets[i].Goals = append(buckets[i].Goals, g)
	}
	sort.Slice(buckets, func(a, b int) bool { return buckets[a].Month < buckets[b].Month })
	return buckets
}

// CompletedGoals filters goals with IsDone == true, order preserved.
func CompletedGoals(goals []domain.Goal) []domain.Goal {
	done := make([]domain.Goal, 0)
	for _, g := range goals {
		if g.IsDone {
			done = append(done, g)
		}
	}
	return done
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func inWindow(date, from, to time.Time) bool {
	d := dayOf(date)
	return !d.Before(dayOf(from)) && !d.After(dayOf(to))
}
