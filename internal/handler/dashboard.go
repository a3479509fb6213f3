package handler

import (
	"net/http"
	"time"

	"cartdesk-backend/internal/repository"
	"cartdesk-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// DashboardHandler assembles the landing-page summary. All aggregation is
// computed in memory from freshly fetched rows.
type DashboardHandler struct {
	Inventory repository.InventoryRepository
	Events    repository.EventRepository
	Goals     repository.GoalRepository
}

func (h DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/summary", h.summary)
}

func (h DashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	from, to := service.DefaultEventWindow(time.Now())

	items, err := h.Inventory.List(r.Context(), 500)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	events, err := h.Events.List(r.Context(), repository.ListEventsFilter{From: &from, To: &to})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	goals, err := h.Goals.List(r.Context(), 500)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	low := service.LowStockItems(items)
	lowResp := make([]map[string]any, 0, len(low))
	for _, it := range low {
		lowResp = append(lowResp, toInventoryResponse(it))
	}

	tally := service.EventCounts(events, from, to)
	byType := make(map[string]int, len(tally.ByType))
	for typ, n := range tally.ByType {
		byType[string(typ)] = n
	}

	upcoming := service.UpcomingEvents(events, from, to)
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}
	upcomingResp := make([]map[string]any, 0, len(upcoming))
	for _, ev := range upcoming {
		upcomingResp = append(upcomingResp, toEventResponse(ev))
	}

	openGoals := 0
	for _, g := range goals {
		if !g.IsDone {
			openGoals++
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"lowStock": lowResp,
		"events": map[string]any{
			"total":  tally.Total,
			"booked": tally.Booked,
			"byType": byType,
		},
		"upcomingEvents": upcomingResp,
		"openGoals":      openGoals,
		"window": map[string]string{
			"from": from.Format(dateLayout),
			"to":   to.Format(dateLayout),
		},
	})
}
