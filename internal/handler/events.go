package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cartdesk-backend/internal/domain"
	"cartdesk-backend/internal/repository"
	"cartdesk-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// maxRecurringWeeks caps a weekly-recurring batch to one year.
const maxRecurringWeeks = 52

type EventHandler struct {
	Repo repository.EventRepository
}

func (h EventHandler) RegisterRoutes(r chi.Router) {
	r.Get("/events", h.list)
	r.Post("/events", h.create)
	r.Put("/events/{id}", h.update)
	r.Delete("/events/{id}", h.delete)
}

func (h EventHandler) list(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.Repo.List(r.Context(), repository.ListEventsFilter{
		From:   from,
		To:     to,
		Status: domain.EventStatus(r.URL.Query().Get("status")),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, ev := range items {
		resp = append(resp, toEventResponse(ev))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h EventHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Date        string `json:"date"`
		Location    string `json:"location"`
		Type        string `json:"type"`
		ClientName  string `json:"clientName"`
		ClientEmail string `json:"clientEmail"`
		ClientPhone string `json:"clientPhone"`
		Status      string `json:"status"`
		Notes       string `json:"notes"`
		Weeks       int    `json:"weeks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Title == "" || req.Date == "" {
		writeError(w, http.StatusBadRequest, "title and date are required")
		return
	}
	start, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}
	if req.Weeks > maxRecurringWeeks {
		writeError(w, http.StatusBadRequest, "weeks may not exceed 52")
		return
	}
	if req.Type == "" {
		req.Type = string(domain.EventOther)
	}
	if req.Status == "" {
		req.Status = string(domain.StatusInquiry)
	}

	created, err := h.Repo.CreateBatch(r.Context(), repository.CreateEventInput{
		Title:       req.Title,
		Location:    req.Location,
		Type:        domain.EventType(req.Type),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Status:      domain.EventStatus(req.Status),
		Notes:       req.Notes,
	}, service.WeeklyDates(start, req.Weeks))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(created))
	for _, ev := range created {
		resp = append(resp, toEventResponse(ev))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h EventHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		Title       *string `json:"title"`
		Date        *string `json:"date"`
		Location    *string `json:"location"`
		Type        *string `json:"type"`
		ClientName  *string `json:"clientName"`
		ClientEmail *string `json:"clientEmail"`
		ClientPhone *string `json:"clientPhone"`
		Status      *string `json:"status"`
		Notes       *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		date = &parsed
	}
	ev, err := h.Repo.Update(r.Context(), id, repository.UpdateEventInput{
		Title:       req.Title,
		Date:        date,
		Location:    req.Location,
		Type:        (*domain.EventType)(req.Type),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Status:      (*domain.EventStatus)(req.Status),
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*ev))
}

func (h EventHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toEventResponse(ev domain.Event) map[string]any {
	return map[string]any{
		"id":          ev.ID,
		"title":       ev.Title,
		"date":        ev.Date.Format(dateLayout),
		"location":    ev.Location,
		"type":        string(ev.Type),
		"clientName":  ev.ClientName,
		"clientEmail": ev.ClientEmail,
		"clientPhone": ev.ClientPhone,
		"status":      string(ev.Status),
		"notes":       ev.Notes,
	}
}
