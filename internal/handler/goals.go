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

const monthLayout = "2006-01"

type GoalHandler struct {
	Repo repository.GoalRepository
}

func (h GoalHandler) RegisterRoutes(r chi.Router) {
	r.Get("/goals", h.list)
	r.Post("/goals", h.create)
	r.Put("/goals/{id}", h.update)
	r.Put("/goals/{id}/toggle", h.toggle)
	r.Delete("/goals/{id}", h.delete)
}

// list returns active goals grouped by month plus the completed partition.
func (h GoalHandler) list(w http.ResponseWriter, r *http.Request) {
	goals, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	buckets := service.GroupActiveGoalsByMonth(goals)
	active := make([]map[string]any, 0, len(buckets))
	for _, b := range buckets {
		group := make([]map[string]any, 0, len(b.Goals))
		for _, g := range b.Goals {
			group = append(group, toGoalResponse(g))
		}
		active = append(active, map[string]any{
			"month": b.Month,
			"goals": group,
		})
	}

	done := service.CompletedGoals(goals)
	completed := make([]map[string]any, 0, len(done))
	for _, g := range done {
		completed = append(completed, toGoalResponse(g))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"active":    active,
		"completed": completed,
	})
}

func (h GoalHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
		Month string `json:"month"`
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Month == "" {
		req.Month = time.Now().Format(monthLayout)
	} else if _, err := time.Parse(monthLayout, req.Month); err != nil {
		writeError(w, http.StatusBadRequest, "invalid month (use YYYY-MM)")
		return
	}
	g, err := h.Repo.Create(r.Context(), repository.CreateGoalInput{
		Title: req.Title,
		Month: req.Month,
		Notes: req.Notes,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(*g))
}

func (h GoalHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		Title  *string `json:"title"`
		Month  *string `json:"month"`
		IsDone *bool   `json:"isDone"`
		Notes  *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Month != nil {
		if _, err := time.Parse(monthLayout, *req.Month); err != nil {
			writeError(w, http.StatusBadRequest, "invalid month (use YYYY-MM)")
			return
		}
	}
	g, err := h.Repo.Update(r.Context(), id, repository.UpdateGoalInput{
		Title:  req.Title,
		Month:  req.Month,
		IsDone: req.IsDone,
		Notes:  req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "goal not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(*g))
}

func (h GoalHandler) toggle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	g, err := h.Repo.ToggleDone(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "goal not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toGoalResponse(*g))
}

func (h GoalHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "goal not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toGoalResponse(g domain.Goal) map[string]any {
	return map[string]any{
		"id":     g.ID,
		"title":  g.Title,
		"month":  g.Month,
		"isDone": g.IsDone,
		"notes":  g.Notes,
	}
}
