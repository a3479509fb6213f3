package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cartdesk-backend/internal/domain"
	"cartdesk-backend/internal/repository"
	"cartdesk-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type InventoryHandler struct {
	Repo repository.InventoryRepository
}

func (h InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/inventory", h.list)
	r.Post("/inventory", h.create)
	r.Put("/inventory/{id}", h.update)
	r.Delete("/inventory/{id}", h.delete)
	r.Post("/inventory/{id}/adjust", h.adjust)
	r.Get("/inventory/{id}/history", h.history)
}

func (h InventoryHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.Repo.List(r.Context(), 500)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, it := range items {
		resp = append(resp, toInventoryResponse(it))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h InventoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name             string `json:"name"`
		Category         string `json:"category"`
		Unit             string `json:"unit"`
		Quantity         int    `json:"quantity"`
		ReorderThreshold int    `json:"reorderThreshold"`
		Notes            string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Category == "" {
		req.Category = string(domain.CategoryOther)
	}
	if req.Quantity < 0 {
		req.Quantity = 0
	}
	if req.ReorderThreshold < 0 {
		req.ReorderThreshold = 0
	}
	item, err := h.Repo.Create(r.Context(), repository.CreateInventoryInput{
		Name:             req.Name,
		Category:         domain.InventoryCategory(req.Category),
		Unit:             req.Unit,
		Quantity:         req.Quantity,
		ReorderThreshold: req.ReorderThreshold,
		Notes:            req.Notes,
	})
	if err != nil {
		if repository.IsDuplicate(err) {
			writeError(w, http.StatusConflict, "an item with that name already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toInventoryResponse(*item))
}

func (h InventoryHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		Name             *string `json:"name"`
		Category         *string `json:"category"`
		Unit             *string `json:"unit"`
		Quantity         *int    `json:"quantity"`
		ReorderThreshold *int    `json:"reorderThreshold"`
		Notes            *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	item, err := h.Repo.Update(r.Context(), id, repository.UpdateInventoryInput{
		Name:             req.Name,
		Category:         (*domain.InventoryCategory)(req.Category),
		Unit:             req.Unit,
		Quantity:         req.Quantity,
		ReorderThreshold: req.ReorderThreshold,
		Notes:            req.Notes,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toInventoryResponse(*item))
}

func (h InventoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h InventoryHandler) adjust(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		Change int    `json:"change"`
		Kind   string `json:"kind"`
		Note   string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Kind == "" {
		req.Kind = "adjust"
	}
	item, err := h.Repo.Adjust(r.Context(), repository.AdjustInventoryInput{
		ItemID: id,
		Change: req.Change,
		Kind:   req.Kind,
		Note:   req.Note,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toInventoryResponse(*item))
}

func (h InventoryHandler) history(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	items, err := h.Repo.History(r.Context(), id, limit)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, a := range items {
		resp = append(resp, map[string]any{
			"id":        a.ID,
			"change":    a.Change,
			"remaining": a.Remaining,
			"kind":      a.Kind,
			"note":      a.Note,
			"createdAt": a.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toInventoryResponse(it domain.InventoryItem) map[string]any {
	return map[string]any{
		"id":               it.ID,
		"name":             it.Name,
		"category":         string(it.Category),
		"unit":             it.Unit,
		"quantity":         it.Quantity,
		"reorderThreshold": it.ReorderThreshold,
		"notes":            it.Notes,
		"low":              service.IsLow(it),
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
