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

type CashHandler struct {
	Repo     repository.CashSessionRepository
	Currency string
}

func (h CashHandler) RegisterRoutes(r chi.Router) {
	r.Get("/cash-sessions", h.list)
	r.Get("/cash-sessions/export", h.export)
	r.Post("/cash-sessions", h.create)
	r.Put("/cash-sessions/{id}", h.update)
	r.Delete("/cash-sessions/{id}", h.delete)
}

func (h CashHandler) list(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	items, err := h.Repo.List(r.Context(), repository.ListCashFilter{From: from, To: to})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := make([]map[string]any, 0, len(items))
	for _, s := range items {
		resp = append(resp, h.toCashResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h CashHandler) create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date          string         `json:"date"`
		OpeningCounts map[string]any `json:"openingCounts"`
		ClosingCounts map[string]any `json:"closingCounts"`
		StallFee      int64          `json:"stallFee"`
		Payouts       int64          `json:"payouts"`
		Notes         string         `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		date = parsed
	}
	if req.StallFee < 0 {
		req.StallFee = 0
	}
	if req.Payouts < 0 {
		req.Payouts = 0
	}

	// Totals are derived here; only the derived components are stored.
	opening := service.DrawerTotal(drawerCounts(req.OpeningCounts))
	closing := service.DrawerTotal(drawerCounts(req.ClosingCounts))

	s, err := h.Repo.Create(r.Context(), repository.CreateCashSessionInput{
		SessionDate:  date,
		OpeningTotal: opening.Amount,
		ClosingTotal: closing.Amount,
		StallFee:     req.StallFee,
		Payouts:      req.Payouts,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.toCashResponse(*s))
}

func (h CashHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req struct {
		Date          *string        `json:"date"`
		OpeningCounts map[string]any `json:"openingCounts"`
		ClosingCounts map[string]any `json:"closingCounts"`
		StallFee      *int64         `json:"stallFee"`
		Payouts       *int64         `json:"payouts"`
		Notes         *string        `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	in := repository.UpdateCashSessionInput{
		StallFee: req.StallFee,
		Payouts:  req.Payouts,
		Notes:    req.Notes,
	}
	if req.Date != nil {
		parsed, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		in.SessionDate = &parsed
	}
	// Resubmitted counts replace the stored derived totals.
	if req.OpeningCounts != nil {
		total := service.DrawerTotal(drawerCounts(req.OpeningCounts)).Amount
		in.OpeningTotal = &total
	}
	if req.ClosingCounts != nil {
		total := service.DrawerTotal(drawerCounts(req.ClosingCounts)).Amount
		in.ClosingTotal = &total
	}
	s, err := h.Repo.Update(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "cash session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.toCashResponse(*s))
}

func (h CashHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "cash session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// drawerCounts coerces a decoded JSON object into denomination counts.
// Entries that are not numbers count as zero.
func drawerCounts(raw map[string]any) map[string]int64 {
	counts := make(map[string]int64, len(raw))
	for face, v := range raw {
		if n, ok := v.(float64); ok {
			counts[face] = int64(n)
		} else {
			counts[face] = 0
		}
	}
	return counts
}

func (h CashHandler) toCashResponse(s domain.CashSession) map[string]any {
	return map[string]any{
		"id":           s.ID,
		"date":         s.SessionDate.Format(dateLayout),
		"openingTotal": s.OpeningTotal.Amount,
		"closingTotal": s.ClosingTotal.Amount,
		"stallFee":     s.StallFee.Amount,
		"payouts":      s.Payouts.Amount,
		"netCash":      service.SessionNetCash(s).Amount,
		"currency":     h.Currency,
		"notes":        s.Notes,
	}
}
