package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/db"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
)

type RunsHandler struct {
	Store *db.RunStore
}

type RunItem struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Total       int       `json:"total"`
	Evaluated   int       `json:"evaluated"`
	Excluded    int       `json:"excluded"`
	Within1Rate float64   `json:"within_1_rate"`
	Within5Rate float64   `json:"within_5_rate"`
	Passed      bool      `json:"passed"`
}

// List returns stored runs, newest first. ?limit= defaults to 20.
func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	runs, err := h.Store.Runs(r.Context(), limit)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	items := make([]RunItem, 0, len(runs))
	for _, run := range runs {
		items = append(items, RunItem{
			ID:          run.ID.String(),
			StartedAt:   run.StartedAt,
			FinishedAt:  run.FinishedAt,
			Total:       run.Total,
			Evaluated:   run.Evaluated,
			Excluded:    run.Excluded,
			Within1Rate: run.Within1Rate,
			Within5Rate: run.Within5Rate,
			Passed:      run.Passed,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// Results returns the per-unit results of one run. ?bucket= filters.
func (h *RunsHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	results, err := h.Store.Results(r.Context(), id)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if len(results) == 0 {
		http.Error(w, "no results for run", http.StatusNotFound)
		return
	}

	if b := r.URL.Query().Get("bucket"); b != "" {
		filtered := results[:0]
		for _, res := range results {
			if res.Bucket == harness.Bucket(b) {
				filtered = append(filtered, res)
			}
		}
		results = filtered
	}
	if results == nil {
		results = []harness.Result{}
	}
	writeJSON(w, http.StatusOK, results)
}
