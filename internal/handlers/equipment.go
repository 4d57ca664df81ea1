package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

type EquipmentHandler struct {
	Catalog    *catalog.Catalog
	Normalizer *normalize.Normalizer
}

type EquipmentName struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	TechBase models.TechBase  `json:"tech_base"`
	BV       float64          `json:"bv"`
}

// Names lists catalog entries, filtered by a case-insensitive substring
// of the ID or name when q is set.
func (h *EquipmentHandler) Names(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))

	names := []EquipmentName{}
	for _, e := range h.Catalog.Entries() {
		if q != "" && !strings.Contains(strings.ToLower(e.ID), q) && !strings.Contains(strings.ToLower(e.Name), q) {
			continue
		}
		names = append(names, EquipmentName{ID: e.ID, Name: e.Name, Category: e.Category, TechBase: e.TechBase, BV: e.BV})
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Name < names[j].Name })
	if q != "" && len(names) > 50 {
		names = names[:50]
	}
	writeJSON(w, http.StatusOK, names)
}

type Resolution struct {
	Name     string           `json:"name"`
	ID       string           `json:"id"`
	Category catalog.Category `json:"category"`
	Stage    string           `json:"stage"`
	Rear     bool             `json:"rear,omitempty"`
	Half     bool             `json:"half,omitempty"`
	Fallback bool             `json:"fallback,omitempty"`
}

// Resolve maps ?name= to a catalog ID. tech_base and location narrow the
// lookup the same way a unit file does.
func (h *EquipmentHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")
	if strings.TrimSpace(name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	ctx := normalize.Context{TechBase: models.ParseTechBase(q.Get("tech_base"))}
	if code := q.Get("location"); code != "" {
		loc, ok := models.ParseLocation(code)
		if !ok {
			http.Error(w, "unknown location", http.StatusBadRequest)
			return
		}
		ctx.Location = loc
	}

	res, err := h.Normalizer.Resolve(name, ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, Resolution{
		Name:     name,
		ID:       res.ID,
		Category: res.Entry.Category,
		Stage:    res.Stage.String(),
		Rear:     res.Rear,
		Half:     res.Half,
		Fallback: res.Fallback,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
