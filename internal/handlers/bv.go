// Package handlers serves the Battle Value engine and stored validation
// runs over HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/ingestion"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

// maxUnitBody bounds a posted unit; MTF files with fluff text stay well
// under it.
const maxUnitBody = 1 << 20

type BVHandler struct {
	Normalizer *normalize.Normalizer
	Calc       *bvcalc.Calculator
}

// Compute scores the posted unit and returns its breakdown. The body is a
// JSON unit descriptor, or MTF text when Content-Type is text/plain.
func (h *BVHandler) Compute(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUnitBody+1))
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}
	if len(body) > maxUnitBody {
		http.Error(w, "unit too large", http.StatusRequestEntityTooLarge)
		return
	}

	var u models.Unit
	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		data, err := ingestion.ParseMTFReader(strings.NewReader(string(body)))
		if err != nil {
			http.Error(w, "invalid mtf: "+err.Error(), http.StatusBadRequest)
			return
		}
		u = data.Unit()
	} else if err := json.Unmarshal(body, &u); err != nil {
		http.Error(w, "invalid unit: "+err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.Calc.Compute(u, critscan.Scan(u, h.Normalizer))
	if errors.Is(err, bvcalc.ErrNonComputable) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, b)
}
