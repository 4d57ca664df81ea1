package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/ingestion"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

// toolHandler holds the shared, read-only engine.
type toolHandler struct {
	normalizer *normalize.Normalizer
	calc       *bvcalc.Calculator
}

func (h *toolHandler) handleComputeBV(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	u, err := h.unitFromRequest(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, err := h.calc.Compute(u, critscan.Scan(u, h.normalizer))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("compute failed: %v", err)), nil
	}
	jsonData, _ := json.MarshalIndent(b, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) unitFromRequest(ctx context.Context, request mcp.CallToolRequest) (models.Unit, error) {
	if src := request.GetString("mtf", ""); strings.TrimSpace(src) != "" {
		data, err := ingestion.ParseMTFReader(strings.NewReader(src))
		if err != nil {
			return models.Unit{}, fmt.Errorf("invalid mtf: %w", err)
		}
		return data.Unit(), nil
	}

	path := request.GetString("path", "")
	if path == "" {
		return models.Unit{}, fmt.Errorf("one of mtf or path is required")
	}
	units, failed, err := ingestion.Load(ctx, path)
	if err != nil {
		return models.Unit{}, fmt.Errorf("load %s: %w", path, err)
	}
	if len(failed) > 0 {
		return models.Unit{}, fmt.Errorf("load %s: %w", path, failed[0])
	}

	id := request.GetString("unit_id", "")
	switch {
	case id != "":
		for _, u := range units {
			if u.ID == id {
				return u, nil
			}
		}
		return models.Unit{}, fmt.Errorf("unit %q not found in %s", id, path)
	case len(units) == 1:
		return units[0], nil
	}
	return models.Unit{}, fmt.Errorf("%s holds %d units; set unit_id", path, len(units))
}

// resolution is the JSON shape of a resolve_equipment result.
type resolution struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category catalog.Category `json:"category"`
	Stage    string           `json:"stage"`
	Rear     bool             `json:"rear,omitempty"`
	Half     bool             `json:"half,omitempty"`
	Fallback bool             `json:"fallback,omitempty"`
}

func (h *toolHandler) handleResolveEquipment(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if strings.TrimSpace(name) == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	nctx := normalize.Context{TechBase: models.TechIS}
	if tb := request.GetString("tech_base", ""); tb != "" {
		nctx.TechBase = models.ParseTechBase(tb)
	}
	if code := request.GetString("location", ""); code != "" {
		loc, ok := models.ParseLocation(code)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown location %q", code)), nil
		}
		nctx.Location = loc
	}

	r, err := h.normalizer.Resolve(name, nctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	jsonData, _ := json.MarshalIndent(resolution{
		ID:       r.ID,
		Name:     r.Entry.Name,
		Category: r.Entry.Category,
		Stage:    r.Stage.String(),
		Rear:     r.Rear,
		Half:     r.Half,
		Fallback: r.Fallback,
	}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
