// Package mcpserver exposes Battle Value computation and equipment
// resolution as Model Context Protocol tools.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

// NewMCPServer builds the server without starting it.
func NewMCPServer(n *normalize.Normalizer, calc *bvcalc.Calculator, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"mekbv Battle Value Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{normalizer: n, calc: calc}

	s.AddTool(mcp.NewTool("compute_bv",
		mcp.WithDescription("Compute the Battle Value of a BattleMech and return the phase-by-phase breakdown as JSON."),
		mcp.WithString("mtf", mcp.Description("Contents of a MegaMek .mtf unit file.")),
		mcp.WithString("path", mcp.Description("Path to a .mtf file or a JSON/YAML unit file. Used when mtf is empty.")),
		mcp.WithString("unit_id", mcp.Description("Unit to pick when path holds several units.")),
	), h.handleComputeBV)

	s.AddTool(mcp.NewTool("resolve_equipment",
		mcp.WithDescription("Resolve a free-text equipment name to its canonical catalog ID."),
		mcp.WithString("name", mcp.Description("Equipment name as written in a unit file."), mcp.Required()),
		mcp.WithString("tech_base", mcp.Description("Tech base of the unit the name came from."), mcp.Enum("IS", "Clan", "Mixed")),
		mcp.WithString("location", mcp.Description("Location code the name was found in, such as RT or LA.")),
	), h.handleResolveEquipment)

	return s
}

// Serve runs the server over stdio until stdin closes.
func Serve(_ context.Context, n *normalize.Normalizer, calc *bvcalc.Calculator, version string) error {
	return server.ServeStdio(NewMCPServer(n, calc, version))
}
