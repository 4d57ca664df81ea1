package mcpserver_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/ingestion"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mcpserver"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

const locustMTF = `chassis:Locust
model:LCT-1V
Config:Biped
techbase:Inner Sphere
mass:20
engine:160 Fusion Engine
structure:IS Standard
heat sinks:10 Single
walk mp:8
jump mp:0
armor:Standard(Inner Sphere)
LA armor:4
RA armor:4
LT armor:8
RT armor:8
CT armor:10
HD armor:8
LL armor:8
RL armor:8
RTL armor:2
RTR armor:2
RTC armor:2

Center Torso:
Fusion Engine
Fusion Engine
Fusion Engine
Gyro
Gyro
Gyro
Gyro
Fusion Engine
Fusion Engine
Fusion Engine
Medium Laser
IS Ammo MG - Full
`

func call(t *testing.T, tool string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcpserver.NewMCPServer(normalize.Default(), bvcalc.New(bvcalc.Options{}), "test")
	st := s.GetTool(tool)
	require.NotNil(t, st, "tool %s should exist", tool)

	res, err := st.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: tool, Arguments: args},
	})
	require.NoError(t, err, "tool failures are reported in the result")
	require.NotEmpty(t, res.Content)
	return res
}

func text(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

func expectedTotal(t *testing.T) int {
	t.Helper()
	data, err := ingestion.ParseMTFReader(strings.NewReader(locustMTF))
	require.NoError(t, err)
	u := data.Unit()
	b, err := bvcalc.Compute(u, critscan.Scan(u, normalize.Default()))
	require.NoError(t, err)
	return b.Total
}

func TestComputeBVFromMTF(t *testing.T) {
	res := call(t, "compute_bv", map[string]any{"mtf": locustMTF})
	require.False(t, res.IsError, text(res))

	var b bvcalc.Breakdown
	require.NoError(t, json.Unmarshal([]byte(text(res)), &b))
	assert.Equal(t, "Locust LCT-1V", b.UnitID)
	assert.Equal(t, expectedTotal(t), b.Total)
	assert.Positive(t, b.Total)
}

func TestComputeBVFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Locust LCT-1V.mtf")
	require.NoError(t, os.WriteFile(path, []byte(locustMTF), 0o644))

	res := call(t, "compute_bv", map[string]any{"path": path})
	require.False(t, res.IsError, text(res))
	assert.Contains(t, text(res), `"unit_id": "Locust LCT-1V"`)
}

func TestComputeBVErrors(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"no input", map[string]any{}, "one of mtf or path is required"},
		{"bad mtf", map[string]any{"mtf": "mass:20\n"}, "invalid mtf"},
		{"missing file", map[string]any{"path": "/does/not/exist.json"}, "load"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := call(t, "compute_bv", tt.args)
			assert.True(t, res.IsError)
			assert.Contains(t, text(res), tt.want)
		})
	}
}

func TestComputeBVPicksUnitFromList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	src := "- id: A\n  tonnage: 20\n  armor_front: {CT: 4}\n- id: B\n  tonnage: 25\n  armor_front: {CT: 6}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	res := call(t, "compute_bv", map[string]any{"path": path})
	assert.True(t, res.IsError)
	assert.Contains(t, text(res), "set unit_id")

	res = call(t, "compute_bv", map[string]any{"path": path, "unit_id": "B"})
	require.False(t, res.IsError, text(res))
	assert.Contains(t, text(res), `"unit_id": "B"`)
}

func TestResolveEquipment(t *testing.T) {
	res := call(t, "resolve_equipment", map[string]any{"name": "ER Medium Laser", "tech_base": "Clan"})
	require.False(t, res.IsError, text(res))

	var r map[string]any
	require.NoError(t, json.Unmarshal([]byte(text(res)), &r))
	assert.Equal(t, "CLERMediumLaser", r["id"])
	assert.NotEmpty(t, r["stage"])

	res = call(t, "resolve_equipment", map[string]any{"name": "Medium Laser (R)", "location": "RT"})
	require.False(t, res.IsError, text(res))
	assert.Contains(t, text(res), `"rear": true`)
}

func TestResolveEquipmentErrors(t *testing.T) {
	res := call(t, "resolve_equipment", map[string]any{"name": ""})
	assert.True(t, res.IsError)
	assert.Contains(t, text(res), "name is required")

	res = call(t, "resolve_equipment", map[string]any{"name": "Medium Laser", "location": "XX"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(res), "unknown location")

	res = call(t, "resolve_equipment", map[string]any{"name": "Widget Frobnicator"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(res), "not found")
}
