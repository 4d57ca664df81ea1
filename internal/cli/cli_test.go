package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/db"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/ingestion"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mul"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

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

Left Arm:
Shoulder
Upper Arm Actuator
Machine Gun

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
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// corpus writes the Locust to a fresh directory and returns the directory
// and the BV the default engine computes for it.
func corpus(t *testing.T) (string, int) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Locust LCT-1V.mtf"), []byte(locustMTF), 0o644))

	data, err := ingestion.ParseMTFReader(strings.NewReader(locustMTF))
	require.NoError(t, err)
	u := data.Unit()
	b, err := bvcalc.Compute(u, critscan.Scan(u, normalize.Default()))
	require.NoError(t, err)
	return dir, b.Total
}

func writeJSON(t *testing.T, path string, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mekbv CLI")
	assert.Contains(t, out, "Runtime:")
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "version", "--output", "xml")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestCompute(t *testing.T) {
	dir, want := corpus(t)
	path := filepath.Join(dir, "Locust LCT-1V.mtf")

	out, err := run(t, "compute", path, "--output", "json")
	require.NoError(t, err)
	var b bvcalc.Breakdown
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	assert.Equal(t, "Locust LCT-1V", b.UnitID)
	assert.Equal(t, want, b.Total)

	out, err = run(t, "compute", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ISMediumLaser")
}

func TestComputePicksUnit(t *testing.T) {
	dir, _ := corpus(t)
	_, err := run(t, "compute", dir)
	require.NoError(t, err, "a directory with one unit needs no --unit")

	_, err = run(t, "compute", dir, "--unit", "Atlas AS7-D")
	assert.ErrorContains(t, err, "not found")
}

func TestResolve(t *testing.T) {
	out, err := run(t, "resolve", "ER Medium Laser", "--tech-base", "Clan")
	require.NoError(t, err)
	assert.Contains(t, out, "CLERMediumLaser")

	out, err = run(t, "resolve", "Medium Laser (R)", "--location", "RT")
	require.NoError(t, err)
	assert.Contains(t, out, "rear")

	_, err = run(t, "resolve", "Medium Laser", "Widget Frobnicator")
	assert.ErrorIs(t, err, normalize.ErrNotFound)

	_, err = run(t, "resolve", "Medium Laser", "--location", "XX")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	dir, want := corpus(t)
	work := t.TempDir()
	ref := writeJSON(t, filepath.Join(work, "reference.json"), map[string]int{"Locust LCT-1V": want})
	outFile := filepath.Join(work, "report.json")
	storePath := filepath.Join(work, "runs.db")

	_, err := run(t, "validate", dir,
		"--reference", ref,
		"--output", "json", "--output-file", outFile,
		"--store-backend", "sqlite", "--store-connect", storePath)
	require.NoError(t, err)

	raw, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var rep harness.Report
	require.NoError(t, json.Unmarshal(raw, &rep))
	require.Len(t, rep.Results, 1)
	assert.Equal(t, harness.BucketExact, rep.Results[0].Bucket)
	assert.True(t, rep.Summary.Passed)

	store, err := db.NewRunStore(config.SQLiteBackend, storePath)
	require.NoError(t, err)
	defer store.Close()
	runs, err := store.Runs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Evaluated)
	assert.True(t, runs[0].Passed)
}

func TestValidateGateFailure(t *testing.T) {
	dir, want := corpus(t)
	work := t.TempDir()
	ref := writeJSON(t, filepath.Join(work, "reference.json"), map[string]int{"Locust LCT-1V": want * 2})

	_, err := run(t, "validate", dir, "--reference", ref, "--output", "csv", "--output-file", filepath.Join(work, "out.csv"))
	assert.ErrorIs(t, err, ErrGatesFailed)
}

func TestValidateOverrideFromTables(t *testing.T) {
	dir, want := corpus(t)
	work := t.TempDir()
	ref := writeJSON(t, filepath.Join(work, "reference.json"), map[string]int{"Locust LCT-1V": want * 2})
	tables := filepath.Join(work, "tables.yaml")
	require.NoError(t, os.WriteFile(tables, []byte("overrides:\n  \"Locust LCT-1V\": "+strconv.Itoa(want)+"\n"), 0o644))

	_, err := run(t, "validate", dir, "--reference", ref, "--tables", tables,
		"--output", "json", "--output-file", filepath.Join(work, "out.json"))
	require.NoError(t, err)
}

func TestValidateNeedsReference(t *testing.T) {
	dir, _ := corpus(t)
	_, err := run(t, "validate", dir)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestAuditFindings(t *testing.T) {
	tables := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(tables, []byte("normalizer:\n  aliases:\n    \"Mystery Gun\": ISMysteryGun\n"), 0o644))

	out, err := run(t, "audit", "--tables", tables)
	assert.ErrorIs(t, err, ErrAuditFindings)
	assert.Contains(t, out, string(normalize.FindingMissingTarget))
	assert.Contains(t, out, "ISMysteryGun")
}

func TestMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	out, err := run(t, "migrate", "--store-backend", "sqlite", "--store-connect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "from version 0 to 3")

	out, err = run(t, "migrate", "--store-backend", "sqlite", "--store-connect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "already at version 3")

	_, err = run(t, "migrate")
	assert.ErrorIs(t, err, db.ErrUnsupportedBackend)
}

func TestFetchReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := mul.QuickListResponse{}
		if r.URL.Query().Get("Name") == "Locust" {
			resp.Units = []mul.Unit{
				{ID: 1, Name: "Locust LCT-1V", BattleValue: 432},
				{ID: 2, Name: "Locust LCT-1M", BattleValue: 553},
			}
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	dir, _ := corpus(t)
	outFile := filepath.Join(t.TempDir(), "reference.json")
	_, err := run(t, "fetch-reference", dir, "--mul-url", srv.URL, "--out", outFile)
	require.NoError(t, err)

	ref, err := config.LoadReference(outFile)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Locust LCT-1V": 432}, ref, "only variants in the corpus are kept")
}
