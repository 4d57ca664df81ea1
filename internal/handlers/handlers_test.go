package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/db"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

const waspMTF = `chassis:Wasp
model:WSP-1A
Config:Biped
techbase:Inner Sphere
mass:20
engine:120 Fusion Engine
structure:IS Standard
heat sinks:10 Single
walk mp:6
jump mp:6
armor:Standard(Inner Sphere)
LA armor:5
RA armor:5
LT armor:7
RT armor:7
CT armor:10
HD armor:7
LL armor:6
RL armor:6
RTL armor:2
RTR armor:2
RTC armor:2

Right Arm:
Shoulder
Upper Arm Actuator
Lower Arm Actuator
Medium Laser
`

func newServer(t *testing.T, store *db.RunStore) *httptest.Server {
	t.Helper()
	n := normalize.Default()
	var runs *RunsHandler
	if store != nil {
		runs = &RunsHandler{Store: store}
	}
	mux := NewMux(
		&BVHandler{Normalizer: n, Calc: bvcalc.New(bvcalc.Options{})},
		&EquipmentHandler{Catalog: catalog.Default(), Normalizer: n},
		runs,
	)
	srv := httptest.NewServer(CORS([]string{"http://localhost:5173"}, Logging(slog.New(slog.NewTextHandler(io.Discard, nil)), mux)))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealthz(t *testing.T) {
	srv := newServer(t, nil)
	resp, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestComputeMTF(t *testing.T) {
	srv := newServer(t, nil)
	resp, err := http.Post(srv.URL+"/api/bv", "text/plain; charset=utf-8", strings.NewReader(waspMTF))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var b bvcalc.Breakdown
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&b))
	assert.Equal(t, "Wasp WSP-1A", b.UnitID)
	assert.Positive(t, b.Total)
	require.Len(t, b.Weapons, 1)
	assert.Equal(t, "ISMediumLaser", b.Weapons[0].ID)
}

func TestComputeErrors(t *testing.T) {
	srv := newServer(t, nil)
	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
	}{
		{"bad json", "application/json", "{", http.StatusBadRequest},
		{"bad mtf", "text/plain", "mass:20\n", http.StatusBadRequest},
		{"no tonnage", "application/json", `{"id": "Nothing"}`, http.StatusUnprocessableEntity},
		{"too large", "text/plain", strings.Repeat("x", maxUnitBody+1), http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/bv", tt.contentType, strings.NewReader(tt.body))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestEquipmentNames(t *testing.T) {
	srv := newServer(t, nil)
	resp, body := get(t, srv.URL+"/api/equipment?q=medium%20laser")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var names []EquipmentName
	require.NoError(t, json.Unmarshal(body, &names))
	require.NotEmpty(t, names)
	ids := map[string]bool{}
	for _, n := range names {
		ids[n.ID] = true
		assert.Contains(t, strings.ToLower(n.Name+n.ID), "medium")
	}
	assert.True(t, ids["ISMediumLaser"])
}

func TestResolve(t *testing.T) {
	srv := newServer(t, nil)

	resp, body := get(t, srv.URL+"/api/equipment/resolve?name=ER+Medium+Laser&tech_base=Clan")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	var res Resolution
	require.NoError(t, json.Unmarshal(body, &res))
	assert.Equal(t, "CLERMediumLaser", res.ID)

	resp, _ = get(t, srv.URL+"/api/equipment/resolve")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/api/equipment/resolve?name=Medium+Laser&location=XX")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/api/equipment/resolve?name=Widget+Frobnicator")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRuns(t *testing.T) {
	ctx := context.Background()
	store, err := db.NewRunStore(config.SQLiteBackend, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	results := []harness.Result{
		{UnitID: "Atlas AS7-D", Name: "Atlas AS7-D", Computed: 1897, Reference: 1897, Bucket: harness.BucketExact},
		{UnitID: "Locust LCT-1V", Name: "Locust LCT-1V", Computed: 440, Reference: 432, AbsDiff: 8, PctDiff: 1.85, Bucket: harness.BucketWithin5},
	}
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	run, err := db.NewRun(start, start.Add(time.Second), harness.Summary{Total: 2, Evaluated: 2, Within1Rate: 0.5, Within5Rate: 1}, nil)
	require.NoError(t, err)
	require.NoError(t, store.SaveRun(ctx, run, results))

	srv := newServer(t, store)

	resp, body := get(t, srv.URL+"/api/runs")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []RunItem
	require.NoError(t, json.Unmarshal(body, &items))
	require.Len(t, items, 1)
	assert.Equal(t, run.ID.String(), items[0].ID)
	assert.Equal(t, 0.5, items[0].Within1Rate)

	resp, _ = get(t, srv.URL+"/api/runs?limit=zero")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = get(t, srv.URL+"/api/runs/"+run.ID.String()+"/results?bucket=within-5%25")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got []harness.Result
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Locust LCT-1V", got[0].UnitID)

	resp, _ = get(t, srv.URL+"/api/runs/not-a-uuid/results")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = get(t, srv.URL+"/api/runs/"+uuid.NewString()+"/results")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRunsDisabledWithoutStore(t *testing.T) {
	srv := newServer(t, nil)
	resp, _ := get(t, srv.URL+"/api/runs")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	srv := newServer(t, nil)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/bv", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.example")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
