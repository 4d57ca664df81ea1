package mul

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	data := map[string][]Unit{
		"Atlas": {
			{ID: 1, Name: "Atlas AS7-D", BattleValue: 1897, Role: Role{Name: "Juggernaut"}},
			{ID: 2, Name: "Atlas AS7-K", BattleValue: 2175},
			{ID: 3, Name: "Atlas AS7-X", BattleValue: 0},
		},
		"Locust": {{ID: 4, Name: "Locust LCT-1V", BattleValue: 432}},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		if r.URL.Path != "/Unit/QuickList" {
			http.NotFound(w, r)
			return
		}
		name := r.URL.Query().Get("Name")
		if name == "Broken" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(QuickListResponse{Units: data[name]})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func client(url string) *Client {
	c := New(url)
	c.Delay = 0
	c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return c
}

func TestQuickList(t *testing.T) {
	srv := testServer(t, nil)
	units, err := client(srv.URL).QuickList(context.Background(), "Atlas")
	require.NoError(t, err)
	require.Len(t, units, 3)
	assert.Equal(t, "Juggernaut", units[0].Role.Name)

	_, err = client(srv.URL).QuickList(context.Background(), "Broken")
	assert.ErrorContains(t, err, "500")
}

func TestFetch(t *testing.T) {
	var hits atomic.Int32
	srv := testServer(t, &hits)

	var calls []int
	ref, st, err := client(srv.URL).Fetch(context.Background(),
		[]string{"Locust", "Atlas", "Broken", "Atlas", " "}, nil,
		func(done, total int) { calls = append(calls, done*10+total) })
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Atlas AS7-D": 1897, "Atlas AS7-K": 2175, "Locust LCT-1V": 432}, ref)
	assert.Equal(t, Stats{Queried: 3, Matched: 3, Errors: 1}, st)
	assert.Equal(t, int32(3), hits.Load(), "duplicates are queried once")
	assert.Equal(t, []int{13, 23, 33}, calls)
}

func TestFetchFiltersWanted(t *testing.T) {
	srv := testServer(t, nil)
	ref, _, err := client(srv.URL).Fetch(context.Background(), []string{"Atlas"}, map[string]bool{"Atlas AS7-K": true}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Atlas AS7-K": 2175}, ref)
}

func TestFetchCancelled(t *testing.T) {
	srv := testServer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := client(srv.URL).Fetch(ctx, []string{"Atlas"}, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
