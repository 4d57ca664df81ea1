// Package mul fetches reference Battle Values from the Master Unit List
// QuickList API.
package mul

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

type QuickListResponse struct {
	Units []Unit `json:"Units"`
}

type Unit struct {
	ID          int    `json:"Id"`
	Name        string `json:"Name"`
	BattleValue int    `json:"BattleValue"`
	Role        Role   `json:"Role"`
}

type Role struct {
	Name string `json:"Name"`
}

// Client queries the QuickList endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Delay is the pause between consecutive requests in Fetch.
	Delay  time.Duration
	Logger *slog.Logger
}

// New returns a client with a 15 second timeout and a 200ms request delay.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Delay:   200 * time.Millisecond,
		Logger:  slog.Default(),
	}
}

// QuickList returns every unit whose name matches name.
func (c *Client) QuickList(ctx context.Context, name string) ([]Unit, error) {
	apiURL := c.BaseURL + "/Unit/QuickList?Name=" + url.QueryEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %q: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %q: status %s", name, resp.Status)
	}

	var out QuickListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	return out.Units, nil
}

// Stats summarizes a Fetch.
type Stats struct {
	Queried int
	Matched int
	Errors  int
}

// Fetch queries every chassis name and returns published BV keyed by unit
// name. When want is non-empty only those names are kept. Per-chassis
// failures are logged and counted; only ctx cancellation aborts.
func (c *Client) Fetch(ctx context.Context, chassis []string, want map[string]bool, progress func(done, total int)) (map[string]int, Stats, error) {
	names := dedupe(chassis)
	ref := map[string]int{}
	var st Stats

	for i, name := range names {
		if i > 0 && c.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, st, ctx.Err()
			case <-time.After(c.Delay):
			}
		}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}

		st.Queried++
		units, err := c.QuickList(ctx, name)
		if err != nil {
			if ctx.Err() != nil {
				return nil, st, ctx.Err()
			}
			c.Logger.Warn("quicklist failed", "chassis", name, "err", err)
			st.Errors++
		}
		for _, u := range units {
			if u.BattleValue <= 0 {
				continue
			}
			if len(want) > 0 && !want[u.Name] {
				continue
			}
			ref[u.Name] = u.BattleValue
			st.Matched++
		}
		if progress != nil {
			progress(i+1, len(names))
		}
	}
	return ref, st, nil
}

func dedupe(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
