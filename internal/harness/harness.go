// Package harness scores a unit corpus against reference Battle Values
// and buckets the deviations.
package harness

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

// Bucket classifies the deviation of one unit.
type Bucket string

const (
	BucketExact    Bucket = "exact"
	BucketWithin1  Bucket = "within-1%"
	BucketWithin5  Bucket = "within-5%"
	BucketWithin10 Bucket = "within-10%"
	BucketOver10   Bucket = "over-10%"
	BucketExcluded Bucket = "excluded"
)

// Buckets lists the scored buckets from best to worst.
var Buckets = []Bucket{BucketExact, BucketWithin1, BucketWithin5, BucketWithin10, BucketOver10}

// Exclusion reasons.
const (
	ReasonNoReference     = "no reference BV"
	ReasonBadReference    = "invalid reference BV"
	ReasonNonComputable   = "non-computable"
	ReasonLAM             = "unsupported: LAM"
	ReasonSuperheavy      = "unsupported: superheavy"
	ReasonPatchwork       = "unsupported: patchwork armor"
	ReasonPrototype       = "unsupported: prototype equipment"
	ReasonExplicitExclude = "excluded"
)

// BucketFor returns the bucket for a computed value against a positive
// reference.
func BucketFor(computed, reference int) Bucket {
	diff := computed - reference
	if diff == 0 {
		return BucketExact
	}
	pct := math.Abs(float64(diff)) / float64(reference) * 100
	switch {
	case pct <= 1:
		return BucketWithin1
	case pct <= 5:
		return BucketWithin5
	case pct <= 10:
		return BucketWithin10
	}
	return BucketOver10
}

// Result is the outcome for one unit.
type Result struct {
	UnitID          string              `json:"unit_id"`
	Name            string              `json:"name"`
	Computed        int                 `json:"computed"`
	Reference       int                 `json:"reference"`
	Override        bool                `json:"override,omitempty"`
	AbsDiff         int                 `json:"abs_diff"`
	PctDiff         float64             `json:"pct_diff"`
	Bucket          Bucket              `json:"bucket"`
	ExclusionReason string              `json:"exclusion_reason,omitempty"`
	Breakdown       *bvcalc.Breakdown   `json:"breakdown,omitempty"`
	Unscored        []critscan.Unscored `json:"unscored,omitempty"`
}

// Gates are the minimum shares of evaluated units that must fall within
// 1% and 5% of reference.
type Gates struct {
	Within1 float64 `json:"within_1" yaml:"within_1" mapstructure:"within_1"`
	Within5 float64 `json:"within_5" yaml:"within_5" mapstructure:"within_5"`
}

// DefaultGates are 95% within 1% and 99% within 5%.
var DefaultGates = Gates{Within1: 0.95, Within5: 0.99}

// Counts holds one count per scored bucket.
type Counts struct {
	Exact    int `json:"exact"`
	Within1  int `json:"within_1"`
	Within5  int `json:"within_5"`
	Within10 int `json:"within_10"`
	Over10   int `json:"over_10"`
}

func (c *Counts) add(b Bucket) {
	switch b {
	case BucketExact:
		c.Exact++
	case BucketWithin1:
		c.Within1++
	case BucketWithin5:
		c.Within5++
	case BucketWithin10:
		c.Within10++
	case BucketOver10:
		c.Over10++
	}
}

// Get returns the count for b.
func (c Counts) Get(b Bucket) int {
	switch b {
	case BucketExact:
		return c.Exact
	case BucketWithin1:
		return c.Within1
	case BucketWithin5:
		return c.Within5
	case BucketWithin10:
		return c.Within10
	case BucketOver10:
		return c.Over10
	}
	return 0
}

// Total sums every bucket.
func (c Counts) Total() int {
	return c.Exact + c.Within1 + c.Within5 + c.Within10 + c.Over10
}

// Cumulative holds within-N counts, each including the tighter buckets.
type Cumulative struct {
	Within1  int `json:"within_1"`
	Within5  int `json:"within_5"`
	Within10 int `json:"within_10"`
}

func cumulative(c Counts) Cumulative {
	w1 := c.Exact + c.Within1
	w5 := w1 + c.Within5
	return Cumulative{Within1: w1, Within5: w5, Within10: w5 + c.Within10}
}

// Summary aggregates a run.
type Summary struct {
	Total     int `json:"total"`
	Evaluated int `json:"evaluated"`
	Excluded  int `json:"excluded"`

	// Buckets and Cumulative count units scored against reference data.
	Buckets    Counts     `json:"buckets"`
	Cumulative Cumulative `json:"cumulative"`
	// Overrides counts units scored against the override table.
	Overrides           Counts     `json:"overrides"`
	OverridesCumulative Cumulative `json:"overrides_cumulative"`

	ExcludedBy map[string]int `json:"excluded_by,omitempty"`

	Gates       Gates   `json:"gates"`
	Within1Rate float64 `json:"within_1_rate"`
	Within5Rate float64 `json:"within_5_rate"`
	Passed      bool    `json:"passed"`
}

// Report is the output of Validate. Results are sorted by unit ID.
type Report struct {
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Options configures a Harness.
type Options struct {
	// Workers bounds concurrency. Zero means runtime.NumCPU().
	Workers int
	Gates   Gates
	// Exclusions maps unit IDs to a reason; listed units are not scored.
	Exclusions map[string]string
	Calculator *bvcalc.Calculator
	Normalizer *normalize.Normalizer
	// KeepBreakdowns attaches each unit's Breakdown to its Result.
	KeepBreakdowns bool
	Logger         *slog.Logger
}

// Harness runs the scanner and pipeline over a corpus.
type Harness struct {
	opts Options
}

// New returns a Harness with defaults filled in.
func New(opts Options) *Harness {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Gates == (Gates{}) {
		opts.Gates = DefaultGates
	}
	if opts.Calculator == nil {
		opts.Calculator = bvcalc.New(bvcalc.Options{})
	}
	if opts.Normalizer == nil {
		opts.Normalizer = normalize.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Harness{opts: opts}
}

// Validate scores every unit. reference holds published BV by unit ID;
// overrides holds accepted BV values that take precedence over reference.
// Data problems are classified into results; the only error is ctx's.
func (h *Harness) Validate(ctx context.Context, units []models.Unit, reference, overrides map[string]int) (*Report, error) {
	results := make([]Result, len(units))

	ch := make(chan int)
	var wg sync.WaitGroup
	for range h.opts.Workers {
		wg.Go(func() {
			for i := range ch {
				results[i] = h.score(&units[i], reference, overrides)
			}
		})
	}

	var cancelled error
feed:
	for i := range units {
		if cancelled = ctx.Err(); cancelled != nil {
			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		case ch <- i:
		}
	}
	close(ch)
	wg.Wait()
	if cancelled != nil {
		return nil, cancelled
	}

	sort.Slice(results, func(i, j int) bool { return results[i].UnitID < results[j].UnitID })
	return &Report{Results: results, Summary: summarize(results, h.opts.Gates)}, nil
}

func (h *Harness) score(u *models.Unit, reference, overrides map[string]int) Result {
	r := Result{UnitID: u.ID, Name: u.Name()}

	ref, override := overrides[u.ID]
	if !override {
		var ok bool
		if ref, ok = reference[u.ID]; !ok {
			return exclude(r, ReasonNoReference)
		}
	}
	r.Reference = ref
	r.Override = override
	if ref <= 0 {
		return exclude(r, ReasonBadReference)
	}

	if reason, ok := h.opts.Exclusions[u.ID]; ok {
		if reason == "" {
			reason = ReasonExplicitExclude
		}
		return exclude(r, reason)
	}
	switch {
	case u.Config == models.ConfigLAM:
		return exclude(r, ReasonLAM)
	case u.Superheavy():
		return exclude(r, ReasonSuperheavy)
	case u.ArmorType == models.ArmorPatchwork:
		return exclude(r, ReasonPatchwork)
	}

	scan := critscan.Scan(*u, h.opts.Normalizer)
	if scan.Prototype {
		return exclude(r, ReasonPrototype)
	}
	b, err := h.opts.Calculator.Compute(*u, scan)
	if err != nil {
		if !errors.Is(err, bvcalc.ErrNonComputable) {
			h.opts.Logger.Warn("compute failed", "unit", u.ID, "err", err)
		}
		return exclude(r, ReasonNonComputable)
	}

	r.Computed = b.Total
	diff := b.Total - ref
	r.AbsDiff = int(math.Abs(float64(diff)))
	r.PctDiff = float64(r.AbsDiff) / float64(ref) * 100
	r.Bucket = BucketFor(b.Total, ref)
	r.Unscored = scan.Unscored
	if h.opts.KeepBreakdowns {
		r.Breakdown = &b
	}
	return r
}

func exclude(r Result, reason string) Result {
	r.Bucket = BucketExcluded
	r.ExclusionReason = reason
	return r
}

func summarize(results []Result, gates Gates) Summary {
	s := Summary{Total: len(results), Gates: gates}
	for _, r := range results {
		if r.Bucket == BucketExcluded {
			s.Excluded++
			if s.ExcludedBy == nil {
				s.ExcludedBy = map[string]int{}
			}
			s.ExcludedBy[r.ExclusionReason]++
			continue
		}
		s.Evaluated++
		if r.Override {
			s.Overrides.add(r.Bucket)
		} else {
			s.Buckets.add(r.Bucket)
		}
	}
	s.Cumulative = cumulative(s.Buckets)
	s.OverridesCumulative = cumulative(s.Overrides)

	if s.Evaluated > 0 {
		n := float64(s.Evaluated)
		s.Within1Rate = float64(s.Cumulative.Within1+s.OverridesCumulative.Within1) / n
		s.Within5Rate = float64(s.Cumulative.Within5+s.OverridesCumulative.Within5) / n
	}
	s.Passed = s.Evaluated > 0 && s.Within1Rate >= gates.Within1 && s.Within5Rate >= gates.Within5
	return s
}
