package harness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

func unit(id string) models.Unit {
	return models.Unit{
		ID:         id,
		Chassis:    id,
		Tonnage:    100,
		Config:     models.ConfigBiped,
		TechBase:   models.TechIS,
		EngineType: models.EngineFusion,
		ArmorType:  models.ArmorStandard,
		ArmorFront: map[models.Location]int{models.CenterTorso: 200},
	}
}

func computed(t *testing.T, u models.Unit) int {
	t.Helper()
	b, err := bvcalc.Compute(u, critscan.Scan(u, normalize.Default()))
	require.NoError(t, err)
	return b.Total
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		computed, reference int
		want                Bucket
	}{
		{1000, 1000, BucketExact},
		{1010, 1000, BucketWithin1},
		{990, 1000, BucketWithin1},
		{1011, 1000, BucketWithin5},
		{1050, 1000, BucketWithin5},
		{1100, 1000, BucketWithin10},
		{1101, 1000, BucketOver10},
		{10, 1000, BucketOver10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BucketFor(tt.computed, tt.reference), "%d vs %d", tt.computed, tt.reference)
	}
}

func TestValidateBucketsAndExclusions(t *testing.T) {
	base := unit("base")
	c := computed(t, base)
	require.Greater(t, c, 700)

	mk := func(id string, mod func(*models.Unit)) models.Unit {
		u := unit(id)
		if mod != nil {
			mod(&u)
		}
		return u
	}
	units := []models.Unit{
		mk("exact", nil),
		mk("within1", nil),
		mk("within5", nil),
		mk("within10", nil),
		mk("over10", nil),
		mk("override", nil),
		mk("no-ref", nil),
		mk("zero-ref", nil),
		mk("lam", func(u *models.Unit) { u.Config = models.ConfigLAM }),
		mk("superheavy", func(u *models.Unit) { u.Tonnage = 150 }),
		mk("patchwork", func(u *models.Unit) { u.ArmorType = models.ArmorPatchwork }),
		mk("prototype", func(u *models.Unit) {
			u.Crits = map[models.Location][]string{models.RightArm: {"ISERMediumLaserPrototype"}}
		}),
		mk("listed", nil),
		mk("broken", func(u *models.Unit) { u.ArmorFront = nil }),
	}
	reference := map[string]int{
		"exact":      c,
		"within1":    c + 5,
		"within5":    c + 20,
		"within10":   c + 60,
		"over10":     2 * c,
		"override":   c + 500,
		"zero-ref":   0,
		"lam":        c,
		"superheavy": c,
		"patchwork":  c,
		"prototype":  c,
		"listed":     c,
		"broken":     c,
	}
	overrides := map[string]int{"override": c}

	h := New(Options{
		Workers:    3,
		Exclusions: map[string]string{"listed": "bad reference data"},
	})
	rep, err := h.Validate(context.Background(), units, reference, overrides)
	require.NoError(t, err)

	byID := map[string]Result{}
	for i, r := range rep.Results {
		byID[r.UnitID] = r
		if i > 0 {
			assert.Less(t, rep.Results[i-1].UnitID, r.UnitID, "results are sorted by ID")
		}
	}
	require.Len(t, byID, len(units))

	assert.Equal(t, BucketExact, byID["exact"].Bucket)
	assert.Equal(t, BucketWithin1, byID["within1"].Bucket)
	assert.Equal(t, BucketWithin5, byID["within5"].Bucket)
	assert.Equal(t, BucketWithin10, byID["within10"].Bucket)
	assert.Equal(t, BucketOver10, byID["over10"].Bucket)
	assert.Equal(t, 5, byID["within1"].AbsDiff)

	ov := byID["override"]
	assert.True(t, ov.Override)
	assert.Equal(t, c, ov.Reference)
	assert.Equal(t, BucketExact, ov.Bucket)

	reasons := map[string]string{
		"no-ref":     ReasonNoReference,
		"zero-ref":   ReasonBadReference,
		"lam":        ReasonLAM,
		"superheavy": ReasonSuperheavy,
		"patchwork":  ReasonPatchwork,
		"prototype":  ReasonPrototype,
		"listed":     "bad reference data",
		"broken":     ReasonNonComputable,
	}
	for id, reason := range reasons {
		assert.Equal(t, BucketExcluded, byID[id].Bucket, id)
		assert.Equal(t, reason, byID[id].ExclusionReason, id)
	}

	s := rep.Summary
	assert.Equal(t, len(units), s.Total)
	assert.Equal(t, 6, s.Evaluated)
	assert.Equal(t, 8, s.Excluded)
	assert.Equal(t, Counts{Exact: 1, Within1: 1, Within5: 1, Within10: 1, Over10: 1}, s.Buckets)
	assert.Equal(t, Cumulative{Within1: 2, Within5: 3, Within10: 4}, s.Cumulative)
	assert.Equal(t, Counts{Exact: 1}, s.Overrides)
	assert.Equal(t, 1, s.ExcludedBy[ReasonLAM])
	assert.InDelta(t, 0.5, s.Within1Rate, 1e-9)
	assert.False(t, s.Passed)
}

func TestGatesPass(t *testing.T) {
	base := unit("a")
	c := computed(t, base)
	units := []models.Unit{unit("a"), unit("b"), unit("c")}
	reference := map[string]int{"a": c, "b": c, "c": c}

	rep, err := New(Options{Workers: 2}).Validate(context.Background(), units, reference, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultGates, rep.Summary.Gates)
	assert.True(t, rep.Summary.Passed)
	assert.Equal(t, 1.0, rep.Summary.Within5Rate)
}

func TestCustomGates(t *testing.T) {
	c := computed(t, unit("a"))
	units := []models.Unit{unit("a"), unit("b")}
	reference := map[string]int{"a": c, "b": 2 * c}

	rep, err := New(Options{Gates: Gates{Within1: 0.5, Within5: 0.5}}).Validate(context.Background(), units, reference, nil)
	require.NoError(t, err)
	assert.True(t, rep.Summary.Passed)
}

func TestValidateIsDeterministic(t *testing.T) {
	c := computed(t, unit("a"))
	var units []models.Unit
	reference := map[string]int{}
	for _, id := range []string{"d", "b", "a", "c", "e"} {
		units = append(units, unit(id))
		reference[id] = c + len(id)
	}

	first, err := New(Options{Workers: 4}).Validate(context.Background(), units, reference, nil)
	require.NoError(t, err)
	second, err := New(Options{Workers: 1}).Validate(context.Background(), units, reference, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Options{}).Validate(ctx, []models.Unit{unit("a")}, map[string]int{"a": 1000}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeepBreakdowns(t *testing.T) {
	c := computed(t, unit("a"))
	rep, err := New(Options{KeepBreakdowns: true}).Validate(context.Background(), []models.Unit{unit("a")}, map[string]int{"a": c}, nil)
	require.NoError(t, err)
	require.NotNil(t, rep.Results[0].Breakdown)
	assert.Equal(t, c, rep.Results[0].Breakdown.Total)
}
