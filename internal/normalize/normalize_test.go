package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

var (
	isCtx    = Context{TechBase: models.TechIS}
	clanCtx  = Context{TechBase: models.TechClan}
	mixedCtx = Context{TechBase: models.TechMixed}
)

func TestAliasBeatsNameMap(t *testing.T) {
	cat := catalog.MustNew([]catalog.Entry{
		{ID: "A", Name: "Thing", Category: catalog.CategoryEquipment, TechBase: models.TechIS},
		{ID: "B", Name: "Other", Category: catalog.CategoryEquipment, TechBase: models.TechIS},
	})
	n := New(cat, Tables{Aliases: map[string]string{"Thing": "B"}})

	r, err := n.Resolve("Thing", isCtx)
	require.NoError(t, err)
	assert.Equal(t, "B", r.ID)
	assert.Equal(t, StageAlias, r.Stage)

	r, err = n.Resolve("thing", isCtx)
	require.NoError(t, err)
	assert.Equal(t, "A", r.ID, "aliases are exact spellings")
	assert.Equal(t, StageNameMap, r.Stage)
}

func TestTechScoping(t *testing.T) {
	n := Default()
	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{"ER Medium Laser", isCtx, "ISERMediumLaser"},
		{"ER Medium Laser", clanCtx, "CLERMediumLaser"},
		{"ER Medium Laser", mixedCtx, "ISERMediumLaser"},
		{"CASE", isCtx, catalog.IDCASE},
		{"CASE", clanCtx, catalog.IDClanCASE},
		{"CLERMediumLaser", isCtx, "CLERMediumLaser"},
		{"clermediumlaser", isCtx, "CLERMediumLaser"},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+string(tt.ctx.TechBase), func(t *testing.T) {
			r, err := n.Resolve(tt.name, tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.ID)
		})
	}
}

func TestRearMarker(t *testing.T) {
	n := Default()
	for _, raw := range []string{"Medium Laser (R)", "medium laser (REAR)", "ISMediumLaser (r)"} {
		r, err := n.Resolve(raw, Context{TechBase: models.TechIS, Location: models.CenterTorso})
		require.NoError(t, err, raw)
		assert.Equal(t, "ISMediumLaser", r.ID, raw)
		assert.True(t, r.Rear, raw)
		assert.Equal(t, StageOrientation, r.Stage, raw)
	}

	r, err := n.Resolve("Medium Laser (R)", Context{TechBase: models.TechIS, Location: models.LeftArm})
	require.NoError(t, err)
	assert.False(t, r.Rear, "rear mounting only applies to torsos")

	r, err = n.Resolve("Medium Laser (OmniPod)", isCtx)
	require.NoError(t, err)
	assert.Equal(t, "ISMediumLaser", r.ID)
	assert.False(t, r.Rear)
}

func TestLooseMatching(t *testing.T) {
	n := Default()

	r, err := n.Resolve("Laser Medium", isCtx)
	require.NoError(t, err)
	assert.Equal(t, "ISMediumLaser", r.ID)
	assert.Equal(t, StageWordOrder, r.Stage)

	for _, raw := range []string{"LRM-20", "LRM20", "lrm 20"} {
		r, err := n.Resolve(raw, isCtx)
		require.NoError(t, err, raw)
		assert.Equal(t, "ISLRM20", r.ID, raw)
	}

	r, err = n.Resolve("LRM-20", isCtx)
	require.NoError(t, err)
	assert.Equal(t, StageRackSize, r.Stage)

	r, err = n.Resolve("AC 20", isCtx)
	require.NoError(t, err)
	assert.Equal(t, "ISAC20", r.ID)
}

func TestHalfTon(t *testing.T) {
	n := Default()
	for _, raw := range []string{"IS Ammo LRM-20 (Half)", "IS Ammo LRM-20 - Half", "IS Ammo LRM-20 (1/2)"} {
		r, err := n.Resolve(raw, isCtx)
		require.NoError(t, err, raw)
		assert.Equal(t, "IS Ammo LRM-20", r.ID, raw)
		assert.True(t, r.Half, raw)
		assert.Equal(t, StageHalfTon, r.Stage, raw)
	}

	_, err := n.Resolve("Medium Laser Half", isCtx)
	assert.ErrorIs(t, err, ErrNotFound, "half-ton suffix only applies to ammo")

	ltCtx := Context{TechBase: models.TechIS, Location: models.LeftTorso}
	tests := []struct {
		raw  string
		want string
		half bool
	}{
		{"IS Machine Gun Ammo - Half", "IS Ammo MG", true},
		{"Clan Machine Gun Ammo - Half", "Clan Ammo MG", true},
		{"IS Heavy Machine Gun Ammo - Half", "IS Ammo Heavy MG", true},
		{"IS LB 10-X Cluster Ammo - Half", "IS Ammo LB 10-X AC", true},
		{"ISMG Ammo (100)", "IS Ammo MG", true},
		{"ISMG Ammo (200)", "IS Ammo MG", false},
		{"ISHeavyMG Ammo (50)", "IS Ammo Heavy MG", true},
		{"ISHeavyMG Ammo (100)", "IS Ammo Heavy MG", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r, err := n.Resolve(tt.raw, ltCtx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.ID)
			assert.Equal(t, tt.half, r.Half)
			assert.Equal(t, StageHalfTon, r.Stage)
		})
	}

	_, err = n.Resolve("ISMG Ammo (150)", isCtx)
	assert.ErrorIs(t, err, ErrNotFound, "shot count must be a full or half bin")
}

func TestFamilyPatterns(t *testing.T) {
	n := Default()
	tests := []struct {
		raw  string
		ctx  Context
		want string
	}{
		{"ER Med Laser", clanCtx, "CLERMediumLaser"},
		{"UAC/5", isCtx, "ISUltraAC5"},
		{"CL U-AC/20", isCtx, "CLUltraAC20"},
		{"RAC/5", isCtx, "ISRotaryAC5"},
		{"LB10X", isCtx, "ISLBXAC10"},
		{"StreakSRM4", clanCtx, "CLStreakSRM4"},
		{"HPPC", isCtx, "ISHeavyPPC"},
		{"ISLRM20 Ammo", isCtx, "IS Ammo LRM-20"},
		{"HMG", isCtx, "ISHeavyMG"},
		{"Clan Machine Gun", isCtx, "CLMG"},
		{"IS Machine Gun Ammo", isCtx, "IS Ammo MG"},
		{"IS Light Machine Gun Ammo", isCtx, "IS Ammo Light MG"},
		{"IS LB 10-X Cluster Ammo", isCtx, "IS Ammo LB 10-X AC"},
		{"IS Ammo MML-7 LRM", isCtx, "IS Ammo MML-7"},
		{"IS Ammo MML-7 SRM", isCtx, "IS Ammo MML-7"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r, err := n.Resolve(tt.raw, tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.ID)
			assert.Equal(t, StagePattern, r.Stage)
		})
	}
}

func TestCatalogWeaponNames(t *testing.T) {
	n := Default()
	tests := []struct {
		raw  string
		ctx  Context
		want string
	}{
		{"ISSnubNosePPC", isCtx, "ISSNPPC"},
		{"ISLightAC5", isCtx, "ISLAC5"},
		{"ISLargeXPulseLaser", isCtx, "ISLargeXPulseLaser"},
		{"Small X-Pulse Laser", isCtx, "ISSmallXPulseLaser"},
		{"Medium VSP Laser", isCtx, "ISMediumVSPLaser"},
		{"Large VSP Laser", isCtx, "ISLargeVSPLaser"},
		{"Improved Heavy Medium Laser", clanCtx, "CLImprovedHeavyMediumLaser"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r, err := n.Resolve(tt.raw, tt.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.ID)
			assert.False(t, r.Fallback)
		})
	}
}

func TestFallback(t *testing.T) {
	n := Default()
	r, err := n.Resolve("Binary Laser (Blazer) Cannon", isCtx)
	require.NoError(t, err)
	assert.Equal(t, "ISBlazer", r.ID)
	assert.True(t, r.Fallback)
	assert.Equal(t, StageFallback, r.Stage)
	assert.Equal(t, 222.0, r.Entry.BV)

	r, err = n.Resolve("ISERMediumLaserPrototype", isCtx)
	require.NoError(t, err)
	assert.True(t, r.Entry.Prototype)
}

func TestNotFound(t *testing.T) {
	n := Default()
	_, err := n.Resolve("Flux Capacitor", isCtx)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = n.Resolve("   ", isCtx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "rack-size", StageRackSize.String())
	assert.Equal(t, "stage(99)", Stage(99).String())
}

func TestDefaultTablesAuditClean(t *testing.T) {
	assert.Empty(t, Audit(catalog.Default(), DefaultTables()))
}

func TestAuditFindings(t *testing.T) {
	cat := catalog.MustNew([]catalog.Entry{
		{ID: "ISThing", Name: "Thing", TechBase: models.TechIS},
		{ID: "CLThing", Name: "Thing", TechBase: models.TechClan},
	})
	tables := Tables{
		Aliases: map[string]string{"Ghost": "Missing"},
		Names: []NameRule{
			{Name: "Thing", Tech: models.TechIS, ID: "ISThing"},
			{Name: "THING", Tech: models.TechIS, ID: "CLThing"},
		},
		Fallbacks: []catalog.Entry{{ID: "ISThing", Name: "Thing"}},
	}

	kinds := map[FindingKind]int{}
	for _, f := range Audit(cat, tables) {
		kinds[f.Kind]++
	}
	assert.Equal(t, 1, kinds[FindingMissingTarget])
	assert.Equal(t, 1, kinds[FindingCollision])
	assert.Equal(t, 1, kinds[FindingTechCrossing])
	assert.Equal(t, 1, kinds[FindingShadowed])
}

func TestTablesMerge(t *testing.T) {
	base := Tables{Aliases: map[string]string{"a": "1", "b": "2"}}
	merged := base.Merge(Tables{Aliases: map[string]string{"b": "3"}, Names: []NameRule{{Name: "x", ID: "1"}}})
	assert.Equal(t, "3", merged.Aliases["b"])
	assert.Equal(t, "2", base.Aliases["b"])
	assert.Len(t, merged.Names, 1)
}
