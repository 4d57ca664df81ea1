package critscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

func repeat(label string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = label
	}
	return out
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func testUnit(crits map[models.Location][]string) models.Unit {
	return models.Unit{
		ID:       "test",
		Chassis:  "Test",
		Tonnage:  75,
		Config:   models.ConfigBiped,
		TechBase: models.TechIS,
		Crits:    crits,
	}
}

func TestMultiSlotDedup(t *testing.T) {
	u := testUnit(map[models.Location][]string{
		models.LeftTorso: concat(
			repeat("ISLRM20", 5),
			repeat("ISLRM20", 5),
			[]string{"IS Ammo LRM-20", "IS Ammo LRM-20", "IS Ammo LRM-20 - Half"},
		),
		models.RightTorso: concat(repeat("ISGaussRifle", 7), []string{"ISMediumLaser", "ISMediumLaser"}),
	})
	res := Scan(u, normalize.Default())

	count := map[string]int{}
	for _, w := range res.Weapons {
		count[w.ID]++
	}
	assert.Equal(t, 2, count["ISLRM20"])
	assert.Equal(t, 1, count["ISGaussRifle"])
	assert.Equal(t, 2, count["ISMediumLaser"])

	require.Len(t, res.Ammo, 3)
	tons := 0.0
	for _, a := range res.Ammo {
		tons += a.Tons()
	}
	assert.Equal(t, 2.5, tons)
	assert.True(t, res.Ammo[2].Half)

	for _, w := range res.Weapons {
		if w.ID == "ISGaussRifle" {
			assert.Equal(t, 7, w.Slots)
		}
	}
}

func TestShieldArms(t *testing.T) {
	u := testUnit(map[models.Location][]string{
		models.LeftArm:  repeat(catalog.IDMediumShield, 5),
		models.RightArm: repeat(catalog.IDSmallShield, 3),
	})
	res := Scan(u, normalize.Default())

	assert.True(t, res.ShieldArms[models.LeftArm])
	assert.False(t, res.ShieldArms[models.RightArm])
	assert.Len(t, res.Defensive, 2, "a shield spanning several slots is one item")
}

func TestUnscoredLabels(t *testing.T) {
	u := testUnit(map[models.Location][]string{
		models.RightTorso: {"Flux Capacitor", "ISMediumLaser", "-Empty-", ""},
	})
	res := Scan(u, normalize.Default())

	require.Len(t, res.Unscored, 1)
	assert.Equal(t, Unscored{Label: "Flux Capacitor", Location: models.RightTorso}, res.Unscored[0])
	assert.Len(t, res.Weapons, 1)
}

func TestLinkedAddOns(t *testing.T) {
	u := testUnit(map[models.Location][]string{
		models.LeftTorso:  concat(repeat("ISLRM20", 5), []string{catalog.IDArtemisIV}, repeat("ISLRM10", 2)),
		models.RightTorso: concat(repeat("ISPPC", 3), []string{catalog.IDPPCCapacitor}),
		models.LeftArm:    {"ISMachine Gun", "ISMachine Gun", catalog.IDMGArray, "ISMediumLaser"},
	})
	res := Scan(u, normalize.Default())

	byID := map[string][]Weapon{}
	for _, w := range res.Weapons {
		byID[w.ID] = append(byID[w.ID], w)
	}
	assert.Equal(t, catalog.IDArtemisIV, byID["ISLRM20"][0].FireControl)
	assert.Empty(t, byID["ISLRM10"][0].FireControl, "one Artemis links one launcher")
	assert.True(t, byID["ISPPC"][0].Capacitor)
	require.Len(t, byID["ISMachine Gun"], 2)
	assert.True(t, byID["ISMachine Gun"][0].MGArray)
	assert.True(t, byID["ISMachine Gun"][1].MGArray)
	assert.False(t, byID["ISMediumLaser"][0].MGArray)
}

func TestSpecialSystems(t *testing.T) {
	u := testUnit(map[models.Location][]string{
		models.LeftTorso:   concat([]string{catalog.IDCASE}, repeat("Engine", 3)),
		models.RightTorso:  concat([]string{catalog.IDCASEII}, repeat("Engine", 3)),
		models.CenterTorso: concat(repeat("Engine", 6), repeat("Gyro", 4)),
		models.LeftArm:     {catalog.IDAES, "ISTSM"},
		models.LeftLeg:     {catalog.IDAES},
		models.Head:        {catalog.IDDroneOS, catalog.IDCoolantPod, catalog.IDCoolantPod},
	})
	u.HeatSinkType = models.HeatSinkDouble
	res := Scan(u, normalize.Default())

	assert.True(t, res.CASE[models.LeftTorso])
	assert.True(t, res.CASEII[models.RightTorso])
	assert.True(t, res.HasCASE(models.RightTorso))
	assert.False(t, res.HasCASE(models.CenterTorso))

	sp := res.Special
	assert.True(t, sp.TSM)
	assert.True(t, sp.DroneOS)
	assert.True(t, sp.DoubleHeatSinks)
	assert.Equal(t, 1, sp.AESArms, "leg AES does not count as an arm")
	assert.Equal(t, 2, sp.CoolantPods)

	assert.Equal(t, models.EngineXL, res.Engine, "three side-torso engine slots")
	assert.Equal(t, models.GyroStandard, res.Gyro)
	assert.Equal(t, models.CockpitStandard, res.Cockpit)
}

func TestAESCountsArmsOnce(t *testing.T) {
	u := testUnit(map[models.Location][]string{
		models.LeftArm:  {catalog.IDAES, "Medium Laser", catalog.IDAES},
		models.RightArm: {catalog.IDAES, catalog.IDAES},
	})
	res := Scan(u, normalize.Default())
	assert.Equal(t, 2, res.Special.AESArms)
}

func TestUnitFieldsWinOverInference(t *testing.T) {
	u := testUnit(map[models.Location][]string{
		models.LeftTorso: repeat("Engine", 3),
	})
	u.EngineType = models.EngineLight
	u.Gyro = models.GyroHeavyDuty
	u.Cockpit = models.CockpitSmall
	res := Scan(u, normalize.Default())

	assert.Equal(t, models.EngineLight, res.Engine)
	assert.Equal(t, models.GyroHeavyDuty, res.Gyro)
	assert.Equal(t, models.CockpitSmall, res.Cockpit)
}

func TestPrototypeDetection(t *testing.T) {
	u := testUnit(map[models.Location][]string{
		models.RightArm: {"ISERMediumLaserPrototype"},
	})
	res := Scan(u, normalize.Default())
	assert.True(t, res.Prototype)
	require.Len(t, res.Weapons, 1)
	assert.True(t, res.Weapons[0].Fallback)
}

func TestScanIsDeterministic(t *testing.T) {
	u := testUnit(map[models.Location][]string{
		models.LeftTorso:  repeat("ISLRM20", 5),
		models.RightTorso: {"ISMediumLaser", "IS Ammo LRM-20"},
		models.LeftArm:    {"ISMediumLaser (R)"},
	})
	n := normalize.Default()
	assert.Equal(t, Scan(u, n), Scan(u, n))
}
