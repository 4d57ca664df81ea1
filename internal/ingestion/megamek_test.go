package ingestion

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

const hunchbackMTF = `Version:1.0
chassis:Hunchback
model:HBK-4G

Config:Biped
techbase:Inner Sphere
era:2572
source:TRO 3039
rules level:1
mul id:1495

mass:50
engine:200 Fusion Engine
structure:IS Standard
myomer:Standard
cockpit:Standard Cockpit
gyro:Standard Gyro

heat sinks:13 Single
walk mp:4
jump mp:0

armor:Standard(Inner Sphere)
LA armor:16
RA armor:16
LT armor:20
RT armor:20
CT armor:26
HD armor:9
LL armor:20
RL armor:20
RTL armor:4
RTR armor:4
RTC armor:5

Weapons:4
Medium Laser, Left Arm
Medium Laser, Right Arm
Small Laser, Head
Autocannon/20, Right Torso

Left Arm:
Shoulder
Upper Arm Actuator
Lower Arm Actuator
Hand Actuator
Medium Laser
-Empty-

Right Torso:
Autocannon/20
Autocannon/20
Autocannon/20
Autocannon/20
Autocannon/20
Autocannon/20
Autocannon/20
Autocannon/20
Autocannon/20
Autocannon/20
IS Ammo AC/20
IS Ammo AC/20

Head:
Life Support
Sensors
Cockpit
Small Laser (omnipod)
Sensors
Life Support

overview:The Hunchback is a medium mech.
`

func TestReadMTF(t *testing.T) {
	data, err := ParseMTFReader(strings.NewReader(hunchbackMTF))
	require.NoError(t, err)

	assert.Equal(t, "Hunchback HBK-4G", data.FullName())
	assert.Equal(t, 50, data.Mass)
	assert.Equal(t, 200, data.EngineRating)
	assert.Equal(t, 13, data.HeatSinkCount)
	assert.Equal(t, 1495, data.MulID)
	assert.Len(t, data.Weapons, 4)
	assert.Len(t, data.LocationEquipment["Right Torso"], 12)
	assert.Equal(t, 5, data.ArmorValues["RTC"])
}

func TestUnitConversion(t *testing.T) {
	data, err := ParseMTFReader(strings.NewReader(hunchbackMTF))
	require.NoError(t, err)
	u := data.Unit()

	assert.Equal(t, "Hunchback HBK-4G", u.ID)
	assert.Equal(t, models.ConfigBiped, u.Config)
	assert.Equal(t, models.TechIS, u.TechBase)
	assert.Equal(t, models.EngineFusion, u.EngineType)
	assert.Equal(t, models.HeatSinkSingle, u.HeatSinkType)
	assert.Equal(t, 26, u.ArmorFront[models.CenterTorso])
	assert.Equal(t, 5, u.ArmorRear[models.CenterTorso])
	assert.Equal(t, 4, u.ArmorRear[models.LeftTorso])
	assert.Equal(t, 160, u.TotalArmor())
	assert.Equal(t, "Small Laser", u.Crits[models.Head][3], "omnipod marker is stripped")
	assert.Len(t, u.Crits[models.RightTorso], 12)
}

func TestPatchworkArmor(t *testing.T) {
	src := `chassis:Patch
model:PW-1
mass:50
armor:Patchwork
LA armor:Reactive(Inner Sphere):16
RA armor:Standard(Inner Sphere):16
CT armor:26
`
	data, err := ParseMTFReader(strings.NewReader(src))
	require.NoError(t, err)
	u := data.Unit()

	assert.Equal(t, models.ArmorPatchwork, u.ArmorType)
	assert.Equal(t, 16, u.ArmorFront[models.LeftArm])
	assert.Equal(t, models.ArmorReactive, u.PatchworkArmor[models.LeftArm])
	assert.Equal(t, models.ArmorStandard, u.PatchworkArmor[models.RightArm])
}

func TestMissingChassis(t *testing.T) {
	_, err := ParseMTFReader(strings.NewReader("mass:50\n"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "3039"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3039", "Hunchback HBK-4G.mtf"), []byte(hunchbackMTF), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.mtf"), []byte("mass:50\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	units, failed, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "Hunchback HBK-4G", units[0].ID)
	require.Len(t, failed, 1)
	assert.Contains(t, failed[0].Error(), "broken.mtf")
}

func TestLoadUnitFile(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.json")
	require.NoError(t, os.WriteFile(one, []byte(`{"id":"X","chassis":"X","tonnage":20,"armor_front":{"CT":4}}`), 0o644))
	list := filepath.Join(dir, "list.yaml")
	require.NoError(t, os.WriteFile(list, []byte("- id: A\n  tonnage: 20\n- id: B\n  tonnage: 25\n"), 0o644))

	units, err := LoadUnitFile(one)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, 4, units[0].ArmorFront[models.CenterTorso])

	units, err = LoadUnitFile(list)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, 25, units[1].Tonnage)
}
