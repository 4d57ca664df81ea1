package harness

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/ingestion"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

const hunchbackMTF = `chassis:Hunchback
model:HBK-4G
mul id:1519
Config:Biped
techbase:Inner Sphere
era:2572
rules level:1
mass:50
engine:200 Fusion Engine(IS)
structure:IS Standard
myomer:Standard
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
AC/20, Right Torso
Medium Laser, Left Arm
Medium Laser, Right Arm
Small Laser, Head

Left Arm:
Shoulder
Upper Arm Actuator
Lower Arm Actuator
Hand Actuator
Medium Laser
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Right Arm:
Shoulder
Upper Arm Actuator
Lower Arm Actuator
Hand Actuator
Medium Laser
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Left Torso:
Heat Sink
Heat Sink
Heat Sink
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Right Torso:
AC/20
AC/20
AC/20
AC/20
AC/20
AC/20
AC/20
AC/20
AC/20
AC/20
IS Ammo AC/20
IS Ammo AC/20

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
-Empty-
-Empty-

Head:
Life Support
Sensors
Cockpit
Small Laser
Sensors
Life Support

Left Leg:
Hip
Upper Leg Actuator
Lower Leg Actuator
Foot Actuator
-Empty-
-Empty-

Right Leg:
Hip
Upper Leg Actuator
Lower Leg Actuator
Foot Actuator
-Empty-
-Empty-
`

const atlasMTF = `chassis:Atlas
model:AS7-D
mul id:140
Config:Biped
techbase:Inner Sphere
era:2755
rules level:1
mass:100
engine:300 Fusion Engine(IS)
structure:IS Standard
myomer:Standard
heat sinks:20 Single
walk mp:3
jump mp:0
armor:Standard(Inner Sphere)
LA armor:34
RA armor:34
LT armor:32
RT armor:32
CT armor:47
HD armor:9
LL armor:41
RL armor:41
RTL armor:10
RTR armor:10
RTC armor:14

Left Arm:
Shoulder
Upper Arm Actuator
Lower Arm Actuator
Hand Actuator
Medium Laser
Heat Sink
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Right Arm:
Shoulder
Upper Arm Actuator
Lower Arm Actuator
Hand Actuator
Medium Laser
Heat Sink
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-
-Empty-

Left Torso:
LRM 20
LRM 20
LRM 20
LRM 20
LRM 20
SRM 6
SRM 6
IS Ammo LRM-20
IS Ammo LRM-20
IS Ammo SRM-6
Heat Sink
Heat Sink

Right Torso:
AC/20
AC/20
AC/20
AC/20
AC/20
AC/20
AC/20
AC/20
AC/20
AC/20
IS Ammo AC/20
IS Ammo AC/20

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
Medium Laser (R)
Medium Laser (R)

Head:
Life Support
Sensors
Cockpit
Heat Sink
Sensors
Life Support

Left Leg:
Hip
Upper Leg Actuator
Lower Leg Actuator
Foot Actuator
Heat Sink
Heat Sink

Right Leg:
Hip
Upper Leg Actuator
Lower Leg Actuator
Foot Actuator
Heat Sink
Heat Sink
`

func parseUnit(t *testing.T, mtf string) models.Unit {
	t.Helper()
	data, err := ingestion.ParseMTFReader(strings.NewReader(mtf))
	require.NoError(t, err)
	return data.Unit()
}

func TestPublishedBattleValues(t *testing.T) {
	n := normalize.Default()
	tests := []struct {
		mtf   string
		id    string
		want  int
		rules []string
	}{
		{hunchbackMTF, "Hunchback HBK-4G", 1041, []string{"explosive:penalty", "cockpit:default"}},
		{atlasMTF, "Atlas AS7-D", 1897, []string{"weapon:rear", "heat:over-efficiency", "explosive:penalty", "cockpit:default"}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			u := parseUnit(t, tt.mtf)
			require.Equal(t, tt.id, u.ID)

			scan := critscan.Scan(u, n)
			assert.Empty(t, scan.Unscored)

			b, err := bvcalc.Compute(u, scan)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Total)
			assert.Subset(t, b.Rules, tt.rules)
			assert.NotContains(t, b.Rules, "weapon:rear-swap")
		})
	}
}

func TestAtlasRearLasers(t *testing.T) {
	u := parseUnit(t, atlasMTF)
	b, err := bvcalc.Compute(u, critscan.Scan(u, normalize.Default()))
	require.NoError(t, err)

	var rear []bvcalc.WeaponLine
	for _, w := range b.Weapons {
		if w.Rear {
			rear = append(rear, w)
		}
	}
	require.Len(t, rear, 2)
	for _, w := range rear {
		assert.Equal(t, models.CenterTorso, w.Location)
		assert.Equal(t, 23.0, w.ModifiedBV)
	}
	assert.False(t, rear[0].Half, "the weapon crossing the heat threshold stays full")
	assert.True(t, rear[1].Half)
	assert.Equal(t, 544.5, b.WeaponBV)
	assert.Equal(t, 75.0, b.ExplosivePenalty)
}

func TestValidatePublishedUnitsExact(t *testing.T) {
	units := []models.Unit{parseUnit(t, hunchbackMTF), parseUnit(t, atlasMTF)}
	reference := map[string]int{"Hunchback HBK-4G": 1041, "Atlas AS7-D": 1897}

	rep, err := New(Options{Workers: 2}).Validate(context.Background(), units, reference, nil)
	require.NoError(t, err)
	for _, r := range rep.Results {
		assert.Equal(t, BucketExact, r.Bucket, r.UnitID)
	}
	assert.Equal(t, 2, rep.Summary.Evaluated)
	assert.True(t, rep.Summary.Passed)
}
