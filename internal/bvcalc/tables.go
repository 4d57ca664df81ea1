package bvcalc

import (
	"math"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

// structureRow holds internal structure points per location for one
// tonnage: center torso, side torso, arm, leg. The head always has 3.
type structureRow struct {
	CT, ST, Arm, Leg int
}

const headStructure = 3

var structureByTonnage = map[int]structureRow{
	10: {4, 3, 1, 2}, 15: {5, 4, 2, 3}, 20: {6, 5, 3, 4},
	25: {8, 6, 4, 6}, 30: {10, 7, 5, 7}, 35: {11, 8, 6, 8},
	40: {12, 10, 6, 10}, 45: {14, 11, 7, 11}, 50: {16, 12, 8, 12},
	55: {18, 13, 9, 13}, 60: {20, 14, 10, 14}, 65: {21, 15, 10, 15},
	70: {22, 15, 11, 15}, 75: {23, 16, 12, 16}, 80: {25, 17, 13, 17},
	85: {27, 18, 14, 18}, 90: {29, 19, 15, 19}, 95: {30, 20, 16, 20},
	100: {31, 21, 17, 21},
}

// StandardStructure returns total internal structure for a tonnage from
// the standard table. Quads count four legs of one leg's value and no
// arms; tripods add a third leg.
func StandardStructure(tonnage int, cfg models.Config) (int, bool) {
	row, ok := structureByTonnage[tonnage]
	if !ok {
		return 0, false
	}
	total := headStructure + row.CT + 2*row.ST
	switch {
	case cfg.IsQuad():
		total += 4 * row.Leg
	case cfg == models.ConfigTripod:
		total += 2*row.Arm + 3*row.Leg
	default:
		total += 2*row.Arm + 2*row.Leg
	}
	return total, true
}

// ArmorMultiplier returns the BV multiplier for an armor type.
func ArmorMultiplier(a models.ArmorType) float64 {
	switch a {
	case models.ArmorHardened:
		return 2.0
	case models.ArmorReactive, models.ArmorReflective, models.ArmorBallisticReinforce, models.ArmorImpactResistant:
		return 1.5
	case models.ArmorFerroLamellor, models.ArmorAntiPenetrative:
		return 1.2
	case models.ArmorHeatDissipating:
		return 1.1
	case models.ArmorCommercial:
		return 0.5
	}
	return 1.0
}

// StructureMultiplier returns the BV multiplier for a structure type.
func StructureMultiplier(s models.StructureType) float64 {
	switch s {
	case models.StructureIndustrial, models.StructureComposite:
		return 0.5
	case models.StructureReinforced:
		return 2.0
	}
	return 1.0
}

// EngineMultiplier returns the structure BV multiplier for an engine.
func EngineMultiplier(e models.EngineType) float64 {
	switch e {
	case models.EngineXL:
		return 0.5
	case models.EngineClanXL, models.EngineLight:
		return 0.75
	case models.EngineXXL:
		return 0.25
	case models.EngineClanXXL:
		return 0.5
	}
	return 1.0
}

// GyroMultiplier returns the per-ton BV multiplier for a gyro.
func GyroMultiplier(g models.GyroType) float64 {
	switch g {
	case models.GyroHeavyDuty, models.GyroSuperheavy:
		return 1.0
	case models.GyroNone:
		return 0
	}
	return 0.5
}

// TMM calculates Target Movement Modifier from MP
func TMM(mp int) int {
	switch {
	case mp <= 2:
		return 0
	case mp <= 4:
		return 1
	case mp <= 6:
		return 2
	case mp <= 9:
		return 3
	case mp <= 12:
		return 4
	case mp <= 17:
		return 5
	case mp <= 24:
		return 6
	default:
		return 7
	}
}

// DefensiveFactor returns 1 + TMM/10
func DefensiveFactor(tmm int) float64 {
	return 1.0 + float64(tmm)/10.0
}

// SpeedFactor calculates the offensive speed factor from run MP and jump
// MP. The table value is kept at two decimals.
func SpeedFactor(runMP, jumpMP int) float64 {
	speedMP := runMP
	if jumpMP > 0 {
		speedMP = runMP + int(math.Ceil(float64(jumpMP)/2.0))
	}
	base := 1.0 + float64(speedMP-5)/10.0
	if base < 0.1 {
		base = 0.1
	}
	return math.Round(math.Pow(base, 1.2)*100) / 100
}

// RunHeat is the heat of running for an engine.
func RunHeat(e models.EngineType) float64 {
	switch e {
	case models.EngineXXL, models.EngineClanXXL:
		return 6
	case models.EngineICE, models.EngineFuelCell:
		return 0
	}
	return 2
}

// JumpHeat is the heat of a full jump. Improved jump jets generate half
// the heat; XXL engines double it.
func JumpHeat(jumpMP int, improved bool, e models.EngineType) float64 {
	if jumpMP <= 0 {
		return 0
	}
	heat := float64(jumpMP)
	if improved {
		heat = math.Ceil(float64(jumpMP) / 2)
	}
	heat = math.Max(3, heat)
	if e == models.EngineXXL || e == models.EngineClanXXL {
		heat *= 2
	}
	return heat
}

// MovementHeat returns the movement heat for BV calculation
func MovementHeat(e models.EngineType, jumpMP int, improvedJump bool) float64 {
	return math.Max(RunHeat(e), JumpHeat(jumpMP, improvedJump, e))
}

// RoundTotal rounds half up. It is applied once, to the raw total.
func RoundTotal(raw float64) int {
	return int(math.Floor(raw + 0.5))
}
