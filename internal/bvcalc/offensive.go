package bvcalc

import (
	"math"
	"sort"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
)

// WeaponRule is one step of the weapon modifier chain. Apply returns the
// new BV and whether the rule changed anything.
type WeaponRule struct {
	Name  string
	apply func(c *calc, w *critscan.Weapon, bv float64) (float64, bool)
}

// WeaponRules is the weapon modifier chain in application order.
var WeaponRules = []WeaponRule{
	{Name: "weapon:targeting-computer", apply: func(c *calc, w *critscan.Weapon, bv float64) (float64, bool) {
		if c.scan.Special.TargetingComputer && w.Entry.DirectFire {
			return bv * 1.25, true
		}
		return bv, false
	}},
	{Name: "weapon:rear", apply: func(c *calc, w *critscan.Weapon, bv float64) (float64, bool) {
		if w.Rear != c.frontHalved {
			return bv * 0.5, true
		}
		return bv, false
	}},
	{Name: "weapon:fire-control", apply: func(c *calc, w *critscan.Weapon, bv float64) (float64, bool) {
		if m, ok := fireControlMultiplier[w.FireControl]; ok {
			return bv * m, true
		}
		return bv, false
	}},
	{Name: "weapon:capacitor", apply: func(c *calc, w *critscan.Weapon, bv float64) (float64, bool) {
		if w.Capacitor {
			return bv + c.capacitorBV, true
		}
		return bv, false
	}},
	{Name: "weapon:drone", apply: func(c *calc, w *critscan.Weapon, bv float64) (float64, bool) {
		if c.scan.Special.DroneOS {
			return bv * 0.9, true
		}
		return bv, false
	}},
	{Name: "weapon:shield-arm", apply: func(c *calc, w *critscan.Weapon, bv float64) (float64, bool) {
		if c.scan.ShieldArms[w.Location] {
			return bv * 0.5, true
		}
		return bv, false
	}},
	{Name: "weapon:mg-array", apply: func(c *calc, w *critscan.Weapon, bv float64) (float64, bool) {
		if w.MGArray {
			return bv * 0.67, true
		}
		return bv, false
	}},
}

var fireControlMultiplier = map[string]float64{
	catalog.IDArtemisIV:     1.2,
	catalog.IDClanArtemisIV: 1.2,
	catalog.IDArtemisV:      1.3,
	catalog.IDClanArtemisV:  1.3,
	catalog.IDArtemisProto:  1.1,
	catalog.IDApollo:        1.15,
}

// HeatMultiplier returns the BV-context heat multiplier for a weapon class.
func HeatMultiplier(h catalog.HeatClass) float64 {
	switch h {
	case catalog.HeatUltra:
		return 2
	case catalog.HeatRotary:
		return 6
	case catalog.HeatStreak, catalog.HeatAdvancedMissile:
		return 0.5
	case catalog.HeatOneShot:
		return 0.25
	}
	return 1
}

// physicalFactor holds a physical weapon's tonnage divisor, additive term
// and multiplier: BV = (ceil(tons/div) + add) × mult.
type physicalFactor struct {
	div  float64
	add  float64
	mult float64
}

var physicalFactors = map[string]physicalFactor{
	catalog.IDHatchet:          {5, 0, 1.5},
	catalog.IDSword:            {10, 1, 1.725},
	catalog.IDClaws:            {7, 0, 1.275},
	catalog.IDMace:             {4, 0, 1.0},
	catalog.IDLance:            {5, 0, 1.0},
	catalog.IDRetractableBlade: {10, 0, 1.725},
	catalog.IDTalons:           {5, 0, 1.0},
}

// PhysicalBV returns the BV of a physical weapon on a unit of the given
// tonnage. Unknown IDs score zero.
func PhysicalBV(id string, tonnage int) float64 {
	f, ok := physicalFactors[id]
	if !ok {
		return 0
	}
	return (math.Ceil(float64(tonnage)/f.div) + f.add) * f.mult
}

func (c *calc) offensive() {
	u := c.unit
	b := &c.b

	b.HeatEfficiency = c.heatEfficiency()
	lines := c.weaponLines()
	sortWeapons(lines)
	b.WeaponBV = c.walkHeat(lines, b.HeatEfficiency)
	b.Weapons = lines

	b.AmmoBV = c.ammoBV()
	b.PhysicalBV = c.physicalBV()
	b.WeightBonusBV = c.weightBonus()

	b.OffensiveBeforeModifiers = b.WeaponBV + b.AmmoBV + b.PhysicalBV + b.WeightBonusBV
	b.OffensiveAfterModifiers = b.OffensiveBeforeModifiers
	if c.scan.Cockpit.IsIndustrial() && !c.scan.Special.AdvancedFireControl {
		b.OffensiveAfterModifiers *= 0.9
		c.fire("offense:industrial")
	}

	b.SpeedFactor = SpeedFactor(b.RunMP, u.JumpMP)
	b.OffensiveBR = b.OffensiveAfterModifiers * b.SpeedFactor
}

// heatEfficiency is 6 + dissipation − movement heat − signature heat +
// coolant pods.
func (c *calc) heatEfficiency() float64 {
	u := c.unit
	sp := c.scan.Special

	per := u.HeatSinkType.Dissipation()
	if sp.DoubleHeatSinks || sp.LaserHeatSinks {
		per = 2
	}
	eff := 6 + float64(u.HeatSinks)*per
	eff -= MovementHeat(c.scan.Engine, u.JumpMP, sp.ImprovedJumpJets)

	switch {
	case sp.Stealth || sp.NullSignature || sp.VoidSignature:
		eff -= 10
		c.fire("heat:signature")
	case sp.Chameleon:
		eff -= 6
		c.fire("heat:chameleon")
	}
	if sp.CoolantPods > 0 {
		eff += float64(sp.CoolantPods)
		c.fire("heat:coolant-pods")
	}
	return eff
}

func (c *calc) weaponLines() []WeaponLine {
	var front, rear float64
	for _, w := range c.scan.Weapons {
		if w.Rear {
			rear += w.Entry.BV
		} else {
			front += w.Entry.BV
		}
	}
	c.frontHalved = rear > front
	if c.frontHalved {
		c.fire("weapon:rear-swap")
	}
	for _, e := range c.scan.Equipment {
		if e.ID == catalog.IDPPCCapacitor {
			c.capacitorBV = e.Entry.BV
			break
		}
	}

	lines := make([]WeaponLine, 0, len(c.scan.Weapons))
	for i := range c.scan.Weapons {
		w := c.scan.Weapons[i]
		bv := w.Entry.BV
		for _, r := range WeaponRules {
			var hit bool
			if bv, hit = r.apply(c, &w, bv); hit {
				c.fire(r.Name)
			}
		}
		lines = append(lines, WeaponLine{
			ID:         w.ID,
			Location:   w.Location,
			Rear:       w.Rear,
			BaseBV:     w.Entry.BV,
			ModifiedBV: bv,
			Heat:       c.weaponHeat(&w),
		})
	}
	return lines
}

func (c *calc) weaponHeat(w *critscan.Weapon) float64 {
	heat := w.Entry.Heat * HeatMultiplier(w.Entry.HeatClass)
	if w.Entry.HeatClass != catalog.HeatStandard {
		c.fire("heat:" + string(w.Entry.HeatClass))
	}
	if w.Insulator && heat > 0 {
		heat = math.Max(1, heat-1)
		c.fire("heat:insulator")
	}
	if w.Capacitor {
		heat += 5
	}
	return heat
}

// sortWeapons orders weapons for the heat walk: heatless first, then BV
// descending, heat ascending. ID and location break remaining ties so
// equal weapons always land in the same order.
func sortWeapons(lines []WeaponLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if (a.Heat == 0) != (b.Heat == 0) {
			return a.Heat == 0
		}
		if a.ModifiedBV != b.ModifiedBV {
			return a.ModifiedBV > b.ModifiedBV
		}
		if a.Heat != b.Heat {
			return a.Heat < b.Heat
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.Location < b.Location
	})
}

// walkHeat marks weapons past the heat threshold as half BV. The weapon
// that first pushes cumulative heat over the threshold stays full.
func (c *calc) walkHeat(lines []WeaponLine, efficiency float64) float64 {
	total := 0.0
	heat := 0.0
	crossed := false
	for i := range lines {
		l := &lines[i]
		switch {
		case l.Heat == 0:
			l.BV = l.ModifiedBV
		case crossed:
			l.Half = true
			l.BV = l.ModifiedBV / 2
		default:
			heat += l.Heat
			l.BV = l.ModifiedBV
			if heat > efficiency {
				crossed = true
				c.fire("heat:over-efficiency")
			}
		}
		total += l.BV
	}
	return total
}

// ammoBV sums ammo per AmmoKey, capped at the BV of the weapons using it.
func (c *calc) ammoBV() float64 {
	weaponBV := map[string]float64{}
	for _, w := range c.scan.Weapons {
		if w.Entry.AmmoKey != "" {
			weaponBV[w.Entry.AmmoKey] += w.Entry.BV
		}
	}
	ammo := map[string]float64{}
	for _, a := range c.scan.Ammo {
		if a.Entry.AMS {
			continue
		}
		ammo[a.Entry.AmmoKey] += a.Entry.AmmoBVPerTon * a.Tons()
	}

	keys := make([]string, 0, len(ammo))
	for k := range ammo {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	total := 0.0
	for _, k := range keys {
		bv := ammo[k]
		limit, ok := weaponBV[k]
		if !ok {
			c.fire("ammo:orphan")
		}
		if bv > limit {
			bv = limit
			c.fire("ammo:cap")
		}
		total += bv
	}
	return total
}

func (c *calc) physicalBV() float64 {
	total := 0.0
	for _, p := range c.scan.Physical {
		bv := PhysicalBV(p.ID, c.unit.Tonnage)
		if bv > 0 {
			c.fire("physical:" + strings.ToLower(p.ID))
		}
		total += bv
	}
	return total
}

// weightBonus is tonnage scaled by myomer, plus a tenth of tonnage per
// arm with AES.
func (c *calc) weightBonus() float64 {
	sp := c.scan.Special
	tons := float64(c.unit.Tonnage)
	mult := 1.0
	switch {
	case sp.TSM:
		mult = 1.5
		c.fire("weight:tsm")
	case sp.IndustrialTSM:
		mult = 1.15
		c.fire("weight:industrial-tsm")
	}
	bonus := tons * mult
	if sp.AESArms > 0 {
		bonus += tons * 0.1 * float64(sp.AESArms)
		c.fire("weight:aes")
	}
	return bonus
}
