package bvcalc

import (
	"math"
	"sort"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

// CASETier is the implicit CASE a unit receives without a CASE item.
type CASETier int

const (
	CASENone CASETier = iota
	// CASEPerLocation protects locations holding Clan-sourced ammo only.
	CASEPerLocation
	// CASEFull protects every non-head location.
	CASEFull
)

func (t CASETier) String() string {
	switch t {
	case CASEPerLocation:
		return "per-location"
	case CASEFull:
		return "full"
	}
	return "none"
}

// ImplicitCASE decides a unit's implicit CASE. The data format flags
// Clan-chassis and IS-chassis mixed units the same way, so chassis origin
// comes from the engine and structure tech base, then the allow-list.
func ImplicitCASE(u *models.Unit, allow map[string]bool) CASETier {
	switch u.TechBase {
	case models.TechClan:
		return CASEFull
	case models.TechMixed:
		if u.EngineTech == models.TechClan || u.StructureTech == models.TechClan {
			return CASEFull
		}
		if allow[u.ID] {
			return CASEPerLocation
		}
	}
	return CASENone
}

func (c *calc) defensive() {
	u := c.unit
	b := &c.b

	points := c.structurePoints()
	b.StructureBV = float64(points) * 1.5 * StructureMultiplier(u.StructureType) * EngineMultiplier(c.scan.Engine)
	if m := StructureMultiplier(u.StructureType); m != 1 {
		c.fire("structure:" + string(u.StructureType))
	}
	if m := EngineMultiplier(c.scan.Engine); m != 1 {
		c.fire("engine:" + string(c.scan.Engine))
	}

	b.ArmorBV = c.armorBV()
	b.GyroBV = float64(u.Tonnage) * GyroMultiplier(c.scan.Gyro)
	b.DefensiveEquipmentBV = c.defensiveEquipment()

	b.ImplicitCASE = ImplicitCASE(u, c.opts.ClanCASEAllowList)
	if b.ImplicitCASE != CASENone {
		c.fire("case:implicit-" + b.ImplicitCASE.String())
	}
	b.ExplosivePenalty, b.ExplosiveByLocation = c.explosive(b.ImplicitCASE)

	sub := b.ArmorBV + b.StructureBV + b.GyroBV + b.DefensiveEquipmentBV - b.ExplosivePenalty
	if sub < 1 {
		sub = 1
		c.fire("defense:floor")
	}

	b.RunMP = c.runMP()
	b.TMM = c.tmm(b.RunMP)
	b.DefensiveFactor = DefensiveFactor(b.TMM)
	b.DefensiveBR = sub * b.DefensiveFactor
}

func (c *calc) structurePoints() int {
	u := c.unit
	if len(u.StructurePoints) > 0 {
		total := 0
		legs := 0
		for loc, p := range u.StructurePoints {
			if u.Config.IsQuad() && loc.IsLeg() {
				if p > legs {
					legs = p
				}
				continue
			}
			total += p
		}
		if u.Config.IsQuad() {
			total += 4 * legs
			c.fire("structure:quad-legs")
		}
		return total
	}
	total, _ := StandardStructure(u.Tonnage, u.Config)
	return total
}

func (c *calc) armorBV() float64 {
	u := c.unit
	if u.ArmorType != models.ArmorPatchwork {
		mult := ArmorMultiplier(u.ArmorType)
		if mult != 1 {
			c.fire("armor:" + string(u.ArmorType))
		}
		return float64(u.TotalArmor()) * 2.5 * mult
	}

	c.fire("armor:patchwork")
	pts := map[models.Location]int{}
	for loc, p := range u.ArmorFront {
		pts[loc] += p
	}
	for loc, p := range u.ArmorRear {
		pts[loc] += p
	}
	total := 0.0
	for _, loc := range sortedLocations(pts) {
		mult := 1.0
		if t, ok := u.PatchworkArmor[loc]; ok {
			mult = ArmorMultiplier(t)
		}
		total += float64(pts[loc]) * 2.5 * mult
	}
	return total
}

func sortedLocations[V any](m map[models.Location]V) []models.Location {
	out := make([]models.Location, 0, len(m))
	for loc := range m {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// defensiveEquipment sums defensive items. AMS ammo is capped at the BV
// of the AMS it feeds.
func (c *calc) defensiveEquipment() float64 {
	total := 0.0
	amsBV := map[string]float64{}
	for _, it := range c.scan.Defensive {
		total += it.Entry.BV
		if it.Entry.AMS && it.Entry.AmmoKey != "" {
			amsBV[it.Entry.AmmoKey] += it.Entry.BV
		}
	}
	amsAmmo := map[string]float64{}
	for _, a := range c.scan.Ammo {
		if a.Entry.AMS {
			amsAmmo[a.Entry.AmmoKey] += a.Entry.AmmoBVPerTon * a.Tons()
		}
	}
	keys := make([]string, 0, len(amsAmmo))
	for key := range amsAmmo {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		bv := amsAmmo[key]
		if limit := amsBV[key]; bv > limit {
			bv = limit
			c.fire("ams:ammo-cap")
		}
		total += bv
	}
	return total
}

type explosiveItem struct {
	loc     models.Location
	entry   catalog.Entry
	penalty float64
}

func (c *calc) explosiveItems() []explosiveItem {
	var out []explosiveItem
	add := func(it critscan.Item) {
		if it.Entry.Explosive {
			out = append(out, explosiveItem{loc: it.Location, entry: it.Entry, penalty: it.Entry.Penalty(it.Slots)})
		}
	}
	for _, a := range c.scan.Ammo {
		add(a.Item)
	}
	for _, w := range c.scan.Weapons {
		add(w.Item)
	}
	for _, e := range c.scan.Equipment {
		add(e)
	}
	for _, e := range c.scan.Defensive {
		add(e)
	}
	return out
}

// explosive sums unprotected explosive penalties, keyed by the location
// that takes the damage.
func (c *calc) explosive(tier CASETier) (float64, map[models.Location]float64) {
	byLoc := map[models.Location]float64{}
	total := 0.0
	fatal := c.scan.Engine.SideTorsoFatal()

	implicit := func(loc models.Location, e catalog.Entry) bool {
		if loc == models.Head {
			return false
		}
		switch tier {
		case CASEFull:
			return true
		case CASEPerLocation:
			return e.TechBase == models.TechClan
		}
		return false
	}
	caseII := func(loc models.Location) bool { return c.scan.CASEII[loc] }
	torsoSafe := func(loc models.Location, e catalog.Entry) bool {
		if caseII(loc) {
			return true
		}
		return (c.scan.CASE[loc] || implicit(loc, e)) && !fatal
	}

	for _, it := range c.explosiveItems() {
		loc := it.loc
		charged := loc
		protected := false
		switch {
		case caseII(loc):
			protected = true
		case loc == models.Head || loc == models.CenterTorso:
		case loc.IsSideTorso():
			protected = torsoSafe(loc, it.entry)
			if !protected && fatal && (c.scan.CASE[loc] || implicit(loc, it.entry)) {
				c.fire("explosive:fatal-engine")
			}
		case loc.IsLeg():
			if to, ok := loc.TransferTo(); ok {
				charged = to
				if to.IsSideTorso() {
					protected = torsoSafe(to, it.entry)
				} else {
					protected = caseII(to)
				}
				if !protected {
					c.fire("explosive:leg-transfer")
				}
			}
		case loc.IsArm():
			if c.scan.CASE[loc] || implicit(loc, it.entry) {
				protected = true
			} else if to, ok := loc.TransferTo(); ok {
				protected = torsoSafe(to, it.entry)
			}
		}
		if protected {
			continue
		}
		byLoc[charged] += it.penalty
		total += it.penalty
	}
	if total > 0 {
		c.fire("explosive:penalty")
	}
	if len(byLoc) == 0 {
		byLoc = nil
	}
	return total, byLoc
}

// runMP applies MASC, supercharger and TSM to the unit's run speed.
func (c *calc) runMP() int {
	u := c.unit
	sp := c.scan.Special
	walk := u.WalkMP
	run := u.RunMP
	if run == 0 {
		run = int(math.Ceil(1.5 * float64(walk)))
	}
	switch {
	case sp.MASC && sp.Supercharger:
		run = int(math.Ceil(2.5 * float64(walk)))
		c.fire("movement:masc+supercharger")
	case sp.MASC || sp.Supercharger:
		run = walk * 2
		c.fire("movement:masc")
	}
	if sp.TSM {
		// TSM counts as +1 walk.
		if tsm := int(math.Ceil(1.5 * float64(walk+1))); tsm > run {
			run = tsm
		}
		c.fire("movement:tsm")
	}
	return run
}

func (c *calc) tmm(run int) int {
	sp := c.scan.Special
	tmm := TMM(run)
	if j := c.unit.JumpMP; j > 0 {
		if jt := TMM(j) + 1; jt > tmm {
			tmm = jt
			c.fire("movement:jump")
		}
	}
	switch {
	case sp.VoidSignature:
		tmm += 3
		c.fire("tmm:void-signature")
	case sp.Stealth || sp.NullSignature || sp.Chameleon:
		tmm += 2
		c.fire("tmm:stealth")
	}
	return tmm
}
