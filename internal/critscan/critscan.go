// Package critscan turns a unit's raw critical-slot labels into a
// deduplicated equipment inventory.
package critscan

import (
	"errors"
	"sort"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

// Item is one physical piece of equipment.
type Item struct {
	ID       string          `json:"id"`
	Entry    catalog.Entry   `json:"-"`
	Location models.Location `json:"location"`
	// Slots is the number of critical slots this item occupies.
	Slots    int  `json:"slots"`
	Fallback bool `json:"fallback,omitempty"`
}

// Weapon is a mounted weapon and the add-ons linked to it.
type Weapon struct {
	Item
	Rear bool `json:"rear,omitempty"`
	// FireControl is the ID of a linked Artemis or Apollo system.
	FireControl string `json:"fire_control,omitempty"`
	Capacitor   bool   `json:"capacitor,omitempty"`
	Insulator   bool   `json:"insulator,omitempty"`
	MGArray     bool   `json:"mg_array,omitempty"`
}

// Ammo is one ammunition bin.
type Ammo struct {
	Item
	Half bool `json:"half,omitempty"`
}

// Tons is the bin's ammo tonnage.
func (a Ammo) Tons() float64 {
	if a.Half {
		return 0.5
	}
	return 1
}

// Special holds detected special systems.
type Special struct {
	Stealth             bool `json:"stealth,omitempty"`
	DroneOS             bool `json:"drone_os,omitempty"`
	TSM                 bool `json:"tsm,omitempty"`
	IndustrialTSM       bool `json:"industrial_tsm,omitempty"`
	MASC                bool `json:"masc,omitempty"`
	Supercharger        bool `json:"supercharger,omitempty"`
	DoubleHeatSinks     bool `json:"double_heat_sinks,omitempty"`
	LaserHeatSinks      bool `json:"laser_heat_sinks,omitempty"`
	ImprovedJumpJets    bool `json:"improved_jump_jets,omitempty"`
	NullSignature       bool `json:"null_signature,omitempty"`
	VoidSignature       bool `json:"void_signature,omitempty"`
	Chameleon           bool `json:"chameleon,omitempty"`
	TargetingComputer   bool `json:"targeting_computer,omitempty"`
	AdvancedFireControl bool `json:"advanced_fire_control,omitempty"`
	CoolantPods         int  `json:"coolant_pods,omitempty"`
	AESArms             int  `json:"aes_arms,omitempty"`
}

// Unscored is a label no normalizer stage could resolve.
type Unscored struct {
	Label    string          `json:"label"`
	Location models.Location `json:"location"`
}

// Result is the inventory of one unit.
type Result struct {
	Weapons   []Weapon `json:"weapons"`
	Ammo      []Ammo   `json:"ammo"`
	Defensive []Item   `json:"defensive"`
	Physical  []Item   `json:"physical"`
	Equipment []Item   `json:"equipment"`

	CASE   map[models.Location]bool `json:"case,omitempty"`
	CASEII map[models.Location]bool `json:"case_ii,omitempty"`

	Engine     models.EngineType        `json:"engine"`
	Gyro       models.GyroType          `json:"gyro"`
	Cockpit    models.CockpitType       `json:"cockpit"`
	Special    Special                  `json:"special"`
	ShieldArms map[models.Location]bool `json:"shield_arms,omitempty"`
	// Prototype is set when any item is prototype equipment.
	Prototype bool       `json:"prototype,omitempty"`
	Unscored  []Unscored `json:"unscored,omitempty"`
}

// HasCASE reports whether loc carries CASE of either generation.
func (r *Result) HasCASE(loc models.Location) bool {
	return r.CASE[loc] || r.CASEII[loc]
}

// run is a contiguous stretch of identical resolutions in one location.
type run struct {
	res normalize.Resolution
	n   int
}

func sameItem(a, b normalize.Resolution) bool {
	return a.ID == b.ID && a.Rear == b.Rear && a.Half == b.Half
}

// items returns how many physical items a run of k labels represents.
func items(slots, k int) int {
	if slots <= 0 {
		return 1
	}
	return (k + slots - 1) / slots
}

type scanner struct {
	unit   *models.Unit
	norm   *normalize.Normalizer
	res    Result
	engine map[models.Location]int
	aes    map[models.Location]bool
	gyro   int
	cockpt models.Location
}

// Scan resolves and classifies every label of u. It never fails: labels
// that do not resolve are listed in Result.Unscored.
func Scan(u models.Unit, n *normalize.Normalizer) Result {
	s := &scanner{
		unit: &u,
		norm: n,
		res: Result{
			CASE:       map[models.Location]bool{},
			CASEII:     map[models.Location]bool{},
			ShieldArms: map[models.Location]bool{},
		},
		engine: map[models.Location]int{},
		aes:    map[models.Location]bool{},
	}
	for _, loc := range scanOrder(&u) {
		s.scanLocation(loc, u.Crits[loc])
	}
	s.res.Special.AESArms = len(s.aes)
	s.unitFlags()
	s.inferComponents()
	link(&s.res)
	return s.res
}

// scanOrder lists the unit's locations in record-sheet order followed by
// any other crit locations, sorted.
func scanOrder(u *models.Unit) []models.Location {
	seen := map[models.Location]bool{}
	var out []models.Location
	for _, loc := range u.Locations() {
		seen[loc] = true
		out = append(out, loc)
	}
	var extra []models.Location
	for loc := range u.Crits {
		if !seen[loc] {
			extra = append(extra, loc)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

func (s *scanner) scanLocation(loc models.Location, labels []string) {
	var cur *run
	flush := func() {
		if cur != nil {
			s.add(loc, cur.res, cur.n)
			cur = nil
		}
	}
	ctx := normalize.Context{TechBase: s.unit.TechBase, Location: loc}
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			flush()
			continue
		}
		r, err := s.norm.Resolve(label, ctx)
		if err != nil {
			flush()
			if errors.Is(err, normalize.ErrNotFound) {
				s.res.Unscored = append(s.res.Unscored, Unscored{Label: label, Location: loc})
			}
			continue
		}
		if cur != nil && sameItem(cur.res, r) {
			cur.n++
			continue
		}
		flush()
		cur = &run{res: r, n: 1}
	}
	flush()
}

// add records a run of k labels resolving to r.
func (s *scanner) add(loc models.Location, r normalize.Resolution, k int) {
	e := r.Entry
	if e.Prototype {
		s.res.Prototype = true
	}
	if e.Category == catalog.CategoryStructural {
		s.structural(loc, r.ID, k)
		return
	}
	s.special(loc, r.ID, k)

	count := items(e.Slots, k)
	slots := e.Slots
	if slots <= 0 {
		slots = k
	}
	for i := 0; i < count; i++ {
		it := Item{ID: r.ID, Entry: e, Location: loc, Slots: slots, Fallback: r.Fallback}
		switch e.Category {
		case catalog.CategoryWeapon:
			s.res.Weapons = append(s.res.Weapons, Weapon{Item: it, Rear: r.Rear})
		case catalog.CategoryAmmo:
			s.res.Ammo = append(s.res.Ammo, Ammo{Item: it, Half: r.Half})
		case catalog.CategoryDefensive:
			s.res.Defensive = append(s.res.Defensive, it)
		case catalog.CategoryPhysical:
			s.res.Physical = append(s.res.Physical, it)
		default:
			s.res.Equipment = append(s.res.Equipment, it)
		}
	}
}

func (s *scanner) structural(loc models.Location, id string, k int) {
	switch id {
	case catalog.IDEngine:
		s.engine[loc] += k
	case catalog.IDGyro:
		if loc == models.CenterTorso {
			s.gyro += k
		}
	case catalog.IDCockpit:
		if s.cockpt == "" {
			s.cockpt = loc
		}
	case catalog.IDStealth:
		s.res.Special.Stealth = true
	}
}

// special runs for every non-structural run, independent of the item's
// category.
func (s *scanner) special(loc models.Location, id string, k int) {
	sp := &s.res.Special
	switch id {
	case catalog.IDCASE, catalog.IDClanCASE:
		s.res.CASE[loc] = true
	case catalog.IDCASEII, catalog.IDClanCASEII:
		s.res.CASEII[loc] = true
	case catalog.IDDroneOS:
		sp.DroneOS = true
	case catalog.IDTSM:
		sp.TSM = true
	case catalog.IDIndustrialTSM:
		sp.IndustrialTSM = true
	case catalog.IDMASC, catalog.IDClanMASC:
		sp.MASC = true
	case catalog.IDSupercharger:
		sp.Supercharger = true
	case catalog.IDDoubleHeatSink, catalog.IDClanDoubleHS:
		sp.DoubleHeatSinks = true
	case catalog.IDLaserHeatSink:
		sp.LaserHeatSinks = true
	case catalog.IDImprovedJumpJet, catalog.IDClanImprovedJJ:
		sp.ImprovedJumpJets = true
	case catalog.IDNullSig:
		sp.NullSignature = true
	case catalog.IDVoidSig:
		sp.VoidSignature = true
	case catalog.IDChameleon:
		sp.Chameleon = true
	case catalog.IDTargetingComputer, catalog.IDClanTC:
		sp.TargetingComputer = true
	case catalog.IDAdvancedFCS:
		sp.AdvancedFireControl = true
	case catalog.IDCoolantPod:
		sp.CoolantPods += items(1, k)
	case catalog.IDAES:
		if loc.IsArm() {
			s.aes[loc] = true
		}
	case catalog.IDMediumShield, catalog.IDLargeShield:
		if loc.IsArm() {
			s.res.ShieldArms[loc] = true
		}
	}
}

// unitFlags folds unit-level fields into the special systems.
func (s *scanner) unitFlags() {
	u := s.unit
	sp := &s.res.Special
	switch u.Myomer {
	case models.MyomerTSM:
		sp.TSM = true
	case models.MyomerIndustrialTSM:
		sp.IndustrialTSM = true
	}
	switch u.HeatSinkType {
	case models.HeatSinkDouble:
		sp.DoubleHeatSinks = true
	case models.HeatSinkLaser:
		sp.LaserHeatSinks = true
	}
	if u.ArmorType == models.ArmorStealth {
		sp.Stealth = true
	}
}

// inferComponents takes engine, gyro and cockpit from the unit fields and
// falls back to slot counts when a field is empty.
func (s *scanner) inferComponents() {
	u := s.unit
	s.res.Engine = u.EngineType
	if s.res.Engine == "" {
		s.res.Engine = inferEngine(s.engine[models.LeftTorso], u.TechBase == models.TechClan)
	}
	s.res.Gyro = u.Gyro
	if s.res.Gyro == "" {
		s.res.Gyro = inferGyro(s.gyro)
	}
	s.res.Cockpit = u.Cockpit
	if s.res.Cockpit == "" {
		s.res.Cockpit = models.CockpitStandard
		if s.cockpt == models.CenterTorso {
			s.res.Cockpit = models.CockpitTorsoMounted
		}
	}
}

func inferEngine(sideSlots int, clan bool) models.EngineType {
	switch {
	case sideSlots == 0:
		return models.EngineFusion
	case sideSlots == 2 && clan:
		return models.EngineClanXL
	case sideSlots == 2:
		return models.EngineLight
	case sideSlots == 3:
		return models.EngineXL
	case sideSlots == 4 && clan:
		return models.EngineClanXXL
	}
	return models.EngineXXL
}

func inferGyro(ctSlots int) models.GyroType {
	switch ctSlots {
	case 2:
		return models.GyroCompact
	case 6:
		return models.GyroXL
	}
	return models.GyroStandard
}
