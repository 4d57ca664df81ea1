// Package models holds the unit descriptor consumed by the scanner and the
// BV pipeline.
package models

// Unit describes one mech variant. A Unit is treated as an immutable
// snapshot; nothing downstream mutates it.
type Unit struct {
	ID      string `json:"id" yaml:"id"`
	Chassis string `json:"chassis" yaml:"chassis"`
	Model   string `json:"model,omitempty" yaml:"model,omitempty"`
	MulID   int    `json:"mul_id,omitempty" yaml:"mul_id,omitempty"`

	Tonnage  int      `json:"tonnage" yaml:"tonnage"`
	Config   Config   `json:"config" yaml:"config"`
	TechBase TechBase `json:"tech_base" yaml:"tech_base"`

	EngineType   EngineType `json:"engine_type" yaml:"engine_type"`
	EngineRating int        `json:"engine_rating" yaml:"engine_rating"`
	EngineTech   TechBase   `json:"engine_tech,omitempty" yaml:"engine_tech,omitempty"`

	Gyro    GyroType    `json:"gyro,omitempty" yaml:"gyro,omitempty"`
	Cockpit CockpitType `json:"cockpit,omitempty" yaml:"cockpit,omitempty"`
	Myomer  MyomerType  `json:"myomer,omitempty" yaml:"myomer,omitempty"`

	StructureType   StructureType    `json:"structure_type" yaml:"structure_type"`
	StructureTech   TechBase         `json:"structure_tech,omitempty" yaml:"structure_tech,omitempty"`
	StructurePoints map[Location]int `json:"structure_points,omitempty" yaml:"structure_points,omitempty"`

	ArmorType ArmorType `json:"armor_type" yaml:"armor_type"`
	// PatchworkArmor holds per-location armor types when ArmorType is
	// ArmorPatchwork.
	PatchworkArmor map[Location]ArmorType `json:"patchwork_armor,omitempty" yaml:"patchwork_armor,omitempty"`
	ArmorFront     map[Location]int       `json:"armor_front" yaml:"armor_front"`
	ArmorRear      map[Location]int       `json:"armor_rear,omitempty" yaml:"armor_rear,omitempty"`

	HeatSinks    int          `json:"heat_sinks" yaml:"heat_sinks"`
	HeatSinkType HeatSinkType `json:"heat_sink_type" yaml:"heat_sink_type"`

	WalkMP int `json:"walk_mp" yaml:"walk_mp"`
	// RunMP is derived from WalkMP when zero.
	RunMP  int `json:"run_mp,omitempty" yaml:"run_mp,omitempty"`
	JumpMP int `json:"jump_mp" yaml:"jump_mp"`

	// Crits maps each location to its ordered critical-slot labels.
	Crits map[Location][]string `json:"crits" yaml:"crits"`
}

// Name returns "Chassis Model" or just the chassis.
func (u *Unit) Name() string {
	if u.Model == "" {
		return u.Chassis
	}
	return u.Chassis + " " + u.Model
}

// Locations returns the unit's locations in record-sheet order.
func (u *Unit) Locations() []Location {
	if u.Config.IsQuad() {
		return QuadLocations
	}
	if u.Config == ConfigTripod {
		return append(append([]Location{}, BipedLocations...), CenterLeg)
	}
	return BipedLocations
}

// TotalArmor sums front and rear armor points.
func (u *Unit) TotalArmor() int {
	total := 0
	for _, v := range u.ArmorFront {
		total += v
	}
	for _, v := range u.ArmorRear {
		total += v
	}
	return total
}

// Superheavy reports whether the unit exceeds 100 tons.
func (u *Unit) Superheavy() bool {
	return u.Tonnage > 100
}

// IsClanChassis reports whether the unit is pure Clan tech.
func (u *Unit) IsClanChassis() bool {
	return u.TechBase == TechClan
}
