// Package bvcalc computes BattleMech Battle Value from a unit and its
// critical-slot inventory.
//
// Every intermediate value is kept at full float64 precision. The total
// is rounded exactly once, half up.
package bvcalc

import (
	"errors"
	"fmt"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

// ErrNonComputable is returned when mandatory unit data is missing.
var ErrNonComputable = errors.New("unit is not computable")

// WeaponLine is one weapon's contribution to offensive BV.
type WeaponLine struct {
	ID       string          `json:"id"`
	Location models.Location `json:"location"`
	Rear     bool            `json:"rear,omitempty"`
	// BaseBV is the catalog BV; ModifiedBV is after the modifier chain.
	BaseBV     float64 `json:"base_bv"`
	ModifiedBV float64 `json:"modified_bv"`
	// Heat is the BV-context heat used in the efficiency walk.
	Heat float64 `json:"heat"`
	Half bool    `json:"half,omitempty"`
	// BV is what the weapon adds to the weapon subtotal.
	BV float64 `json:"bv"`
}

// Breakdown is the full record of one computation.
type Breakdown struct {
	UnitID string `json:"unit_id"`

	StructureBV          float64                     `json:"structure_bv"`
	ArmorBV              float64                     `json:"armor_bv"`
	GyroBV               float64                     `json:"gyro_bv"`
	DefensiveEquipmentBV float64                     `json:"defensive_equipment_bv"`
	ExplosivePenalty     float64                     `json:"explosive_penalty"`
	ExplosiveByLocation  map[models.Location]float64 `json:"explosive_by_location,omitempty"`
	ImplicitCASE         CASETier                    `json:"implicit_case"`
	RunMP                int                         `json:"run_mp"`
	TMM                  int                         `json:"tmm"`
	DefensiveFactor      float64                     `json:"defensive_factor"`
	DefensiveBR          float64                     `json:"defensive_br"`

	HeatEfficiency           float64      `json:"heat_efficiency"`
	Weapons                  []WeaponLine `json:"weapons"`
	WeaponBV                 float64      `json:"weapon_bv"`
	AmmoBV                   float64      `json:"ammo_bv"`
	PhysicalBV               float64      `json:"physical_bv"`
	WeightBonusBV            float64      `json:"weight_bonus_bv"`
	OffensiveBeforeModifiers float64      `json:"offensive_before_modifiers"`
	OffensiveAfterModifiers  float64      `json:"offensive_after_modifiers"`
	SpeedFactor              float64      `json:"speed_factor"`
	OffensiveBR              float64      `json:"offensive_br"`

	CockpitModifier float64 `json:"cockpit_modifier"`
	RawTotal        float64 `json:"raw_total"`
	Total           int     `json:"total"`

	// Rules lists the rule branches that fired, in first-fired order.
	Rules    []string            `json:"rules"`
	Unscored []critscan.Unscored `json:"unscored,omitempty"`
}

// Fired reports whether rule tag fired.
func (b *Breakdown) Fired(tag string) bool {
	for _, r := range b.Rules {
		if r == tag {
			return true
		}
	}
	return false
}

// Options configures a Calculator.
type Options struct {
	// ClanCASEAllowList holds IDs of mixed-tech units verified to be built
	// on a Clan chassis. They receive implicit CASE for Clan ammo only.
	ClanCASEAllowList map[string]bool
}

// Calculator runs the pipeline. It holds only read-only options and is
// safe for concurrent use.
type Calculator struct {
	opts Options
}

// New returns a Calculator. The allow-list is copied.
func New(opts Options) *Calculator {
	allow := make(map[string]bool, len(opts.ClanCASEAllowList))
	for id, ok := range opts.ClanCASEAllowList {
		if ok {
			allow[id] = true
		}
	}
	return &Calculator{opts: Options{ClanCASEAllowList: allow}}
}

var defaultCalculator = New(Options{})

// Compute runs the pipeline with default options.
func Compute(u models.Unit, scan critscan.Result) (Breakdown, error) {
	return defaultCalculator.Compute(u, scan)
}

// calc carries one computation. It is discarded after Compute returns.
type calc struct {
	opts *Options
	unit *models.Unit
	scan *critscan.Result
	b    Breakdown
	seen map[string]bool

	// frontHalved is set when rear-mounted BV exceeds front-mounted BV.
	frontHalved bool
	capacitorBV float64
}

func (c *calc) fire(tag string) {
	if c.seen[tag] {
		return
	}
	c.seen[tag] = true
	c.b.Rules = append(c.b.Rules, tag)
}

// Compute runs every phase for u. Neither argument is modified.
func (k *Calculator) Compute(u models.Unit, scan critscan.Result) (Breakdown, error) {
	if err := checkComputable(&u); err != nil {
		return Breakdown{}, err
	}
	c := &calc{
		opts: &k.opts,
		unit: &u,
		scan: &scan,
		b:    Breakdown{UnitID: u.ID, Rules: []string{}},
		seen: map[string]bool{},
	}
	c.defensive()
	c.offensive()
	c.final()
	if len(scan.Unscored) > 0 {
		c.b.Unscored = append([]critscan.Unscored(nil), scan.Unscored...)
	}
	return c.b, nil
}

func checkComputable(u *models.Unit) error {
	switch {
	case u.Tonnage <= 0:
		return fmt.Errorf("%w: %s: tonnage %d", ErrNonComputable, u.ID, u.Tonnage)
	case len(u.ArmorFront) == 0:
		return fmt.Errorf("%w: %s: no armor data", ErrNonComputable, u.ID)
	case len(u.StructurePoints) == 0:
		if _, ok := StandardStructure(u.Tonnage, u.Config); !ok {
			return fmt.Errorf("%w: %s: no structure data for %d tons", ErrNonComputable, u.ID, u.Tonnage)
		}
	}
	return nil
}

// final applies the cockpit rule chain and rounds once.
func (c *calc) final() {
	mod, tag := c.cockpitModifier()
	c.fire(tag)
	c.b.CockpitModifier = mod
	c.b.RawTotal = (c.b.DefensiveBR + c.b.OffensiveBR) * mod
	c.b.Total = RoundTotal(c.b.RawTotal)
}
