// Package catalog holds the immutable equipment catalog keyed by canonical
// equipment ID.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

// Category classifies an equipment entry.
type Category string

const (
	CategoryWeapon     Category = "weapon"
	CategoryAmmo       Category = "ammo"
	CategoryDefensive  Category = "defensive"
	CategoryPhysical   Category = "physical"
	CategoryEquipment  Category = "equipment"
	CategoryStructural Category = "structural"
)

// HeatClass selects the BV-context heat multiplier for a weapon.
type HeatClass string

const (
	HeatStandard HeatClass = ""
	HeatUltra    HeatClass = "ultra"
	HeatRotary   HeatClass = "rotary"
	HeatStreak   HeatClass = "streak"
	HeatOneShot  HeatClass = "one-shot"
	// HeatAdvancedMissile covers launchers that only fire on lock, such as iATM.
	HeatAdvancedMissile HeatClass = "advanced-missile"
)

// FireControl names the add-on family that can be linked to a launcher.
type FireControl string

const (
	FireControlNone    FireControl = ""
	FireControlArtemis FireControl = "artemis"
	FireControlApollo  FireControl = "apollo"
)

// Entry is one catalog item. Entries are values; the catalog never hands
// out pointers into its own storage.
type Entry struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Category Category        `json:"category" yaml:"category"`
	TechBase models.TechBase `json:"tech_base" yaml:"tech_base"`

	BV   float64 `json:"bv" yaml:"bv"`
	Heat float64 `json:"heat,omitempty" yaml:"heat,omitempty"`
	// Slots is the critical-slot size of one item. Zero means variable-size:
	// every contiguous run of labels is one item.
	Slots    int `json:"slots,omitempty" yaml:"slots,omitempty"`
	RackSize int `json:"rack_size,omitempty" yaml:"rack_size,omitempty"`

	// AmmoKey groups weapons with the ammo they fire (family + rack size).
	AmmoKey      string  `json:"ammo_key,omitempty" yaml:"ammo_key,omitempty"`
	AmmoBVPerTon float64 `json:"ammo_bv_per_ton,omitempty" yaml:"ammo_bv_per_ton,omitempty"`

	Explosive        bool    `json:"explosive,omitempty" yaml:"explosive,omitempty"`
	ExplosivePenalty float64 `json:"explosive_penalty,omitempty" yaml:"explosive_penalty,omitempty"`
	PenaltyPerSlot   bool    `json:"penalty_per_slot,omitempty" yaml:"penalty_per_slot,omitempty"`

	HeatClass   HeatClass   `json:"heat_class,omitempty" yaml:"heat_class,omitempty"`
	FireControl FireControl `json:"fire_control,omitempty" yaml:"fire_control,omitempty"`
	DirectFire  bool        `json:"direct_fire,omitempty" yaml:"direct_fire,omitempty"`
	AMS         bool        `json:"ams,omitempty" yaml:"ams,omitempty"`
	Prototype   bool        `json:"prototype,omitempty" yaml:"prototype,omitempty"`
}

// IsWeapon reports whether the entry fires.
func (e Entry) IsWeapon() bool { return e.Category == CategoryWeapon }

// IsAmmo reports whether the entry is an ammo bin.
func (e Entry) IsAmmo() bool { return e.Category == CategoryAmmo }

// Penalty returns the explosive penalty for one item spanning slots
// critical slots.
func (e Entry) Penalty(slots int) float64 {
	if !e.Explosive {
		return 0
	}
	if e.PenaltyPerSlot {
		return e.ExplosivePenalty * float64(slots)
	}
	return e.ExplosivePenalty
}

// ErrDuplicateID is returned when two entries share a canonical ID.
var ErrDuplicateID = errors.New("duplicate equipment id")

// Catalog is an immutable set of entries keyed by canonical ID.
type Catalog struct {
	entries map[string]Entry
	ids     []string
}

// New builds a catalog. IDs must be non-empty and unique.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog entry %q: empty id", e.Name)
		}
		if _, dup := c.entries[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		if e.TechBase == "" {
			e.TechBase = models.TechAny
		}
		c.entries[e.ID] = e
		c.ids = append(c.ids, e.ID)
	}
	sort.Strings(c.ids)
	return c, nil
}

// MustNew is New for static tables.
func MustNew(entries []Entry) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the entry for id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Has reports whether id exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.entries[id]
	return ok
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.ids) }

// IDs returns all IDs sorted.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Entries returns a copy of all entries sorted by ID.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.entries[id])
	}
	return out
}

var defaultCatalog = MustNew(Builtin())

// Default returns the built-in catalog.
func Default() *Catalog { return defaultCatalog }

// Builtin returns a fresh copy of the built-in entry table.
func Builtin() []Entry {
	out := make([]Entry, 0, len(weaponEntries)+len(ammoEntries)+len(equipmentEntries))
	out = append(out, weaponEntries...)
	out = append(out, ammoEntries...)
	out = append(out, equipmentEntries...)
	return out
}
