package db

import (
	"fmt"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

// slic schema queries shared by the SQLite and Postgres readers.
const (
	equipmentQuery = `SELECT COALESCE(internal_name, ''), name, type, COALESCE(bv, 0),
		COALESCE(heat, 0), slots, COALESCE(rack_size, 0), COALESCE(tech_base, '')
		FROM equipment ORDER BY id`

	referenceQuery = `SELECT c.name, v.model_code, COALESCE(v.battle_value, 0)
		FROM variants v
		JOIN chassis c ON v.chassis_id = c.id
		WHERE v.battle_value > 0`
)

// equipmentRow is one row of the slic equipment table.
type equipmentRow struct {
	InternalName string
	Name         string
	Type         string
	BV           int
	Heat         int
	Slots        int
	RackSize     int
	TechBase     string
}

func scanEquipment(rows rowScanner) ([]equipmentRow, error) {
	var out []equipmentRow
	for rows.Next() {
		var r equipmentRow
		if err := rows.Scan(&r.InternalName, &r.Name, &r.Type, &r.BV, &r.Heat, &r.Slots, &r.RackSize, &r.TechBase); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanVariants(rows rowScanner) (map[string]int, error) {
	out := map[string]int{}
	for rows.Next() {
		var chassis, model string
		var bv int
		if err := rows.Scan(&chassis, &model, &bv); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		out[strings.TrimSpace(chassis+" "+model)] = bv
	}
	return out, rows.Err()
}

func slicCategory(typ string) catalog.Category {
	t := strings.ToLower(typ)
	switch {
	case strings.Contains(t, "ammo"):
		return catalog.CategoryAmmo
	case strings.Contains(t, "physical"):
		return catalog.CategoryPhysical
	case strings.Contains(t, "energy"), strings.Contains(t, "ballistic"),
		strings.Contains(t, "missile"), strings.Contains(t, "artillery"),
		strings.Contains(t, "weapon"):
		return catalog.CategoryWeapon
	}
	return catalog.CategoryEquipment
}

// buildCatalog turns slic rows into a catalog. Rows without an internal
// name cannot be keyed and are skipped; the first row wins for a repeated
// internal name. When merge is true, rows for IDs the built-in table knows
// only update BV and heat, so the built-in flags (explosive, heat class,
// fire control) survive.
func buildCatalog(rows []equipmentRow, merge bool) (*catalog.Catalog, error) {
	base := map[string]catalog.Entry{}
	if merge {
		for _, e := range catalog.Builtin() {
			base[e.ID] = e
		}
	}

	seen := map[string]bool{}
	var entries []catalog.Entry
	for _, r := range rows {
		id := strings.TrimSpace(r.InternalName)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		if e, ok := base[id]; ok {
			e.BV = float64(r.BV)
			e.Heat = float64(r.Heat)
			entries = append(entries, e)
			continue
		}
		entries = append(entries, catalog.Entry{
			ID:       id,
			Name:     r.Name,
			Category: slicCategory(r.Type),
			TechBase: models.ParseTechBase(r.TechBase),
			BV:       float64(r.BV),
			Heat:     float64(r.Heat),
			Slots:    r.Slots,
			RackSize: r.RackSize,
		})
	}
	if merge {
		entries = catalog.Merge(catalog.Builtin(), entries)
	}
	return catalog.New(entries)
}
