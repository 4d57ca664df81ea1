package critscan

import (
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

var artemisIDs = map[string]bool{
	catalog.IDArtemisIV:     true,
	catalog.IDClanArtemisIV: true,
	catalog.IDArtemisV:      true,
	catalog.IDClanArtemisV:  true,
	catalog.IDArtemisProto:  true,
}

var mgArrayIDs = map[string]bool{
	catalog.IDMGArray:          true,
	catalog.IDLightMGArray:     true,
	catalog.IDHeavyMGArray:     true,
	catalog.IDClanMGArray:      true,
	catalog.IDClanLightMGArray: true,
	catalog.IDClanHeavyMGArray: true,
}

func isPPC(w *Weapon) bool   { return strings.Contains(w.ID, "PPC") }
func isLaser(w *Weapon) bool { return strings.Contains(w.ID, "Laser") }
func isMG(w *Weapon) bool {
	return w.Entry.AmmoKey != "" && strings.HasSuffix(w.Entry.AmmoKey, "MG")
}

// link attaches add-ons to weapons in the same location. Each add-on
// links to the first eligible unlinked weapon in slot order; an MG array
// links every machine gun beside it.
func link(r *Result) {
	byLoc := map[models.Location][]int{}
	for i := range r.Weapons {
		byLoc[r.Weapons[i].Location] = append(byLoc[r.Weapons[i].Location], i)
	}

	first := func(loc models.Location, ok func(*Weapon) bool) *Weapon {
		for _, i := range byLoc[loc] {
			if w := &r.Weapons[i]; ok(w) {
				return w
			}
		}
		return nil
	}

	for _, eq := range r.Equipment {
		loc := eq.Location
		switch {
		case artemisIDs[eq.ID]:
			if w := first(loc, func(w *Weapon) bool {
				return w.FireControl == "" && w.Entry.FireControl == catalog.FireControlArtemis
			}); w != nil {
				w.FireControl = eq.ID
			}
		case eq.ID == catalog.IDApollo:
			if w := first(loc, func(w *Weapon) bool {
				return w.FireControl == "" && w.Entry.FireControl == catalog.FireControlApollo
			}); w != nil {
				w.FireControl = eq.ID
			}
		case eq.ID == catalog.IDPPCCapacitor:
			if w := first(loc, func(w *Weapon) bool { return !w.Capacitor && isPPC(w) }); w != nil {
				w.Capacitor = true
			}
		case eq.ID == catalog.IDLaserInsulator:
			if w := first(loc, func(w *Weapon) bool { return !w.Insulator && isLaser(w) }); w != nil {
				w.Insulator = true
			}
		case mgArrayIDs[eq.ID]:
			for _, i := range byLoc[loc] {
				if w := &r.Weapons[i]; isMG(w) {
					w.MGArray = true
				}
			}
		}
	}
}
