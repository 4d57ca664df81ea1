package catalog

import "github.com/SwiggitySwerve/MekStation-sub003/internal/models"

// ammoPenalty is the explosive penalty per critical slot of explosive ammo.
const ammoPenalty = 15

func isAmmo(key string, bvPerTon float64) Entry {
	return newAmmo("IS Ammo "+key[3:], models.TechIS, key, bvPerTon)
}

func clAmmo(key string, bvPerTon float64) Entry {
	return newAmmo("Clan Ammo "+key[3:], models.TechClan, key, bvPerTon)
}

func newAmmo(id string, tech models.TechBase, key string, bvPerTon float64) Entry {
	return Entry{
		ID:               id,
		Name:             id,
		Category:         CategoryAmmo,
		TechBase:         tech,
		Slots:            1,
		AmmoKey:          key,
		AmmoBVPerTon:     bvPerTon,
		Explosive:        true,
		ExplosivePenalty: ammoPenalty,
		PenaltyPerSlot:   true,
	}
}

func (e Entry) inert() Entry {
	e.Explosive = false
	e.ExplosivePenalty = 0
	e.PenaltyPerSlot = false
	return e
}

func (e Entry) antiMissile() Entry {
	e.AMS = true
	return e
}

// ammoEntries holds per-ton ammo BV. Entries sharing an AmmoKey with a
// weapon are capped by that weapon's BV.
var ammoEntries = []Entry{
	isAmmo("IS AC/2", 5),
	isAmmo("IS AC/5", 9),
	isAmmo("IS AC/10", 15),
	isAmmo("IS AC/20", 22),
	isAmmo("IS LB 2-X AC", 5),
	isAmmo("IS LB 5-X AC", 10),
	isAmmo("IS LB 10-X AC", 19),
	isAmmo("IS LB 20-X AC", 30),
	isAmmo("IS Ultra AC/2", 7),
	isAmmo("IS Ultra AC/5", 14),
	isAmmo("IS Ultra AC/10", 26),
	isAmmo("IS Ultra AC/20", 35),
	isAmmo("IS Rotary AC/2", 15),
	isAmmo("IS Rotary AC/5", 31),
	isAmmo("IS Light AC/2", 4),
	isAmmo("IS Light AC/5", 8),
	isAmmo("IS HVAC/10", 20),
	isAmmo("IS MG", 1),
	isAmmo("IS Light MG", 1),
	isAmmo("IS Heavy MG", 1),
	isAmmo("IS Gauss", 40).inert(),
	isAmmo("IS Light Gauss", 20).inert(),
	isAmmo("IS Heavy Gauss", 43).inert(),
	isAmmo("IS Plasma Rifle", 26).inert(),
	isAmmo("IS LRM-5", 6),
	isAmmo("IS LRM-10", 11),
	isAmmo("IS LRM-15", 17),
	isAmmo("IS LRM-20", 23),
	isAmmo("IS NLRM-10", 11),
	isAmmo("IS SRM-2", 3),
	isAmmo("IS SRM-4", 5),
	isAmmo("IS SRM-6", 7),
	isAmmo("IS Streak SRM-2", 4),
	isAmmo("IS Streak SRM-4", 7),
	isAmmo("IS Streak SRM-6", 11),
	isAmmo("IS MRM-10", 7),
	isAmmo("IS MRM-20", 14),
	isAmmo("IS MRM-30", 21),
	isAmmo("IS MRM-40", 28),
	isAmmo("IS MML-3", 4),
	isAmmo("IS MML-5", 6),
	isAmmo("IS MML-7", 8),
	isAmmo("IS MML-9", 11),
	isAmmo("IS Narc", 0),
	isAmmo("IS AMS", 11).antiMissile(),

	clAmmo("CL Ultra AC/2", 8),
	clAmmo("CL Ultra AC/5", 15),
	clAmmo("CL Ultra AC/10", 31),
	clAmmo("CL Ultra AC/20", 42),
	clAmmo("CL LB 2-X AC", 6),
	clAmmo("CL LB 5-X AC", 11),
	clAmmo("CL LB 10-X AC", 19),
	clAmmo("CL LB 20-X AC", 30),
	clAmmo("CL MG", 1),
	clAmmo("CL Light MG", 1),
	clAmmo("CL Heavy MG", 1),
	clAmmo("CL Gauss", 40).inert(),
	clAmmo("CL AP Gauss", 3).inert(),
	clAmmo("CL HAG/20", 33).inert(),
	clAmmo("CL Plasma Cannon", 21).inert(),
	clAmmo("CL LRM-5", 7),
	clAmmo("CL LRM-10", 14),
	clAmmo("CL LRM-15", 21),
	clAmmo("CL LRM-20", 27),
	clAmmo("CL SRM-2", 3),
	clAmmo("CL SRM-4", 5),
	clAmmo("CL SRM-6", 7),
	clAmmo("CL Streak SRM-2", 5),
	clAmmo("CL Streak SRM-4", 10),
	clAmmo("CL Streak SRM-6", 15),
	clAmmo("CL Streak LRM-10", 17),
	clAmmo("CL ATM-3", 14),
	clAmmo("CL ATM-6", 26),
	clAmmo("CL ATM-9", 36),
	clAmmo("CL ATM-12", 52),
	clAmmo("CL iATM-6", 39),
	clAmmo("CL Narc", 0),
	clAmmo("CL AMS", 11).antiMissile(),
}
