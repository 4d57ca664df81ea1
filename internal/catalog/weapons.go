package catalog

import "github.com/SwiggitySwerve/MekStation-sub003/internal/models"

func isWeapon(id, name string, bv, heat float64, slots int) Entry {
	return Entry{ID: id, Name: name, Category: CategoryWeapon, TechBase: models.TechIS, BV: bv, Heat: heat, Slots: slots}
}

func clWeapon(id, name string, bv, heat float64, slots int) Entry {
	return Entry{ID: id, Name: name, Category: CategoryWeapon, TechBase: models.TechClan, BV: bv, Heat: heat, Slots: slots}
}

func (e Entry) ammo(rack int, key string) Entry {
	e.RackSize = rack
	e.AmmoKey = key
	return e
}

func (e Entry) direct() Entry {
	e.DirectFire = true
	return e
}

func (e Entry) heatClass(h HeatClass) Entry {
	e.HeatClass = h
	return e
}

func (e Entry) fireControl(f FireControl) Entry {
	e.FireControl = f
	return e
}

func (e Entry) explodes(penalty float64, perSlot bool) Entry {
	e.Explosive = true
	e.ExplosivePenalty = penalty
	e.PenaltyPerSlot = perSlot
	return e
}

func (e Entry) prototype() Entry {
	e.Prototype = true
	return e
}

var weaponEntries = []Entry{
	// Inner Sphere energy
	isWeapon("ISSmallLaser", "Small Laser", 9, 1, 1).direct(),
	isWeapon("ISMediumLaser", "Medium Laser", 46, 3, 1).direct(),
	isWeapon("ISLargeLaser", "Large Laser", 123, 8, 2).direct(),
	isWeapon("ISERSmallLaser", "ER Small Laser", 17, 2, 1).direct(),
	isWeapon("ISERMediumLaser", "ER Medium Laser", 62, 5, 1).direct(),
	isWeapon("ISERLargeLaser", "ER Large Laser", 163, 12, 2).direct(),
	isWeapon("ISSmallPulseLaser", "Small Pulse Laser", 12, 2, 1).direct(),
	isWeapon("ISMediumPulseLaser", "Medium Pulse Laser", 48, 4, 1).direct(),
	isWeapon("ISLargePulseLaser", "Large Pulse Laser", 119, 10, 2).direct(),
	isWeapon("ISSmallXPulseLaser", "Small X-Pulse Laser", 21, 3, 1).direct(),
	isWeapon("ISMediumXPulseLaser", "Medium X-Pulse Laser", 71, 6, 1).direct(),
	isWeapon("ISLargeXPulseLaser", "Large X-Pulse Laser", 178, 14, 2).direct(),
	isWeapon("ISSmallVSPLaser", "Small VSP Laser", 22, 3, 1).direct(),
	isWeapon("ISMediumVSPLaser", "Medium VSP Laser", 56, 7, 2).direct(),
	isWeapon("ISLargeVSPLaser", "Large VSP Laser", 123, 10, 4).direct(),
	isWeapon("ISPPC", "PPC", 176, 10, 3).direct(),
	isWeapon("ISERPPC", "ER PPC", 229, 15, 3).direct(),
	isWeapon("ISLightPPC", "Light PPC", 88, 5, 2).direct(),
	isWeapon("ISHeavyPPC", "Heavy PPC", 317, 15, 4).direct(),
	isWeapon("ISSNPPC", "Snub-Nose PPC", 165, 10, 2).direct(),
	isWeapon("ISEnhancedERPPC", "Enhanced ER PPC", 329, 15, 4).direct(),
	isWeapon("ISFlamer", "Flamer", 6, 3, 1),
	isWeapon("ISPlasmaRifle", "Plasma Rifle", 210, 10, 2).ammo(0, "IS Plasma Rifle").direct(),

	// Inner Sphere ballistic
	isWeapon("ISMachine Gun", "Machine Gun", 5, 0, 1).ammo(0, "IS MG"),
	isWeapon("ISLightMG", "Light Machine Gun", 5, 0, 1).ammo(0, "IS Light MG"),
	isWeapon("ISHeavyMG", "Heavy Machine Gun", 6, 0, 1).ammo(0, "IS Heavy MG"),
	isWeapon("ISAC2", "AC/2", 37, 1, 1).ammo(2, "IS AC/2").direct(),
	isWeapon("ISAC5", "AC/5", 70, 1, 4).ammo(5, "IS AC/5").direct(),
	isWeapon("ISAC10", "AC/10", 123, 3, 7).ammo(10, "IS AC/10").direct(),
	isWeapon("ISAC20", "AC/20", 178, 7, 10).ammo(20, "IS AC/20").direct(),
	isWeapon("ISLBXAC2", "LB 2-X AC", 42, 1, 4).ammo(2, "IS LB 2-X AC").direct(),
	isWeapon("ISLBXAC5", "LB 5-X AC", 83, 1, 5).ammo(5, "IS LB 5-X AC").direct(),
	isWeapon("ISLBXAC10", "LB 10-X AC", 148, 2, 6).ammo(10, "IS LB 10-X AC").direct(),
	isWeapon("ISLBXAC20", "LB 20-X AC", 237, 6, 11).ammo(20, "IS LB 20-X AC").direct(),
	isWeapon("ISUltraAC2", "Ultra AC/2", 56, 1, 3).ammo(2, "IS Ultra AC/2").direct().heatClass(HeatUltra),
	isWeapon("ISUltraAC5", "Ultra AC/5", 112, 1, 5).ammo(5, "IS Ultra AC/5").direct().heatClass(HeatUltra),
	isWeapon("ISUltraAC10", "Ultra AC/10", 210, 4, 7).ammo(10, "IS Ultra AC/10").direct().heatClass(HeatUltra),
	isWeapon("ISUltraAC20", "Ultra AC/20", 281, 8, 10).ammo(20, "IS Ultra AC/20").direct().heatClass(HeatUltra),
	isWeapon("ISRotaryAC2", "Rotary AC/2", 118, 1, 3).ammo(2, "IS Rotary AC/2").direct().heatClass(HeatRotary),
	isWeapon("ISRotaryAC5", "Rotary AC/5", 247, 1, 6).ammo(5, "IS Rotary AC/5").direct().heatClass(HeatRotary),
	isWeapon("ISLAC2", "Light AC/2", 30, 1, 1).ammo(2, "IS Light AC/2").direct(),
	isWeapon("ISLAC5", "Light AC/5", 62, 1, 2).ammo(5, "IS Light AC/5").direct(),
	isWeapon("ISHVAC10", "HVAC/10", 158, 7, 6).ammo(10, "IS HVAC/10").direct().explodes(1, true),
	isWeapon("ISGaussRifle", "Gauss Rifle", 320, 1, 7).ammo(0, "IS Gauss").direct().explodes(1, true),
	isWeapon("ISLightGaussRifle", "Light Gauss Rifle", 159, 1, 5).ammo(0, "IS Light Gauss").direct().explodes(1, true),
	isWeapon("ISHeavyGaussRifle", "Heavy Gauss Rifle", 346, 2, 11).ammo(0, "IS Heavy Gauss").direct().explodes(1, true),

	// Inner Sphere missiles
	isWeapon("ISLRM5", "LRM 5", 45, 2, 1).ammo(5, "IS LRM-5").fireControl(FireControlArtemis),
	isWeapon("ISLRM10", "LRM 10", 90, 4, 2).ammo(10, "IS LRM-10").fireControl(FireControlArtemis),
	isWeapon("ISLRM15", "LRM 15", 136, 5, 3).ammo(15, "IS LRM-15").fireControl(FireControlArtemis),
	isWeapon("ISLRM20", "LRM 20", 181, 6, 5).ammo(20, "IS LRM-20").fireControl(FireControlArtemis),
	isWeapon("ISSRM2", "SRM 2", 21, 2, 1).ammo(2, "IS SRM-2").fireControl(FireControlArtemis),
	isWeapon("ISSRM4", "SRM 4", 39, 3, 1).ammo(4, "IS SRM-4").fireControl(FireControlArtemis),
	isWeapon("ISSRM6", "SRM 6", 59, 4, 2).ammo(6, "IS SRM-6").fireControl(FireControlArtemis),
	isWeapon("ISStreakSRM2", "Streak SRM 2", 30, 2, 1).ammo(2, "IS Streak SRM-2").heatClass(HeatStreak),
	isWeapon("ISStreakSRM4", "Streak SRM 4", 59, 3, 1).ammo(4, "IS Streak SRM-4").heatClass(HeatStreak),
	isWeapon("ISStreakSRM6", "Streak SRM 6", 89, 4, 2).ammo(6, "IS Streak SRM-6").heatClass(HeatStreak),
	isWeapon("ISMRM10", "MRM 10", 56, 4, 2).ammo(10, "IS MRM-10").fireControl(FireControlApollo),
	isWeapon("ISMRM20", "MRM 20", 112, 6, 3).ammo(20, "IS MRM-20").fireControl(FireControlApollo),
	isWeapon("ISMRM30", "MRM 30", 168, 10, 5).ammo(30, "IS MRM-30").fireControl(FireControlApollo),
	isWeapon("ISMRM40", "MRM 40", 224, 12, 7).ammo(40, "IS MRM-40").fireControl(FireControlApollo),
	isWeapon("ISMML3", "MML 3", 29, 2, 2).ammo(3, "IS MML-3").fireControl(FireControlArtemis),
	isWeapon("ISMML5", "MML 5", 45, 3, 3).ammo(5, "IS MML-5").fireControl(FireControlArtemis),
	isWeapon("ISMML7", "MML 7", 67, 4, 4).ammo(7, "IS MML-7").fireControl(FireControlArtemis),
	isWeapon("ISMML9", "MML 9", 86, 5, 5).ammo(9, "IS MML-9").fireControl(FireControlArtemis),
	isWeapon("ISEnhancedLRM10", "Enhanced LRM 10", 104, 4, 5).ammo(10, "IS NLRM-10").fireControl(FireControlArtemis),
	isWeapon("ISRocketLauncher10", "Rocket Launcher 10", 18, 3, 1).heatClass(HeatOneShot),
	isWeapon("ISRocketLauncher15", "Rocket Launcher 15", 23, 4, 2).heatClass(HeatOneShot),
	isWeapon("ISRocketLauncher20", "Rocket Launcher 20", 24, 5, 3).heatClass(HeatOneShot),
	isWeapon("ISNarcBeacon", "Narc Missile Beacon", 30, 0, 2).ammo(0, "IS Narc"),
	isWeapon("ISTAG", "TAG", 0, 0, 1),

	// Clan energy
	clWeapon("CLERMicroLaser", "ER Micro Laser", 7, 1, 1).direct(),
	clWeapon("CLERSmallLaser", "ER Small Laser", 31, 2, 1).direct(),
	clWeapon("CLERMediumLaser", "ER Medium Laser", 108, 5, 1).direct(),
	clWeapon("CLERLargeLaser", "ER Large Laser", 248, 12, 1).direct(),
	clWeapon("CLMicroPulseLaser", "Micro Pulse Laser", 12, 1, 1).direct(),
	clWeapon("CLSmallPulseLaser", "Small Pulse Laser", 24, 2, 1).direct(),
	clWeapon("CLMediumPulseLaser", "Medium Pulse Laser", 111, 4, 1).direct(),
	clWeapon("CLLargePulseLaser", "Large Pulse Laser", 265, 10, 2).direct(),
	clWeapon("CLHeavySmallLaser", "Heavy Small Laser", 15, 3, 1).direct(),
	clWeapon("CLHeavyMediumLaser", "Heavy Medium Laser", 76, 7, 2).direct(),
	clWeapon("CLHeavyLargeLaser", "Heavy Large Laser", 244, 18, 3).direct(),
	clWeapon("CLImprovedHeavySmallLaser", "Improved Heavy Small Laser", 19, 3, 1).direct().explodes(1, true),
	clWeapon("CLImprovedHeavyMediumLaser", "Improved Heavy Medium Laser", 93, 7, 2).direct().explodes(1, true),
	clWeapon("CLImprovedHeavyLargeLaser", "Improved Heavy Large Laser", 296, 18, 3).direct().explodes(1, true),
	clWeapon("CLERPPC", "ER PPC", 412, 15, 2).direct(),
	clWeapon("CLFlamer", "Flamer", 6, 3, 1),
	clWeapon("CLPlasmaCannon", "Plasma Cannon", 170, 7, 1).ammo(0, "CL Plasma Cannon").direct(),

	// Clan ballistic
	clWeapon("CLMG", "Machine Gun", 5, 0, 1).ammo(0, "CL MG"),
	clWeapon("CLLightMG", "Light Machine Gun", 5, 0, 1).ammo(0, "CL Light MG"),
	clWeapon("CLHeavyMG", "Heavy Machine Gun", 6, 0, 1).ammo(0, "CL Heavy MG"),
	clWeapon("CLUltraAC2", "Ultra AC/2", 62, 1, 2).ammo(2, "CL Ultra AC/2").direct().heatClass(HeatUltra),
	clWeapon("CLUltraAC5", "Ultra AC/5", 122, 1, 3).ammo(5, "CL Ultra AC/5").direct().heatClass(HeatUltra),
	clWeapon("CLUltraAC10", "Ultra AC/10", 210, 3, 4).ammo(10, "CL Ultra AC/10").direct().heatClass(HeatUltra),
	clWeapon("CLUltraAC20", "Ultra AC/20", 335, 7, 8).ammo(20, "CL Ultra AC/20").direct().heatClass(HeatUltra),
	clWeapon("CLLBXAC2", "LB 2-X AC", 47, 1, 3).ammo(2, "CL LB 2-X AC").direct(),
	clWeapon("CLLBXAC5", "LB 5-X AC", 93, 1, 4).ammo(5, "CL LB 5-X AC").direct(),
	clWeapon("CLLBXAC10", "LB 10-X AC", 148, 2, 5).ammo(10, "CL LB 10-X AC").direct(),
	clWeapon("CLLBXAC20", "LB 20-X AC", 237, 6, 9).ammo(20, "CL LB 20-X AC").direct(),
	clWeapon("CLGaussRifle", "Gauss Rifle", 320, 1, 6).ammo(0, "CL Gauss").direct().explodes(1, true),
	clWeapon("CLAPGaussRifle", "AP Gauss Rifle", 21, 1, 1).ammo(0, "CL AP Gauss").direct().explodes(1, true),
	clWeapon("CLHAG20", "HAG/20", 267, 4, 6).ammo(20, "CL HAG/20").direct().explodes(1, true),

	// Clan missiles
	clWeapon("CLLRM5", "LRM 5", 55, 2, 1).ammo(5, "CL LRM-5").fireControl(FireControlArtemis),
	clWeapon("CLLRM10", "LRM 10", 109, 4, 1).ammo(10, "CL LRM-10").fireControl(FireControlArtemis),
	clWeapon("CLLRM15", "LRM 15", 164, 5, 2).ammo(15, "CL LRM-15").fireControl(FireControlArtemis),
	clWeapon("CLLRM20", "LRM 20", 220, 6, 4).ammo(20, "CL LRM-20").fireControl(FireControlArtemis),
	clWeapon("CLSRM2", "SRM 2", 21, 2, 1).ammo(2, "CL SRM-2").fireControl(FireControlArtemis),
	clWeapon("CLSRM4", "SRM 4", 39, 3, 1).ammo(4, "CL SRM-4").fireControl(FireControlArtemis),
	clWeapon("CLSRM6", "SRM 6", 59, 4, 1).ammo(6, "CL SRM-6").fireControl(FireControlArtemis),
	clWeapon("CLStreakSRM2", "Streak SRM 2", 40, 2, 1).ammo(2, "CL Streak SRM-2").heatClass(HeatStreak),
	clWeapon("CLStreakSRM4", "Streak SRM 4", 79, 3, 1).ammo(4, "CL Streak SRM-4").heatClass(HeatStreak),
	clWeapon("CLStreakSRM6", "Streak SRM 6", 118, 4, 2).ammo(6, "CL Streak SRM-6").heatClass(HeatStreak),
	clWeapon("CLStreakLRM10", "Streak LRM 10", 173, 4, 2).ammo(10, "CL Streak LRM-10").heatClass(HeatStreak),
	clWeapon("CLATM3", "ATM 3", 53, 2, 2).ammo(3, "CL ATM-3"),
	clWeapon("CLATM6", "ATM 6", 105, 4, 3).ammo(6, "CL ATM-6"),
	clWeapon("CLATM9", "ATM 9", 147, 6, 4).ammo(9, "CL ATM-9"),
	clWeapon("CLATM12", "ATM 12", 212, 8, 5).ammo(12, "CL ATM-12"),
	clWeapon("CLIATM6", "iATM 6", 165, 4, 3).ammo(6, "CL iATM-6").heatClass(HeatAdvancedMissile),
	clWeapon("CLNarcBeacon", "Narc Missile Beacon", 30, 0, 1).ammo(0, "CL Narc"),
	clWeapon("CLTAG", "TAG", 0, 0, 1),
}
