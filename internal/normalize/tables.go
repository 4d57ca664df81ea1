package normalize

import (
	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

// Tables are the hand-curated lookup tables layered over the catalog.
type Tables struct {
	// Aliases map an exact source spelling to an ID. They run before every
	// other table and are the place to override a generic mapping.
	Aliases map[string]string `json:"aliases" yaml:"aliases"`
	// Names map a case-insensitive display name to an ID within one tech
	// scope.
	Names []NameRule `json:"names" yaml:"names"`
	// Fallbacks are entries the catalog does not carry, used as a last
	// resort.
	Fallbacks []catalog.Entry `json:"fallbacks" yaml:"fallbacks"`
}

// NameRule is one scoped name mapping.
type NameRule struct {
	Name string          `json:"name" yaml:"name"`
	Tech models.TechBase `json:"tech" yaml:"tech"`
	ID   string          `json:"id" yaml:"id"`
}

// Merge returns t with other layered on top. Aliases in other replace
// those in t; names and fallbacks are appended so they win on conflict.
func (t Tables) Merge(other Tables) Tables {
	out := Tables{Aliases: make(map[string]string, len(t.Aliases)+len(other.Aliases))}
	for k, v := range t.Aliases {
		out.Aliases[k] = v
	}
	for k, v := range other.Aliases {
		out.Aliases[k] = v
	}
	out.Names = append(append([]NameRule(nil), t.Names...), other.Names...)
	out.Fallbacks = append(append([]catalog.Entry(nil), t.Fallbacks...), other.Fallbacks...)
	return out
}

func rule(name string, tech models.TechBase, id string) NameRule {
	return NameRule{Name: name, Tech: tech, ID: id}
}

func isRules(id string, names ...string) []NameRule {
	out := make([]NameRule, 0, len(names))
	for _, n := range names {
		out = append(out, rule(n, models.TechIS, id))
	}
	return out
}

func clRules(id string, names ...string) []NameRule {
	out := make([]NameRule, 0, len(names))
	for _, n := range names {
		out = append(out, rule(n, models.TechClan, id))
	}
	return out
}

func anyRules(id string, names ...string) []NameRule {
	out := make([]NameRule, 0, len(names))
	for _, n := range names {
		out = append(out, rule(n, models.TechAny, id))
	}
	return out
}

// DefaultTables returns fresh copies of the built-in tables.
func DefaultTables() Tables {
	aliases := map[string]string{
		"EERPPC":                  "ISEnhancedERPPC",
		"ER PPC (Enhanced)":       "ISEnhancedERPPC",
		"ISEHERPPC":               "ISEnhancedERPPC",
		"ISMachineGun":            "ISMachine Gun",
		"IS Machine Gun":          "ISMachine Gun",
		"IS Ammo MG - Full":       "IS Ammo MG",
		"Clan Ammo MG - Full":     "Clan Ammo MG",
		"ISAMS":                   "ISAntiMissileSystem",
		"CLAMS":                   "CLAntiMissileSystem",
		"ISLaserAMS":              "ISLaserAntiMissileSystem",
		"CLLaserAMS":              "CLLaserAntiMissileSystem",
		"ISAMS Ammo":              "IS Ammo AMS",
		"CLAMS Ammo":              "Clan Ammo AMS",
		"ISGuardianECM":           "ISGuardianECMSuite",
		"ISAngelECM":              "ISAngelECMSuite",
		"CLECM":                   "CLECMSuite",
		"ISBeagleActiveProbe":     "BeagleActiveProbe",
		"ISBloodhoundActiveProbe": "BloodhoundActiveProbe",
		"ISTargetingComputer":     catalog.IDTargetingComputer,
		"CLTargetingComputer":     catalog.IDClanTC,
		"ISTripleStrengthMyomer":  catalog.IDTSM,
		"ISIndustrialTSM":         catalog.IDIndustrialTSM,
		"ISSnubNosePPC":           "ISSNPPC",
		"ISLightAC2":              "ISLAC2",
		"ISLightAC5":              "ISLAC5",
		"HAG/20":                  "CLHAG20",
		"CLHAG/20":                "CLHAG20",
	}

	var names []NameRule
	names = append(names, anyRules(catalog.IDEngine, "Fusion Engine", "XL Engine", "XXL Engine", "Light Engine", "Compact Engine", "ICE Engine", "Fuel Cell Engine")...)
	names = append(names, anyRules(catalog.IDGyro, "Standard Gyro", "XL Gyro", "Compact Gyro", "Heavy Duty Gyro", "Superheavy Gyro")...)
	names = append(names, anyRules(catalog.IDCockpit, "Small Cockpit", "Torso-Mounted Cockpit", "Industrial Cockpit", "Interface Cockpit")...)
	names = append(names, anyRules("Empty", "-Empty-", "Roll Again", "-")...)
	names = append(names, anyRules("Endo Steel", "IS Endo Steel", "Clan Endo Steel", "Endo-Steel", "Endo Steel Prototype")...)
	names = append(names, anyRules("Ferro-Fibrous", "IS Ferro-Fibrous", "Clan Ferro-Fibrous", "Ferro Fibrous", "Ferro-Fibrous Prototype")...)
	names = append(names, anyRules("Reactive Armor", "IS Reactive", "Clan Reactive", "Reactive")...)
	names = append(names, anyRules("Reflective Armor", "IS Reflective", "Clan Reflective", "Laser Reflective", "Reflective")...)
	names = append(names, anyRules(catalog.IDStealth, "IS Stealth", "Stealth Armor")...)
	names = append(names, anyRules("Heat Sink", "Single Heat Sink", "ISHeatSink")...)
	names = append(names, anyRules("Jump Jet", "ISJumpJet", "CLJumpJet", "Jump Jets")...)

	names = append(names, isRules(catalog.IDCASE, "CASE")...)
	names = append(names, clRules(catalog.IDClanCASE, "CASE")...)
	names = append(names, isRules(catalog.IDCASEII, "CASE II", "CASEII")...)
	names = append(names, clRules(catalog.IDClanCASEII, "CASE II", "CASEII")...)
	names = append(names, isRules(catalog.IDTargetingComputer, "Targeting Computer", "TargetingComputer")...)
	names = append(names, clRules(catalog.IDClanTC, "Targeting Computer", "TargetingComputer")...)
	names = append(names, isRules(catalog.IDDoubleHeatSink, "Double Heat Sink", "DoubleHeatSink")...)
	names = append(names, clRules(catalog.IDClanDoubleHS, "Double Heat Sink", "DoubleHeatSink")...)
	names = append(names, anyRules(catalog.IDLaserHeatSink, "Laser Heat Sink", "CLLaserHeatSink")...)
	names = append(names, anyRules(catalog.IDTSM, "TSM", "Triple Strength Myomer", "TripleStrengthMyomer")...)
	names = append(names, anyRules(catalog.IDIndustrialTSM, "Industrial TSM", "ITSM")...)
	names = append(names, isRules(catalog.IDMASC, "MASC")...)
	names = append(names, clRules(catalog.IDClanMASC, "MASC")...)
	names = append(names, isRules(catalog.IDImprovedJumpJet, "Improved Jump Jet")...)
	names = append(names, clRules(catalog.IDClanImprovedJJ, "Improved Jump Jet")...)
	names = append(names, isRules(catalog.IDArtemisIV, "Artemis IV", "ArtemisIV", "Artemis IV FCS")...)
	names = append(names, clRules(catalog.IDClanArtemisIV, "Artemis IV", "ArtemisIV", "Artemis IV FCS")...)
	names = append(names, isRules(catalog.IDArtemisV, "Artemis V", "ArtemisV")...)
	names = append(names, clRules(catalog.IDClanArtemisV, "Artemis V", "ArtemisV")...)
	names = append(names, anyRules(catalog.IDApollo, "Apollo", "Apollo FCS", "MRM Apollo FCS")...)
	names = append(names, anyRules(catalog.IDPPCCapacitor, "PPC Capacitor", "PPCCapacitor")...)
	names = append(names, anyRules(catalog.IDLaserInsulator, "Laser Insulator")...)
	names = append(names, anyRules(catalog.IDCoolantPod, "Coolant Pod")...)
	names = append(names, anyRules(catalog.IDAES, "AES", "Actuator Enhancement System", "ISActuatorEnhancementSystem")...)
	names = append(names, anyRules(catalog.IDDroneOS, "Drone Operating System", "DroneOperatingSystem")...)
	names = append(names, anyRules(catalog.IDChameleon, "Chameleon LPS", "Chameleon Light Polarization Shield")...)
	names = append(names, anyRules(catalog.IDNullSig, "Null Signature System", "Null-Signature System")...)
	names = append(names, anyRules(catalog.IDVoidSig, "Void Signature System", "Void-Signature System")...)
	names = append(names, anyRules(catalog.IDSupercharger, "ISSupercharger", "CLSupercharger")...)
	names = append(names, anyRules(catalog.IDAdvancedFCS, "AdvancedFireControl", "Advanced Fire Control System")...)
	names = append(names, anyRules(catalog.IDCommandConsole, "CommandConsole")...)

	names = append(names, anyRules(catalog.IDHatchet, "ISHatchet")...)
	names = append(names, anyRules(catalog.IDSword, "ISSword")...)
	names = append(names, anyRules(catalog.IDClaws, "Claws", "Claw", "CLClaw")...)
	names = append(names, anyRules(catalog.IDMace, "ISMace")...)
	names = append(names, anyRules(catalog.IDLance, "ISLance")...)
	names = append(names, anyRules(catalog.IDRetractableBlade, "ISRetractableBlade", "RetractableBlade")...)
	names = append(names, anyRules(catalog.IDTalons, "ISTalons", "CLTalons")...)

	names = append(names, isRules("ISSmallShield", "Small Shield", "ISShieldSmall")...)
	names = append(names, isRules("ISMediumShield", "Medium Shield", "ISShieldMedium")...)
	names = append(names, isRules("ISLargeShield", "Large Shield", "ISShieldLarge")...)
	names = append(names, isRules("ISAntiMissileSystem", "AMS", "Anti-Missile System")...)
	names = append(names, clRules("CLAntiMissileSystem", "AMS", "Anti-Missile System")...)
	names = append(names, isRules("ISGuardianECMSuite", "Guardian ECM", "ECM Suite")...)
	names = append(names, isRules("BeagleActiveProbe", "Beagle Active Probe", "Active Probe")...)

	names = append(names, isRules("ISAC2", "Autocannon/2")...)
	names = append(names, isRules("ISAC5", "Autocannon/5")...)
	names = append(names, isRules("ISAC10", "Autocannon/10")...)
	names = append(names, isRules("ISAC20", "Autocannon/20")...)
	names = append(names, isRules("ISMachine Gun", "MG")...)
	names = append(names, clRules("CLMG", "MG")...)
	names = append(names, isRules("ISSNPPC", "SNPPC", "Snub Nose PPC")...)
	names = append(names, isRules("ISLightGaussRifle", "Light Gauss")...)
	names = append(names, isRules("ISHeavyGaussRifle", "Heavy Gauss")...)
	names = append(names, isRules("ISNarcBeacon", "Narc", "Narc Beacon")...)
	names = append(names, clRules("CLNarcBeacon", "Narc", "Narc Beacon")...)
	names = append(names, isRules("ISEnhancedLRM10", "NLRM 10", "Enhanced LRM-10")...)
	names = append(names, isRules("IS Ammo LRM-20", "IS Ammo LRM-20 Artemis-capable", "IS Ammo LRM-20 Artemis V-capable")...)
	names = append(names, isRules("IS Ammo SRM-6", "IS Ammo SRM-6 Artemis-capable")...)
	names = append(names, clRules("Clan Ammo LRM-20", "Clan Ammo LRM-20 Artemis-capable")...)
	names = append(names, clRules("Clan Ammo SRM-6", "Clan Ammo SRM-6 Artemis-capable")...)

	fallbacks := []catalog.Entry{
		{ID: "ISBlazer", Name: "Binary Laser (Blazer) Cannon", Category: catalog.CategoryWeapon, TechBase: models.TechIS, BV: 222, Heat: 16, Slots: 4, DirectFire: true},
		{ID: "ISUltraAC5Prototype", Name: "Prototype Ultra Autocannon/5", Category: catalog.CategoryWeapon, TechBase: models.TechIS, BV: 112, Heat: 1, Slots: 5, AmmoKey: "IS Ultra AC/5", DirectFire: true, HeatClass: catalog.HeatUltra, Prototype: true},
		{ID: "ISLBXAC10Prototype", Name: "Prototype LB 10-X Autocannon", Category: catalog.CategoryWeapon, TechBase: models.TechIS, BV: 148, Heat: 2, Slots: 6, AmmoKey: "IS LB 10-X AC", DirectFire: true, Prototype: true},
		{ID: "ISERMediumLaserPrototype", Name: "Prototype ER Medium Laser", Category: catalog.CategoryWeapon, TechBase: models.TechIS, BV: 62, Heat: 5, Slots: 1, DirectFire: true, Prototype: true},
		{ID: "CLERMediumPulseLaser", Name: "ER Medium Pulse Laser", Category: catalog.CategoryWeapon, TechBase: models.TechClan, BV: 117, Heat: 6, Slots: 2, DirectFire: true},
		{ID: "CLERSmallPulseLaser", Name: "ER Small Pulse Laser", Category: catalog.CategoryWeapon, TechBase: models.TechClan, BV: 36, Heat: 3, Slots: 1, DirectFire: true},
		{ID: "CLERLargePulseLaser", Name: "ER Large Pulse Laser", Category: catalog.CategoryWeapon, TechBase: models.TechClan, BV: 272, Heat: 13, Slots: 3, DirectFire: true},
	}

	return Tables{Aliases: aliases, Names: names, Fallbacks: fallbacks}
}
