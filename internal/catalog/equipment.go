package catalog

import "github.com/SwiggitySwerve/MekStation-sub003/internal/models"

func item(id, name string, cat Category, tech models.TechBase, bv float64, slots int) Entry {
	return Entry{ID: id, Name: name, Category: cat, TechBase: tech, BV: bv, Slots: slots}
}

func structural(id string) Entry {
	return Entry{ID: id, Name: id, Category: CategoryStructural, TechBase: models.TechAny}
}

// Equipment IDs referenced by the scanner and the BV pipeline.
const (
	IDCASE              = "ISCASE"
	IDClanCASE          = "CLCASE"
	IDCASEII            = "ISCASEII"
	IDClanCASEII        = "CLCASEII"
	IDTargetingComputer = "ISTargeting Computer"
	IDClanTC            = "CLTargeting Computer"
	IDArtemisIV         = "ISArtemisIV"
	IDClanArtemisIV     = "CLArtemisIV"
	IDArtemisV          = "ISArtemisV"
	IDClanArtemisV      = "CLArtemisV"
	IDArtemisProto      = "ISArtemisIVPrototype"
	IDApollo            = "ISApolloFCS"
	IDPPCCapacitor      = "ISPPCCapacitor"
	IDLaserInsulator    = "ISLaserInsulator"
	IDMGArray           = "ISMGA"
	IDLightMGArray      = "ISLMGA"
	IDHeavyMGArray      = "ISHMGA"
	IDClanMGArray       = "CLMGA"
	IDClanLightMGArray  = "CLLMGA"
	IDClanHeavyMGArray  = "CLHMGA"
	IDMASC              = "ISMASC"
	IDClanMASC          = "CLMASC"
	IDSupercharger      = "Supercharger"
	IDTSM               = "ISTSM"
	IDIndustrialTSM     = "Industrial TSM"
	IDAES               = "ISAES"
	IDDroneOS           = "ISDroneOperatingSystem"
	IDCoolantPod        = "ISCoolantPod"
	IDAdvancedFCS       = "Advanced Fire Control"
	IDNullSig           = "ISNullSignatureSystem"
	IDVoidSig           = "ISVoidSignatureSystem"
	IDChameleon         = "ISChameleonLightPolarizationShield"
	IDStealth           = "Stealth"
	IDDoubleHeatSink    = "ISDoubleHeatSink"
	IDClanDoubleHS      = "CLDoubleHeatSink"
	IDLaserHeatSink     = "CLLaserHeatSink"
	IDImprovedJumpJet   = "ISImprovedJumpJet"
	IDClanImprovedJJ    = "CLImprovedJumpJet"
	IDSmallShield       = "ISSmallShield"
	IDMediumShield      = "ISMediumShield"
	IDLargeShield       = "ISLargeShield"
	IDEngine            = "Engine"
	IDGyro              = "Gyro"
	IDCockpit           = "Cockpit"
	IDCommandConsole    = "Command Console"

	IDHatchet          = "Hatchet"
	IDSword            = "Sword"
	IDClaws            = "ISClaw"
	IDMace             = "Mace"
	IDLance            = "Lance"
	IDRetractableBlade = "Retractable Blade"
	IDTalons           = "Talons"
)

var equipmentEntries = []Entry{
	// Defensive
	item("ISAntiMissileSystem", "Anti-Missile System", CategoryDefensive, models.TechIS, 32, 1).ammo(0, "IS AMS").antiMissile(),
	item("CLAntiMissileSystem", "Anti-Missile System", CategoryDefensive, models.TechClan, 32, 1).ammo(0, "CL AMS").antiMissile(),
	item("ISLaserAntiMissileSystem", "Laser Anti-Missile System", CategoryDefensive, models.TechIS, 45, 2).antiMissile(),
	item("CLLaserAntiMissileSystem", "Laser Anti-Missile System", CategoryDefensive, models.TechClan, 45, 1).antiMissile(),
	item("ISGuardianECMSuite", "Guardian ECM Suite", CategoryDefensive, models.TechIS, 61, 2),
	item("ISAngelECMSuite", "Angel ECM Suite", CategoryDefensive, models.TechIS, 100, 2),
	item("CLECMSuite", "ECM Suite", CategoryDefensive, models.TechClan, 61, 1),
	item("WatchdogECMSuite", "Watchdog CEWS", CategoryDefensive, models.TechClan, 68, 1),
	item("BeagleActiveProbe", "Beagle Active Probe", CategoryDefensive, models.TechIS, 10, 2),
	item("BloodhoundActiveProbe", "Bloodhound Active Probe", CategoryDefensive, models.TechIS, 25, 3),
	item("CLActiveProbe", "Active Probe", CategoryDefensive, models.TechClan, 12, 1),
	item("CLLightActiveProbe", "Light Active Probe", CategoryDefensive, models.TechClan, 7, 1),
	item("ISAntiPersonnelPod", "A-Pod", CategoryDefensive, models.TechIS, 1, 1),
	item("CLAntiPersonnelPod", "A-Pod", CategoryDefensive, models.TechClan, 1, 1),
	item("ISBPod", "B-Pod", CategoryDefensive, models.TechIS, 2, 1),
	item("CLBPod", "B-Pod", CategoryDefensive, models.TechClan, 2, 1),
	item(IDSmallShield, "Small Shield", CategoryDefensive, models.TechIS, 50, 0),
	item(IDMediumShield, "Medium Shield", CategoryDefensive, models.TechIS, 135, 0),
	item(IDLargeShield, "Large Shield", CategoryDefensive, models.TechIS, 263, 0),
	item("ISModularArmor", "Modular Armor", CategoryDefensive, models.TechIS, 25, 1),

	// Physical weapons; BV depends on tonnage.
	item(IDHatchet, "Hatchet", CategoryPhysical, models.TechIS, 0, 0),
	item(IDSword, "Sword", CategoryPhysical, models.TechIS, 0, 0),
	item(IDClaws, "Claws", CategoryPhysical, models.TechIS, 0, 0),
	item(IDMace, "Mace", CategoryPhysical, models.TechIS, 0, 0),
	item(IDLance, "Lance", CategoryPhysical, models.TechIS, 0, 0),
	item(IDRetractableBlade, "Retractable Blade", CategoryPhysical, models.TechIS, 0, 0),
	item(IDTalons, "Talons", CategoryPhysical, models.TechIS, 0, 0),

	// Fire control and linked add-ons
	item(IDTargetingComputer, "Targeting Computer", CategoryEquipment, models.TechIS, 0, 0),
	item(IDClanTC, "Targeting Computer", CategoryEquipment, models.TechClan, 0, 0),
	item(IDArtemisIV, "Artemis IV FCS", CategoryEquipment, models.TechIS, 0, 1),
	item(IDClanArtemisIV, "Artemis IV FCS", CategoryEquipment, models.TechClan, 0, 1),
	item(IDArtemisV, "Artemis V FCS", CategoryEquipment, models.TechIS, 0, 2),
	item(IDClanArtemisV, "Artemis V FCS", CategoryEquipment, models.TechClan, 0, 2),
	item(IDArtemisProto, "Prototype Artemis IV FCS", CategoryEquipment, models.TechIS, 0, 1).prototype(),
	item(IDApollo, "Apollo FCS", CategoryEquipment, models.TechIS, 0, 1),
	item(IDPPCCapacitor, "PPC Capacitor", CategoryEquipment, models.TechIS, 44, 1).explodes(1, false),
	item(IDLaserInsulator, "Laser Insulator", CategoryEquipment, models.TechIS, 0, 1),
	item(IDMGArray, "Machine Gun Array", CategoryEquipment, models.TechIS, 0, 1),
	item(IDLightMGArray, "Light Machine Gun Array", CategoryEquipment, models.TechIS, 0, 1),
	item(IDHeavyMGArray, "Heavy Machine Gun Array", CategoryEquipment, models.TechIS, 0, 1),
	item(IDClanMGArray, "Machine Gun Array", CategoryEquipment, models.TechClan, 0, 1),
	item(IDClanLightMGArray, "Light Machine Gun Array", CategoryEquipment, models.TechClan, 0, 1),
	item(IDClanHeavyMGArray, "Heavy Machine Gun Array", CategoryEquipment, models.TechClan, 0, 1),
	item(IDAdvancedFCS, "Advanced Fire Control", CategoryEquipment, models.TechAny, 0, 0),

	// Protection
	item(IDCASE, "CASE", CategoryEquipment, models.TechIS, 0, 1),
	item(IDClanCASE, "CASE", CategoryEquipment, models.TechClan, 0, 1),
	item(IDCASEII, "CASE II", CategoryEquipment, models.TechIS, 0, 1),
	item(IDClanCASEII, "CASE II", CategoryEquipment, models.TechClan, 0, 1),

	// Movement and special systems
	item(IDMASC, "MASC", CategoryEquipment, models.TechIS, 0, 0),
	item(IDClanMASC, "MASC", CategoryEquipment, models.TechClan, 0, 0),
	item(IDSupercharger, "Supercharger", CategoryEquipment, models.TechAny, 0, 0),
	item(IDTSM, "Triple Strength Myomer", CategoryEquipment, models.TechIS, 0, 1),
	item(IDIndustrialTSM, "Industrial Triple Strength Myomer", CategoryEquipment, models.TechIS, 0, 1),
	item(IDAES, "Actuator Enhancement System", CategoryEquipment, models.TechIS, 0, 0),
	item(IDDroneOS, "Drone Operating System", CategoryEquipment, models.TechIS, 0, 0),
	item(IDCoolantPod, "Coolant Pod", CategoryEquipment, models.TechIS, 0, 1),
	item(IDNullSig, "Null Signature System", CategoryEquipment, models.TechIS, 0, 0),
	item(IDVoidSig, "Void Signature System", CategoryEquipment, models.TechIS, 0, 0),
	item(IDChameleon, "Chameleon Light Polarization Shield", CategoryEquipment, models.TechIS, 0, 0),
	item(IDDoubleHeatSink, "Double Heat Sink", CategoryEquipment, models.TechIS, 0, 3),
	item(IDClanDoubleHS, "Double Heat Sink", CategoryEquipment, models.TechClan, 0, 2),
	item(IDLaserHeatSink, "Laser Heat Sink", CategoryEquipment, models.TechClan, 0, 2),
	item(IDImprovedJumpJet, "Improved Jump Jet", CategoryEquipment, models.TechIS, 0, 2),
	item(IDClanImprovedJJ, "Improved Jump Jet", CategoryEquipment, models.TechClan, 0, 2),

	// Structural slots; scanned but never scored.
	structural(IDEngine),
	structural(IDGyro),
	structural(IDCockpit),
	structural(IDCommandConsole),
	structural("Life Support"),
	structural("Sensors"),
	structural("Shoulder"),
	structural("Upper Arm Actuator"),
	structural("Lower Arm Actuator"),
	structural("Hand Actuator"),
	structural("Hip"),
	structural("Upper Leg Actuator"),
	structural("Lower Leg Actuator"),
	structural("Foot Actuator"),
	structural("Endo Steel"),
	structural("Endo-Composite"),
	structural("Ferro-Fibrous"),
	structural("Light Ferro-Fibrous"),
	structural("Heavy Ferro-Fibrous"),
	structural("Reactive Armor"),
	structural("Reflective Armor"),
	structural("Ferro-Lamellor"),
	structural(IDStealth),
	structural("Heat Sink"),
	structural("Jump Jet"),
	structural("Empty"),
}
