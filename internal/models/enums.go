package models

import "strings"

// TechBase is the technology origin of a unit or component.
type TechBase string

const (
	TechIS    TechBase = "IS"
	TechClan  TechBase = "Clan"
	TechMixed TechBase = "Mixed"
	TechAny   TechBase = "Any"
)

// ParseTechBase maps MTF tech base strings ("Inner Sphere", "Clan",
// "Mixed (Clan Chassis)") to a TechBase. Unknown values default to IS.
func ParseTechBase(s string) TechBase {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(upper, "MIXED"), upper == "BOTH", upper == "2":
		return TechMixed
	case strings.HasPrefix(upper, "CLAN"), upper == "CL", upper == "1":
		return TechClan
	}
	return TechIS
}

// Config is the chassis configuration.
type Config string

const (
	ConfigBiped   Config = "Biped"
	ConfigQuad    Config = "Quad"
	ConfigQuadVee Config = "QuadVee"
	ConfigTripod  Config = "Tripod"
	ConfigLAM     Config = "LAM"
)

// ParseConfig maps an MTF "Config:" value to a Config. "Biped Omnimech"
// yields ConfigBiped.
func ParseConfig(s string) Config {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "QUADVEE"):
		return ConfigQuadVee
	case strings.Contains(upper, "QUAD"):
		return ConfigQuad
	case strings.Contains(upper, "TRIPOD"):
		return ConfigTripod
	case strings.Contains(upper, "LAM"):
		return ConfigLAM
	}
	return ConfigBiped
}

// IsQuad reports whether the configuration walks on four legs.
func (c Config) IsQuad() bool {
	return c == ConfigQuad || c == ConfigQuadVee
}

// EngineType identifies the engine family.
type EngineType string

const (
	EngineFusion   EngineType = "Fusion"
	EngineXL       EngineType = "XL"
	EngineClanXL   EngineType = "Clan XL"
	EngineLight    EngineType = "Light"
	EngineCompact  EngineType = "Compact"
	EngineXXL      EngineType = "XXL"
	EngineClanXXL  EngineType = "Clan XXL"
	EngineICE      EngineType = "ICE"
	EngineFuelCell EngineType = "Fuel Cell"
	EngineFission  EngineType = "Fission"
)

// ParseEngine maps an MTF engine description ("XL Engine(Clan)",
// "Light Fusion Engine") to an EngineType and the engine's tech base.
func ParseEngine(s string) (EngineType, TechBase) {
	upper := strings.ToUpper(s)
	tech := TechIS
	if strings.Contains(upper, "CLAN") {
		tech = TechClan
	}
	switch {
	case strings.Contains(upper, "XXL"):
		if tech == TechClan {
			return EngineClanXXL, tech
		}
		return EngineXXL, tech
	case strings.Contains(upper, "XL") || strings.Contains(upper, "EXTRA-LIGHT"):
		if tech == TechClan {
			return EngineClanXL, tech
		}
		return EngineXL, tech
	case strings.Contains(upper, "LIGHT"):
		return EngineLight, tech
	case strings.Contains(upper, "COMPACT"):
		return EngineCompact, tech
	case strings.Contains(upper, "ICE") || strings.Contains(upper, "COMBUSTION"):
		return EngineICE, tech
	case strings.Contains(upper, "FUEL"):
		return EngineFuelCell, tech
	case strings.Contains(upper, "FISSION"):
		return EngineFission, tech
	}
	return EngineFusion, tech
}

// SideTorsoFatal reports whether losing a side torso destroys the engine.
func (e EngineType) SideTorsoFatal() bool {
	return e == EngineXL || e == EngineXXL || e == EngineClanXXL
}

// GyroType identifies the gyro.
type GyroType string

const (
	GyroStandard   GyroType = "Standard"
	GyroXL         GyroType = "XL"
	GyroCompact    GyroType = "Compact"
	GyroHeavyDuty  GyroType = "Heavy-Duty"
	GyroSuperheavy GyroType = "Superheavy"
	GyroNone       GyroType = "None"
)

// ParseGyro maps an MTF gyro description to a GyroType.
func ParseGyro(s string) GyroType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case upper == "NONE":
		return GyroNone
	case strings.Contains(upper, "SUPERHEAVY") || strings.Contains(upper, "SUPER HEAVY"):
		return GyroSuperheavy
	case strings.Contains(upper, "XL") || strings.Contains(upper, "EXTRA"):
		return GyroXL
	case strings.Contains(upper, "COMPACT"):
		return GyroCompact
	case strings.Contains(upper, "HEAVY"):
		return GyroHeavyDuty
	}
	return GyroStandard
}

// CockpitType identifies the cockpit.
type CockpitType string

const (
	CockpitStandard            CockpitType = "Standard"
	CockpitSmall               CockpitType = "Small"
	CockpitSmallCommandConsole CockpitType = "Small Command Console"
	CockpitCommandConsole      CockpitType = "Command Console"
	CockpitTorsoMounted        CockpitType = "Torso-Mounted"
	CockpitPrimitive           CockpitType = "Primitive"
	CockpitIndustrial          CockpitType = "Industrial"
	CockpitPrimitiveIndustrial CockpitType = "Primitive Industrial"
	CockpitSuperheavy          CockpitType = "Superheavy"
	CockpitSuperheavyIndustr   CockpitType = "Superheavy Industrial"
	CockpitInterface           CockpitType = "Interface"
	CockpitQuadVee             CockpitType = "QuadVee"
)

// ParseCockpit maps an MTF cockpit description to a CockpitType.
func ParseCockpit(s string) CockpitType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(upper, "SMALL") && strings.Contains(upper, "COMMAND"):
		return CockpitSmallCommandConsole
	case strings.Contains(upper, "SMALL"):
		return CockpitSmall
	case strings.Contains(upper, "COMMAND"):
		return CockpitCommandConsole
	case strings.Contains(upper, "TORSO"):
		return CockpitTorsoMounted
	case strings.Contains(upper, "PRIMITIVE") && strings.Contains(upper, "INDUSTRIAL"):
		return CockpitPrimitiveIndustrial
	case strings.Contains(upper, "SUPERHEAVY") && strings.Contains(upper, "INDUSTRIAL"):
		return CockpitSuperheavyIndustr
	case strings.Contains(upper, "INDUSTRIAL"):
		return CockpitIndustrial
	case strings.Contains(upper, "PRIMITIVE"):
		return CockpitPrimitive
	case strings.Contains(upper, "SUPERHEAVY"):
		return CockpitSuperheavy
	case strings.Contains(upper, "INTERFACE"):
		return CockpitInterface
	case strings.Contains(upper, "QUADVEE"):
		return CockpitQuadVee
	}
	return CockpitStandard
}

// IsIndustrial reports whether the cockpit is an industrial-class cockpit.
func (c CockpitType) IsIndustrial() bool {
	return c == CockpitIndustrial || c == CockpitPrimitiveIndustrial || c == CockpitSuperheavyIndustr
}

// StructureType identifies the internal structure.
type StructureType string

const (
	StructureStandard      StructureType = "Standard"
	StructureEndoSteel     StructureType = "Endo Steel"
	StructureEndoComposite StructureType = "Endo-Composite"
	StructureReinforced    StructureType = "Reinforced"
	StructureComposite     StructureType = "Composite"
	StructureIndustrial    StructureType = "Industrial"
)

// ParseStructure maps an MTF structure description to a StructureType and
// the structure's tech base.
func ParseStructure(s string) (StructureType, TechBase) {
	upper := strings.ToUpper(s)
	tech := TechIS
	if strings.Contains(upper, "CLAN") {
		tech = TechClan
	}
	switch {
	case strings.Contains(upper, "ENDO") && strings.Contains(upper, "COMPOSITE"):
		return StructureEndoComposite, tech
	case strings.Contains(upper, "ENDO"):
		return StructureEndoSteel, tech
	case strings.Contains(upper, "REINFORCED"):
		return StructureReinforced, tech
	case strings.Contains(upper, "COMPOSITE"):
		return StructureComposite, tech
	case strings.Contains(upper, "INDUSTRIAL"):
		return StructureIndustrial, tech
	}
	return StructureStandard, tech
}

// ArmorType identifies the armor.
type ArmorType string

const (
	ArmorStandard           ArmorType = "Standard"
	ArmorFerroFibrous       ArmorType = "Ferro-Fibrous"
	ArmorLightFerro         ArmorType = "Light Ferro-Fibrous"
	ArmorHeavyFerro         ArmorType = "Heavy Ferro-Fibrous"
	ArmorStealth            ArmorType = "Stealth"
	ArmorReactive           ArmorType = "Reactive"
	ArmorReflective         ArmorType = "Reflective"
	ArmorHardened           ArmorType = "Hardened"
	ArmorFerroLamellor      ArmorType = "Ferro-Lamellor"
	ArmorBallisticReinforce ArmorType = "Ballistic-Reinforced"
	ArmorPrimitive          ArmorType = "Primitive"
	ArmorIndustrial         ArmorType = "Industrial"
	ArmorHeavyIndustrial    ArmorType = "Heavy Industrial"
	ArmorCommercial         ArmorType = "Commercial"
	ArmorImpactResistant    ArmorType = "Impact-Resistant"
	ArmorAntiPenetrative    ArmorType = "Anti-Penetrative Ablation"
	ArmorHeatDissipating    ArmorType = "Heat-Dissipating"
	ArmorPatchwork          ArmorType = "Patchwork"
)

// ParseArmor maps an MTF armor description ("Ferro-Fibrous(Clan)",
// "Stealth Armor") to an ArmorType.
func ParseArmor(s string) ArmorType {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "PATCHWORK"):
		return ArmorPatchwork
	case strings.Contains(upper, "STEALTH"):
		return ArmorStealth
	case strings.Contains(upper, "REACTIVE"):
		return ArmorReactive
	case strings.Contains(upper, "REFLECTIVE"):
		return ArmorReflective
	case strings.Contains(upper, "HARDENED"):
		return ArmorHardened
	case strings.Contains(upper, "LAMELLOR"):
		return ArmorFerroLamellor
	case strings.Contains(upper, "BALLISTIC"):
		return ArmorBallisticReinforce
	case strings.Contains(upper, "LIGHT FERRO"):
		return ArmorLightFerro
	case strings.Contains(upper, "HEAVY FERRO"):
		return ArmorHeavyFerro
	case strings.Contains(upper, "FERRO"):
		return ArmorFerroFibrous
	case strings.Contains(upper, "HEAVY INDUSTRIAL"):
		return ArmorHeavyIndustrial
	case strings.Contains(upper, "INDUSTRIAL"):
		return ArmorIndustrial
	case strings.Contains(upper, "COMMERCIAL"):
		return ArmorCommercial
	case strings.Contains(upper, "IMPACT"):
		return ArmorImpactResistant
	case strings.Contains(upper, "ANTI-PENETRATIVE") || strings.Contains(upper, "ABLATION"):
		return ArmorAntiPenetrative
	case strings.Contains(upper, "HEAT-DISSIPATING") || strings.Contains(upper, "HEAT DISSIPATING"):
		return ArmorHeatDissipating
	case strings.Contains(upper, "PRIMITIVE"):
		return ArmorPrimitive
	}
	return ArmorStandard
}

// HeatSinkType identifies the unit's heat sinks.
type HeatSinkType string

const (
	HeatSinkSingle  HeatSinkType = "Single"
	HeatSinkDouble  HeatSinkType = "Double"
	HeatSinkLaser   HeatSinkType = "Laser"
	HeatSinkCompact HeatSinkType = "Compact"
)

// ParseHeatSink maps "IS Double", "Clan Double", "Laser" etc.
func ParseHeatSink(s string) HeatSinkType {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "LASER"):
		return HeatSinkLaser
	case strings.Contains(upper, "COMPACT"):
		return HeatSinkCompact
	case strings.Contains(upper, "DOUBLE"):
		return HeatSinkDouble
	}
	return HeatSinkSingle
}

// Dissipation returns heat dissipated per sink.
func (h HeatSinkType) Dissipation() float64 {
	switch h {
	case HeatSinkDouble, HeatSinkLaser:
		return 2
	}
	return 1
}

// MyomerType identifies the musculature.
type MyomerType string

const (
	MyomerStandard      MyomerType = "Standard"
	MyomerTSM           MyomerType = "Triple-Strength"
	MyomerIndustrialTSM MyomerType = "Industrial Triple-Strength"
)

// ParseMyomer maps an MTF myomer description.
func ParseMyomer(s string) MyomerType {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "INDUSTRIAL"):
		return MyomerIndustrialTSM
	case strings.Contains(upper, "TRIPLE") || strings.Contains(upper, "TSM"):
		return MyomerTSM
	}
	return MyomerStandard
}
