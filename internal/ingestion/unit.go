package ingestion

import (
	"regexp"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

var omnipodSuffix = regexp.MustCompile(`(?i)\s*\(omnipod\)\s*$`)

// Unit converts parsed MTF data into the unit descriptor scored by the
// pipeline. The unit ID is the full "Chassis Model" name.
func (d *MTFData) Unit() models.Unit {
	u := models.Unit{
		ID:           d.FullName(),
		Chassis:      d.Chassis,
		Model:        d.Model,
		MulID:        d.MulID,
		Tonnage:      d.Mass,
		Config:       models.ParseConfig(d.Config),
		TechBase:     models.ParseTechBase(d.TechBase),
		EngineRating: d.EngineRating,
		Gyro:         models.ParseGyro(d.Gyro),
		Cockpit:      models.ParseCockpit(d.Cockpit),
		Myomer:       models.ParseMyomer(d.Myomer),
		ArmorType:    models.ParseArmor(d.ArmorType),
		ArmorFront:   map[models.Location]int{},
		ArmorRear:    map[models.Location]int{},
		HeatSinks:    d.HeatSinkCount,
		HeatSinkType: models.ParseHeatSink(d.HeatSinkType),
		WalkMP:       d.WalkMP,
		JumpMP:       d.JumpMP,
		Crits:        map[models.Location][]string{},
	}
	u.EngineType, u.EngineTech = models.ParseEngine(d.EngineType)
	u.StructureType, u.StructureTech = models.ParseStructure(d.Structure)
	if strings.Contains(strings.ToUpper(d.Config), "LAM") {
		u.Config = models.ConfigLAM
	}

	for code, pts := range d.ArmorValues {
		loc, ok := models.ParseLocation(code)
		if !ok {
			continue
		}
		if isRearCode(code) {
			u.ArmorRear[loc] += pts
		} else {
			u.ArmorFront[loc] += pts
		}
	}
	if u.ArmorType == models.ArmorPatchwork {
		u.PatchworkArmor = map[models.Location]models.ArmorType{}
		for code, patch := range d.ArmorPatches {
			if loc, ok := models.ParseLocation(code); ok && !isRearCode(code) {
				u.PatchworkArmor[loc] = models.ParseArmor(patch)
			}
		}
	}
	if len(u.ArmorRear) == 0 {
		u.ArmorRear = nil
	}

	for header, slots := range d.LocationEquipment {
		loc, ok := models.ParseLocation(header)
		if !ok {
			continue
		}
		labels := make([]string, len(slots))
		for i, s := range slots {
			labels[i] = omnipodSuffix.ReplaceAllString(s, "")
		}
		u.Crits[loc] = labels
	}
	return u
}

func isRearCode(code string) bool {
	switch strings.ToUpper(code) {
	case "RTL", "RTR", "RTC":
		return true
	}
	return false
}
