package ingestion

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// parseArmorValue handles both standard "26" and patchwork "Reactive(Inner Sphere):26" formats.
// The second return value is the patchwork armor type, if any.
func parseArmorValue(val string) (int, string) {
	// Try direct parse first
	if n, err := strconv.Atoi(val); err == nil {
		return n, ""
	}
	// Patchwork format: "ArmorType:value"
	if idx := strings.LastIndex(val, ":"); idx >= 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(val[idx+1:])); err == nil {
			return n, strings.TrimSpace(val[:idx])
		}
	}
	return 0, ""
}

// MTFData holds the parsed fields of a MegaMek .mtf file that feed BV.
type MTFData struct {
	// Header
	Chassis    string
	Model      string
	MulID      int
	Config     string
	TechBase   string
	Era        int
	Source     string
	RulesLevel int

	// Core
	Mass         int
	EngineRating int
	EngineType   string
	Structure    string
	Myomer       string
	Cockpit      string
	Gyro         string

	// Heat sinks
	HeatSinkCount int
	HeatSinkType  string

	// Movement
	WalkMP int
	JumpMP int

	// Armor, keyed by MTF armor code (LA, RTC, FLL...).
	ArmorType    string
	ArmorValues  map[string]int
	ArmorPatches map[string]string

	// Weapons summary
	Weapons []WeaponEntry

	// Per-location critical slots, keyed by location header ("Left Arm").
	LocationEquipment map[string][]string
}

// WeaponEntry is a weapon from the Weapons:N summary block.
type WeaponEntry struct {
	Name     string
	Location string
}

// ParseMTF reads a MegaMek .mtf file and returns structured data.
func ParseMTF(path string) (*MTFData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mtf: %w", err)
	}
	defer f.Close()
	return ParseMTFReader(f)
}

// ParseMTFReader parses .mtf content from r.
func ParseMTFReader(r io.Reader) (*MTFData, error) {
	data := &MTFData{
		ArmorValues:       make(map[string]int),
		ArmorPatches:      make(map[string]string),
		LocationEquipment: make(map[string][]string),
	}

	scanner := bufio.NewScanner(r)
	// Increase buffer for files with long lore lines
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var currentLocation string
	var inWeapons bool

	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		lower := strings.ToLower(trimmed)

		// Check if we're entering a location block
		if loc := matchLocationHeader(trimmed); loc != "" {
			currentLocation = loc
			inWeapons = false
			continue
		}

		// Check for weapons section
		if strings.HasPrefix(lower, "weapons:") {
			inWeapons = true
			currentLocation = ""
			continue
		}

		// If in a location block, collect equipment. A key:value line
		// ends the block.
		if currentLocation != "" {
			if isFieldLine(lower) {
				currentLocation = ""
			} else {
				data.LocationEquipment[currentLocation] = append(data.LocationEquipment[currentLocation], trimmed)
				continue
			}
		}

		// If in weapons section, parse weapon entries
		if inWeapons {
			if parts := strings.SplitN(trimmed, ",", 2); len(parts) == 2 {
				data.Weapons = append(data.Weapons, WeaponEntry{
					Name:     strings.TrimSpace(parts[0]),
					Location: strings.TrimSpace(parts[1]),
				})
				continue
			}
			inWeapons = false
		}

		// Parse key:value fields
		idx := strings.Index(trimmed, ":")
		if idx < 0 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(trimmed[:idx]))
		val := strings.TrimSpace(trimmed[idx+1:])

		if code, ok := strings.CutSuffix(key, " armor"); ok {
			n, patch := parseArmorValue(val)
			code = strings.ToUpper(code)
			data.ArmorValues[code] = n
			if patch != "" {
				data.ArmorPatches[code] = patch
			}
			continue
		}

		switch key {
		case "chassis":
			data.Chassis = val
		case "model":
			data.Model = val
		case "mul id":
			data.MulID, _ = strconv.Atoi(val)
		case "config":
			data.Config = val
		case "techbase":
			data.TechBase = val
		case "era":
			data.Era, _ = strconv.Atoi(val)
		case "source":
			data.Source = val
		case "rules level":
			data.RulesLevel, _ = strconv.Atoi(val)
		case "mass":
			data.Mass, _ = strconv.Atoi(val)
		case "engine":
			data.EngineRating, data.EngineType = parseEngine(val)
		case "structure":
			data.Structure = val
		case "myomer":
			data.Myomer = val
		case "cockpit":
			data.Cockpit = val
		case "gyro":
			data.Gyro = val
		case "heat sinks":
			data.HeatSinkCount, data.HeatSinkType = parseHeatSinks(val)
		case "walk mp":
			data.WalkMP, _ = strconv.Atoi(val)
		case "jump mp":
			data.JumpMP, _ = strconv.Atoi(val)
		case "armor":
			data.ArmorType = val
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan mtf: %w", err)
	}

	// Validate minimum required fields
	if data.Chassis == "" {
		return nil, fmt.Errorf("missing chassis field")
	}

	return data, nil
}

var fieldPrefixes = []string{
	"armor:", "weapons:", "manufacturer:", "primaryfactory:", "systemmanufacturer:",
	"overview:", "capabilities:", "deployment:", "history:", "quirk:", "nocrit:",
	"systemmode:", "notes:", "imagefile:", "fluffimage:", "role:",
}

func isFieldLine(lower string) bool {
	for _, p := range fieldPrefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// matchLocationHeader checks if a line is a location header like "Left Arm:" or "Front Left Leg:"
func matchLocationHeader(line string) string {
	locations := []string{
		"Left Arm:",
		"Right Arm:",
		"Left Torso:",
		"Right Torso:",
		"Center Torso:",
		"Head:",
		"Left Leg:",
		"Right Leg:",
		// Quad mech locations
		"Front Left Leg:",
		"Front Right Leg:",
		"Rear Left Leg:",
		"Rear Right Leg:",
		// Tripod and LAM locations
		"Center Leg:",
	}
	for _, loc := range locations {
		if strings.EqualFold(line, loc) {
			return strings.TrimSuffix(loc, ":")
		}
	}
	return ""
}

// parseEngine parses "300 Fusion Engine(IS)" -> (300, "Fusion Engine(IS)")
func parseEngine(val string) (int, string) {
	parts := strings.SplitN(val, " ", 2)
	if len(parts) < 2 {
		rating, _ := strconv.Atoi(val)
		return rating, ""
	}
	rating, _ := strconv.Atoi(parts[0])
	return rating, parts[1]
}

// parseHeatSinks parses "14 IS Double" -> (14, "IS Double")
func parseHeatSinks(val string) (int, string) {
	parts := strings.SplitN(val, " ", 2)
	if len(parts) < 2 {
		count, _ := strconv.Atoi(val)
		return count, "Single"
	}
	count, _ := strconv.Atoi(parts[0])
	return count, parts[1]
}

// TotalArmor returns the sum of all armor values.
func (d *MTFData) TotalArmor() int {
	total := 0
	for _, v := range d.ArmorValues {
		total += v
	}
	return total
}

// FullName returns "Chassis Model" or just "Chassis" if model is empty.
func (d *MTFData) FullName() string {
	if d.Model == "" {
		return d.Chassis
	}
	return d.Chassis + " " + d.Model
}
