package models

import "strings"

// Location is a mech body location code as used in MTF armor keys.
type Location string

const (
	Head        Location = "HD"
	CenterTorso Location = "CT"
	LeftTorso   Location = "LT"
	RightTorso  Location = "RT"
	LeftArm     Location = "LA"
	RightArm    Location = "RA"
	LeftLeg     Location = "LL"
	RightLeg    Location = "RL"
	CenterLeg   Location = "CL"

	// Quad legs.
	FrontLeftLeg  Location = "FLL"
	FrontRightLeg Location = "FRL"
	RearLeftLeg   Location = "RLL"
	RearRightLeg  Location = "RRL"
)

// BipedLocations lists biped locations in record-sheet order.
var BipedLocations = []Location{Head, CenterTorso, LeftTorso, RightTorso, LeftArm, RightArm, LeftLeg, RightLeg}

// QuadLocations lists quad locations in record-sheet order.
var QuadLocations = []Location{Head, CenterTorso, LeftTorso, RightTorso, FrontLeftLeg, FrontRightLeg, RearLeftLeg, RearRightLeg}

var locationNames = map[string]Location{
	"head":            Head,
	"center torso":    CenterTorso,
	"left torso":      LeftTorso,
	"right torso":     RightTorso,
	"left arm":        LeftArm,
	"right arm":       RightArm,
	"left leg":        LeftLeg,
	"right leg":       RightLeg,
	"center leg":      CenterLeg,
	"front left leg":  FrontLeftLeg,
	"front right leg": FrontRightLeg,
	"rear left leg":   RearLeftLeg,
	"rear right leg":  RearRightLeg,
}

// ParseLocation maps a location name ("Left Arm") or code ("LA") to a
// Location. Rear armor codes (RTL/RTR/RTC) map to their torso.
func ParseLocation(s string) (Location, bool) {
	clean := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ":")))
	if loc, ok := locationNames[clean]; ok {
		return loc, true
	}
	switch strings.ToUpper(clean) {
	case "HD", "H":
		return Head, true
	case "CT", "RTC":
		return CenterTorso, true
	case "LT", "RTL":
		return LeftTorso, true
	case "RT", "RTR":
		return RightTorso, true
	case "LA":
		return LeftArm, true
	case "RA":
		return RightArm, true
	case "LL":
		return LeftLeg, true
	case "RL":
		return RightLeg, true
	case "CL":
		return CenterLeg, true
	case "FLL":
		return FrontLeftLeg, true
	case "FRL":
		return FrontRightLeg, true
	case "RLL":
		return RearLeftLeg, true
	case "RRL":
		return RearRightLeg, true
	}
	return "", false
}

// IsLeg reports whether l is any leg location, quad and tripod legs included.
func (l Location) IsLeg() bool {
	switch l {
	case LeftLeg, RightLeg, CenterLeg, FrontLeftLeg, FrontRightLeg, RearLeftLeg, RearRightLeg:
		return true
	}
	return false
}

// IsArm reports whether l is an arm.
func (l Location) IsArm() bool {
	return l == LeftArm || l == RightArm
}

// IsSideTorso reports whether l is the left or right torso.
func (l Location) IsSideTorso() bool {
	return l == LeftTorso || l == RightTorso
}

// IsTorso reports whether l is any torso location.
func (l Location) IsTorso() bool {
	return l == CenterTorso || l.IsSideTorso()
}

// TransferTo returns the location damage transfers into when l is
// destroyed. Head and center torso have no transfer location.
func (l Location) TransferTo() (Location, bool) {
	switch l {
	case LeftArm, LeftLeg, FrontLeftLeg, RearLeftLeg:
		return LeftTorso, true
	case RightArm, RightLeg, FrontRightLeg, RearRightLeg:
		return RightTorso, true
	case LeftTorso, RightTorso, CenterLeg:
		return CenterTorso, true
	}
	return "", false
}
