package bvcalc

import "github.com/SwiggitySwerve/MekStation-sub003/internal/models"

// CockpitRule is one entry of the cockpit rule chain.
type CockpitRule struct {
	Name     string
	Modifier float64
	applies  func(c *calc) bool
}

// CockpitRules is checked in order; the first matching rule sets the
// cockpit modifier. A drone operating system wins over any cockpit type.
var CockpitRules = []CockpitRule{
	{Name: "cockpit:drone", Modifier: 1.0, applies: func(c *calc) bool {
		return c.scan.Special.DroneOS
	}},
	{Name: "cockpit:small", Modifier: 0.95, applies: func(c *calc) bool {
		switch c.scan.Cockpit {
		case models.CockpitSmall, models.CockpitSmallCommandConsole, models.CockpitTorsoMounted:
			return true
		}
		return false
	}},
	{Name: "cockpit:interface", Modifier: 1.3, applies: func(c *calc) bool {
		return c.scan.Cockpit == models.CockpitInterface
	}},
	{Name: "cockpit:default", Modifier: 1.0, applies: func(*calc) bool { return true }},
}

func (c *calc) cockpitModifier() (float64, string) {
	for _, r := range CockpitRules {
		if r.applies(c) {
			return r.Modifier, r.Name
		}
	}
	return 1.0, "cockpit:default"
}
