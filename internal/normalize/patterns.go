package normalize

import (
	"regexp"
	"strings"
)

// familyPattern is a fallback matcher for one weapon family. Group 1 of re
// is always the optional tech prefix.
type familyPattern struct {
	family     string
	re         *regexp.Regexp
	candidates func(n *Normalizer, m []string, prefix string) []string
}

func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func join(parts ...string) []string {
	return []string{strings.Join(parts, "")}
}

// weaponPatterns lists per-family fallbacks in evaluation order. Streak
// runs before the plain launcher pattern.
var weaponPatterns = []familyPattern{
	{
		// "UAC/5", "Ultra AC 10", "CL U-AC/20"
		family: "ultra-ac",
		re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*(?:ultra|u)\s*-?\s*ac\s*[/-]?\s*(\d+)$`),
		candidates: func(_ *Normalizer, m []string, p string) []string {
			return join(p, "UltraAC", m[2])
		},
	},
	{
		// "RAC/5", "Rotary AC 2"
		family: "rotary-ac",
		re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*(?:rotary\s*|r)ac\s*[/-]?\s*(\d+)$`),
		candidates: func(_ *Normalizer, m []string, p string) []string {
			return join(p, "RotaryAC", m[2])
		},
	},
	{
		// "LB 10-X AC", "LB10X", "LBX AC 10"
		family: "lb-x",
		re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*lb\s*-?\s*(?:(\d+)\s*-?\s*x|x\s*-?\s*(?:ac)?\s*(\d+))(?:\s*-?\s*ac)?$`),
		candidates: func(_ *Normalizer, m []string, p string) []string {
			size := m[2]
			if size == "" {
				size = m[3]
			}
			return join(p, "LBXAC", size)
		},
	},
	{
		// "Autocannon/20", "AC 10"
		family: "autocannon",
		re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*(?:autocannon|ac)\s*[/-]?\s*(\d+)$`),
		candidates: func(_ *Normalizer, m []string, p string) []string {
			return join(p, "AC", m[2])
		},
	},
	{
		// "Streak SRM-6", "StreakSRM4", "Streak LRM 10"
		family: "streak",
		re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*streak\s*(srm|lrm)\s*-?\s*(\d+)$`),
		candidates: func(_ *Normalizer, m []string, p string) []string {
			return join(p, "Streak", strings.ToUpper(m[2]), m[3])
		},
	},
	{
		// "LRM-15", "SRM 6", "MRM30", "ATM 12", "MML-7"
		family: "launcher",
		re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*(lrm|srm|mrm|mml|atm)\s*-?\s*(\d+)$`),
		candidates: func(_ *Normalizer, m []string, p string) []string {
			return join(p, strings.ToUpper(m[2]), m[3])
		},
	},
	{
		// "ER Med Laser", "Medium Pulse Laser", "ERSmallLaser"
		family: "laser",
		re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*(er\s*)?(micro|small|sm|medium|med|large|lg)\s*(pulse\s*)?laser$`),
		candidates: func(_ *Normalizer, m []string, p string) []string {
			size := map[string]string{"sm": "Small", "med": "Medium", "lg": "Large"}[strings.ToLower(m[3])]
			if size == "" {
				size = titleCase(m[3])
			}
			er := ""
			if m[2] != "" {
				er = "ER"
			}
			pulse := ""
			if m[4] != "" {
				pulse = "Pulse"
			}
			return join(p, er, size, pulse, "Laser")
		},
	},
	{
		// "ER PPC", "Light PPC", "HPPC"
		family: "ppc",
		re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*(er\s*|light\s*|heavy\s*|h\s*|l\s*)?ppc$`),
		candidates: func(_ *Normalizer, m []string, p string) []string {
			kind := map[string]string{"er": "ER", "light": "Light", "l": "Light", "heavy": "Heavy", "h": "Heavy"}[strings.ToLower(strings.TrimSpace(m[2]))]
			return join(p, kind, "PPC")
		},
	},
	{
		// "Machine Gun", "Heavy MG", "LMG"
		family: "machine-gun",
		re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*(light\s*|heavy\s*|l|h)?(?:machine\s*gun|mg)$`),
		candidates: func(_ *Normalizer, m []string, p string) []string {
			switch strings.ToLower(strings.TrimSpace(m[2])) {
			case "light", "l":
				return join(p, "LightMG")
			case "heavy", "h":
				return join(p, "HeavyMG")
			}
			return []string{p + "MG", p + "Machine Gun"}
		},
	},
	{
		// "Gauss", "Light Gauss Rifle", "HeavyGauss"
		family: "gauss",
		re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*(light\s*|heavy\s*|ap\s*)?gauss(?:\s*rifle)?$`),
		candidates: func(_ *Normalizer, m []string, p string) []string {
			kind := strings.TrimSpace(m[2])
			if strings.EqualFold(kind, "ap") {
				kind = "AP"
			} else {
				kind = titleCase(kind)
			}
			return join(p, kind, "GaussRifle")
		},
	},
}

var (
	ammoWord = regexp.MustCompile(`(?i)\bammo\b`)

	// Munition variants that share the standard bin's BV.
	clusterVariant = regexp.MustCompile(`(?i)\s+cluster$`)
	mmlVariant     = regexp.MustCompile(`(?i)^(.*\bmml\s*-?\s*\d+)\s+(?:lrm|srm)$`)
)

// ammoPattern resolves "ISLRM20 Ammo", "Clan Ammo Streak SRM6" or
// "IS Ammo MML-7 LRM" by running the weapon patterns on the label remainder
// and taking that weapon's ammo.
var ammoPattern = familyPattern{
	family: "ammo",
	re:     regexp.MustCompile(`(?i)^(clan|is|cl)?\s*(?:ammo\s+)?(.+?)(?:\s+ammo)?$`),
	candidates: func(n *Normalizer, m []string, p string) []string {
		if !ammoWord.MatchString(m[0]) {
			return nil
		}
		rest := clusterVariant.ReplaceAllString(strings.TrimSpace(m[2]), "")
		if mm := mmlVariant.FindStringSubmatch(rest); mm != nil {
			rest = mm[1]
		}
		for _, fp := range weaponPatterns {
			wm := fp.re.FindStringSubmatch(rest)
			if wm == nil {
				continue
			}
			prefix := p
			if wm[1] != "" {
				prefix = techPrefix(wm[1], "")
			}
			for _, wid := range fp.candidates(n, wm, prefix) {
				e, ok := n.cat.Lookup(wid)
				if !ok || e.AmmoKey == "" {
					continue
				}
				if aid, ok := n.ammoByKey[e.AmmoKey]; ok {
					return []string{aid}
				}
			}
		}
		return nil
	},
}

var familyPatterns = append(append([]familyPattern{}, weaponPatterns...), ammoPattern)
