package normalize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

// FindingKind classifies a table inconsistency.
type FindingKind string

const (
	FindingMissingTarget FindingKind = "missing-target"
	FindingCollision     FindingKind = "collision"
	FindingTechCrossing  FindingKind = "tech-crossing"
	FindingShadowed      FindingKind = "shadowed-fallback"
)

// Finding is one audit result.
type Finding struct {
	Kind   FindingKind `json:"kind"`
	Key    string      `json:"key"`
	Detail string      `json:"detail"`
}

// Audit checks the tables against the catalog. It reports aliases and name
// rules that point at IDs the catalog lacks, names that collide within a
// scope once case is folded, scoped rules that resolve to the other tech
// base, and fallback entries whose IDs the catalog already carries.
func Audit(cat *catalog.Catalog, t Tables) []Finding {
	var out []Finding

	aliasKeys := make([]string, 0, len(t.Aliases))
	for k := range t.Aliases {
		aliasKeys = append(aliasKeys, k)
	}
	sort.Strings(aliasKeys)
	folded := map[string]string{}
	for _, k := range aliasKeys {
		id := t.Aliases[k]
		if !cat.Has(id) {
			out = append(out, Finding{FindingMissingTarget, k, fmt.Sprintf("alias points at unknown id %q", id)})
		}
		lk := strings.ToLower(k)
		if prev, ok := folded[lk]; ok && t.Aliases[prev] != id {
			out = append(out, Finding{FindingCollision, k, fmt.Sprintf("alias collides with %q", prev)})
		}
		folded[lk] = k
	}

	seen := map[models.TechBase]map[string]string{}
	for _, r := range t.Names {
		e, ok := cat.Lookup(r.ID)
		if !ok {
			out = append(out, Finding{FindingMissingTarget, r.Name, fmt.Sprintf("name points at unknown id %q", r.ID)})
			continue
		}
		tech := r.Tech
		if tech == "" {
			tech = models.TechAny
		}
		if seen[tech] == nil {
			seen[tech] = map[string]string{}
		}
		lk := strings.ToLower(r.Name)
		if prev, ok := seen[tech][lk]; ok && prev != r.ID {
			out = append(out, Finding{FindingCollision, r.Name, fmt.Sprintf("%s scope maps to both %q and %q", tech, prev, r.ID)})
		}
		seen[tech][lk] = r.ID
		if crosses(tech, e.TechBase) {
			out = append(out, Finding{FindingTechCrossing, r.Name, fmt.Sprintf("%s name resolves to %s id %q", tech, e.TechBase, r.ID)})
		}
	}

	for _, e := range t.Fallbacks {
		if cat.Has(e.ID) {
			out = append(out, Finding{FindingShadowed, e.ID, "fallback entry is shadowed by a catalog entry"})
		}
	}
	return out
}

func crosses(scope, entry models.TechBase) bool {
	switch scope {
	case models.TechIS:
		return entry == models.TechClan
	case models.TechClan:
		return entry == models.TechIS
	}
	return false
}
