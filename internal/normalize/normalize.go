// Package normalize resolves free-form equipment names from unit files and
// critical-slot labels into canonical catalog IDs.
//
// Resolution walks a fixed list of stages and stops at the first match.
// The alias table always runs before the name-mapping table so that an
// alias can override a generic mapping of the same string.
package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

// ErrNotFound is returned when no stage resolves a name.
var ErrNotFound = errors.New("equipment not found")

// Stage identifies which resolution stage produced a match.
type Stage int

const (
	StageAlias Stage = iota + 1
	StageNameMap
	StageOrientation
	StageWordOrder
	StageRackSize
	StageHalfTon
	StagePattern
	StageFallback
)

// Stages is the resolution order.
var Stages = []Stage{
	StageAlias,
	StageNameMap,
	StageOrientation,
	StageWordOrder,
	StageRackSize,
	StageHalfTon,
	StagePattern,
	StageFallback,
}

var stageNames = map[Stage]string{
	StageAlias:       "alias",
	StageNameMap:     "name-map",
	StageOrientation: "orientation",
	StageWordOrder:   "word-order",
	StageRackSize:    "rack-size",
	StageHalfTon:     "half-ton",
	StagePattern:     "pattern",
	StageFallback:    "fallback",
}

func (s Stage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Context carries what the caller knows about where a name was found.
type Context struct {
	TechBase models.TechBase
	Location models.Location
}

// Resolution is a successful lookup.
type Resolution struct {
	ID    string
	Entry catalog.Entry
	Stage Stage
	// Rear is set when a rear-facing marker was present on a torso mount.
	Rear bool
	// Half is set for half-ton ammo bins.
	Half bool
	// Fallback is set when Entry came from the fallback table rather than
	// the catalog.
	Fallback bool
}

// Normalizer is immutable after New and safe for concurrent use.
type Normalizer struct {
	cat       *catalog.Catalog
	aliases   map[string]string
	ids       map[string]string
	names     map[models.TechBase]map[string]string
	tokens    map[models.TechBase]map[string]string
	fallbacks map[string]catalog.Entry
	ammoByKey map[string]string
}

// New indexes the catalog and tables. Table inconsistencies are not
// rejected here; run Audit to find them.
func New(cat *catalog.Catalog, tables Tables) *Normalizer {
	n := &Normalizer{
		cat:       cat,
		aliases:   make(map[string]string, len(tables.Aliases)),
		ids:       make(map[string]string, cat.Len()),
		names:     map[models.TechBase]map[string]string{},
		tokens:    map[models.TechBase]map[string]string{},
		fallbacks: make(map[string]catalog.Entry, len(tables.Fallbacks)),
		ammoByKey: map[string]string{},
	}
	for k, v := range tables.Aliases {
		n.aliases[k] = v
	}

	for _, e := range cat.Entries() {
		n.ids[strings.ToLower(e.ID)] = e.ID
		n.addName(e.TechBase, e.Name, e.ID, false)
		if e.IsAmmo() {
			if _, ok := n.ammoByKey[e.AmmoKey]; !ok {
				n.ammoByKey[e.AmmoKey] = e.ID
			}
		}
	}
	for _, r := range tables.Names {
		n.addName(r.Tech, r.Name, r.ID, true)
	}
	for _, e := range tables.Fallbacks {
		if e.TechBase == "" {
			e.TechBase = models.TechAny
		}
		n.fallbacks[strings.ToLower(e.ID)] = e
		n.fallbacks[strings.ToLower(e.Name)] = e
	}
	return n
}

// Default builds a Normalizer over the built-in catalog and tables.
func Default() *Normalizer {
	return New(catalog.Default(), DefaultTables())
}

// Catalog returns the catalog the normalizer resolves into.
func (n *Normalizer) Catalog() *catalog.Catalog { return n.cat }

func (n *Normalizer) addName(tech models.TechBase, name, id string, override bool) {
	if name == "" {
		return
	}
	if tech == "" {
		tech = models.TechAny
	}
	if n.names[tech] == nil {
		n.names[tech] = map[string]string{}
		n.tokens[tech] = map[string]string{}
	}
	key := strings.ToLower(name)
	if _, exists := n.names[tech][key]; exists && !override {
		return
	}
	n.names[tech][key] = id
	n.tokens[tech][tokenKey(key)] = id
}

// scopes lists name-map scopes to try for a unit tech base. Mixed units
// try Inner Sphere names first; prefixed IDs resolve before scoping.
func scopes(tech models.TechBase) []models.TechBase {
	switch tech {
	case models.TechClan:
		return []models.TechBase{models.TechClan, models.TechAny}
	case models.TechIS:
		return []models.TechBase{models.TechIS, models.TechAny}
	}
	return []models.TechBase{models.TechIS, models.TechClan, models.TechAny}
}

type query struct {
	name string
	rear bool
	half bool
}

// Resolve maps raw to a catalog entry. It returns an error wrapping
// ErrNotFound when every stage fails.
func (n *Normalizer) Resolve(raw string, ctx Context) (Resolution, error) {
	q := &query{name: strings.TrimSpace(raw)}
	if q.name == "" {
		return Resolution{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	if r, ok := n.direct(q, ctx); ok {
		return r, nil
	}
	if r, ok := n.orientation(q, ctx); ok {
		return r, nil
	}
	if r, ok := n.loose(q, ctx); ok {
		return r, nil
	}
	if r, ok := n.halfTon(q, ctx); ok {
		return r, nil
	}
	if r, ok := n.pattern(q, ctx); ok {
		return r, nil
	}
	if r, ok := n.fallback(q); ok {
		return r, nil
	}
	return Resolution{}, fmt.Errorf("%w: %q", ErrNotFound, raw)
}

func (n *Normalizer) resolved(id string, stage Stage, q *query, ctx Context) (Resolution, bool) {
	e, ok := n.cat.Lookup(id)
	if !ok {
		return Resolution{}, false
	}
	return Resolution{
		ID:    id,
		Entry: e,
		Stage: stage,
		Rear:  q.rear && (ctx.Location == "" || ctx.Location.IsTorso()),
		Half:  q.half && e.IsAmmo(),
	}, true
}

// direct runs the alias table then the name map.
func (n *Normalizer) direct(q *query, ctx Context) (Resolution, bool) {
	if id, ok := n.aliases[q.name]; ok {
		if r, ok := n.resolved(id, StageAlias, q, ctx); ok {
			return r, true
		}
	}
	key := strings.ToLower(q.name)
	if id, ok := n.ids[key]; ok {
		return n.resolved(id, StageNameMap, q, ctx)
	}
	for _, scope := range scopes(ctx.TechBase) {
		if id, ok := n.names[scope][key]; ok {
			return n.resolved(id, StageNameMap, q, ctx)
		}
	}
	return Resolution{}, false
}

var (
	rearMarker  = regexp.MustCompile(`(?i)\s*\((r|rear)\)`)
	mountMarker = regexp.MustCompile(`(?i)\s*\((omnipod|armored)\)`)
)

// orientation strips rear and mount markers in any letter case and
// retries the direct tables. The stripped name carries forward.
func (n *Normalizer) orientation(q *query, ctx Context) (Resolution, bool) {
	stripped := q.name
	if rearMarker.MatchString(stripped) {
		q.rear = true
		stripped = rearMarker.ReplaceAllString(stripped, "")
	}
	stripped = strings.TrimSpace(mountMarker.ReplaceAllString(stripped, ""))
	if stripped == q.name {
		return Resolution{}, false
	}
	q.name = stripped
	r, ok := n.direct(q, ctx)
	if ok {
		r.Stage = StageOrientation
	}
	return r, ok
}

// loose runs the word-order and rack-size stages.
func (n *Normalizer) loose(q *query, ctx Context) (Resolution, bool) {
	if r, ok := n.wordOrder(q, ctx); ok {
		return r, true
	}
	return n.rackSize(q, ctx)
}

var tokenSplit = regexp.MustCompile(`[\s_]+`)

func tokenKey(name string) string {
	toks := tokenSplit.Split(strings.ToLower(strings.TrimSpace(name)), -1)
	sort.Strings(toks)
	return strings.Join(toks, " ")
}

func (n *Normalizer) wordOrder(q *query, ctx Context) (Resolution, bool) {
	key := tokenKey(q.name)
	for _, scope := range scopes(ctx.TechBase) {
		if id, ok := n.tokens[scope][key]; ok {
			return n.resolved(id, StageWordOrder, q, ctx)
		}
	}
	return Resolution{}, false
}

var (
	sizeSuffix = regexp.MustCompile(`^(.*?[A-Za-z/])[\s\-/]*(\d+)$`)
	sizePrefix = regexp.MustCompile(`^(\d+)[\s\-]*([A-Za-z].*)$`)
)

// rackSize re-joins a family name and its numeric size in every spelling
// the tables use: "LRM 20", "LRM-20", "LRM20", "AC/20".
func (n *Normalizer) rackSize(q *query, ctx Context) (Resolution, bool) {
	var family, size string
	if m := sizeSuffix.FindStringSubmatch(q.name); m != nil {
		family, size = m[1], m[2]
	} else if m := sizePrefix.FindStringSubmatch(q.name); m != nil {
		size, family = m[1], m[2]
	} else {
		return Resolution{}, false
	}
	family = strings.TrimRight(strings.TrimSpace(family), "-/")
	for _, cand := range []string{family + " " + size, family + "-" + size, family + size, family + "/" + size} {
		if strings.EqualFold(cand, q.name) {
			continue
		}
		sub := &query{name: cand, rear: q.rear, half: q.half}
		if r, ok := n.direct(sub, ctx); ok {
			r.Stage = StageRackSize
			return r, true
		}
		if r, ok := n.wordOrder(sub, ctx); ok {
			r.Stage = StageRackSize
			return r, true
		}
	}
	return Resolution{}, false
}

var (
	halfSuffix = regexp.MustCompile(`(?i)\s*(-\s*half|\(half\)|\(1/2\)|\bhalf)\s*$`)
	shotSuffix = regexp.MustCompile(`^(.*?)\s*\((\d+)\)$`)
)

// shotsPerTon is the full-ton shot count of ammo whose labels carry a shot
// count instead of a half marker, keyed by ammo key without tech prefix.
var shotsPerTon = map[string]int{
	"MG":       200,
	"Light MG": 200,
	"Heavy MG": 100,
}

// halfTon detects the half-ton suffix, or a shot count such as
// "ISMG Ammo (100)", and retries the earlier stages on the remaining name.
func (n *Normalizer) halfTon(q *query, ctx Context) (Resolution, bool) {
	if halfSuffix.MatchString(q.name) {
		sub := &query{name: strings.TrimSpace(halfSuffix.ReplaceAllString(q.name, "")), rear: q.rear, half: true}
		r, ok := n.base(sub, ctx)
		if !ok {
			return Resolution{}, false
		}
		r.Half = true
		return r, true
	}

	m := shotSuffix.FindStringSubmatch(q.name)
	if m == nil {
		return Resolution{}, false
	}
	shots, err := strconv.Atoi(m[2])
	if err != nil {
		return Resolution{}, false
	}
	r, ok := n.base(&query{name: strings.TrimSpace(m[1]), rear: q.rear}, ctx)
	if !ok {
		return Resolution{}, false
	}
	_, key, _ := strings.Cut(r.Entry.AmmoKey, " ")
	switch full := shotsPerTon[key]; {
	case full == 0:
		return Resolution{}, false
	case shots == full:
		r.Half = false
	case shots*2 == full:
		r.Half = true
	default:
		return Resolution{}, false
	}
	return r, true
}

// base resolves a name stripped of its bin marker. Only ammo qualifies.
func (n *Normalizer) base(sub *query, ctx Context) (Resolution, bool) {
	r, ok := n.direct(sub, ctx)
	if !ok {
		r, ok = n.loose(sub, ctx)
	}
	if !ok {
		r, ok = n.pattern(sub, ctx)
	}
	if !ok || !r.Entry.IsAmmo() {
		return Resolution{}, false
	}
	r.Stage = StageHalfTon
	return r, true
}

func (n *Normalizer) pattern(q *query, ctx Context) (Resolution, bool) {
	for _, p := range familyPatterns {
		m := p.re.FindStringSubmatch(q.name)
		if m == nil {
			continue
		}
		for _, id := range p.candidates(n, m, techPrefix(m[1], ctx.TechBase)) {
			if r, ok := n.resolved(id, StagePattern, q, ctx); ok {
				return r, true
			}
		}
	}
	return Resolution{}, false
}

func (n *Normalizer) fallback(q *query) (Resolution, bool) {
	e, ok := n.fallbacks[strings.ToLower(q.name)]
	if !ok {
		return Resolution{}, false
	}
	return Resolution{ID: e.ID, Entry: e, Stage: StageFallback, Half: q.half && e.IsAmmo(), Fallback: true}, true
}

// techPrefix returns the ID prefix ("IS" or "CL") from an explicit label
// prefix, or from the unit's tech base when the label has none.
func techPrefix(explicit string, tech models.TechBase) string {
	switch strings.ToLower(explicit) {
	case "is":
		return "IS"
	case "cl", "clan":
		return "CL"
	}
	if tech == models.TechClan {
		return "CL"
	}
	return "IS"
}
