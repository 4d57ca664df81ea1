package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

// Tables are the curated reference tables read from YAML.
//
//	overrides:
//	  "Atlas AS7-D": 1897
//	exclusions:
//	  "Mackie MSK-5S": "reference BV predates the current rules"
//	clan_case_allow_list:
//	  - "Black Hawk-KU BHKU-OR"
//	gates:
//	  within_1: 0.95
//	  within_5: 0.99
//	normalizer:
//	  aliases:
//	    "ER PPC (Enhanced)": ISEnhancedERPPC
type Tables struct {
	Overrides         map[string]int    `yaml:"overrides"`
	Exclusions        map[string]string `yaml:"exclusions"`
	ClanCASEAllowList []string          `yaml:"clan_case_allow_list"`
	Gates             *harness.Gates    `yaml:"gates"`
	Normalizer        normalize.Tables  `yaml:"normalizer"`
}

// LoadTables reads and validates a tables file. Unknown keys are errors.
func LoadTables(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	return ParseTables(raw)
}

// ParseTables decodes and validates YAML tables.
func ParseTables(raw []byte) (*Tables, error) {
	var t Tables
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: tables: %v", ErrInvalid, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks table values.
func (t *Tables) Validate() error {
	for _, id := range sortedKeys(t.Overrides) {
		if t.Overrides[id] <= 0 {
			return fmt.Errorf("%w: override for %q must be positive, got %d", ErrInvalid, id, t.Overrides[id])
		}
	}
	for _, id := range t.ClanCASEAllowList {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: empty id in clan_case_allow_list", ErrInvalid)
		}
	}
	if t.Gates != nil {
		if err := ValidateGates(*t.Gates); err != nil {
			return err
		}
	}
	return nil
}

// AllowList returns the Clan CASE allow-list as a set.
func (t *Tables) AllowList() map[string]bool {
	out := make(map[string]bool, len(t.ClanCASEAllowList))
	for _, id := range t.ClanCASEAllowList {
		out[id] = true
	}
	return out
}

// LoadReference reads a unit ID → reference BV map from a JSON or YAML
// file.
func LoadReference(path string) (map[string]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference: %w", err)
	}
	out := map[string]int{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &out)
	default:
		err = json.Unmarshal(raw, &out)
	}
	if err != nil {
		return nil, fmt.Errorf("parse reference %s: %w", path, err)
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
