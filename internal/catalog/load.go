package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a catalog from a JSON or YAML file holding a list of
// entries. When merge is true the file's entries replace or extend the
// built-in table.
func LoadFile(path string, merge bool) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &entries)
	default:
		err = json.Unmarshal(raw, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	if merge {
		entries = Merge(Builtin(), entries)
	}
	return New(entries)
}

// Merge overlays extra on base by ID. Order of base is preserved; new IDs
// are appended.
func Merge(base, extra []Entry) []Entry {
	idx := make(map[string]int, len(base))
	out := append([]Entry(nil), base...)
	for i, e := range out {
		idx[e.ID] = i
	}
	for _, e := range extra {
		if i, ok := idx[e.ID]; ok {
			out[i] = e
			continue
		}
		idx[e.ID] = len(out)
		out = append(out, e)
	}
	return out
}
