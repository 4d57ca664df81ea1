package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
)

// Failure is a file that could not be parsed.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", filepath.Base(f.Path), f.Err)
}

// FindMTF returns every .mtf file under dir, sorted.
func FindMTF(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && strings.HasSuffix(strings.ToLower(info.Name()), ".mtf") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// LoadDir parses every .mtf file under dir. Files that fail to parse are
// returned as failures; they never abort the load.
func LoadDir(ctx context.Context, dir string) ([]models.Unit, []Failure, error) {
	files, err := FindMTF(dir)
	if err != nil {
		return nil, nil, err
	}
	units := make([]models.Unit, 0, len(files))
	var failed []Failure
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		data, err := ParseMTF(f)
		if err != nil {
			failed = append(failed, Failure{Path: f, Err: err})
			continue
		}
		units = append(units, data.Unit())
	}
	return units, failed, nil
}

// LoadUnitFile reads units from a JSON or YAML file holding either one
// unit or a list of units.
func LoadUnitFile(path string) ([]models.Unit, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read units: %w", err)
	}
	unmarshal := json.Unmarshal
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		unmarshal = yaml.Unmarshal
	}

	var list []models.Unit
	if err := unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var one models.Unit
	if err := unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("parse units %s: %w", path, err)
	}
	return []models.Unit{one}, nil
}

// Load reads units from path: a directory of .mtf files, a single .mtf
// file, or a JSON/YAML unit file.
func Load(ctx context.Context, path string) ([]models.Unit, []Failure, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadDir(ctx, path)
	}
	if strings.EqualFold(filepath.Ext(path), ".mtf") {
		data, err := ParseMTF(path)
		if err != nil {
			return nil, []Failure{{Path: path, Err: err}}, nil
		}
		return []models.Unit{data.Unit()}, nil, nil
	}
	units, err := LoadUnitFile(path)
	return units, nil, err
}
