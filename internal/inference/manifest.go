package inference

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Manifest is the ordered list of column names the model was trained on.
// It is immutable once loaded.
type Manifest struct {
	names []string
	index map[string]int
}

// NewManifest validates names and builds a manifest. Names must be non-empty and unique.
func NewManifest(names []string) (*Manifest, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("feature manifest is empty")
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("feature manifest entry %d is blank", i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("feature manifest lists %q twice", name)
		}
		index[name] = i
	}
	return &Manifest{
		names: append([]string(nil), names...),
		index: index,
	}, nil
}

// LoadManifest reads a JSON array of feature names.
func LoadManifest(path string) (*Manifest, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature manifest: %w", err)
	}
	var names []string
	if err := json.Unmarshal(payload, &names); err != nil {
		return nil, fmt.Errorf("failed to parse feature manifest %s: %w", path, err)
	}
	return NewManifest(names)
}

// Names returns the manifest order.
func (m *Manifest) Names() []string {
	return append([]string(nil), m.names...)
}

// Len is the number of model columns.
func (m *Manifest) Len() int {
	return len(m.names)
}

// Mismatch describes the difference between a key set and the manifest.
type Mismatch struct {
	Missing []string // in the manifest, not supplied
	Unknown []string // supplied, not in the manifest
}

func (m Mismatch) Empty() bool {
	return len(m.Missing) == 0 && len(m.Unknown) == 0
}

func (m Mismatch) Error() string {
	var parts []string
	if len(m.Missing) > 0 {
		parts = append(parts, "missing features: "+strings.Join(m.Missing, ", "))
	}
	if len(m.Unknown) > 0 {
		parts = append(parts, "unknown features: "+strings.Join(m.Unknown, ", "))
	}
	return strings.Join(parts, "; ")
}

// Compare reports which names differ from the manifest. Unknown names keep
// the order they were given in.
func (m *Manifest) Compare(names []string) Mismatch {
	var mm Mismatch
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
		if _, ok := m.index[name]; !ok {
			mm.Unknown = append(mm.Unknown, name)
		}
	}
	for _, name := range m.names {
		if !seen[name] {
			mm.Missing = append(mm.Missing, name)
		}
	}
	return mm
}

// Vector lays values out in manifest order. The key set must match the
// manifest exactly; a mismatch is returned as a Mismatch error.
func (m *Manifest) Vector(values map[string]float64) ([]float64, error) {
	if len(values) != len(m.names) {
		return nil, m.compareMap(values)
	}
	vec := make([]float64, len(m.names))
	for name, v := range values {
		i, ok := m.index[name]
		if !ok {
			return nil, m.compareMap(values)
		}
		vec[i] = v
	}
	return vec, nil
}

func (m *Manifest) compareMap(values map[string]float64) Mismatch {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	mm := m.Compare(names)
	sort.Strings(mm.Unknown)
	return mm
}
