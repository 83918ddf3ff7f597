// Package source resolves unit labels to file contents for the combiner.
package source

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir loads units from files beneath a base directory. Relative labels are
// resolved against the base; absolute labels are used as-is. The base is
// always handed in explicitly, there is no ambient default.
type Dir struct {
	base string
}

// NewDir returns a loader rooted at base.
func NewDir(base string) *Dir {
	return &Dir{base: base}
}

// Base reports the directory labels are resolved against.
func (d *Dir) Base() string { return d.base }

// Resolve maps a label to the path Load would read.
func (d *Dir) Resolve(label string) string {
	if filepath.IsAbs(label) {
		return filepath.Clean(label)
	}
	return filepath.Join(d.base, label)
}

// Load reads the unit behind label. The error names the resolved path so
// callers can report it without knowing the base.
func (d *Dir) Load(label string) (string, error) {
	path := d.Resolve(label)
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
