package render

import (
	"bytes"
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff compares the on-disk content of an output artifact with a
// fresh rendering and returns a unified diff naming path on both sides. An
// empty string means the artifact is up to date.
func UnifiedDiff(path string, existing, fresh []byte) (string, error) {
	if bytes.Equal(existing, fresh) {
		return "", nil
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(fresh)),
		FromFile: path,
		ToFile:   path + " (regenerated)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}
	return text, nil
}
