// Package render turns extraction results into output artifacts.
package render

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Report is the result of one extraction run: the combined documentation
// plus every unit's individual contribution, empty ones included.
type Report struct {
	Combined string       `json:"combined" yaml:"combined"`
	Units    []UnitResult `json:"units" yaml:"units"`
}

// UnitResult is one unit's extracted documentation.
type UnitResult struct {
	Label string `json:"label" yaml:"label"`
	Doc   string `json:"doc" yaml:"doc"`
}

// Bytes renders the report in the named format. The text format is the
// combined string alone, with a single trailing newline when non-empty;
// json and yaml carry the full report. Go source output is handled
// separately by GoFile, which needs naming parameters.
func Bytes(format string, rep *Report) ([]byte, error) {
	switch format {
	case "text", "":
		if rep.Combined == "" {
			return nil, nil
		}
		return append([]byte(rep.Combined), '\n'), nil
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal report: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		data, err := yaml.Marshal(rep)
		if err != nil {
			return nil, fmt.Errorf("marshal report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
