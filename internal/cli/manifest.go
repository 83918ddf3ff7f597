package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Manifest is the docweave document inside a .docweave.yml file.
type Manifest struct {
	Base    string   `yaml:"base"`
	Strict  bool     `yaml:"strict"`
	Targets []Target `yaml:"targets" validate:"required,min=1,dive"`
}

// Target describes one artifact woven from an ordered list of sources.
// Package and Const only apply to the go format, where they are mandatory.
type Target struct {
	Sources []string `yaml:"sources" validate:"required,min=1,dive,required"`
	Output  string   `yaml:"output" validate:"required"`
	Format  string   `yaml:"format" validate:"omitempty,oneof=text json yaml yml go"`
	Package string   `yaml:"package" validate:"required_if=Format go"`
	Const   string   `yaml:"const" validate:"required_if=Format go"`
}

// loadManifest reads and validates a manifest, returning it together with
// the directory it lives in. That directory anchors relative source and
// output paths.
func loadManifest(path string) (*Manifest, string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("read manifest: %w", err)
	}

	var file struct {
		Docweave Manifest `yaml:"docweave"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("parse manifest: %w", err)
	}

	if err := validator.New().Struct(&file.Docweave); err != nil {
		return nil, "", fmt.Errorf("invalid manifest %s: %w", path, err)
	}

	return &file.Docweave, filepath.Dir(path), nil
}

// applyManifest fills config fields the flags left unset, so flags win over
// the manifest and the manifest wins over defaults.
func applyManifest(config *GenerateConfig, m *Manifest, manifestDir string) {
	if config.Base == "" && m.Base != "" {
		config.Base = m.Base
		if !filepath.IsAbs(config.Base) {
			config.Base = filepath.Join(manifestDir, config.Base)
		}
	}
	if config.Base == "" {
		config.Base = manifestDir
	}
	if !config.Strict {
		config.Strict = m.Strict
	}
}

// resolveOutput anchors a target's output path at the manifest directory.
func resolveOutput(manifestDir, output string) string {
	if filepath.IsAbs(output) {
		return filepath.Clean(output)
	}
	return filepath.Join(manifestDir, output)
}
