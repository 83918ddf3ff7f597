package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".docweave.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
docweave:
  base: src
  strict: true
  targets:
    - sources: [apple.rs, orange.rs]
      output: docs/FRUIT.txt
    - sources: [lib.zig]
      output: gen/docs.go
      format: go
      package: docs
      const: ModuleDocs
`)

	m, manifestDir, err := loadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, dir, manifestDir)
	assert.Equal(t, "src", m.Base)
	assert.True(t, m.Strict)
	require.Len(t, m.Targets, 2)
	assert.Equal(t, []string{"apple.rs", "orange.rs"}, m.Targets[0].Sources)
	assert.Equal(t, "docs/FRUIT.txt", m.Targets[0].Output)
	assert.Equal(t, "", m.Targets[0].Format)
	assert.Equal(t, "go", m.Targets[1].Format)
	assert.Equal(t, "docs", m.Targets[1].Package)
	assert.Equal(t, "ModuleDocs", m.Targets[1].Const)
}

func TestLoadManifest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no targets",
			content: "docweave:\n  base: src\n",
		},
		{
			name: "empty target list",
			content: `
docweave:
  targets: []
`,
		},
		{
			name: "target without output",
			content: `
docweave:
  targets:
    - sources: [a.rs]
`,
		},
		{
			name: "target without sources",
			content: `
docweave:
  targets:
    - output: docs.txt
`,
		},
		{
			name: "unknown format",
			content: `
docweave:
  targets:
    - sources: [a.rs]
      output: docs.md
      format: markdown
`,
		},
		{
			name: "go format without package",
			content: `
docweave:
  targets:
    - sources: [a.rs]
      output: docs.go
      format: go
      const: Docs
`,
		},
		{
			name: "go format without const",
			content: `
docweave:
  targets:
    - sources: [a.rs]
      output: docs.go
      format: go
      package: docs
`,
		},
		{
			name:    "not yaml",
			content: "docweave: [unbalanced",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, _, err := loadManifest(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, _, err := loadManifest(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}

func TestApplyManifest(t *testing.T) {
	manifestDir := filepath.Join("proj", "docs")
	abs := string(filepath.Separator) + filepath.Join("srv", "src")

	tests := []struct {
		name       string
		config     GenerateConfig
		manifest   Manifest
		wantBase   string
		wantStrict bool
	}{
		{
			name:     "flag base wins over manifest",
			config:   GenerateConfig{Base: "flagdir"},
			manifest: Manifest{Base: "src"},
			wantBase: "flagdir",
		},
		{
			name:     "relative manifest base anchors at manifest dir",
			manifest: Manifest{Base: "src"},
			wantBase: filepath.Join(manifestDir, "src"),
		},
		{
			name:     "absolute manifest base kept",
			manifest: Manifest{Base: abs},
			wantBase: abs,
		},
		{
			name:     "default base is the manifest dir",
			wantBase: manifestDir,
		},
		{
			name:       "manifest strict applies",
			manifest:   Manifest{Strict: true},
			wantBase:   manifestDir,
			wantStrict: true,
		},
		{
			name:       "flag strict kept",
			config:     GenerateConfig{Strict: true},
			wantBase:   manifestDir,
			wantStrict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.config
			applyManifest(&config, &tt.manifest, manifestDir)
			assert.Equal(t, tt.wantBase, config.Base)
			assert.Equal(t, tt.wantStrict, config.Strict)
		})
	}
}

func TestResolveOutput(t *testing.T) {
	assert.Equal(t, filepath.Join("proj", "docs", "out.txt"), resolveOutput("proj", filepath.Join("docs", "out.txt")))

	abs := string(filepath.Separator) + filepath.Join("tmp", "out.txt")
	assert.Equal(t, abs, resolveOutput("proj", abs))
}
