package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docweave/docweave/internal/render"
	"github.com/docweave/docweave/internal/source"
)

func newGenerateCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate documentation artifacts from a manifest",
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunGenerate(&config)
		},
	}

	cmd.Flags().StringVar(&config.ConfigPath, "config", ".docweave.yml", "Path to the manifest file")
	cmd.Flags().StringVar(&config.Base, "base", "", "Directory source paths are resolved against (defaults to the manifest directory)")
	cmd.Flags().BoolVar(&config.Strict, "strict", false, "Use the strict annotation parser instead of the line scanner")
	cmd.Flags().BoolVar(&config.Check, "check", false, "Verify outputs are up to date instead of writing them")

	return cmd
}

// GenerateConfig holds configuration for manifest-driven generation.
type GenerateConfig struct {
	ConfigPath string
	Base       string
	Strict     bool
	Check      bool
}

// RunGenerate renders every target of the manifest, or with Check set,
// verifies that every target's output file matches a fresh rendering.
func RunGenerate(config *GenerateConfig) error {
	m, manifestDir, err := loadManifest(config.ConfigPath)
	if err != nil {
		return err
	}
	applyManifest(config, m, manifestDir)

	loader := source.NewDir(config.Base)
	extractor := pickExtractor(config.Strict)

	var stale []string
	for _, target := range m.Targets {
		rep, err := collectReport(loader, target.Sources, extractor)
		if err != nil {
			return fmt.Errorf("target %s: %w", target.Output, err)
		}
		if rep.Combined == "" {
			fmt.Fprintf(os.Stderr, "Warning: target %s has no documentation to weave\n", target.Output)
		}

		data, err := renderDocs(target.Format, target.Package, target.Const, rep)
		if err != nil {
			return fmt.Errorf("target %s: %w", target.Output, err)
		}

		outPath := resolveOutput(manifestDir, target.Output)
		if config.Check {
			drifted, err := checkTarget(outPath, data)
			if err != nil {
				return fmt.Errorf("target %s: %w", target.Output, err)
			}
			if drifted {
				stale = append(stale, target.Output)
			}
			continue
		}

		if err := writeOutput(data, outPath); err != nil {
			return fmt.Errorf("target %s: %w", target.Output, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", outPath)
	}

	if len(stale) > 0 {
		return fmt.Errorf("%d target(s) out of date: %s (rerun docweave generate)", len(stale), strings.Join(stale, ", "))
	}
	return nil
}

// checkTarget compares the on-disk output with fresh bytes and prints the
// unified diff when they differ. A missing output file counts as drift.
func checkTarget(outPath string, fresh []byte) (bool, error) {
	return checkTargetWithFS(outPath, fresh, defaultFileSystem)
}

func checkTargetWithFS(outPath string, fresh []byte, fs FileSystem) (bool, error) {
	existing, err := fs.ReadFile(outPath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	diff, err := render.UnifiedDiff(outPath, existing, fresh)
	if err != nil {
		return false, err
	}
	if diff == "" {
		return false, nil
	}
	fmt.Print(diff)
	return true, nil
}
