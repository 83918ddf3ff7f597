package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docweave/docweave/internal/render"
	"github.com/docweave/docweave/pkg/innerdoc"
)

// OutputOptions holds the flags shared by the extract and combine commands.
type OutputOptions struct {
	Base       string
	Strict     bool
	OutputPath string
	Format     string
	Package    string
	Const      string
}

func addOutputFlags(cmd *cobra.Command, opts *OutputOptions) {
	cmd.Flags().StringVar(&opts.Base, "base", ".", "Directory source paths are resolved against")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Use the strict annotation parser instead of the line scanner")
	cmd.Flags().StringVar(&opts.OutputPath, "out", "-", "Path to output file or '-' for stdout")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format: text, json, yaml or go")
	cmd.Flags().StringVar(&opts.Package, "package", "docs", "Package name for the go output format")
	cmd.Flags().StringVar(&opts.Const, "const", "Docs", "Constant name for the go output format")
}

// pickExtractor maps the strict flag to a strategy.
func pickExtractor(strict bool) innerdoc.Extractor {
	if strict {
		return innerdoc.AnnotationParser{}
	}
	return innerdoc.LineScanner{}
}

// collectReport loads and extracts every unit in order, failing on the first
// unreadable or unparseable one, and assembles the full report. The combined
// text comes from the combiner itself so both views always agree.
func collectReport(loader innerdoc.Source, labels []string, x innerdoc.Extractor) (*render.Report, error) {
	units := make([]innerdoc.Unit, 0, len(labels))
	rep := &render.Report{}
	for _, label := range labels {
		text, err := loader.Load(label)
		if err != nil {
			return nil, &innerdoc.ExtractError{Label: label, Err: err}
		}
		doc, err := x.Extract(text)
		if err != nil {
			return nil, &innerdoc.ExtractError{Label: label, Err: err}
		}
		units = append(units, innerdoc.Unit{Label: label, Text: text})
		rep.Units = append(rep.Units, render.UnitResult{Label: label, Doc: doc})
	}

	combined, err := innerdoc.Combine(units, x)
	if err != nil {
		return nil, err
	}
	rep.Combined = combined
	return rep, nil
}

// renderDocs dispatches between the report formats and the go source format,
// which needs naming parameters.
func renderDocs(format, pkgName, constName string, rep *render.Report) ([]byte, error) {
	if format == "go" {
		return render.GoFile(pkgName, constName, rep)
	}
	return render.Bytes(format, rep)
}

// FileSystem interface for dependency injection
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// DefaultFileSystem implements FileSystem using the os package
type DefaultFileSystem struct{}

func (fs *DefaultFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *DefaultFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) // #nosec G304
}

func (fs *DefaultFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

var defaultFileSystem FileSystem = &DefaultFileSystem{}

func writeOutput(data []byte, outputPath string) error {
	return writeOutputWithFS(data, outputPath, defaultFileSystem)
}

func writeOutputWithFS(data []byte, outputPath string, fs FileSystem) error {
	if outputPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	outDir := filepath.Dir(outputPath)
	if fi, err := fs.Stat(outDir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("output directory %s does not exist", outDir)
		}
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("output path %s is not a directory", outDir)
	}

	return fs.WriteFile(outputPath, data, 0o644)
}
