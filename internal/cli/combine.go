package cli

import (
	"github.com/spf13/cobra"

	"github.com/docweave/docweave/internal/source"
)

func newCombineCommand() *cobra.Command {
	var opts OutputOptions

	cmd := &cobra.Command{
		Use:   "combine [FILE...]",
		Short: "Combine inner documentation from several source files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return RunCombine(&opts, args)
		},
	}
	addOutputFlags(cmd, &opts)

	return cmd
}

// RunCombine combines the inner documentation of the given source files in
// argument order. Zero files produce empty output, an exact identity with
// combining zero units.
func RunCombine(opts *OutputOptions, files []string) error {
	loader := source.NewDir(opts.Base)
	rep, err := collectReport(loader, files, pickExtractor(opts.Strict))
	if err != nil {
		return err
	}

	data, err := renderDocs(opts.Format, opts.Package, opts.Const, rep)
	if err != nil {
		return err
	}
	return writeOutput(data, opts.OutputPath)
}
