package cli

import (
	"github.com/spf13/cobra"
)

func newExtractCommand() *cobra.Command {
	var opts OutputOptions

	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Extract inner documentation from one source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return RunExtract(&opts, args[0])
		},
	}
	addOutputFlags(cmd, &opts)

	return cmd
}

// RunExtract extracts the inner documentation of a single source file. It is
// the one-unit case of RunCombine and shares its behavior exactly.
func RunExtract(opts *OutputOptions, file string) error {
	return RunCombine(opts, []string{file})
}
