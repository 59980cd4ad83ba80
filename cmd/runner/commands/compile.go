package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/runner/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	var opts app.CompileOptions

	cmd := &cobra.Command{
		Use:   "compile <crate|dir|file.rs>",
		Short: "Build a dynamic library into the dynamic cache",
		Long: `Build a dynamic library into the dynamic cache.

The target is a static cache crate, which is built with its recorded features,
a directory holding a Cargo.toml, or a single Rust source file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.CompileCrate(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Edition, "edition", "E", "", "Rust edition (default from the crate manifest)")
	cmd.Flags().StringSliceVarP(&opts.Link, "link", "L", nil, "Add a library search path")
	cmd.Flags().StringSliceVar(&opts.Cfg, "cfg", nil, "Pass a --cfg value to the compiler")
	cmd.Flags().StringSliceVar(&opts.Features, "features", nil, "Enable extra crate features")
	return cmd
}
