package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/runner/internal/app"
)

// runFlags binds the run flags to opts.
func runFlags(fs *pflag.FlagSet, opts *app.RunOptions) {
	fs.BoolVarP(&opts.Static, "static", "s", false, "Link against the static cache")
	fs.BoolVarP(&opts.Dynamic, "dynamic", "d", false, "Link against the dynamic cache, overriding a configured static default")
	fs.BoolVarP(&opts.Optimize, "optimize", "O", false, "Build optimized, using the release static cache")

	fs.BoolVarP(&opts.Expression, "expression", "e", false, "Evaluate an expression and print its debug value")
	fs.BoolVarP(&opts.Iterator, "iterator", "i", false, "Print every item of an iterable expression")
	fs.BoolVarP(&opts.Lines, "lines", "n", false, "Evaluate code for every line of standard input, bound to `line`")
	fs.BoolVarP(&opts.Stdin, "stdin", "I", false, "Read the program from standard input")

	fs.StringSliceVarP(&opts.Externs, "extern", "x", nil, "Declare an extern crate")
	fs.StringSliceVarP(&opts.Wildcards, "wild", "X", nil, "Declare an extern crate and glob-import it")
	fs.StringSliceVarP(&opts.Macros, "macro", "M", nil, "Declare an extern crate with #[macro_use]")
	fs.StringVarP(&opts.Prepend, "prepend", "p", "", "Code placed before the snippet body")
	fs.BoolVarP(&opts.NoPrelude, "no-prelude", "N", false, "Skip the prelude and ./env.rs")

	fs.BoolVarP(&opts.CompileOnly, "compile-only", "c", false, "Compile and install the program without running it")
	fs.StringVarP(&opts.Output, "output", "o", "", "Install directory for --compile-only (default <cargo home>/bin)")
	fs.BoolVarP(&opts.RunOnly, "run", "r", false, "Run the previously compiled program without compiling")

	fs.StringVarP(&opts.Edition, "edition", "E", "", "Rust edition (default from config)")
	fs.StringSliceVarP(&opts.Link, "link", "L", nil, "Add a library search path")
	fs.StringSliceVar(&opts.Cfg, "cfg", nil, "Pass a --cfg value to the compiler")
	fs.StringSliceVar(&opts.Features, "features", nil, "Enable crate features")

	fs.BoolVarP(&opts.Watch, "watch", "w", false, "Rerun the program whenever its source changes")
}

func (c *CLI) newRunCmd() *cobra.Command {
	var opts app.RunOptions

	cmd := &cobra.Command{
		Use:   "run [program] [args...]",
		Short: "Compile and run a program, snippet or expression",
		Long: `Compile and run a Rust program, snippet or expression.

A snippet is wrapped into a main function with the prelude and the requested
extern crates. A first line of the form "//: <flags>" supplies default flags;
flags given on the command line win.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.Stdin {
				if len(args) == 0 {
					_ = cmd.Help()
					return nil
				}
				opts.Program, args = args[0], args[1:]
			}
			opts.Args = args

			if !opts.Stdin && !opts.Expression && !opts.Iterator && !opts.Lines {
				if err := applySourceFlags(cmd.Flags(), opts.Program); err != nil {
					return err
				}
			}
			if err := applySourceFlags(cmd.Flags(), envPreludePath()); err != nil {
				return err
			}

			return c.app.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().SetInterspersed(false)
	runFlags(cmd.Flags(), &opts)
	return cmd
}
