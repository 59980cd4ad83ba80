package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the static crate cache",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <crate>...",
			Short: "Add crates to the static cache and rebuild it",
			Long: `Add crates to the static cache and rebuild it.

A crate is a name, name=version, a local crate directory, or kitchen-sink for
the configured set of common crates. The manifest is restored if the build fails.`,
			Args: cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.AddCrates(cmd.Context(), args)
			},
		},
		&cobra.Command{
			Use:   "build",
			Short: "Rebuild the static cache and its metadata",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Rebuild(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "update [package]",
			Short: "Update the locked versions of the static cache",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var pkg string
				if len(args) == 1 {
					pkg = args[0]
				}
				return c.app.Update(cmd.Context(), pkg)
			},
		},
		&cobra.Command{
			Use:   "cleanup",
			Short: "Remove the build output of the static cache",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Cleanup(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "crates [name...]",
			Short: "List the crates of the static cache",
			RunE: func(cmd *cobra.Command, args []string) error {
				verbose, _ := cmd.Flags().GetBool("verbose")
				return c.app.Crates(args, verbose)
			},
		},
		&cobra.Command{
			Use:   "doc [crate]",
			Short: "Print the documentation index of a crate",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var crate string
				if len(args) == 1 {
					crate = args[0]
				}
				path, err := c.app.DocPath(crate)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the runner cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), c.app.CachePath())
				return err
			},
		},
	)

	return cmd
}

func (c *CLI) newAliasCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alias <alias=crate>...",
		Short: "Add crate aliases used by --extern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.AddAliases(args)
		},
	}
}

func (c *CLI) newCratePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crate-path <crate>",
		Short: "Print the source directory of a static cache crate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.CratePath(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
