package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newLayoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Manage built-in layout templates",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in layouts and whether they are overridden",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := a.loader()
			names, err := loader.List()
			if err != nil {
				return err
			}

			table := NewTable("NAME", "SOURCE")
			for _, name := range names {
				_, fromCustom, err := loader.Load(name)
				if err != nil {
					return err
				}
				source := "built-in"
				if fromCustom {
					source = "custom"
				}
				table.AddRow(name, source)
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	var force bool
	dumpCmd := &cobra.Command{
		Use:   "dump <name>...",
		Short: "Copy built-in layouts to the override directory for editing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := a.loader()
			for _, name := range args {
				path, err := loader.Dump(name, force)
				if err != nil {
					return err
				}
				if !a.quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				}
			}
			return nil
		},
	}
	dumpCmd.Flags().BoolVar(&force, "force", false, "overwrite existing custom layouts")

	cmd.AddCommand(listCmd, dumpCmd)
	return cmd
}
