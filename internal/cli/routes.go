package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newRoutesCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List layout prefixes in resolution order",
		Long: `List the registered layout prefixes in the order they are tried.

With --format yaml the route manifest is printed instead, which turns a
discovered --site tree into a manifest file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch format {
			case "yaml":
				m, err := a.manifest()
				if err != nil {
					return err
				}
				data, err := m.Marshal()
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			case "text":
				r, err := a.resolver()
				if err != nil {
					return err
				}

				table := NewTable("ORDER", "PREFIX", "LAYOUT")
				for i, prefix := range r.Prefixes() {
					table.AddRow(fmt.Sprintf("%d", i+1), prefix, layoutName(r.Resolve(prefix)))
				}
				if r.HasDefault() {
					table.AddRow("-", "(default)", layoutName(r.Default()))
				}
				fmt.Fprint(out, table.Render())
				return nil
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, yaml)")
	return cmd
}
