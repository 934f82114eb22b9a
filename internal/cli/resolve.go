package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Show which layout wraps each path",
		Long: `Show which layout wraps each path.

Prefixes are matched by whole path segment, deepest first. Paths that match
no prefix use the manifest's default layout, or are rendered unwrapped.

Examples:
  frame resolve /auth/login /auth/admin/reports /authentication
  frame resolve --site ./app /profile/settings`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}

			table := NewTable("PATH", "PREFIX", "LAYOUT")
			for _, path := range args {
				prefix, l, ok := r.Match(path)
				if !ok {
					prefix = "-"
					if l != nil {
						prefix = "(default)"
					}
				}
				table.AddRow(path, prefix, layoutName(l))
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}
