package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/frame/internal/security"
)

// maxContentBytes bounds how much page content render will read.
const maxContentBytes = 16 << 20

func (a *app) newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <path> [content-file]",
		Short: "Wrap content in the layout for a path",
		Long: `Wrap content in the layout resolved for a path.

Content is read from content-file, or stdin when it is omitted or "-".
Content for a path without a layout is written unchanged.

Examples:
  echo "<form>...</form>" | frame render /auth/login
  frame render --site ./app /profile/me profile.html -o out.html`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			var src io.Reader = cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf("failed to read content: %w", err)
				}
				defer f.Close()
				src = f
			}

			content, err := io.ReadAll(security.NewLimitedReader(src, maxContentBytes))
			if err != nil {
				return fmt.Errorf("failed to read content: %w", err)
			}

			r, err := a.resolver()
			if err != nil {
				return err
			}

			a.logger.Debug("rendering", "path", path, "layout", layoutName(r.Resolve(path)))

			if output == "" {
				if err := r.Wrap(cmd.OutOrStdout(), path, content); err != nil {
					return fmt.Errorf("failed to render %s: %w", path, err)
				}
				return nil
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			if err := r.Wrap(f, path, content); err != nil {
				f.Close()
				return fmt.Errorf("failed to render %s: %w", path, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close output file: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
