package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/frame/internal/colour"
)

func (a *app) newPickCmd() *cobra.Command {
	background := newColourValue("#ffffff")
	var largeText bool

	cmd := &cobra.Command{
		Use:   "pick [flags] <candidate>...",
		Short: "Pick an accessible text colour for a background",
		Long: `Pick the first candidate text colour that meets the WCAG AA contrast
threshold against the background (4.5:1, or 3:1 with --large).

When no candidate meets the threshold the highest-contrast candidate is
printed instead and a warning is written to stderr.

Examples:
  # Dark or light text on a brand green
  frame pick --background "#2e7d32" "#000000" "#ffffff"

  # Headline text only needs 3:1
  frame pick -b "#777" --large white black`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("large") {
				largeText = a.config.LargeText
			}

			candidates, err := parseColours(args)
			if err != nil {
				return err
			}

			picked, err := colour.PickAccessibleTextColour(background.String(), candidates, largeText)
			if err != nil {
				return err
			}

			ratio, err := colour.ContrastRatio(picked, background.String())
			if err != nil {
				return err
			}
			threshold := colour.Threshold(largeText)
			a.logger.Debug("picked text colour", "background", background.String(), "colour", picked, "ratio", ratio, "threshold", threshold)

			out := cmd.OutOrStdout()
			if ratio < threshold && !a.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: no candidate meets %.1f:1 against %s, using best available (%.2f:1)\n",
					threshold, background.String(), ratio)
			}

			fmt.Fprintln(out, picked)

			if sw := a.swatch(out); sw.Enabled() {
				fg, _ := colour.ParseHex(picked)
				bg, _ := colour.ParseHex(background.String())
				fmt.Fprintln(out, sw.Sample(fg, bg, "Sample text", 16))
			}
			return nil
		},
	}

	cmd.Flags().VarP(background, "background", "b", "background colour (hex or name)")
	cmd.Flags().BoolVarP(&largeText, "large", "l", false, "use the large-text threshold (3:1) ($FRAME_LARGE_TEXT)")
	return cmd
}
