package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/frame/internal/colour"
)

func (a *app) newContrastCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Report the WCAG contrast ratio between two colours",
		Long: `Report the WCAG 2.x contrast ratio between two colours and which
conformance levels the pair meets.

Colours may be hex (#rgb, #rrggbb, with or without '#') or colour names.

Examples:
  # Check body text on a white page
  frame contrast "#777777" white

  # Machine-readable output
  frame contrast --format json 333 fff`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours, err := parseColours(args)
			if err != nil {
				return err
			}

			result, err := colour.Assess(colours[0], colours[1])
			if err != nil {
				return err
			}
			a.logger.Debug("assessed contrast", "foreground", result.Foreground, "background", result.Background, "ratio", result.Ratio)

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "text":
				fmt.Fprintf(out, "Contrast ratio: %.2f:1\n\n", result.Ratio)

				table := NewTable("LEVEL", "MINIMUM", "RESULT")
				table.AddRow("AA normal text", "4.5:1", passFail(result.AANormal))
				table.AddRow("AA large text", "3:1", passFail(result.AALarge))
				table.AddRow("AAA normal text", "7:1", passFail(result.AAANormal))
				table.AddRow("AAA large text", "4.5:1", passFail(result.AAALarge))
				fmt.Fprint(out, table.Render())

				fg, _ := colour.ParseHex(result.Foreground)
				bg, _ := colour.ParseHex(result.Background)
				if sw := a.swatch(out); sw.Enabled() {
					fmt.Fprintf(out, "\n%s\n", sw.Sample(fg, bg, "Sample text", 16))
				}
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
