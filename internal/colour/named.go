package colour

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColour accepts a CSS/SVG colour name (e.g. "navy") or a hex
// colour and returns its canonical "#rrggbb" form.
func ParseColour(s string) (string, error) {
	s = strings.TrimSpace(s)

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return ToRGB(c).Hex(), nil
	}

	rgb, err := ParseHex(s)
	if err != nil {
		return "", fmt.Errorf("not a colour name or hex value: %w", err)
	}
	return rgb.Hex(), nil
}
