package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/frame/internal/colour"
)

// colourValue is a pflag.Value accepting hex colours or colour names.
// The stored value is always canonical "#rrggbb".
type colourValue struct {
	hex string
}

var _ pflag.Value = (*colourValue)(nil)

func newColourValue(def string) *colourValue {
	return &colourValue{hex: def}
}

func (c *colourValue) String() string {
	return c.hex
}

func (c *colourValue) Set(s string) error {
	hex, err := colour.ParseColour(s)
	if err != nil {
		return err
	}
	c.hex = hex
	return nil
}

func (c *colourValue) Type() string {
	return "colour"
}

// parseColours canonicalises every argument with colour.ParseColour.
func parseColours(args []string) ([]string, error) {
	out := make([]string, len(args))
	for i, arg := range args {
		hex, err := colour.ParseColour(arg)
		if err != nil {
			return nil, err
		}
		out[i] = hex
	}
	return out, nil
}
