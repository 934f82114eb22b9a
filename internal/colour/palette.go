// Package colour provides WCAG contrast calculations over hex colours.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	// ErrInvalidColourFormat is returned when a colour is not 3 or 6 hex digits.
	ErrInvalidColourFormat = errors.New("invalid colour format")

	// ErrEmptyCandidateList is returned when no foreground candidates are supplied.
	ErrEmptyCandidateList = errors.New("empty candidate list")
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color with full opacity.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// NormalizeHex returns the canonical form of a hex colour: six lower-case
// digits without the leading '#'.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB.
func NormalizeHex(hex string) (string, error) {
	digits := strings.TrimPrefix(hex, "#")

	if len(digits) != 3 && len(digits) != 6 {
		return "", fmt.Errorf("%w: %q: expected 3 or 6 hex digits, got %d", ErrInvalidColourFormat, hex, len(digits))
	}

	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return "", fmt.Errorf("%w: %q: non-hex character %q", ErrInvalidColourFormat, hex, digits[i])
		}
	}

	// Expand shorthand format (RGB -> RRGGBB).
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}

	return strings.ToLower(digits), nil
}

// ParseHex parses a hex colour string into an RGB struct.
func ParseHex(hex string) (RGB, error) {
	digits, err := NormalizeHex(hex)
	if err != nil {
		return RGB{}, err
	}

	// NormalizeHex has already validated every digit.
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %w", ErrInvalidColourFormat, hex, err)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
