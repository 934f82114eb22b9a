package colour

import (
	"image/color"
	"math"
)

// WCAG 2.x minimum contrast ratios.
const (
	// MinContrastNormal is the AA threshold for normal text.
	MinContrastNormal = 4.5
	// MinContrastLarge is the AA threshold for large text.
	MinContrastLarge = 3.0
	// MinContrastEnhanced is the AAA threshold for normal text.
	MinContrastEnhanced = 7.0
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func (rgb RGB) Luminance() float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Luminance calculates the relative luminance of any color.Color.
func Luminance(c color.Color) float64 {
	return ToRGB(c).Luminance()
}

// RelativeLuminance parses a hex colour and returns its relative luminance.
func RelativeLuminance(hex string) (float64, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return rgb.Luminance(), nil
}

// gammaCorrect linearises an sRGB channel value in [0,1].
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ratio applies the WCAG contrast formula to two luminance values.
func ratio(l1, l2 float64) float64 {
	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Contrast returns the contrast ratio between two RGB colours.
func Contrast(a, b RGB) float64 {
	return ratio(a.Luminance(), b.Luminance())
}

// ContrastRatio calculates the contrast ratio between two hex colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	return Contrast(ca, cb), nil
}

// Threshold returns the AA contrast threshold for normal or large text.
func Threshold(largeText bool) float64 {
	if largeText {
		return MinContrastLarge
	}
	return MinContrastNormal
}
