package colour

// Assessment reports how a foreground/background pair fares against the WCAG
// contrast levels.
type Assessment struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	AANormal   bool    `json:"aa_normal"`
	AALarge    bool    `json:"aa_large"`
	AAANormal  bool    `json:"aaa_normal"`
	// AAA for large text shares the AA normal-text threshold.
	AAALarge bool `json:"aaa_large"`
}

// Assess computes the contrast ratio between fg and bg and the WCAG levels it
// satisfies. Colours are reported in canonical "#rrggbb" form.
func Assess(fg, bg string) (Assessment, error) {
	f, err := ParseHex(fg)
	if err != nil {
		return Assessment{}, err
	}
	b, err := ParseHex(bg)
	if err != nil {
		return Assessment{}, err
	}

	r := Contrast(f, b)
	return Assessment{
		Foreground: f.Hex(),
		Background: b.Hex(),
		Ratio:      r,
		AANormal:   r >= MinContrastNormal,
		AALarge:    r >= MinContrastLarge,
		AAANormal:  r >= MinContrastEnhanced,
		AAALarge:   r >= MinContrastNormal,
	}, nil
}

// MeetsThreshold reports whether fg on bg meets the AA level for the text size.
func MeetsThreshold(fg, bg string, largeText bool) (bool, error) {
	r, err := ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	return r >= Threshold(largeText), nil
}
