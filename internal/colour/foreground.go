package colour

import "fmt"

// PickAccessibleTextColour selects a text colour for the given background.
//
// The first candidate, in order, whose contrast against the background meets
// the AA threshold (3:1 for large text, 4.5:1 otherwise) is returned. When no
// candidate qualifies the one with the highest contrast is returned instead,
// with ties going to the earliest candidate. The chosen candidate is returned
// exactly as supplied.
func PickAccessibleTextColour(background string, candidates []string, largeText bool) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidateList
	}

	bg, err := ParseHex(background)
	if err != nil {
		return "", fmt.Errorf("background: %w", err)
	}

	idx, _, err := pickForeground(bg, candidates, Threshold(largeText))
	if err != nil {
		return "", err
	}
	return candidates[idx], nil
}

// pickForeground returns the index and contrast of the selected candidate.
func pickForeground(bg RGB, candidates []string, minContrast float64) (int, float64, error) {
	parsed := make([]RGB, len(candidates))
	for i, candidate := range candidates {
		fg, err := ParseHex(candidate)
		if err != nil {
			return -1, 0, fmt.Errorf("candidate %d: %w", i, err)
		}
		parsed[i] = fg
	}

	bestIdx := -1
	bestContrast := 0.0

	for i, fg := range parsed {
		contrast := Contrast(fg, bg)
		if contrast >= minContrast {
			return i, contrast, nil
		}

		// Strictly greater keeps the earliest candidate on ties.
		if contrast > bestContrast {
			bestContrast = contrast
			bestIdx = i
		}
	}

	// Fallback: use the colour with highest contrast even if below threshold.
	return bestIdx, bestContrast, nil
}
