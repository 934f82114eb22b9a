package colour

import (
	"bytes"
	"strings"
	"testing"
)

func TestSwatchDisabled(t *testing.T) {
	var buf bytes.Buffer
	s := NewSwatch(&buf, false)

	if got := s.Block(RGB{R: 255}, 4); got != "" {
		t.Errorf("Block() = %q, want empty when disabled", got)
	}

	if got := s.Sample(RGB{}, RGB{R: 255, G: 255, B: 255}, "Aa", 6); got != "  Aa  " {
		t.Errorf("Sample() = %q, want centred plain text", got)
	}

	got := s.Label(RGB{R: 255}, "background")
	if !strings.HasPrefix(got, "background") || !strings.HasSuffix(got, "#ff0000") {
		t.Errorf("Label() = %q", got)
	}
}

func TestSwatchSampleTruncates(t *testing.T) {
	s := NewSwatch(&bytes.Buffer{}, false)
	if got := s.Sample(RGB{}, RGB{}, "abcdefghij", 4); got != "abcd" {
		t.Errorf("Sample() = %q, want %q", got, "abcd")
	}
}

func TestSwatchEnabledKeepsText(t *testing.T) {
	s := NewSwatch(&bytes.Buffer{}, true)
	if got := s.Sample(RGB{}, RGB{R: 255, G: 255, B: 255}, "Aa", 2); !strings.Contains(got, "Aa") {
		t.Errorf("Sample() = %q, want text preserved", got)
	}
}
