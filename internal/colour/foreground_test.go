package colour

import (
	"errors"
	"testing"
)

func TestPickAccessibleTextColour(t *testing.T) {
	tests := []struct {
		name       string
		background string
		candidates []string
		largeText  bool
		want       string
	}{
		{
			name:       "black on white meets normal threshold",
			background: "#ffffff",
			candidates: []string{"#000000", "#ffffff"},
			want:       "#000000",
		},
		{
			name:       "first qualifying candidate wins over a better later one",
			background: "#ffffff",
			candidates: []string{"#767676", "#000000"},
			want:       "#767676",
		},
		{
			name:       "skips failing candidates",
			background: "#777777",
			candidates: []string{"#ffffff", "#000000"},
			want:       "#000000",
		},
		{
			name:       "large text uses the lower threshold",
			background: "#777777",
			candidates: []string{"#ffffff", "#000000"},
			largeText:  true,
			want:       "#ffffff",
		},
		{
			name:       "falls back to the only candidate",
			background: "#777777",
			candidates: []string{"#ffffff"},
			want:       "#ffffff",
		},
		{
			name:       "falls back to the highest contrast",
			background: "#ffffff",
			candidates: []string{"#eeeeee", "#ff0000", "#dddddd"},
			want:       "#ff0000",
		},
		{
			name:       "ties go to the earliest candidate",
			background: "#ffffff",
			candidates: []string{"#eeeeee", "#ff0000", "#f00"},
			want:       "#ff0000",
		},
		{
			name:       "candidate returned as supplied",
			background: "fff",
			candidates: []string{"000"},
			want:       "000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PickAccessibleTextColour(tt.background, tt.candidates, tt.largeText)
			if err != nil {
				t.Fatalf("PickAccessibleTextColour() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PickAccessibleTextColour() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPickAccessibleTextColourErrors(t *testing.T) {
	t.Run("empty candidates", func(t *testing.T) {
		_, err := PickAccessibleTextColour("#ffffff", nil, false)
		if !errors.Is(err, ErrEmptyCandidateList) {
			t.Errorf("error = %v, want ErrEmptyCandidateList", err)
		}
	})

	t.Run("empty candidates with invalid background", func(t *testing.T) {
		_, err := PickAccessibleTextColour("nope", []string{}, false)
		if !errors.Is(err, ErrEmptyCandidateList) {
			t.Errorf("error = %v, want ErrEmptyCandidateList", err)
		}
	})

	t.Run("invalid background", func(t *testing.T) {
		_, err := PickAccessibleTextColour("#12345", []string{"#000000"}, false)
		if !errors.Is(err, ErrInvalidColourFormat) {
			t.Errorf("error = %v, want ErrInvalidColourFormat", err)
		}
	})

	t.Run("invalid candidate after a qualifying one", func(t *testing.T) {
		_, err := PickAccessibleTextColour("#ffffff", []string{"#000000", "#xyz"}, false)
		if !errors.Is(err, ErrInvalidColourFormat) {
			t.Errorf("error = %v, want ErrInvalidColourFormat", err)
		}
	})
}
