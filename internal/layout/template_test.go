package layout

import (
	"bytes"
	"testing"
)

func TestTemplateLayoutWrap(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "content only",
			text: "<main>{{ .Content }}</main>",
			want: "<main>hello</main>",
		},
		{
			name: "text colour on dark background",
			text: `{{ textColour "#000000" "#222222" "#ffffff" }}`,
			want: "#ffffff",
		},
		{
			name: "large text accepts lower contrast",
			text: `{{ largeTextColour "#777777" "#ffffff" "#000000" }}`,
			want: "#ffffff",
		},
		{
			name: "contrast ratio",
			text: `{{ contrast "#000" "#fff" }}`,
			want: "21.00",
		},
		{
			name: "named colour",
			text: `{{ hex "white" }}`,
			want: "#ffffff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl, err := NewTemplateLayout(tt.name, []byte(tt.text))
			if err != nil {
				t.Fatalf("NewTemplateLayout() error = %v", err)
			}

			var buf bytes.Buffer
			if err := tl.Wrap(&buf, []byte("hello")); err != nil {
				t.Fatalf("Wrap() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Wrap() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTemplateLayoutErrors(t *testing.T) {
	if _, err := NewTemplateLayout("bad", []byte("{{ .Content")); err == nil {
		t.Error("expected parse error")
	}

	tl, err := NewTemplateLayout("exec", []byte(`{{ textColour "#zzz" "#000" }}`))
	if err != nil {
		t.Fatalf("NewTemplateLayout() error = %v", err)
	}
	if err := tl.Wrap(&bytes.Buffer{}, nil); err == nil {
		t.Error("expected execution error for invalid colour")
	}

	if tl.Name() != "exec" {
		t.Errorf("Name() = %q", tl.Name())
	}
}
