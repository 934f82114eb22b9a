package layout

import (
	"bytes"
	"os"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	m, err := Discover(os.DirFS("testdata/site"), "layout.tmpl")
	require.NoError(t, err)

	want := []Entry{
		{Prefix: "/", Layout: "layout.tmpl"},
		{Prefix: "/auth", Layout: "auth/layout.tmpl"},
		{Prefix: "/auth/admin", Layout: "auth/admin/layout.tmpl"},
		{Prefix: "/profile", Layout: "profile/layout.tmpl"},
	}
	if diff := cmp.Diff(want, m.Routes); diff != "" {
		t.Errorf("Discover() mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscoverNoLayouts(t *testing.T) {
	fsys := fstest.MapFS{
		"goals/page.tmpl": &fstest.MapFile{Data: []byte("x")},
	}
	m, err := Discover(fsys, "layout.tmpl")
	require.NoError(t, err)
	if len(m.Routes) != 0 {
		t.Errorf("Discover() routes = %v, want none", m.Routes)
	}
}

func TestDiscoveredSiteRenders(t *testing.T) {
	fsys := os.DirFS("testdata/site")

	m, err := Discover(fsys, "layout.tmpl")
	require.NoError(t, err)

	reg, err := LoadTemplates(fsys, m)
	require.NoError(t, err)

	r, err := m.Build(reg, nil)
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{path: "/auth/admin/reports", want: "<admin>body</admin>"},
		{path: "/auth/login", want: "<auth>body</auth>"},
		{path: "/authentication", want: "<root>body</root>"},
		{path: "/profile/me", want: `<profile style="color: #fff">body</profile>`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Wrap(&buf, tt.path, []byte("body")))
			if got := buf.String(); got != tt.want {
				t.Errorf("Wrap(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	m := &Manifest{Routes: []Entry{{Prefix: "/", Layout: "nope.tmpl"}}}
	_, err := LoadTemplates(fstest.MapFS{}, m)
	require.Error(t, err)
}
