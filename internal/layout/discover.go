package layout

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
)

// Discover walks fsys and returns a manifest with one route per directory
// that contains a file called filename. The directory path becomes the prefix
// and the file path becomes the layout name, so the result can be built
// against a registry populated by LoadTemplates.
//
// A layout file at the root of fsys registers the "/" prefix.
func Discover(fsys fs.FS, filename string) (*Manifest, error) {
	var routes []Entry

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Base(p) != filename {
			return nil
		}

		dir := path.Dir(p)
		prefix := "/" + dir
		if dir == "." {
			prefix = root
		}
		routes = append(routes, Entry{Prefix: prefix, Layout: p})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to discover layouts: %w", err)
	}

	slices.SortFunc(routes, func(a, b Entry) int {
		switch {
		case a.Prefix < b.Prefix:
			return -1
		case a.Prefix > b.Prefix:
			return 1
		}
		return 0
	})

	return &Manifest{Routes: routes}, nil
}
