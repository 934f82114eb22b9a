package layout

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/frame/internal/security"
)

// templateExt is the file extension of layout templates.
const templateExt = ".tmpl"

//go:embed templates/*.tmpl templates/manifest.yaml
var embeddedFS embed.FS

// DefaultManifest returns the manifest shipped with the built-in layouts.
func DefaultManifest() (*Manifest, error) {
	data, err := embeddedFS.ReadFile("templates/manifest.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read default manifest: %w", err)
	}
	return ParseManifest(data)
}

// Loader loads layout templates, checking a custom directory
// (~/.config/frame/layouts by default) before the built-in layouts.
type Loader struct {
	builtin    fs.FS
	customBase string
	logger     hclog.Logger
}

// NewLoader creates a loader over the built-in layouts.
func NewLoader() *Loader {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "" // Fallback to empty if home dir unavailable
	}

	builtin, _ := fs.Sub(embeddedFS, "templates")

	return &Loader{
		builtin:    builtin,
		customBase: filepath.Join(home, ".config", "frame", "layouts"),
		logger:     hclog.NewNullLogger(),
	}
}

// WithCustomBase sets the directory checked for layout overrides.
func (l *Loader) WithCustomBase(customBase string) *Loader {
	l.customBase = customBase
	return l
}

// WithBuiltin replaces the built-in layouts, mainly for tests.
func (l *Loader) WithBuiltin(fsys fs.FS) *Loader {
	l.builtin = fsys
	return l
}

// WithLogger sets the logger for load decisions.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load reads the template for a layout name, checking for a custom override
// first. Returns whether the custom override was used.
func (l *Loader) Load(name string) (content []byte, fromCustom bool, err error) {
	if err := security.ValidateLayoutName(name); err != nil {
		return nil, false, err
	}
	filename := name + templateExt

	if l.customBase != "" {
		customPath := filepath.Join(l.customBase, filename)
		if content, err := os.ReadFile(customPath); err == nil {
			l.logger.Debug("using custom layout", "name", name, "path", customPath)
			return content, true, nil
		}
	}

	l.logger.Debug("using built-in layout", "name", name)
	content, err = fs.ReadFile(l.builtin, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load layout %q: %w", name, err)
	}
	return content, false, nil
}

// List returns the names of all built-in layouts.
func (l *Loader) List() ([]string, error) {
	matches, err := fs.Glob(l.builtin, "*"+templateExt)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(path.Base(m), templateExt)
	}
	return names, nil
}

// Registry loads and parses every built-in layout (with overrides applied).
func (l *Loader) Registry() (*Registry, error) {
	names, err := l.List()
	if err != nil {
		return nil, err
	}

	reg := NewRegistry()
	for _, name := range names {
		content, _, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		tl, err := NewTemplateLayout(name, content)
		if err != nil {
			return nil, err
		}
		reg.Register(name, tl)
	}
	return reg, nil
}

// Dump writes a built-in layout to the custom directory so it can be edited.
// If force is false, it will not overwrite an existing custom layout.
func (l *Loader) Dump(name string, force bool) (string, error) {
	if err := security.ValidateLayoutName(name); err != nil {
		return "", err
	}
	filename := name + templateExt

	content, err := fs.ReadFile(l.builtin, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read built-in layout %q: %w", name, err)
	}

	outputPath := filepath.Join(l.customBase, filename)
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return "", fmt.Errorf("custom layout already exists: %s (use --force to overwrite)", outputPath)
		}
	}

	if err := os.MkdirAll(l.customBase, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", l.customBase, err)
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write layout to %q: %w", outputPath, err)
	}

	return outputPath, nil
}

// LoadTemplates parses every layout a manifest refers to from fsys, where
// layout names are file paths (as produced by Discover).
func LoadTemplates(fsys fs.FS, m *Manifest) (*Registry, error) {
	names := make([]string, 0, len(m.Routes)+1)
	for _, e := range m.Routes {
		names = append(names, e.Layout)
	}
	if m.Default != "" {
		names = append(names, m.Default)
	}

	reg := NewRegistry()
	for _, name := range names {
		if _, ok := reg.Get(name); ok {
			continue
		}
		if err := security.ValidateFilePath(name, "."); err != nil {
			return nil, err
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read layout %q: %w", name, err)
		}
		tl, err := NewTemplateLayout(name, content)
		if err != nil {
			return nil, err
		}
		reg.Register(name, tl)
	}
	return reg, nil
}
