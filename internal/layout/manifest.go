package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"
)

// Entry maps a path prefix to a layout name.
type Entry struct {
	Prefix string `yaml:"prefix"`
	Layout string `yaml:"layout"`
}

// Manifest is the static description of which layout wraps which prefix.
//
//	routes:
//	  - prefix: /
//	    layout: root
//	  - prefix: /auth
//	    layout: auth
//	default: plain
type Manifest struct {
	Routes  []Entry `yaml:"routes"`
	Default string  `yaml:"default,omitempty"`
}

// ParseManifest decodes a YAML manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse layout manifest: %w", err)
	}

	for i, e := range m.Routes {
		if e.Prefix == "" {
			return nil, fmt.Errorf("route %d: prefix is required", i)
		}
		if e.Layout == "" {
			return nil, fmt.Errorf("route %d (%s): layout is required", i, e.Prefix)
		}
	}

	return &m, nil
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout manifest: %w", err)
	}
	return ParseManifest(data)
}

// Marshal encodes the manifest as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode layout manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode layout manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Build resolves the manifest's layout names against reg and returns a Resolver.
func (m *Manifest) Build(reg *Registry, logger hclog.Logger) (*Resolver, error) {
	b := NewBuilder().WithLogger(logger)

	for _, e := range m.Routes {
		l, ok := reg.Get(e.Layout)
		if !ok {
			return nil, fmt.Errorf("%w %q for prefix %q", ErrUnknownLayout, e.Layout, e.Prefix)
		}
		b.Register(e.Prefix, l)
	}

	if m.Default != "" {
		l, ok := reg.Get(m.Default)
		if !ok {
			return nil, fmt.Errorf("%w %q for default layout", ErrUnknownLayout, m.Default)
		}
		b.WithDefault(l)
	}

	return b.Build()
}
