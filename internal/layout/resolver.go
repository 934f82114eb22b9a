package layout

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
)

const root = "/"

// route is a registered prefix and the layout that wraps it.
type route struct {
	prefix string
	depth  int
	layout Layout
}

// Builder collects prefix registrations and produces an immutable Resolver.
type Builder struct {
	routes   []route
	fallback Layout
	logger   hclog.Logger
	errs     []error
}

// NewBuilder creates a new Resolver builder with no routes.
func NewBuilder() *Builder {
	return &Builder{
		logger: hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger used while building and resolving.
func (b *Builder) WithLogger(logger hclog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Register adds a layout for every path under prefix.
// Errors are deferred until Build.
func (b *Builder) Register(prefix string, l Layout) *Builder {
	p := normalizePrefix(prefix)
	if l == nil {
		b.errs = append(b.errs, fmt.Errorf("%w for prefix %q", ErrNilLayout, p))
		return b
	}
	for _, r := range b.routes {
		if r.prefix == p {
			b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrDuplicatePrefix, p))
			return b
		}
	}

	b.routes = append(b.routes, route{prefix: p, depth: depth(p), layout: l})
	b.logger.Debug("registered layout", "prefix", p)
	return b
}

// WithDefault sets the layout used when no prefix matches.
func (b *Builder) WithDefault(l Layout) *Builder {
	b.fallback = l
	return b
}

// Build returns a Resolver for the registered routes.
func (b *Builder) Build() (*Resolver, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("invalid layout registrations: %w", b.errs[0])
	}

	routes := slices.Clone(b.routes)
	// Deepest prefix first. Length and then lexical order only make the
	// ordering deterministic; two distinct prefixes of equal depth can never
	// both match the same path.
	slices.SortFunc(routes, func(x, y route) int {
		if c := cmp.Compare(y.depth, x.depth); c != 0 {
			return c
		}
		if c := cmp.Compare(len(y.prefix), len(x.prefix)); c != 0 {
			return c
		}
		return strings.Compare(x.prefix, y.prefix)
	})

	return &Resolver{
		routes:   routes,
		fallback: b.fallback,
		logger:   b.logger,
	}, nil
}

// Resolver selects the most specific layout for a path.
// It is immutable and safe for concurrent use.
type Resolver struct {
	routes   []route
	fallback Layout
	logger   hclog.Logger
}

// Resolve returns the layout for path, the default layout if no prefix
// matches, or nil when the content should be rendered unwrapped.
func (r *Resolver) Resolve(path string) Layout {
	_, l, _ := r.Match(path)
	return l
}

// Match is like Resolve but also reports the matching prefix. ok is false
// when no prefix matched, in which case l is the default layout (or nil).
func (r *Resolver) Match(path string) (prefix string, l Layout, ok bool) {
	path = normalizePath(path)

	for _, rt := range r.routes {
		if matches(path, rt.prefix) {
			r.logger.Trace("resolved layout", "path", path, "prefix", rt.prefix)
			return rt.prefix, rt.layout, true
		}
	}

	r.logger.Trace("no layout prefix matched", "path", path, "default", r.fallback != nil)
	return "", r.fallback, false
}

// Wrap resolves the layout for path and writes content through it.
// Content is copied unchanged when no layout applies.
func (r *Resolver) Wrap(w io.Writer, path string, content []byte) error {
	l := r.Resolve(path)
	if l == nil {
		_, err := w.Write(content)
		return err
	}
	return l.Wrap(w, content)
}

// Prefixes returns the registered prefixes in resolution order.
func (r *Resolver) Prefixes() []string {
	prefixes := make([]string, len(r.routes))
	for i, rt := range r.routes {
		prefixes[i] = rt.prefix
	}
	return prefixes
}

// Default returns the layout used when no prefix matches, or nil.
func (r *Resolver) Default() Layout {
	return r.fallback
}

// HasDefault reports whether a default layout is configured.
func (r *Resolver) HasDefault() bool {
	return r.fallback != nil
}

// matches reports whether path equals prefix or lies beneath it.
func matches(path, prefix string) bool {
	if prefix == root {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// depth counts the non-empty segments of a prefix.
func depth(prefix string) int {
	n := 0
	for _, seg := range strings.Split(prefix, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}

// normalizePath adds a leading slash and collapses repeated slashes so
// "/a//b" and "/a/b" name the same segments.
func normalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return path
}

func normalizePrefix(prefix string) string {
	p := normalizePath(prefix)
	if p != root {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = root
		}
	}
	return p
}
