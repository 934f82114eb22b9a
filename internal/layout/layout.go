// Package layout maps navigation paths to the layout that wraps them.
package layout

import (
	"errors"
	"io"
)

var (
	// ErrDuplicatePrefix is returned when a prefix is registered twice.
	ErrDuplicatePrefix = errors.New("duplicate layout prefix")

	// ErrNilLayout is returned when a nil layout is registered.
	ErrNilLayout = errors.New("nil layout")

	// ErrUnknownLayout is returned when a manifest names a layout that is not registered.
	ErrUnknownLayout = errors.New("unknown layout")
)

// Layout wraps page content with shared chrome.
type Layout interface {
	// Wrap writes content, surrounded by the layout, to w.
	Wrap(w io.Writer, content []byte) error
}

// Func adapts an ordinary function to the Layout interface.
type Func func(w io.Writer, content []byte) error

// Wrap calls f(w, content).
func (f Func) Wrap(w io.Writer, content []byte) error {
	return f(w, content)
}
