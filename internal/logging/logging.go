// Package logging builds the hclog loggers used across frame.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Options controls logger construction.
type Options struct {
	// Name is the logger name shown in each line.
	Name string
	// Level overrides the level derived from Verbose/Quiet when set.
	Level string
	// Verbose enables debug output.
	Verbose bool
	// Quiet limits output to errors.
	Quiet bool
	// Output is where log lines are written. Nil discards them.
	Output io.Writer
}

// New returns a logger for the given options.
// Without Verbose, Quiet or Level the logger is switched off, so ordinary
// command output is not interleaved with log lines.
func New(opts Options) hclog.Logger {
	if opts.Output == nil {
		return hclog.NewNullLogger()
	}

	level := hclog.Off
	switch {
	case opts.Level != "":
		level = hclog.LevelFromString(opts.Level)
		if level == hclog.NoLevel {
			level = hclog.Info
		}
	case opts.Verbose:
		level = hclog.Debug
	case opts.Quiet:
		level = hclog.Error
	}

	if level == hclog.Off {
		return hclog.New(&hclog.LoggerOptions{
			Name:   opts.Name,
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   opts.Name,
		Output: opts.Output,
		Level:  level,
	})
}
