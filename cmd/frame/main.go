// frame - layout resolution and accessible colour tooling
//
// frame resolves which layout wraps a page path and picks text colours
// that meet WCAG contrast requirements.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/frame/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
