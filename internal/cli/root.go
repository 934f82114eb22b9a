// Package cli provides the command-line interface for frame.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/frame/internal/colour"
	"github.com/jmylchreest/frame/internal/config"
	"github.com/jmylchreest/frame/internal/layout"
	"github.com/jmylchreest/frame/internal/logging"
	"github.com/jmylchreest/frame/internal/version"
)

// siteLayoutFile is the file that marks a directory as a layout boundary
// when a site tree is discovered with --site.
const siteLayoutFile = "layout.tmpl"

// app holds state shared by all commands of one root command instance.
type app struct {
	config config.Config
	logger hclog.Logger

	// Global flags
	verbose      bool
	quiet        bool
	logLevel     string
	manifestPath string
	siteDir      string
	layoutDir    string
	envFile      string
	noPreview    bool
}

// NewRootCmd builds the frame command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "frame",
		Short: "Layout resolution and accessible colour tooling",
		Long: `frame resolves which layout wraps a page path and picks text colours that
meet WCAG contrast requirements against a background.

Layouts are matched by path segment, deepest prefix first, so "/auth" wraps
"/auth/login" but never "/authentication".`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVarP(&a.manifestPath, "manifest", "m", "", "YAML route manifest (default: built-in manifest, $"+config.EnvManifest+")")
	flags.StringVar(&a.siteDir, "site", "", "discover layouts from a directory tree of "+siteLayoutFile+" files")
	flags.StringVar(&a.layoutDir, "layout-dir", "", "directory of layout template overrides ($"+config.EnvLayoutDir+")")
	flags.StringVar(&a.envFile, "env-file", "", "read FRAME_* settings from a dotenv file")
	flags.BoolVar(&a.noPreview, "no-preview", false, "disable colour previews")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		a.newContrastCmd(),
		a.newPickCmd(),
		a.newResolveCmd(),
		a.newRenderCmd(),
		a.newRoutesCmd(),
		a.newLayoutsCmd(),
	)

	return rootCmd
}

// setup resolves configuration (flags over environment over defaults) and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	builder := config.NewBuilder().WithEnvConfig()
	if a.envFile != "" {
		lookup, err := config.EnvFileLookup(a.envFile)
		if err != nil {
			return err
		}
		builder = builder.WithLookup(lookup)
	}
	cfg := builder.Build()

	flags := cmd.Flags()
	if flags.Changed("manifest") {
		if a.siteDir != "" {
			return fmt.Errorf("--manifest and --site are mutually exclusive")
		}
		cfg.ManifestPath = a.manifestPath
	}
	if a.siteDir != "" {
		// --site replaces a manifest taken from the environment.
		cfg.ManifestPath = ""
	}
	if flags.Changed("layout-dir") {
		cfg.LayoutDir = a.layoutDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	a.config = cfg

	a.logger = logging.New(logging.Options{
		Name:    "frame",
		Level:   cfg.LogLevel,
		Verbose: a.verbose,
		Quiet:   a.quiet,
		Output:  cmd.ErrOrStderr(),
	})

	return nil
}

// resolver builds the layout resolver from --site, --manifest or the
// built-in manifest, in that order.
func (a *app) resolver() (*layout.Resolver, error) {
	if a.siteDir != "" {
		fsys := os.DirFS(a.siteDir)
		m, err := layout.Discover(fsys, siteLayoutFile)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("discovered layouts", "site", a.siteDir, "routes", len(m.Routes))

		reg, err := layout.LoadTemplates(fsys, m)
		if err != nil {
			return nil, err
		}
		return m.Build(reg, a.logger)
	}

	m, err := a.manifest()
	if err != nil {
		return nil, err
	}

	reg, err := a.loader().Registry()
	if err != nil {
		return nil, err
	}
	return m.Build(reg, a.logger)
}

// manifest returns the configured route manifest.
func (a *app) manifest() (*layout.Manifest, error) {
	if a.siteDir != "" {
		return layout.Discover(os.DirFS(a.siteDir), siteLayoutFile)
	}
	if a.config.ManifestPath != "" {
		a.logger.Debug("loading manifest", "path", a.config.ManifestPath)
		return layout.LoadManifest(a.config.ManifestPath)
	}
	return layout.DefaultManifest()
}

func (a *app) loader() *layout.Loader {
	loader := layout.NewLoader().WithLogger(a.logger)
	if a.config.LayoutDir != "" {
		loader = loader.WithCustomBase(a.config.LayoutDir)
	}
	return loader
}

// swatch returns a colour previewer for w. Previews are only drawn on terminals.
func (a *app) swatch(w io.Writer) *colour.Swatch {
	enabled := false
	if f, ok := w.(*os.File); ok && !a.noPreview {
		enabled = term.IsTerminal(int(f.Fd()))
	}
	return colour.NewSwatch(w, enabled)
}

// layoutName returns a display name for a layout.
func layoutName(l layout.Layout) string {
	if l == nil {
		return "(none)"
	}
	if named, ok := l.(interface{ Name() string }); ok {
		return named.Name()
	}
	return fmt.Sprintf("%T", l)
}

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the frame version, commit, build date, contrast algorithm and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := json.MarshalIndent(version.GetInfo(), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				fmt.Fprintln(out, string(data))
			case "text":
				fmt.Fprintln(out, version.String())
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}
