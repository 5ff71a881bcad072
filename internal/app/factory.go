package app

import (
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/climux/internal/config"
	"github.com/footprint-tools/climux/internal/domain"
	"github.com/footprint-tools/climux/internal/log"
	"github.com/footprint-tools/climux/internal/paths"
	"github.com/footprint-tools/climux/internal/ui"
	"github.com/footprint-tools/climux/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Name is the tool name; it picks the rc file, log file and env prefix.
	Name string

	// Output streams, stdout and stderr when nil
	Stdout io.Writer
	Stderr io.Writer

	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions reads the rc file of name and resolves the options it
// implies. A missing or broken rc file yields the built-in defaults.
func DefaultOptions(name string) Options {
	cfg := config.Defaults()
	if provider, err := config.NewProvider(name); err == nil {
		if all, err := provider.GetAll(); err == nil {
			cfg = all
		}
	}

	return Options{
		Name:         name,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		LogEnabled:   cfg["enable_log"] == "true",
		LogLevel:     log.ParseLevel(cfg["log_level"]),
		StyleEnabled: style.ShouldEnable(cfg["color"], ui.IsTerminal(os.Stdout)),
		StyleConfig:  cfg,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("app: options have no tool name")
	}

	provider, err := config.NewProvider(opts.Name)
	if err != nil {
		return nil, err
	}

	// The file logger also becomes the package-level one, so config and
	// pager failures land in the same file. NopLogger when it cannot open.
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		if err := log.Init(paths.LogFilePath(opts.Name), opts.LogLevel); err == nil {
			logger = log.GetLogger()
		}
	}

	style.Init(opts.Name, opts.StyleEnabled, opts.StyleConfig)

	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	shellOpts := []ui.ShellOption{
		ui.WithConfigGetter(provider.Get),
		ui.WithStyler(style.NewStyler()),
	}
	if opts.PagerDisabled {
		shellOpts = append(shellOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		shellOpts = append(shellOpts, ui.WithPagerOverride(opts.PagerOverride))
	}

	return &domain.Application{
		Name:   opts.Name,
		Config: provider,
		Logger: logger,
		Shell:  ui.NewShellTo(stdout, stderr, shellOpts...),
		Styler: style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application writing to out and errOut, with an
// rc file at rcPath, no logging, no styling and no pager.
func NewForTesting(name, rcPath string, out, errOut io.Writer) *domain.Application {
	return &domain.Application{
		Name:   name,
		Config: config.NewProviderAt(name, rcPath),
		Logger: log.NopLogger{},
		Shell:  ui.NewShellTo(out, errOut, ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app != nil && app.Logger != nil {
		return app.Logger.Close()
	}
	return nil
}
