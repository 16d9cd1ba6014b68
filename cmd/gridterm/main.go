// Package main is the entry point for gridterm.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/gridterm/internal/app"
	"github.com/dshills/gridterm/internal/config"
	"github.com/dshills/gridterm/internal/input"
	"github.com/dshills/gridterm/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath  string
	logLevel    string
	mode        string
	printConfig bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	// flags beat file and environment
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.mode != "" {
		cfg.Frame.Mode = opts.mode
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.printConfig {
		if err := printConfig(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: printing config: %v\n", err)
			return 1
		}
		return 0
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening log: %v\n", err)
		return 1
	}
	defer closeLog()
	app.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appOpts := app.Options{
		Config: cfg,
		Logger: logger,
	}

	// wake unblocks a pending key read on cancellation. reloadWake does so
	// for config reloads, only in screen mode where no typed line is lost.
	var wake, reloadWake func()
	if cfg.Frame.Mode == config.ModeScreen {
		term, err := backend.NewTerminal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
			return 1
		}
		if err := term.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
			return 1
		}
		// Ensure the terminal is restored on all exit paths
		defer term.Shutdown()

		appOpts.Keys = term
		appOpts.Presenter = app.NewScreenPresenter(term)
		wake = term.Wake
		reloadWake = term.Wake
	} else {
		kb := input.NewStdinKeyboard()
		if err := kb.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to initialize keyboard: %v\n", err)
			return 1
		}
		defer func() { _ = kb.Shutdown() }()

		appOpts.Keys = kb
		appOpts.Lines = kb
		appOpts.Presenter = app.NewStreamPresenter(os.Stdout)
		wake = kb.Wake
	}
	appOpts.Wake = wake

	if opts.configPath != "" {
		reloads, err := watchConfig(ctx, opts, logger, reloadWake)
		if err != nil {
			logger.Warn("config reload disabled: %v", err)
		} else {
			appOpts.Reloads = reloads
		}
	}

	application, err := app.New(appOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	logger.WithField("session", application.Session()).Info("gridterm %s started", version)

	if err := application.Run(ctx); err != nil {
		// Check if it's a normal quit using errors.Is for wrapped errors
		if errors.Is(err, app.ErrQuit) || errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// printConfig writes cfg as TOML to w.
func printConfig(w io.Writer, cfg *config.Config) error {
	data, err := config.Encode(cfg, config.FormatTOML)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// newLogger creates the logger described by cfg. Logs never go to stdout,
// which carries frames in stream mode.
func newLogger(cfg *config.Config) (*app.Logger, func(), error) {
	lc := app.DefaultLoggerConfig()
	lc.Level = app.ParseLogLevel(cfg.Log.Level)

	closeLog := func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		lc.Output = f
		closeLog = func() { _ = f.Close() }
	} else if cfg.Frame.Mode == config.ModeScreen {
		// stderr shares the screen
		lc.Output = io.Discard
	}
	return app.NewLogger(lc), closeLog, nil
}

// watchConfig forwards reloaded configs, with command line overrides
// reapplied, until ctx is done. wake, if set, is called after each one so a
// blocked key read returns and the next frame picks the config up.
func watchConfig(ctx context.Context, opts options, logger *app.Logger, wake func()) (<-chan *config.Config, error) {
	w, err := config.Watch(ctx, opts.configPath)
	if err != nil {
		return nil, err
	}

	out := make(chan *config.Config, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case err := <-w.Errors():
				logger.Warn("config reload failed: %v", err)
			case cfg, ok := <-w.Updates():
				if !ok {
					return
				}
				if opts.logLevel != "" {
					cfg.Log.Level = opts.logLevel
				}
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
				if wake != nil {
					wake()
				}
			}
		}
	}()
	return out, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.mode, "mode", "", "Frame mode (stream, screen)")
	flag.BoolVar(&opts.printConfig, "print-config", false, "Print the resolved configuration as TOML and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gridterm - a terminal grid game\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gridterm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		for _, name := range config.EnvNames() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gridterm                      Stream frames to stdout\n")
		fmt.Fprintf(os.Stderr, "  gridterm -mode screen         Full-screen terminal\n")
		fmt.Fprintf(os.Stderr, "  gridterm -c gridterm.toml     Load and live-reload a config\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("gridterm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}
