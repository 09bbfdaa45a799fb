package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagetext"
	pagehttp "github.com/fwojciec/pagetext/http"
	"github.com/fwojciec/pagetext/rate"
	pageslog "github.com/fwojciec/pagetext/slog"
	"github.com/fwojciec/pagetext/yaml"
	"github.com/google/uuid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", pagetext.ErrorMessage(err))
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps a run error to the process exit status: 2 for invalid
// input, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if pagetext.ErrorCode(err) == pagetext.EINVALID {
		return 2
	}
	return 1
}

// Main represents the program.
type Main struct {
	// Stdin supplies answers to the interactive commands.
	Stdin io.Reader

	// Fetcher replaces the HTTP fetcher. Used by tests.
	Fetcher pagetext.Fetcher

	// ConfigPaths are YAML files read for default flag values.
	// Missing files are ignored.
	ConfigPaths []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:       os.Stdin,
		ConfigPaths: []string{"~/.config/pagetext/config.yaml"},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagetext"),
		kong.Description("Save the readable text of web pages to a Markdown report."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(yaml.Loader, m.ConfigPaths...),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if wantsHelp(args) {
		_, _ = parser.Parse(args)
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		if pagetext.ErrorCode(err) == pagetext.EINVALID {
			return err
		}
		return pagetext.Errorf(pagetext.EINVALID, "%v", err)
	}

	settings := cli.Settings()
	if err := settings.Validate(); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose).With("run", uuid.NewString())

	extractor, err := NewExtractor(settings.Extractor)
	if err != nil {
		return err
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = pagehttp.NewFetcher(
			pagehttp.WithTimeout(settings.Timeout),
			pagehttp.WithConnectTimeout(settings.ConnectTimeout),
			pagehttp.WithUserAgent(settings.UserAgent),
		)
	}
	if settings.Rate > 0 {
		fetcher = rate.NewFetcher(fetcher, rate.NewDomainLimiter(settings.Rate))
	}
	fetcher = pageslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	stdin := m.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Scraper: &Scraper{
			Fetcher:   fetcher,
			Extractor: pageslog.NewLoggingExtractor(extractor, logger),
		},
	}

	err = kongCtx.Run(deps)
	if errors.Is(err, context.Canceled) {
		return pagetext.Errorf(pagetext.EINTERNAL, "interrupted")
	}
	return err
}

// newLogger logs warnings to w, or everything when verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-h", "--help":
			return true
		}
	}
	return len(args) == 1 && args[0] == "help"
}
