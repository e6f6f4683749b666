package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/gilgamesh1111/wiki"
	"github.com/gilgamesh1111/wiki/aurora"
	wikihttp "github.com/gilgamesh1111/wiki/http"
	"github.com/gilgamesh1111/wiki/jsonschema"
	"github.com/gilgamesh1111/wiki/rate"
	wikislog "github.com/gilgamesh1111/wiki/slog"
	"github.com/gilgamesh1111/wiki/uniseg"
	"github.com/mattn/go-isatty"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", wiki.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Endpoint is the page summary URL template. Set before calling Run().
	Endpoint string

	// Version is printed by --version and sent in the default User-Agent.
	Version string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Endpoint: wikihttp.DefaultEndpoint,
		Version:  version,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	exited := false
	parser, err := kong.New(cli,
		kong.Name("wiki"),
		kong.Description("Print the summary of a random Wikipedia page."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Vars{
			"version":          m.Version,
			"default_language": wiki.DefaultLanguage,
			"default_width":    strconv.Itoa(uniseg.DefaultWidth),
			"default_timeout":  wikihttp.DefaultFetchTimeout.String(),
			"default_rate":     strconv.FormatFloat(rate.DefaultRequestsPerSecond, 'g', -1, 64),
			"user_agent":       wikihttp.UserAgent(m.Version),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Kong printed help and asked to exit.
	if exited {
		return nil
	}

	if cli.Version {
		fmt.Fprintf(stdout, "wiki %s\n", m.Version)
		return nil
	}

	if cli.Count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", cli.Count)
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var fetcher wiki.PageFetcher = wikihttp.NewPageFetcher(wikihttp.Config{
		Endpoint:  m.Endpoint,
		UserAgent: cli.UserAgent,
		Timeout:   cli.Timeout,
	}, jsonschema.NewPageDecoder())

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = wikislog.NewLoggingPageFetcher(fetcher, logger)
	}

	deps.Fetcher = rate.NewPageFetcher(fetcher, cli.Rate)
	deps.Writer = aurora.NewPageWriter(uniseg.NewWrapper(cli.Width), colorEnabled(cli.Color, stdout))

	cmd := &RandomCmd{
		Language: cli.Language,
		Count:    cli.Count,
	}

	return cmd.Run(deps)
}

// colorEnabled resolves the --color mode against the output writer.
func colorEnabled(mode string, w io.Writer) bool {
	return resolveColor(mode, os.Getenv("NO_COLOR") != "", isTerminal(w))
}

// resolveColor applies the --color mode. In auto mode colors are used only
// for terminals and when NO_COLOR is unset.
func resolveColor(mode string, noColor, terminal bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return terminal && !noColor
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
