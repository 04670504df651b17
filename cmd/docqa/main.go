package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	docanthropic "github.com/fwojciec/docqa/anthropic"
	"github.com/fwojciec/docqa/pdf"
	docslog "github.com/fwojciec/docqa/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Pick up ANTHROPIC_API_KEY and friends from a local .env if present.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Inspector: pdf.NewInspector(),
		Logger:    slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docqa"),
		kong.Description("Ask questions about PDF documents with page-citation footnotes."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docqa --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Both commands talk to the Anthropic API.
	if cmd == "ask" || cmd == "serve" {
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "ANTHROPIC_API_KEY environment variable not set. Get an API key at https://console.anthropic.com/")
			return fmt.Errorf("ANTHROPIC_API_KEY not set")
		}

		model := cli.Ask.Model
		if cmd == "serve" {
			model = cli.Serve.Model
		}

		client := anthropic.NewClient(option.WithAPIKey(apiKey))
		answerer := docanthropic.NewAnswerer(&client, anthropic.Model(model))
		deps.Answerer = docslog.NewAnswerer(answerer, deps.Logger)
	}

	return kongCtx.Run(deps)
}
