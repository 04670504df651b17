package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docqa"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Answerer  docqa.Answerer
	Inspector docqa.Inspector
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ask   AskCmd   `cmd:"" help:"Ask a question about a PDF document"`
	Serve ServeCmd `cmd:"" help:"Serve the upload form and question endpoint over HTTP"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	File     string `arg:"" help:"Path to the PDF file"`
	Question string `arg:"" help:"Question to ask about the document"`
	Model    string `default:"claude-sonnet-4-0" env:"DOCQA_MODEL" help:"Anthropic model"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string `default:":8080" env:"DOCQA_ADDR" help:"Listen address"`
	Model string `default:"claude-sonnet-4-0" env:"DOCQA_MODEL" help:"Anthropic model"`
}
