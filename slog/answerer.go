// Package slog provides logging decorators for docqa interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docqa"
)

// Ensure Answerer implements docqa.Answerer.
var _ docqa.Answerer = (*Answerer)(nil)

// Answerer wraps an Answerer with request logging.
type Answerer struct {
	next   docqa.Answerer
	logger *slog.Logger
}

// NewAnswerer creates a new logging Answerer.
func NewAnswerer(next docqa.Answerer, logger *slog.Logger) *Answerer {
	return &Answerer{next: next, logger: logger}
}

// Answer delegates to the wrapped Answerer and logs the outcome.
func (a *Answerer) Answer(ctx context.Context, document []byte, question string) ([]docqa.Segment, error) {
	begin := time.Now()

	segments, err := a.next.Answer(ctx, document, question)
	if err != nil {
		a.logger.Error("answer failed",
			"document_bytes", len(document),
			"question_length", len(question),
			"duration", time.Since(begin),
			"error", docqa.ErrorMessage(err),
		)
		return nil, err
	}

	a.logger.Info("answer",
		"document_bytes", len(document),
		"question_length", len(question),
		"segments", len(segments),
		"duration", time.Since(begin),
	)
	return segments, nil
}
