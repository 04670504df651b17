package mock

import (
	"context"

	"github.com/fwojciec/docqa"
)

var _ docqa.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of docqa.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, document []byte, question string) ([]docqa.Segment, error)
}

func (a *Answerer) Answer(ctx context.Context, document []byte, question string) ([]docqa.Segment, error) {
	return a.AnswerFn(ctx, document, question)
}
