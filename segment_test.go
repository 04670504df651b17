package docqa_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAnswerer verifies the Answerer interface can be implemented.
type mockAnswerer struct {
	AnswerFn func(ctx context.Context, document []byte, question string) ([]docqa.Segment, error)
}

func (m *mockAnswerer) Answer(ctx context.Context, document []byte, question string) ([]docqa.Segment, error) {
	return m.AnswerFn(ctx, document, question)
}

// Compile-time check that mockAnswerer implements Answerer.
var _ docqa.Answerer = (*mockAnswerer)(nil)

func TestAnswerer_CanBeImplemented(t *testing.T) {
	t.Parallel()

	answerer := &mockAnswerer{
		AnswerFn: func(_ context.Context, _ []byte, question string) ([]docqa.Segment, error) {
			return []docqa.Segment{{Text: "answer to " + question}}, nil
		},
	}

	segments, err := answerer.Answer(context.Background(), []byte("%PDF-"), "what is this?")

	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "answer to what is this?", segments[0].Text)
}

func TestSegment_Plain(t *testing.T) {
	t.Parallel()

	assert.True(t, docqa.Segment{Text: "prose"}.Plain())
	assert.False(t, docqa.Segment{
		Text:      "cited",
		Citations: []docqa.Citation{{CitedText: "q", StartPage: 1, EndPage: 1}},
	}.Plain())
}
