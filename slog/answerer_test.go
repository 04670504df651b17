package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/mock"
	docslog "github.com/fwojciec/docqa/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerer_Answer(t *testing.T) {
	t.Parallel()

	t.Run("logs segment count and duration on success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Answerer{
			AnswerFn: func(context.Context, []byte, string) ([]docqa.Segment, error) {
				return []docqa.Segment{{Text: "a"}, {Text: "b"}}, nil
			},
		}

		answerer := docslog.NewAnswerer(inner, logger)
		segments, err := answerer.Answer(context.Background(), []byte("%PDF-"), "question")

		require.NoError(t, err)
		assert.Len(t, segments, 2)
		output := buf.String()
		assert.Contains(t, output, "segments=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error and propagates it", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Answerer{
			AnswerFn: func(context.Context, []byte, string) ([]docqa.Segment, error) {
				return nil, docqa.Errorf(docqa.EUNAVAILABLE, "service down")
			},
		}

		answerer := docslog.NewAnswerer(inner, logger)
		_, err := answerer.Answer(context.Background(), []byte("%PDF-"), "question")

		require.Error(t, err)
		assert.Equal(t, docqa.EUNAVAILABLE, docqa.ErrorCode(err))
		assert.Contains(t, buf.String(), "answer failed")
		assert.Contains(t, buf.String(), "service down")
	})
}
