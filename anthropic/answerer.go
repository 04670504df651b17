// Package anthropic implements document question answering using the
// Anthropic Messages API with citations enabled.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/fwojciec/docqa"
)

const maxTokens = 1024

// Ensure Answerer implements docqa.Answerer at compile time.
var _ docqa.Answerer = (*Answerer)(nil)

// Answerer implements docqa.Answerer using the Anthropic Messages API.
type Answerer struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewAnswerer creates a new Answerer.
func NewAnswerer(client *anthropic.Client, model anthropic.Model) *Answerer {
	return &Answerer{client: client, model: model}
}

// Answer asks one question about the given document. The document is sent as
// a base64 PDF block with citations enabled so the service grounds answer
// spans in page ranges. One synchronous call, no retries.
func (a *Answerer) Answer(ctx context.Context, document []byte, question string) ([]docqa.Segment, error) {
	if len(document) == 0 {
		return nil, docqa.Errorf(docqa.EINVALID, "document required")
	}
	if question == "" {
		return nil, docqa.Errorf(docqa.EINVALID, "question required")
	}

	params := BuildParams(docqa.EncodeDocument(document), question, a.model)

	message, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, docqa.Errorf(docqa.EUNAVAILABLE, "anthropic request failed: %v", err)
	}
	if message == nil {
		return nil, docqa.Errorf(docqa.EINTERNAL, "anthropic returned nil message")
	}

	return Segments(message.Content), nil
}

// BuildParams returns the MessageNewParams for one document question: the
// base64-encoded PDF with citations enabled followed by the question text.
func BuildParams(documentBase64, question string, model anthropic.Model) anthropic.MessageNewParams {
	doc := anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
		Data: documentBase64,
	})
	doc.OfDocument.Citations = anthropic.CitationsConfigParam{
		Enabled: anthropic.Bool(true),
	}

	return anthropic.MessageNewParams{
		Model:     model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(doc, anthropic.NewTextBlock(question)),
		},
	}
}

// Segments converts API content blocks into domain segments. Non-text
// blocks and citation types without page locations are skipped rather than
// failing the whole response.
func Segments(blocks []anthropic.ContentBlockUnion) []docqa.Segment {
	segments := make([]docqa.Segment, 0, len(blocks))

	for _, block := range blocks {
		if block.Type != "text" {
			continue
		}

		seg := docqa.Segment{Text: block.Text}
		for _, c := range block.Citations {
			if c.Type != "page_location" {
				continue
			}
			seg.Citations = append(seg.Citations, docqa.Citation{
				CitedText: c.CitedText,
				StartPage: int(c.StartPageNumber),
				EndPage:   int(c.EndPageNumber),
			})
		}

		segments = append(segments, seg)
	}

	return segments
}
