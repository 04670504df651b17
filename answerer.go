package docqa

import "context"

// Answerer answers natural language questions about a document.
type Answerer interface {
	// Answer asks one question about the given document bytes and returns
	// the service's ordered content segments. Returns EINVALID if the
	// document or question is empty.
	Answer(ctx context.Context, document []byte, question string) ([]Segment, error)
}

// Inspector performs a preflight check on an uploaded document.
type Inspector interface {
	// Inspect verifies the data looks like a PDF and returns its page count
	// when it can be determined. Returns EINVALID for non-PDF data.
	Inspect(data []byte) (pages int, err error)
}
