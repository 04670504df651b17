// Package pdf implements document preflight using github.com/ledongthuc/pdf.
package pdf

import (
	"bytes"

	"github.com/fwojciec/docqa"
	"github.com/ledongthuc/pdf"
)

var header = []byte("%PDF-")

// Ensure Inspector implements docqa.Inspector at compile time.
var _ docqa.Inspector = (*Inspector)(nil)

// Inspector checks uploaded documents before they are sent to the QA
// service.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect verifies the data carries a PDF header and returns the page count
// when the page tree is readable. The type check is the contract; an
// unreadable page tree yields zero pages without an error.
func (i *Inspector) Inspect(data []byte) (pages int, err error) {
	if len(data) == 0 {
		return 0, docqa.Errorf(docqa.EINVALID, "document is empty")
	}
	if !bytes.HasPrefix(data, header) {
		return 0, docqa.Errorf(docqa.EINVALID, "document is not a PDF")
	}

	// The parser panics on some malformed page trees.
	defer func() {
		if recover() != nil {
			pages = 0
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, nil
	}

	return reader.NumPage(), nil
}
