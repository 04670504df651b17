package pdf_test

import (
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspector_Inspect_EmptyData(t *testing.T) {
	t.Parallel()

	_, err := pdf.NewInspector().Inspect(nil)

	require.Error(t, err)
	assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
	assert.Contains(t, docqa.ErrorMessage(err), "empty")
}

func TestInspector_Inspect_NotAPDF(t *testing.T) {
	t.Parallel()

	_, err := pdf.NewInspector().Inspect([]byte("plain text, not a document"))

	require.Error(t, err)
	assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
	assert.Contains(t, docqa.ErrorMessage(err), "not a PDF")
}

func TestInspector_Inspect_TruncatedPDF(t *testing.T) {
	t.Parallel()

	// Valid header, unreadable body: the type check passes and the page
	// count degrades to zero.
	pages, err := pdf.NewInspector().Inspect([]byte("%PDF-1.4\ngarbage"))

	require.NoError(t, err)
	assert.Zero(t, pages)
}
