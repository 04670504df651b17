package docqa_test

import (
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDocument(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "JVBERi0=", docqa.EncodeDocument([]byte("%PDF-")))
}

func TestEncodeDocument_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docqa.EncodeDocument(nil))
}
