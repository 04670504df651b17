package docqa_test

import (
	"testing"

	"github.com/fwojciec/docqa"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docqa.Errorf(docqa.EINVALID, "question %q is empty", "")

	assert.Equal(t, docqa.EINVALID, docqa.ErrorCode(err))
	assert.Equal(t, "question \"\" is empty", docqa.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docqa.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docqa.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := assert.AnError

	assert.Equal(t, docqa.EINTERNAL, docqa.ErrorCode(err))
	assert.Equal(t, "Internal error.", docqa.ErrorMessage(err))
}
