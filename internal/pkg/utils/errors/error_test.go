package errors_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

func TestMultiError_ErrorOrNil(t *testing.T) {
	t.Parallel()
	errs := errors.NewMultiError()
	assert.NoError(t, errs.ErrorOrNil())
	assert.Equal(t, 0, errs.Len())

	errs.Append(errors.New("foo"))
	assert.Error(t, errs.ErrorOrNil())
	assert.Equal(t, 1, errs.Len())
}

func TestMultiError_AppendSkipsNil(t *testing.T) {
	t.Parallel()
	errs := errors.NewMultiError()
	errs.Append(nil, errors.New("foo"), nil)
	assert.Equal(t, 1, errs.Len())
	assert.Equal(t, "foo", errs.Error())
}

func TestMultiError_AppendFlattensList(t *testing.T) {
	t.Parallel()
	sub := errors.NewMultiError()
	sub.Append(errors.New("foo 1"), errors.New("foo 2"))

	errs := errors.NewMultiError()
	errs.Append(errors.New("bar"))
	errs.Append(sub)
	assert.Equal(t, 3, errs.Len())
	assert.Equal(t, "- bar\n- foo 1\n- foo 2", errs.Error())
}

func TestPrefixError_ShortMessageInline(t *testing.T) {
	t.Parallel()
	err := errors.PrefixError(errors.New("file not found"), "cannot read input")
	assert.Equal(t, "cannot read input: file not found", err.Error())
}

func TestPrefixError_LongMessageAsList(t *testing.T) {
	t.Parallel()
	msg := strings.Repeat("x", 61)
	err := errors.PrefixError(errors.New(msg), "prefix")
	assert.Equal(t, "prefix:\n- "+msg, err.Error())
}

func TestPrefixError_MultiLineMessageAsList(t *testing.T) {
	t.Parallel()
	err := errors.PrefixError(errors.New("line 1\nline 2"), "prefix")
	assert.Equal(t, "prefix:\n- line 1\n  line 2", err.Error())
}

func TestPrefixError_TrimsPunctuation(t *testing.T) {
	t.Parallel()
	err := errors.PrefixError(errors.New("value"), "some prefix.")
	assert.Equal(t, "some prefix: value", err.Error())
}

func TestNestedError_Is(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("sentinel")
	err := errors.PrefixError(sentinel, "context")
	assert.True(t, errors.Is(err, sentinel))
	assert.False(t, errors.Is(err, errors.New("other")))
}

func TestWrap_NilError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, errors.Wrap(nil, "message"))
	assert.NoError(t, errors.Wrapf(nil, "message %d", 123))
	assert.NoError(t, errors.WithStack(nil))
}

func TestWrap_HidesOriginalMessage(t *testing.T) {
	t.Parallel()
	original := errors.New("original")
	err := errors.Wrap(original, "replaced")
	assert.Equal(t, "replaced", err.Error())
	assert.True(t, errors.Is(err, original))
}
