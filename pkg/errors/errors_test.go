package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrNotFound, "page not found")
	assert.Equal(t, ErrNotFound, err.Code)
	assert.Equal(t, "[NOT_FOUND] page not found", err.Error())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("permission denied")
	err := Wrap(inner, ErrCacheCorrupt, "could not open page")
	assert.Equal(t, "[CACHE_CORRUPT] could not open page: permission denied", err.Error())
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCacheCorrupt, "nope"))
	assert.Nil(t, Wrapf(nil, ErrCacheCorrupt, "nope %d", 1))
}

func TestIsErrorCode(t *testing.T) {
	err := Newf(ErrUpdateDownload, "HTTP %d", 503)
	wrapped := fmt.Errorf("update failed: %w", err)

	assert.True(t, IsErrorCode(wrapped, ErrUpdateDownload))
	assert.False(t, IsErrorCode(wrapped, ErrNotFound))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrUpdateDownload))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrConfigParse, GetErrorCode(New(ErrConfigParse, "bad toml")))
	assert.Equal(t, ErrUnknown, GetErrorCode(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCacheCorrupt, "unreadable page").WithDetail("path", "/tmp/x.md")
	assert.Equal(t, "/tmp/x.md", err.Details["path"])
}

func TestErrorsIs(t *testing.T) {
	err := Wrap(errors.New("io"), ErrNotFound, "missing")
	assert.True(t, errors.Is(err, New(ErrNotFound, "anything")))
	assert.False(t, errors.Is(err, New(ErrCacheCorrupt, "anything")))
}
