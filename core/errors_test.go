package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := WrapError(sentinel, EINVALID, "bad input %d", 7)
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "bad input 7", UserMessage(err))
	assert.True(t, errors.Is(err, sentinel))
	wrapped := fmt.Errorf("loading: %w", err)
	assert.Equal(t, EINVALID, Code(wrapped))
	assert.Equal(t, "bad input 7", UserMessage(wrapped))
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(sentinel))
	assert.Equal(t, "internal error", UserMessage(sentinel))
	//
	err = ErrorWithCode(nil, EMISSING)
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "[122] not found: not found", err.Error())
	err = Error(EMISSING, "font %s", "Geneva")
	assert.Equal(t, "font Geneva", UserMessage(err))
}
