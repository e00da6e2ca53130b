package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := stderrors.New("dial tcp: refused")
	err := Wrap(cause, ErrCodeInternal, "connect session store")

	assert.Equal(t, "connect session store: dial tcp: refused", err.Error())
	assert.True(t, stderrors.Is(err, cause))

	plain := NotFound("session not found")
	assert.Equal(t, "session not found", plain.Error())
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsValidation(Validationf("bad %s", "mode")))
	assert.True(t, IsInternal(Internal("x")))

	assert.False(t, IsNotFound(Internal("x")))
	assert.False(t, IsNotFound(stderrors.New("x")))
	assert.False(t, IsNotFound(nil))

	// Wrapped AppErrors keep their code visible through the chain.
	wrapped := Wrapf(NotFound("session not found"), ErrCodeInternal, "lookup %q", "abc")
	assert.True(t, IsInternal(wrapped))
	assert.True(t, IsNotFound(wrapped))
}

func TestWrap_NilCause(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
}
