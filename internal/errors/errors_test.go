package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/teardown-verifier/internal/errors"
)

func TestWrap_KeepsExistingAppError(t *testing.T) {
	inner := errors.New(errors.CodePlatformAuthError, "denied")
	wrapped := errors.Wrap(inner, errors.CodeInternal, "outer")

	assert.Same(t, inner, wrapped)
	assert.Equal(t, errors.CodePlatformAuthError, errors.GetCode(wrapped))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.CodeInternal, "x"))
	assert.Nil(t, errors.Annotate(nil, errors.CodeInternal, "x"))
}

func TestAnnotate_AddsLayer(t *testing.T) {
	inner := errors.New(errors.CodePlatformAuthError, "denied")
	outer := errors.Annotate(inner, errors.CodeProviderFailure, "vpc provider failed")

	require.NotSame(t, inner, outer)
	assert.Equal(t, errors.CodeProviderFailure, errors.GetCode(outer))
	assert.True(t, errors.Is(outer, errors.CodePlatformAuthError))
	assert.True(t, errors.Is(outer, errors.CodeProviderFailure))
	assert.False(t, errors.Is(outer, errors.CodeSnapshotCorrupt))
	assert.Contains(t, outer.InternalDetails, "denied")
	assert.ErrorIs(t, outer, inner)
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("boom")))
}

func TestGetUserFacingMessage(t *testing.T) {
	t.Run("outer user facing", func(t *testing.T) {
		err := errors.NewUserFacing(errors.CodeConfigValidation, "bad config", "fix it")
		msg, suggestion, ok := errors.GetUserFacingMessage(err)
		assert.True(t, ok)
		assert.Equal(t, "bad config", msg)
		assert.Equal(t, "fix it", suggestion)
	})

	t.Run("inner user facing", func(t *testing.T) {
		inner := errors.WrapUserFacing(stderrors.New("disk"), errors.CodeSnapshotIO, "cannot write", "")
		outer := errors.Annotate(inner, errors.CodeInternal, "save")
		msg, _, ok := errors.GetUserFacingMessage(outer)
		assert.True(t, ok)
		assert.Equal(t, "cannot write", msg)
	})

	t.Run("nothing user facing", func(t *testing.T) {
		_, _, ok := errors.GetUserFacingMessage(stderrors.New("boom"))
		assert.False(t, ok)
	})
}
