package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/olusolaa/teardown-verifier/internal/core/ports/mocks"
)

// NewQuietLogger returns a mock logger that accepts any log call.
func NewQuietLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *mocks.Logger {
	l := mocks.NewLogger(t)
	l.On("Debugf", mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	l.On("Infof", mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	l.On("Warnf", mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	l.On("Errorf", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	l.On("WithFields", mock.Anything).Maybe().Return(l)
	return l
}
