package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/service"
	"github.com/olusolaa/teardown-verifier/internal/errors"
)

func TestProviderRegistry(t *testing.T) {
	registry := service.NewProviderRegistry()
	vpc := &fakeProvider{category: domain.CategoryVPC}
	subnet := &fakeProvider{category: domain.CategorySubnet}
	igw := &fakeProvider{category: domain.CategoryInternetGateway}

	require.NoError(t, registry.Register(vpc))
	require.NoError(t, registry.Register(subnet))
	require.NoError(t, registry.Register(igw))

	t.Run("duplicate", func(t *testing.T) {
		err := registry.Register(&fakeProvider{category: domain.CategoryVPC})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInternal, errors.GetCode(err))
	})

	t.Run("nil and keyless", func(t *testing.T) {
		require.Error(t, registry.Register(nil))
		require.Error(t, registry.Register(&fakeProvider{}))
	})

	t.Run("resolve keeps requested order", func(t *testing.T) {
		providers, err := registry.Resolve([]string{"internet_gateway", "vpc", "subnet", "vpc"})
		require.NoError(t, err)
		require.Len(t, providers, 3)
		assert.Same(t, igw, providers[0])
		assert.Same(t, vpc, providers[1])
		assert.Same(t, subnet, providers[2])
	})

	t.Run("unknown key fails", func(t *testing.T) {
		_, err := registry.Resolve([]string{"vpc", "lambda"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfigValidation, errors.GetCode(err))
		msg, suggestion, ok := errors.GetUserFacingMessage(err)
		assert.True(t, ok)
		assert.Contains(t, msg, "lambda")
		assert.Contains(t, suggestion, "internet_gateway")
	})

	t.Run("keys", func(t *testing.T) {
		assert.Equal(t, []string{"internet_gateway", "subnet", "vpc"}, registry.Keys())
	})
}
