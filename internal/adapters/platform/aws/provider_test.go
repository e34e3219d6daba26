package aws

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	ec2mocks "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/ec2/mocks"
	sharedmocks "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/shared/mocks"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	portsmocks "github.com/olusolaa/teardown-verifier/internal/core/ports/mocks"
	"github.com/olusolaa/teardown-verifier/internal/errors"
	"github.com/olusolaa/teardown-verifier/internal/testutil"
)

type recordingRegistrar struct {
	keys []string
	fail string
}

func (r *recordingRegistrar) Register(p ports.ResourceProvider) error {
	if p.Category().Key == r.fail {
		return errors.New(errors.CodeInternal, "duplicate")
	}
	r.keys = append(r.keys, p.Category().Key)
	return nil
}

func passthroughLimiter(t *testing.T) *sharedmocks.RateLimiter {
	l := sharedmocks.NewRateLimiter(t)
	l.On("Wait", mock.Anything, mock.Anything).Maybe().Return(nil)
	return l
}

func TestLoadAWSConfig(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent/config")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent/credentials")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")

	t.Run("explicit region", func(t *testing.T) {
		cfg, err := LoadAWSConfig(context.Background(), PlatformConfig{Region: "eu-west-1", MaxAttempts: 3})
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", cfg.Region)
	})

	t.Run("missing region is a config error", func(t *testing.T) {
		_, err := LoadAWSConfig(context.Background(), PlatformConfig{})
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfigValidation, errors.GetCode(err))
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := LoadAWSConfig(context.Background(), PlatformConfig{Region: "us-east-1", Profile: "does-not-exist"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeConfigValidation, errors.GetCode(err))
	})
}

func TestProvider_RegisterAll(t *testing.T) {
	p := newProvider(aws.Config{Region: "us-east-1"}, DefaultPlatformConfig(), testutil.NewQuietLogger(t),
		WithRateLimiter(passthroughLimiter(t)))

	r := &recordingRegistrar{}
	require.NoError(t, p.RegisterAll(r))

	var known []string
	for _, c := range domain.KnownCategories() {
		known = append(known, c.Key)
	}
	assert.ElementsMatch(t, known, r.keys)
}

func TestProvider_DefaultLimiterUsesConfiguredRate(t *testing.T) {
	logger := portsmocks.NewLogger(t)
	logger.On("WithFields", mock.Anything).Return(logger)
	logger.On("Debugf", mock.Anything, "AWS API rate limit: %d requests/second", []interface{}{7}).Once()

	cfg := DefaultPlatformConfig()
	cfg.RequestsPerSecond = 7
	p := newProvider(aws.Config{Region: "us-east-1"}, cfg, logger, WithSTSClient(sharedmocks.NewSTSClientInterface(t)))

	assert.NotNil(t, p.limiter)
}

func TestProvider_RegisterAllPropagatesFailure(t *testing.T) {
	p := newProvider(aws.Config{Region: "us-east-1"}, DefaultPlatformConfig(), testutil.NewQuietLogger(t))

	err := p.RegisterAll(&recordingRegistrar{fail: "subnet"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "subnet")
}

func TestProvider_ProvidersShareInjectedClients(t *testing.T) {
	mockEC2 := ec2mocks.NewEC2ClientInterface(t)
	mockEC2.On("DescribeInternetGateways", mock.Anything, mock.Anything, mock.Anything).
		Return(&ec2.DescribeInternetGatewaysOutput{}, nil).Once()

	p := newProvider(aws.Config{Region: "us-east-1"}, DefaultPlatformConfig(), testutil.NewQuietLogger(t),
		WithRateLimiter(passthroughLimiter(t)), WithEC2Client(mockEC2))

	for _, provider := range p.Providers() {
		if provider.Category() == domain.CategoryInternetGateway {
			records, err := provider.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, records)
		}
	}
}

func TestProvider_Preflight(t *testing.T) {
	tests := []struct {
		name        string
		output      *sts.GetCallerIdentityOutput
		err         error
		handled     error
		wantAccount string
		wantCode    errors.Code
	}{
		{
			name:        "success",
			output:      &sts.GetCallerIdentityOutput{Account: aws.String("123456789012"), Arn: aws.String("arn:aws:iam::123456789012:user/ci")},
			wantAccount: "123456789012",
		},
		{
			name:     "generic failure becomes auth error",
			err:      fmt.Errorf("no EC2 IMDS role found"),
			handled:  errors.New(errors.CodePlatformAPIError, "AWS STS GetCallerIdentity failed"),
			wantCode: errors.CodePlatformAuthError,
		},
		{
			name:     "timeout kept",
			err:      context.DeadlineExceeded,
			handled:  errors.New(errors.CodeTimeout, "context done"),
			wantCode: errors.CodeTimeout,
		},
		{
			name:     "missing account",
			output:   &sts.GetCallerIdentityOutput{},
			wantCode: errors.CodePlatformAuthError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stsClient := sharedmocks.NewSTSClientInterface(t)
			errorHandler := sharedmocks.NewErrorHandler(t)
			stsClient.On("GetCallerIdentity", mock.Anything, mock.Anything, mock.Anything).Return(tt.output, tt.err).Once()
			if tt.err != nil {
				errorHandler.On("Handle", "STS", "GetCallerIdentity", tt.err, mock.Anything).Return(tt.handled).Once()
			}

			p := newProvider(aws.Config{Region: "us-east-1"}, DefaultPlatformConfig(), testutil.NewQuietLogger(t),
				WithSTSClient(stsClient), WithRateLimiter(passthroughLimiter(t)), WithErrorHandler(errorHandler))

			account, err := p.Preflight(context.Background())

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccount, account)
		})
	}
}
