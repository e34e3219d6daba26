package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/ec2"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/eks"
	awserrors "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/iam"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	"github.com/olusolaa/teardown-verifier/internal/errors"
)

// Registrar accepts resource providers, e.g. service.ProviderRegistry.
type Registrar interface {
	Register(provider ports.ResourceProvider) error
}

// Provider builds the AWS resource listers of one account and region. All
// of them share a single rate limiter.
type Provider struct {
	awsConfig    aws.Config
	cfg          PlatformConfig
	stsClient    shared.STSClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	logger       ports.Logger

	ec2Opts []ec2.Option
	eksOpts []eks.Option
	iamOpts []iam.Option
}

type ProviderOption func(*Provider)

func WithSTSClient(client shared.STSClientInterface) ProviderOption {
	return func(p *Provider) {
		p.stsClient = client
	}
}

func WithRateLimiter(l shared.RateLimiter) ProviderOption {
	return func(p *Provider) {
		p.limiter = l
	}
}

func WithErrorHandler(h shared.ErrorHandler) ProviderOption {
	return func(p *Provider) {
		p.errorHandler = h
	}
}

func WithEC2Client(client ec2.EC2ClientInterface) ProviderOption {
	return func(p *Provider) {
		p.ec2Opts = append(p.ec2Opts, ec2.WithEC2Client(client))
	}
}

func WithEKSClient(client eks.EKSClientInterface) ProviderOption {
	return func(p *Provider) {
		p.eksOpts = append(p.eksOpts, eks.WithEKSClient(client))
	}
}

func WithIAMClient(client iam.IAMClientInterface) ProviderOption {
	return func(p *Provider) {
		p.iamOpts = append(p.iamOpts, iam.WithIAMClient(client))
	}
}

// LoadAWSConfig resolves SDK configuration from the default chain, narrowed
// by the explicit region, profile and retry settings.
func LoadAWSConfig(ctx context.Context, cfg PlatformConfig) (aws.Config, error) {
	var loadOpts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.MaxAttempts > 0 {
		loadOpts = append(loadOpts, config.WithRetryMaxAttempts(cfg.MaxAttempts))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, errors.WrapUserFacing(err, errors.CodeConfigValidation,
			"failed to load AWS configuration",
			"Check the AWS profile name and the shared config/credentials files.")
	}
	if awsCfg.Region == "" {
		return aws.Config{}, errors.NewUserFacing(errors.CodeConfigValidation,
			"no AWS region configured",
			"Set platform.aws.region, the AWS_REGION environment variable, or pass --region.")
	}
	return awsCfg, nil
}

func NewProvider(ctx context.Context, cfg PlatformConfig, logger ports.Logger, opts ...ProviderOption) (*Provider, error) {
	if logger == nil {
		return nil, errors.New(errors.CodeInternal, "logger cannot be nil for AWS Provider")
	}
	awsCfg, err := LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newProvider(awsCfg, cfg, logger, opts...), nil
}

func newProvider(awsCfg aws.Config, cfg PlatformConfig, logger ports.Logger, opts ...ProviderOption) *Provider {
	p := &Provider{
		awsConfig: awsCfg,
		cfg:       cfg,
		logger:    logger.WithFields(map[string]any{"platform": "aws", "region": awsCfg.Region}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.limiter == nil {
		l := limiter.NewRateLimiter(cfg.RequestsPerSecond, p.logger)
		p.logger.Debugf(context.Background(), "AWS API rate limit: %d requests/second", l.RPS())
		p.limiter = l
	}
	if p.errorHandler == nil {
		p.errorHandler = &awserrors.DefaultErrorHandler{}
	}
	if p.stsClient == nil {
		p.stsClient = sts.NewFromConfig(awsCfg)
	}
	return p
}

func (p *Provider) Region() string {
	return p.awsConfig.Region
}

// Preflight verifies that the credentials work and returns the account ID.
func (p *Provider) Preflight(ctx context.Context) (string, error) {
	caller := shared.Caller{Service: "STS", Limiter: p.limiter, Errors: p.errorHandler, Logger: p.logger}

	var out *sts.GetCallerIdentityOutput
	err := caller.Do(ctx, "GetCallerIdentity", func(ctx context.Context) error {
		var err error
		out, err = p.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		return err
	})
	if err != nil {
		if errors.GetCode(err) == errors.CodePlatformAPIError {
			return "", errors.Annotate(err, errors.CodePlatformAuthError, "AWS credential check failed")
		}
		return "", err
	}
	if out == nil || aws.ToString(out.Account) == "" {
		return "", errors.New(errors.CodePlatformAuthError, "AWS caller identity response did not contain Account ID")
	}
	account := aws.ToString(out.Account)
	p.logger.Infof(ctx, "Using AWS account %s (%s) in region %s", account, aws.ToString(out.Arn), p.awsConfig.Region)
	return account, nil
}

// Providers returns every resource provider this platform supports.
func (p *Provider) Providers() []ports.ResourceProvider {
	ec2Opts := append([]ec2.Option{
		ec2.WithRateLimiter(p.limiter),
		ec2.WithErrorHandler(p.errorHandler),
		ec2.WithTagFilters(p.cfg.TagFilters),
	}, p.ec2Opts...)
	eksOpts := append([]eks.Option{
		eks.WithRateLimiter(p.limiter),
		eks.WithErrorHandler(p.errorHandler),
	}, p.eksOpts...)
	iamOpts := append([]iam.Option{
		iam.WithRateLimiter(p.limiter),
		iam.WithErrorHandler(p.errorHandler),
		iam.WithPathPrefix(p.cfg.IAMPathPrefix),
	}, p.iamOpts...)

	providers := ec2.NewHandler(p.awsConfig, p.logger, ec2Opts...).Providers()
	providers = append(providers,
		eks.NewHandler(p.awsConfig, p.logger, eksOpts...).Provider(),
		iam.NewHandler(p.awsConfig, p.logger, iamOpts...).Provider(),
	)
	return providers
}

// RegisterAll adds every provider to r.
func (p *Provider) RegisterAll(r Registrar) error {
	for _, provider := range p.Providers() {
		if err := r.Register(provider); err != nil {
			return errors.Annotate(err, errors.CodeInternal,
				fmt.Sprintf("registering AWS provider for %s", provider.Category().Key))
		}
	}
	return nil
}
