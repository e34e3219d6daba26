package iam

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"

	awserrors "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
)

const serviceName = "IAM"

// Handler lists IAM roles. IAM is global, so the configured region does not
// narrow the result.
type Handler struct {
	client       IAMClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	pathPrefix   string
	logger       ports.Logger
}

type Option func(*Handler)

func WithIAMClient(client IAMClientInterface) Option {
	return func(h *Handler) {
		h.client = client
	}
}

func WithRateLimiter(limiter shared.RateLimiter) Option {
	return func(h *Handler) {
		h.limiter = limiter
	}
}

func WithErrorHandler(handler shared.ErrorHandler) Option {
	return func(h *Handler) {
		h.errorHandler = handler
	}
}

// WithPathPrefix limits the listing to roles under prefix, e.g. "/service-role/".
func WithPathPrefix(prefix string) Option {
	return func(h *Handler) {
		h.pathPrefix = prefix
	}
}

func NewHandler(cfg aws.Config, logger ports.Logger, opts ...Option) *Handler {
	h := &Handler{logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	if h.client == nil {
		h.client = iam.NewFromConfig(cfg)
	}
	if h.limiter == nil {
		h.limiter = limiter.NewRateLimiter(limiter.DefaultRequestsPerSecond, logger)
	}
	if h.errorHandler == nil {
		h.errorHandler = &awserrors.DefaultErrorHandler{}
	}
	return h
}

func (h *Handler) Provider() ports.ResourceProvider {
	return shared.NewLister(domain.CategoryIAMRole, h.ListRoles)
}

func (h *Handler) ListRoles(ctx context.Context) ([]domain.Record, error) {
	caller := shared.Caller{Service: serviceName, Limiter: h.limiter, Errors: h.errorHandler, Logger: h.logger}

	input := &iam.ListRolesInput{}
	if h.pathPrefix != "" {
		input.PathPrefix = aws.String(h.pathPrefix)
	}

	var records []domain.Record
	p := iam.NewListRolesPaginator(h.client, input)
	err := shared.ExhaustPages[iam.Options](ctx, caller, "ListRoles", p, func(out *iam.ListRolesOutput) {
		for _, role := range out.Roles {
			records = append(records, domain.NewRecord(aws.ToString(role.RoleName),
				domain.Attribute{Label: domain.LabelPath, Value: aws.ToString(role.Path)}))
		}
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
