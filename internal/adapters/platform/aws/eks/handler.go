package eks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"

	awserrors "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	"github.com/olusolaa/teardown-verifier/internal/errors"
)

const serviceName = "EKS"

// Handler lists EKS clusters together with their status.
type Handler struct {
	client       EKSClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	logger       ports.Logger
}

type Option func(*Handler)

func WithEKSClient(client EKSClientInterface) Option {
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

func NewHandler(cfg aws.Config, logger ports.Logger, opts ...Option) *Handler {
	h := &Handler{logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	if h.client == nil {
		h.client = eks.NewFromConfig(cfg)
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
	return shared.NewLister(domain.CategoryEKSCluster, h.ListClusters)
}

// ListClusters enumerates cluster names and describes each one for its
// status. A cluster deleted between the two calls is left out.
func (h *Handler) ListClusters(ctx context.Context) ([]domain.Record, error) {
	caller := shared.Caller{Service: serviceName, Limiter: h.limiter, Errors: h.errorHandler, Logger: h.logger}

	var names []string
	p := eks.NewListClustersPaginator(h.client, &eks.ListClustersInput{})
	err := shared.ExhaustPages[eks.Options](ctx, caller, "ListClusters", p, func(out *eks.ListClustersOutput) {
		names = append(names, out.Clusters...)
	})
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(names))
	for _, name := range names {
		var out *eks.DescribeClusterOutput
		err := caller.Do(ctx, "DescribeCluster", func(ctx context.Context) error {
			var err error
			out, err = h.client.DescribeCluster(ctx, &eks.DescribeClusterInput{Name: aws.String(name)})
			return err
		})
		if err != nil {
			if errors.Is(err, errors.CodeResourceNotFound) {
				h.logger.Debugf(ctx, "EKS cluster %s disappeared before it could be described, skipping", name)
				continue
			}
			return nil, err
		}
		var status string
		if out.Cluster != nil {
			status = string(out.Cluster.Status)
		}
		records = append(records, domain.NewRecord(name,
			domain.Attribute{Label: domain.LabelStatus, Value: status}))
	}
	return records, nil
}
