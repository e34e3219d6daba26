package ec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	awserrors "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
)

const serviceName = "EC2"

// Handler lists the EC2-backed resource categories of one account and region.
type Handler struct {
	client       EC2ClientInterface
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	filters      []ec2types.Filter
	logger       ports.Logger
}

type Option func(*Handler)

func WithEC2Client(client EC2ClientInterface) Option {
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

// WithTagFilters restricts every Describe call to resources carrying the
// given tags.
func WithTagFilters(tags map[string]string) Option {
	return func(h *Handler) {
		h.filters = BuildTagFilters(tags)
	}
}

func NewHandler(cfg aws.Config, logger ports.Logger, opts ...Option) *Handler {
	h := &Handler{logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	if h.client == nil {
		h.client = ec2.NewFromConfig(cfg)
	}
	if h.limiter == nil {
		h.limiter = limiter.NewRateLimiter(limiter.DefaultRequestsPerSecond, logger)
	}
	if h.errorHandler == nil {
		h.errorHandler = &awserrors.DefaultErrorHandler{}
	}
	return h
}

// Providers returns one resource provider per EC2 category.
func (h *Handler) Providers() []ports.ResourceProvider {
	return []ports.ResourceProvider{
		shared.NewLister(domain.CategoryVPC, h.ListVPCs),
		shared.NewLister(domain.CategorySubnet, h.ListSubnets),
		shared.NewLister(domain.CategoryNATGateway, h.ListNATGateways),
		shared.NewLister(domain.CategorySecurityGroup, h.ListSecurityGroups),
		shared.NewLister(domain.CategoryElasticIP, h.ListElasticIPs),
		shared.NewLister(domain.CategoryRouteTable, h.ListRouteTables),
		shared.NewLister(domain.CategoryInstance, h.ListInstances),
		shared.NewLister(domain.CategoryInternetGateway, h.ListInternetGateways),
	}
}

func (h *Handler) caller() shared.Caller {
	return shared.Caller{
		Service: serviceName,
		Limiter: h.limiter,
		Errors:  h.errorHandler,
		Logger:  h.logger,
	}
}

func (h *Handler) ListVPCs(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	p := ec2.NewDescribeVpcsPaginator(h.client, &ec2.DescribeVpcsInput{Filters: h.filters})
	err := shared.ExhaustPages[ec2.Options](ctx, h.caller(), "DescribeVpcs", p, func(out *ec2.DescribeVpcsOutput) {
		for _, vpc := range out.Vpcs {
			records = append(records, mapVPC(vpc))
		}
	})
	return records, err
}

func (h *Handler) ListSubnets(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	p := ec2.NewDescribeSubnetsPaginator(h.client, &ec2.DescribeSubnetsInput{Filters: h.filters})
	err := shared.ExhaustPages[ec2.Options](ctx, h.caller(), "DescribeSubnets", p, func(out *ec2.DescribeSubnetsOutput) {
		for _, subnet := range out.Subnets {
			records = append(records, mapSubnet(subnet))
		}
	})
	return records, err
}

func (h *Handler) ListNATGateways(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	p := ec2.NewDescribeNatGatewaysPaginator(h.client, &ec2.DescribeNatGatewaysInput{Filter: h.filters})
	err := shared.ExhaustPages[ec2.Options](ctx, h.caller(), "DescribeNatGateways", p, func(out *ec2.DescribeNatGatewaysOutput) {
		for _, nat := range out.NatGateways {
			records = append(records, mapNATGateway(nat))
		}
	})
	return records, err
}

func (h *Handler) ListSecurityGroups(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	p := ec2.NewDescribeSecurityGroupsPaginator(h.client, &ec2.DescribeSecurityGroupsInput{Filters: h.filters})
	err := shared.ExhaustPages[ec2.Options](ctx, h.caller(), "DescribeSecurityGroups", p, func(out *ec2.DescribeSecurityGroupsOutput) {
		for _, sg := range out.SecurityGroups {
			records = append(records, mapSecurityGroup(sg))
		}
	})
	return records, err
}

// ListElasticIPs is a single call; DescribeAddresses is not paginated.
func (h *Handler) ListElasticIPs(ctx context.Context) ([]domain.Record, error) {
	var out *ec2.DescribeAddressesOutput
	err := h.caller().Do(ctx, "DescribeAddresses", func(ctx context.Context) error {
		var err error
		out, err = h.client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{Filters: h.filters})
		return err
	})
	if err != nil {
		return nil, err
	}
	records := make([]domain.Record, 0, len(out.Addresses))
	for _, addr := range out.Addresses {
		records = append(records, mapAddress(addr))
	}
	return records, nil
}

func (h *Handler) ListRouteTables(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	p := ec2.NewDescribeRouteTablesPaginator(h.client, &ec2.DescribeRouteTablesInput{Filters: h.filters})
	err := shared.ExhaustPages[ec2.Options](ctx, h.caller(), "DescribeRouteTables", p, func(out *ec2.DescribeRouteTablesOutput) {
		for _, rt := range out.RouteTables {
			records = append(records, mapRouteTable(rt)...)
		}
	})
	return records, err
}

func (h *Handler) ListInstances(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	p := ec2.NewDescribeInstancesPaginator(h.client, &ec2.DescribeInstancesInput{Filters: h.filters})
	err := shared.ExhaustPages[ec2.Options](ctx, h.caller(), "DescribeInstances", p, func(out *ec2.DescribeInstancesOutput) {
		for _, reservation := range out.Reservations {
			for _, instance := range reservation.Instances {
				records = append(records, mapInstance(instance))
			}
		}
	})
	return records, err
}

func (h *Handler) ListInternetGateways(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	p := ec2.NewDescribeInternetGatewaysPaginator(h.client, &ec2.DescribeInternetGatewaysInput{Filters: h.filters})
	err := shared.ExhaustPages[ec2.Options](ctx, h.caller(), "DescribeInternetGateways", p, func(out *ec2.DescribeInternetGatewaysOutput) {
		for _, igw := range out.InternetGateways {
			records = append(records, mapInternetGateway(igw))
		}
	})
	return records, err
}
