package eks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/eks"
)

//go:generate mockery --name EKSClientInterface --output ./mocks --outpkg mocks --case underscore

type EKSClientInterface interface {
	ListClusters(ctx context.Context, params *eks.ListClustersInput, optFns ...func(*eks.Options)) (*eks.ListClustersOutput, error)
	DescribeCluster(ctx context.Context, params *eks.DescribeClusterInput, optFns ...func(*eks.Options)) (*eks.DescribeClusterOutput, error)
}
