package eks

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	ekstypes "github.com/aws/aws-sdk-go-v2/service/eks/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	eksmocks "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/eks/mocks"
	sharedmocks "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/shared/mocks"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/errors"
	"github.com/olusolaa/teardown-verifier/internal/testutil"
)

type EKSHandlerTestSuite struct {
	suite.Suite
	mockEKS          *eksmocks.EKSClientInterface
	mockLimiter      *sharedmocks.RateLimiter
	mockErrorHandler *sharedmocks.ErrorHandler
	handler          *Handler
}

func (s *EKSHandlerTestSuite) SetupTest() {
	s.mockEKS = eksmocks.NewEKSClientInterface(s.T())
	s.mockLimiter = sharedmocks.NewRateLimiter(s.T())
	s.mockErrorHandler = sharedmocks.NewErrorHandler(s.T())
	s.mockLimiter.On("Wait", mock.Anything, mock.Anything).Maybe().Return(nil)

	s.handler = NewHandler(aws.Config{}, testutil.NewQuietLogger(s.T()),
		WithEKSClient(s.mockEKS),
		WithRateLimiter(s.mockLimiter),
		WithErrorHandler(s.mockErrorHandler),
	)
}

func TestEKSHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EKSHandlerTestSuite))
}

func (s *EKSHandlerTestSuite) describeReturns(name string, status ekstypes.ClusterStatus) {
	s.mockEKS.On("DescribeCluster", mock.Anything,
		mock.MatchedBy(func(in *eks.DescribeClusterInput) bool { return aws.ToString(in.Name) == name }), mock.Anything).
		Return(&eks.DescribeClusterOutput{Cluster: &ekstypes.Cluster{Name: aws.String(name), Status: status}}, nil).Once()
}

func (s *EKSHandlerTestSuite) TestListClusters_DescribesEveryPage() {
	s.mockEKS.On("ListClusters", mock.Anything,
		mock.MatchedBy(func(in *eks.ListClustersInput) bool { return in.NextToken == nil }), mock.Anything).
		Return(&eks.ListClustersOutput{Clusters: []string{"weather"}, NextToken: aws.String("next")}, nil).Once()
	s.mockEKS.On("ListClusters", mock.Anything,
		mock.MatchedBy(func(in *eks.ListClustersInput) bool { return aws.ToString(in.NextToken) == "next" }), mock.Anything).
		Return(&eks.ListClustersOutput{Clusters: []string{"billing"}}, nil).Once()
	s.describeReturns("weather", ekstypes.ClusterStatusActive)
	s.describeReturns("billing", ekstypes.ClusterStatusDeleting)

	records, err := s.handler.ListClusters(context.Background())

	s.Require().NoError(err)
	s.Equal([]string{"Cluster Name: weather - Status: ACTIVE", "Cluster Name: billing - Status: DELETING"}, []string{
		string(domain.Describe(domain.CategoryEKSCluster, records[0])),
		string(domain.Describe(domain.CategoryEKSCluster, records[1])),
	})
}

func (s *EKSHandlerTestSuite) TestListClusters_SkipsClusterGoneBeforeDescribe() {
	notFound := fmt.Errorf("ResourceNotFoundException")
	s.mockEKS.On("ListClusters", mock.Anything, mock.Anything, mock.Anything).
		Return(&eks.ListClustersOutput{Clusters: []string{"gone", "kept"}}, nil).Once()
	s.mockEKS.On("DescribeCluster", mock.Anything,
		mock.MatchedBy(func(in *eks.DescribeClusterInput) bool { return aws.ToString(in.Name) == "gone" }), mock.Anything).
		Return(nil, notFound).Once()
	s.mockErrorHandler.On("Handle", "EKS", "DescribeCluster", notFound, mock.Anything).
		Return(errors.Wrap(notFound, errors.CodeResourceNotFound, "gone")).Once()
	s.describeReturns("kept", ekstypes.ClusterStatusActive)

	records, err := s.handler.ListClusters(context.Background())

	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("kept", records[0].ID)
}

func (s *EKSHandlerTestSuite) TestListClusters_DescribeFailure() {
	denied := fmt.Errorf("AccessDeniedException")
	s.mockEKS.On("ListClusters", mock.Anything, mock.Anything, mock.Anything).
		Return(&eks.ListClustersOutput{Clusters: []string{"c1"}}, nil).Once()
	s.mockEKS.On("DescribeCluster", mock.Anything, mock.Anything, mock.Anything).Return(nil, denied).Once()
	s.mockErrorHandler.On("Handle", "EKS", "DescribeCluster", denied, mock.Anything).
		Return(errors.Wrap(denied, errors.CodePlatformAuthError, "denied")).Once()

	records, err := s.handler.ListClusters(context.Background())

	s.Error(err)
	s.Nil(records)
	s.Equal(errors.CodePlatformAuthError, errors.GetCode(err))
}

func (s *EKSHandlerTestSuite) TestListClusters_ListFailure() {
	boom := fmt.Errorf("InternalFailure")
	wrapped := fmt.Errorf("wrapped")
	s.mockEKS.On("ListClusters", mock.Anything, mock.Anything, mock.Anything).Return(nil, boom).Once()
	s.mockErrorHandler.On("Handle", "EKS", "ListClusters", boom, mock.Anything).Return(wrapped).Once()

	_, err := s.handler.ListClusters(context.Background())

	s.ErrorIs(err, wrapped)
	s.mockEKS.AssertNotCalled(s.T(), "DescribeCluster", mock.Anything, mock.Anything, mock.Anything)
}

func (s *EKSHandlerTestSuite) TestProviderCategory() {
	s.Equal(domain.CategoryEKSCluster, s.handler.Provider().Category())
}
