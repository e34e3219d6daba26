package iam

import (
	"context"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	iammocks "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/iam/mocks"
	sharedmocks "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/shared/mocks"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/testutil"
)

func newTestHandler(t *testing.T, client *iammocks.IAMClientInterface, errorHandler *sharedmocks.ErrorHandler, opts ...Option) *Handler {
	limiter := sharedmocks.NewRateLimiter(t)
	limiter.On("Wait", mock.Anything, mock.Anything).Maybe().Return(nil)
	opts = append([]Option{WithIAMClient(client), WithRateLimiter(limiter), WithErrorHandler(errorHandler)}, opts...)
	return NewHandler(aws.Config{}, testutil.NewQuietLogger(t), opts...)
}

func TestListRoles(t *testing.T) {
	client := iammocks.NewIAMClientInterface(t)
	h := newTestHandler(t, client, sharedmocks.NewErrorHandler(t))

	client.On("ListRoles", mock.Anything,
		mock.MatchedBy(func(in *iam.ListRolesInput) bool { return in.Marker == nil }), mock.Anything).
		Return(&iam.ListRolesOutput{
			Roles:       []iamtypes.Role{{RoleName: aws.String("eks-node"), Path: aws.String("/")}},
			IsTruncated: true,
			Marker:      aws.String("m1"),
		}, nil).Once()
	client.On("ListRoles", mock.Anything,
		mock.MatchedBy(func(in *iam.ListRolesInput) bool { return aws.ToString(in.Marker) == "m1" }), mock.Anything).
		Return(&iam.ListRolesOutput{
			Roles: []iamtypes.Role{{RoleName: aws.String("AWSServiceRoleForEKS"), Path: aws.String("/aws-service-role/")}},
		}, nil).Once()

	records, err := h.ListRoles(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "IAM Role Name: eks-node - Path: /", string(domain.Describe(domain.CategoryIAMRole, records[0])))
	assert.Equal(t, "IAM Role Name: AWSServiceRoleForEKS - Path: /aws-service-role/", string(domain.Describe(domain.CategoryIAMRole, records[1])))
}

func TestListRoles_PathPrefix(t *testing.T) {
	client := iammocks.NewIAMClientInterface(t)
	h := newTestHandler(t, client, sharedmocks.NewErrorHandler(t), WithPathPrefix("/teardown/"))

	client.On("ListRoles", mock.Anything,
		mock.MatchedBy(func(in *iam.ListRolesInput) bool { return aws.ToString(in.PathPrefix) == "/teardown/" }), mock.Anything).
		Return(&iam.ListRolesOutput{}, nil).Once()

	records, err := h.ListRoles(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListRoles_Error(t *testing.T) {
	client := iammocks.NewIAMClientInterface(t)
	errorHandler := sharedmocks.NewErrorHandler(t)
	h := newTestHandler(t, client, errorHandler)

	denied := fmt.Errorf("AccessDenied")
	wrapped := fmt.Errorf("wrapped")
	client.On("ListRoles", mock.Anything, mock.Anything, mock.Anything).Return(nil, denied).Once()
	errorHandler.On("Handle", "IAM", "ListRoles", denied, mock.Anything).Return(wrapped).Once()

	records, err := h.ListRoles(context.Background())

	assert.ErrorIs(t, err, wrapped)
	assert.Nil(t, records)
}
