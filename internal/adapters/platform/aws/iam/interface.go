package iam

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/iam"
)

//go:generate mockery --name IAMClientInterface --output ./mocks --outpkg mocks --case underscore

type IAMClientInterface interface {
	ListRoles(ctx context.Context, params *iam.ListRolesInput, optFns ...func(*iam.Options)) (*iam.ListRolesOutput, error)
}
