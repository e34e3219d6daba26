package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/olusolaa/teardown-verifier/internal/errors"
)

var authErrorCodes = map[string]struct{}{
	"AuthFailure":                 {},
	"UnauthorizedOperation":       {},
	"AccessDenied":                {},
	"AccessDeniedException":       {},
	"ExpiredToken":                {},
	"ExpiredTokenException":       {},
	"InvalidClientTokenId":        {},
	"UnrecognizedClientException": {},
	"SignatureDoesNotMatch":       {},
}

var throttlingErrorCodes = map[string]struct{}{
	"Throttling":                             {},
	"ThrottlingException":                    {},
	"ThrottledException":                     {},
	"RequestLimitExceeded":                   {},
	"TooManyRequestsException":               {},
	"RequestThrottled":                       {},
	"RequestThrottledException":              {},
	"ProvisionedThroughputExceededException": {},
}

var notFoundErrorCodes = map[string]struct{}{
	"ResourceNotFoundException": {},
	"NoSuchEntity":              {},
	"NoSuchKey":                 {},
	"NoSuchBucket":              {},
	"NotFound":                  {},
	"NotFoundException":         {},
}

// HandleAWSError maps an AWS SDK error to an application error code.
// service and operation name the failing call (e.g. "EC2", "DescribeVpcs").
func HandleAWSError(service string, operation string, err error, ctx context.Context) error {
	if err == nil {
		return errors.New(errors.CodeInternal, fmt.Sprintf("unexpected nil error in AWS error handler for %s %s", service, operation))
	}

	if ctx != nil && ctx.Err() != nil {
		return errors.Wrap(ctx.Err(), errors.CodeTimeout,
			fmt.Sprintf("context done during AWS %s %s call", service, operation))
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, errors.CodeTimeout,
			fmt.Sprintf("context done during AWS %s %s call", service, operation))
	}

	code := ErrorCode(err)
	switch {
	case inSet(authErrorCodes, code):
		return errors.WrapUserFacing(err, errors.CodePlatformAuthError,
			fmt.Sprintf("AWS denied %s %s (%s)", service, operation, code),
			"Check the AWS credentials, profile and IAM permissions used for the capture.")
	case inSet(throttlingErrorCodes, code):
		return errors.Wrap(err, errors.CodeThrottled,
			fmt.Sprintf("AWS throttled %s %s (%s)", service, operation, code))
	case IsNotFound(err):
		return errors.Wrap(err, errors.CodeResourceNotFound,
			fmt.Sprintf("AWS %s %s: resource not found", service, operation))
	}

	return errors.Wrap(err, errors.CodePlatformAPIError,
		fmt.Sprintf("AWS %s %s failed", service, operation))
}

// ErrorCode extracts the service error code, or "" when err is not an API error.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if stderrs.As(err, &apiErr) && apiErr != nil {
		return apiErr.ErrorCode()
	}
	var coded interface{ ErrorCode() string }
	if stderrs.As(err, &coded) && coded != nil {
		return coded.ErrorCode()
	}
	return ""
}

// IsNotFound reports whether err means the addressed resource does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	code := ErrorCode(err)
	if inSet(notFoundErrorCodes, code) || strings.HasSuffix(code, ".NotFound") {
		return true
	}
	return false
}

func inSet(set map[string]struct{}, code string) bool {
	if code == "" {
		return false
	}
	_, ok := set[code]
	return ok
}

// DefaultErrorHandler implements shared.ErrorHandler.
type DefaultErrorHandler struct{}

func (d *DefaultErrorHandler) Handle(service, operation string, err error, ctx context.Context) error {
	return HandleAWSError(service, operation, err, ctx)
}
