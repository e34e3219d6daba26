package s3

import (
	"bytes"
	"context"
	stderrs "errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	awserrors "github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/errors"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/limiter"
	"github.com/olusolaa/teardown-verifier/internal/adapters/platform/aws/shared"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	"github.com/olusolaa/teardown-verifier/internal/errors"
)

const serviceName = "S3"

// ConfigLoader resolves the AWS configuration on first use, so runs that
// only touch local snapshots never need AWS credentials.
type ConfigLoader func(ctx context.Context) (aws.Config, error)

// ObjectStore reads and writes whole snapshot objects in S3.
type ObjectStore struct {
	loadConfig   ConfigLoader
	limiter      shared.RateLimiter
	errorHandler shared.ErrorHandler
	logger       ports.Logger

	mu     sync.Mutex
	client S3ClientInterface
}

type Option func(*ObjectStore)

func WithS3Client(client S3ClientInterface) Option {
	return func(o *ObjectStore) {
		if client != nil {
			o.client = client
		}
	}
}

func WithRateLimiter(l shared.RateLimiter) Option {
	return func(o *ObjectStore) {
		if l != nil {
			o.limiter = l
		}
	}
}

func WithErrorHandler(h shared.ErrorHandler) Option {
	return func(o *ObjectStore) {
		if h != nil {
			o.errorHandler = h
		}
	}
}

func NewObjectStore(loadConfig ConfigLoader, logger ports.Logger, opts ...Option) *ObjectStore {
	o := &ObjectStore{loadConfig: loadConfig, logger: logger}
	for _, opt := range opts {
		opt(o)
	}
	if o.limiter == nil {
		o.limiter = &limiter.DefaultRateLimiter{}
	}
	if o.errorHandler == nil {
		o.errorHandler = &awserrors.DefaultErrorHandler{}
	}
	return o
}

func (o *ObjectStore) s3Client(ctx context.Context) (S3ClientInterface, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.client != nil {
		return o.client, nil
	}
	if o.loadConfig == nil {
		return nil, errors.New(errors.CodeInternal, "S3 object store has neither a client nor a config loader")
	}
	cfg, err := o.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	o.client = s3.NewFromConfig(cfg)
	return o.client, nil
}

func (o *ObjectStore) caller() shared.Caller {
	return shared.Caller{Service: serviceName, Limiter: o.limiter, Errors: o.errorHandler, Logger: o.logger}
}

// Get returns the object body. A missing bucket or key yields
// SNAPSHOT_NOT_FOUND.
func (o *ObjectStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	client, err := o.s3Client(ctx)
	if err != nil {
		return nil, err
	}

	var out *s3.GetObjectOutput
	err = o.caller().Do(ctx, "GetObject", func(ctx context.Context) error {
		var err error
		out, err = client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
		return err
	})
	if err != nil {
		if isMissingObject(err) {
			return nil, errors.Annotate(err, errors.CodeSnapshotNotFound,
				fmt.Sprintf("snapshot s3://%s/%s does not exist", bucket, key))
		}
		return nil, errors.Annotate(err, errors.CodeSnapshotIO,
			fmt.Sprintf("failed to read snapshot s3://%s/%s", bucket, key))
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSnapshotIO,
			fmt.Sprintf("failed to read snapshot body s3://%s/%s", bucket, key))
	}
	return data, nil
}

// Put replaces the object in a single request. S3 never exposes a partially
// written object, so no staging is needed.
func (o *ObjectStore) Put(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	client, err := o.s3Client(ctx)
	if err != nil {
		return err
	}
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	err = o.caller().Do(ctx, "PutObject", func(ctx context.Context) error {
		_, err := client.PutObject(ctx, input)
		return err
	})
	if err != nil {
		return errors.Annotate(err, errors.CodeSnapshotIO,
			fmt.Sprintf("failed to write snapshot s3://%s/%s", bucket, key))
	}
	o.logger.Debugf(ctx, "Wrote %d bytes to s3://%s/%s", len(data), bucket, key)
	return nil
}

func isMissingObject(err error) bool {
	if err == nil {
		return false
	}
	var noKey *s3types.NoSuchKey
	if stderrs.As(err, &noKey) {
		return true
	}
	var noBucket *s3types.NoSuchBucket
	if stderrs.As(err, &noBucket) {
		return true
	}
	var respErr *awshttp.ResponseError
	if stderrs.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound {
		return true
	}
	return awserrors.IsNotFound(err)
}
