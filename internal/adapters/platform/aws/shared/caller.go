package shared

import (
	"context"

	"github.com/olusolaa/teardown-verifier/internal/core/ports"
)

// Pager is the part of an SDK v2 paginator the listers need. O is the
// service client options type and T the page output type.
type Pager[O any, T any] interface {
	HasMorePages() bool
	NextPage(ctx context.Context, optFns ...func(*O)) (T, error)
}

// Caller runs AWS calls for one service under the shared rate limit and
// classifies their failures.
type Caller struct {
	Service string
	Limiter RateLimiter
	Errors  ErrorHandler
	Logger  ports.Logger
}

func (c Caller) wait(ctx context.Context) error {
	if c.Limiter == nil {
		return nil
	}
	if err := c.Limiter.Wait(ctx, c.Logger); err != nil {
		return c.Errors.Handle("Limiter", "Wait", err, ctx)
	}
	return nil
}

// Do runs a single non-paginated call.
func (c Caller) Do(ctx context.Context, operation string, call func(ctx context.Context) error) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	if err := call(ctx); err != nil {
		return c.Errors.Handle(c.Service, operation, err, ctx)
	}
	return nil
}

// ExhaustPages walks every page of p, waiting on the limiter before each one.
func ExhaustPages[O any, T any](ctx context.Context, c Caller, operation string, p Pager[O, T], visit func(T)) error {
	pageNum := 0
	for p.HasMorePages() {
		if err := c.wait(ctx); err != nil {
			return err
		}
		pageNum++
		output, err := p.NextPage(ctx)
		if err != nil {
			return c.Errors.Handle(c.Service, operation, err, ctx)
		}
		visit(output)
	}
	if c.Logger != nil {
		c.Logger.Debugf(ctx, "%s %s: fetched %d page(s)", c.Service, operation, pageNum)
	}
	return nil
}
