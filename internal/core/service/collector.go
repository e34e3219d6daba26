package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
	"github.com/olusolaa/teardown-verifier/internal/errors"
)

const defaultConcurrency = 4

type CollectorOptions struct {
	Policy          domain.FailurePolicy
	Concurrency     int
	ProviderTimeout time.Duration
}

// Collector captures an inventory by invoking every provider once.
type Collector struct {
	policy          domain.FailurePolicy
	concurrency     int
	providerTimeout time.Duration
	logger          ports.Logger
}

func NewCollector(opts CollectorOptions, logger ports.Logger) (*Collector, error) {
	if logger == nil {
		return nil, errors.New(errors.CodeInternal, "logger cannot be nil for collector")
	}
	policy := opts.Policy
	switch policy {
	case "":
		policy = domain.FailFast
	case domain.FailFast, domain.BestEffort:
	default:
		return nil, errors.NewUserFacing(errors.CodeConfigValidation,
			fmt.Sprintf("unknown failure policy %q", policy),
			fmt.Sprintf("Use %q or %q.", domain.FailFast, domain.BestEffort))
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if opts.ProviderTimeout < 0 {
		return nil, errors.New(errors.CodeConfigValidation, "provider timeout cannot be negative")
	}
	return &Collector{
		policy:          policy,
		concurrency:     concurrency,
		providerTimeout: opts.ProviderTimeout,
		logger:          logger,
	}, nil
}

// Capture invokes providers (launched in the given order, at most
// concurrency at a time) and merges their records into one inventory.
//
// Under fail-fast the first provider failure cancels the rest and is returned;
// no inventory is produced. Under best-effort failures are collected in
// provider order and returned alongside the partial inventory.
func (c *Collector) Capture(ctx context.Context, providers []ports.ResourceProvider) (domain.CaptureResult, error) {
	if len(providers) == 0 {
		return domain.CaptureResult{}, errors.NewUserFacing(errors.CodeConfigValidation,
			"no resource providers configured for capture",
			"Configure at least one category under capture.categories.")
	}

	c.logger.Infof(ctx, "Capturing %d resource categories (policy: %s, concurrency: %d)",
		len(providers), c.policy, c.concurrency)

	// Each provider owns one slot; slots are merged after every task is done.
	results := make([][]domain.Descriptor, len(providers))
	failures := make([]error, len(providers))

	var g *errgroup.Group
	runCtx := ctx
	if c.policy == domain.FailFast {
		g, runCtx = errgroup.WithContext(ctx)
	} else {
		g = &errgroup.Group{}
	}
	g.SetLimit(c.concurrency)

	var failedMu sync.Mutex
	failedCount := 0

	for i, provider := range providers {
		g.Go(func() error {
			descriptors, err := c.invoke(runCtx, provider)
			if err != nil {
				if c.policy == domain.FailFast {
					return err
				}
				failedMu.Lock()
				failures[i] = err
				failedCount++
				failedMu.Unlock()
				return nil
			}
			results[i] = descriptors
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.logger.Errorf(ctx, err, "Capture aborted")
		return domain.CaptureResult{}, err
	}
	if ctx.Err() != nil {
		return domain.CaptureResult{}, errors.Wrap(ctx.Err(), errors.CodeTimeout, "capture cancelled")
	}

	var all []domain.Descriptor
	for _, r := range results {
		all = append(all, r...)
	}
	result := domain.CaptureResult{Inventory: domain.NewInventory(all...)}

	if failedCount > 0 {
		for i, err := range failures {
			if err == nil {
				continue
			}
			result.Failures = append(result.Failures, domain.CategoryFailure{
				Category: providers[i].Category(),
				Err:      err,
			})
		}
		if failedCount == len(providers) {
			return domain.CaptureResult{}, errors.WrapUserFacing(result.Failures[0].Err, errors.CodeProviderFailure,
				fmt.Sprintf("every resource provider failed (categories: %s); refusing to produce an empty inventory",
					strings.Join(result.FailedCategoryKeys(), ", ")),
				"Check AWS credentials, region and permissions.")
		}
		c.logger.Warnf(ctx, "Capture is partial: %d of %d categories failed: %v",
			failedCount, len(providers), result.FailedCategoryKeys())
	}

	c.logger.Infof(ctx, "Captured %d unique resources from %d categories",
		result.Inventory.Len(), len(providers)-failedCount)
	return result, nil
}

func (c *Collector) invoke(ctx context.Context, provider ports.ResourceProvider) ([]domain.Descriptor, error) {
	category := provider.Category()
	log := c.logger.WithFields(map[string]any{"category": category.Key})

	if ctx.Err() != nil {
		return nil, providerFailure(category, ctx.Err())
	}

	callCtx := ctx
	if c.providerTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.providerTimeout)
		defer cancel()
	}

	log.Debugf(ctx, "Listing resources")
	started := time.Now()
	records, err := provider.List(callCtx)
	if err != nil {
		log.Errorf(ctx, err, "Listing %s resources failed", category.Name)
		return nil, providerFailure(category, err)
	}

	descriptors := make([]domain.Descriptor, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			log.Warnf(ctx, "Skipping %s record without identifier", category.Name)
			continue
		}
		descriptors = append(descriptors, domain.Describe(category, r))
	}
	log.Debugf(ctx, "Listed %d resources in %s", len(descriptors), time.Since(started).Round(time.Millisecond))
	return descriptors, nil
}

func providerFailure(category domain.Category, err error) error {
	return errors.WrapUserFacing(err, errors.CodeProviderFailure,
		fmt.Sprintf("listing %s resources (category %q) failed: %v", category.Name, category.Key, err),
		"Check AWS credentials, region and permissions, or re-run with --best-effort to capture the remaining categories.")
}
