package app

import (
	"context"

	"github.com/olusolaa/teardown-verifier/internal/config"
	"github.com/olusolaa/teardown-verifier/internal/core/domain"
	"github.com/olusolaa/teardown-verifier/internal/core/ports"
)

// ProviderSource resolves the resource providers of one capture. It runs
// only when a capture starts, so compare never needs cloud credentials.
type ProviderSource func(ctx context.Context) ([]ports.ResourceProvider, error)

// Application runs the capture and compare pipelines.
type Application struct {
	Collector ports.Collector
	Differ    ports.Differ
	Store     ports.SnapshotStore
	Reporter  ports.Reporter
	Logger    ports.Logger
	Providers ProviderSource
	Config    *config.Config
}

// CaptureSummary describes a saved snapshot.
type CaptureSummary struct {
	Location         string
	Resources        int
	FailedCategories []string
}

// Partial reports whether some categories are missing from the snapshot.
func (s CaptureSummary) Partial() bool {
	return len(s.FailedCategories) > 0
}

// Capture enumerates every configured category and saves the inventory to
// location. Nothing is written when the capture fails.
func (a *Application) Capture(ctx context.Context, location string) (CaptureSummary, error) {
	a.Logger.Infof(ctx, "Starting capture to %s", location)

	providers, err := a.Providers(ctx)
	if err != nil {
		return CaptureSummary{}, err
	}

	result, err := a.Collector.Capture(ctx, providers)
	if err != nil {
		return CaptureSummary{}, err
	}

	if err := a.Store.Save(ctx, location, result.Inventory); err != nil {
		return CaptureSummary{}, err
	}

	summary := CaptureSummary{
		Location:         location,
		Resources:        result.Inventory.Len(),
		FailedCategories: result.FailedCategoryKeys(),
	}
	if summary.Partial() {
		for _, f := range result.Failures {
			a.Logger.Errorf(ctx, f.Err, "Category %s is missing from snapshot %s", f.Category.Key, location)
		}
	}
	a.Logger.Infof(ctx, "Capture completed: %d resources saved to %s", summary.Resources, location)
	return summary, nil
}

// Compare loads both snapshots, diffs them and renders the report.
func (a *Application) Compare(ctx context.Context, beforeLocation, afterLocation string) (domain.DiffReport, error) {
	a.Logger.Infof(ctx, "Comparing %s against %s", beforeLocation, afterLocation)

	before, err := a.Store.Load(ctx, beforeLocation)
	if err != nil {
		return domain.DiffReport{}, err
	}
	after, err := a.Store.Load(ctx, afterLocation)
	if err != nil {
		return domain.DiffReport{}, err
	}

	report := a.Differ.Compare(before, after)
	a.Logger.Debugf(ctx, "Diff: %d removed, %d added, %d modified",
		len(report.Removed), len(report.Added), len(report.Modified))

	if err := a.Reporter.Report(ctx, report); err != nil {
		return domain.DiffReport{}, err
	}
	return report, nil
}
