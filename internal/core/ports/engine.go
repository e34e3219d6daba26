package ports

import (
	"context"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
)

//go:generate mockery --name Collector --output ./mocks --outpkg mocks --case underscore
type Collector interface {
	Capture(ctx context.Context, providers []ResourceProvider) (domain.CaptureResult, error)
}

type Differ interface {
	Compare(before, after domain.Inventory) domain.DiffReport
}
