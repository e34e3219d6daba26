package ports

import (
	"context"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
)

// ResourceProvider enumerates one resource category. List must return the
// complete enumeration: paginated sources are exhausted before returning.
//
//go:generate mockery --name ResourceProvider --output ./mocks --outpkg mocks --case underscore
type ResourceProvider interface {
	Category() domain.Category
	List(ctx context.Context) ([]domain.Record, error)
}
