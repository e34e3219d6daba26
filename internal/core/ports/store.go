package ports

import (
	"context"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
)

//go:generate mockery --name SnapshotStore --output ./mocks --outpkg mocks --case underscore
type SnapshotStore interface {
	Save(ctx context.Context, location string, inventory domain.Inventory) error
	Load(ctx context.Context, location string) (domain.Inventory, error)
}
