package ports

import (
	"context"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
)

//go:generate mockery --name Reporter --output ./mocks --outpkg mocks --case underscore
type Reporter interface {
	Report(ctx context.Context, report domain.DiffReport) error
}
