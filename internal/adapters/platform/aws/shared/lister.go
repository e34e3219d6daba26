package shared

import (
	"context"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
)

// ListFunc enumerates the records of one category.
type ListFunc func(ctx context.Context) ([]domain.Record, error)

// Lister adapts a ListFunc to ports.ResourceProvider.
type Lister struct {
	category domain.Category
	list     ListFunc
}

func NewLister(category domain.Category, list ListFunc) *Lister {
	return &Lister{category: category, list: list}
}

func (l *Lister) Category() domain.Category {
	return l.category
}

func (l *Lister) List(ctx context.Context) ([]domain.Record, error) {
	return l.list(ctx)
}
