package reflection

import (
	"context"

	vo "github.com/inkfolio/inkfolio/internal/domain/reflection/valueobjects"
)

// ListFilter narrows a listing. A nil Category means every category.
type ListFilter struct {
	Category      *vo.Category
	PublishedOnly bool
}

// Repository persists reflections. List is ordered by Date, newest first.
// GetByID returns a not found AppError for unknown ids.
type Repository interface {
	Create(ctx context.Context, r *Reflection) error
	GetByID(ctx context.Context, id string) (*Reflection, error)
	List(ctx context.Context, filter ListFilter) ([]*Reflection, error)
	Update(ctx context.Context, r *Reflection) error
	// Delete reports whether a row existed and was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
