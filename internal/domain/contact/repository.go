package contact

import (
	"context"

	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
)

// Repository has no delete: submissions are kept for good.
type Repository interface {
	Create(ctx context.Context, s *Submission) error
	GetByID(ctx context.Context, id string) (*Submission, error)
	// List returns submissions newest first. A nil status returns all.
	List(ctx context.Context, status *vo.SubmissionStatus) ([]*Submission, error)
	UpdateStatus(ctx context.Context, s *Submission) error
}
