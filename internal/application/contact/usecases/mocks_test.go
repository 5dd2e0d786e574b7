package usecases

import (
	"context"

	"github.com/inkfolio/inkfolio/internal/domain/contact"
	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
)

type mockContactRepository struct {
	CreateFunc       func(ctx context.Context, s *contact.Submission) error
	GetByIDFunc      func(ctx context.Context, id string) (*contact.Submission, error)
	ListFunc         func(ctx context.Context, status *vo.SubmissionStatus) ([]*contact.Submission, error)
	UpdateStatusFunc func(ctx context.Context, s *contact.Submission) error
}

func (m *mockContactRepository) Create(ctx context.Context, s *contact.Submission) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*contact.Submission, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockContactRepository) List(ctx context.Context, status *vo.SubmissionStatus) ([]*contact.Submission, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, status)
	}
	return nil, nil
}

func (m *mockContactRepository) UpdateStatus(ctx context.Context, s *contact.Submission) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, s)
	}
	return nil
}

type mockNotifier struct {
	calls chan *contact.Submission
	err   error
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{calls: make(chan *contact.Submission, 1)}
}

func (m *mockNotifier) NotifyNewSubmission(_ context.Context, s *contact.Submission) error {
	m.calls <- s
	return m.err
}
