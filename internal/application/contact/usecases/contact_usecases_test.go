package usecases

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfolio/inkfolio/internal/application/contact/dto"
	"github.com/inkfolio/inkfolio/internal/domain/contact"
	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
	"github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/goroutine"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

var testNow = time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

func validCommand() SubmitContactCommand {
	return SubmitContactCommand{
		Name:    "Ada",
		Email:   "ada@example.com",
		Reason:  "collaboration",
		Message: "Let's build something.",
	}
}

func TestSubmitContactUseCase_Execute(t *testing.T) {
	t.Run("persists and notifies", func(t *testing.T) {
		var saved *contact.Submission
		repo := &mockContactRepository{
			CreateFunc: func(_ context.Context, s *contact.Submission) error {
				saved = s
				return nil
			},
		}
		notifier := newMockNotifier()
		uc := NewSubmitContactUseCase(repo, notifier, goroutine.NewGroup(logger.Discard()), logger.Discard())
		uc.now = biztime.Fixed(testNow)

		result, err := uc.Execute(context.Background(), validCommand())
		require.NoError(t, err)
		require.NotNil(t, saved)

		assert.Equal(t, saved.ID(), result.ID)
		assert.Equal(t, dto.ThankYouMessage, result.Message)
		assert.Equal(t, vo.SubmissionStatusNew, saved.Status())
		assert.Equal(t, testNow, saved.SubmittedAt())

		select {
		case notified := <-notifier.calls:
			assert.Equal(t, saved.ID(), notified.ID())
		case <-time.After(2 * time.Second):
			t.Fatal("notifier was not called")
		}
	})

	t.Run("notification failure does not fail the request", func(t *testing.T) {
		notifier := newMockNotifier()
		notifier.err = stderrors.New("smtp down")
		uc := NewSubmitContactUseCase(&mockContactRepository{}, notifier, goroutine.NewGroup(logger.Discard()), logger.Discard())

		_, err := uc.Execute(context.Background(), validCommand())
		require.NoError(t, err)
		<-notifier.calls
	})

	invalid := []struct {
		name   string
		mutate func(c *SubmitContactCommand)
	}{
		{"empty name", func(c *SubmitContactCommand) { c.Name = "   " }},
		{"malformed email", func(c *SubmitContactCommand) { c.Email = "ada.example.com" }},
		{"email without tld dot", func(c *SubmitContactCommand) { c.Email = "ada@example" }},
		{"unknown reason", func(c *SubmitContactCommand) { c.Reason = "sales" }},
		{"empty message", func(c *SubmitContactCommand) { c.Message = "" }},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockContactRepository{
				CreateFunc: func(context.Context, *contact.Submission) error {
					t.Fatal("nothing may be persisted for invalid input")
					return nil
				},
			}
			uc := NewSubmitContactUseCase(repo, nil, goroutine.NewGroup(logger.Discard()), logger.Discard())

			cmd := validCommand()
			tt.mutate(&cmd)
			_, err := uc.Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}

	t.Run("store failure", func(t *testing.T) {
		repo := &mockContactRepository{
			CreateFunc: func(context.Context, *contact.Submission) error { return stderrors.New("db down") },
		}
		uc := NewSubmitContactUseCase(repo, nil, goroutine.NewGroup(logger.Discard()), logger.Discard())
		_, err := uc.Execute(context.Background(), validCommand())
		require.Error(t, err)
		assert.Nil(t, errors.GetAppError(err))
	})
}

func storedSubmission(t *testing.T) *contact.Submission {
	t.Helper()
	s, err := contact.ReconstructSubmission("s-1", "Ada", "ada@example.com", vo.ReasonYoga, "hi",
		vo.SubmissionStatusNew, testNow, testNow)
	require.NoError(t, err)
	return s
}

func TestListSubmissionsUseCase_Execute(t *testing.T) {
	var got *vo.SubmissionStatus
	repo := &mockContactRepository{
		ListFunc: func(_ context.Context, status *vo.SubmissionStatus) ([]*contact.Submission, error) {
			got = status
			return []*contact.Submission{storedSubmission(t)}, nil
		},
	}
	uc := NewListSubmissionsUseCase(repo, logger.Discard())

	items, err := uc.Execute(context.Background(), ListSubmissionsQuery{})
	require.NoError(t, err)
	assert.Nil(t, got)
	require.Len(t, items, 1)
	assert.Equal(t, "ada@example.com", items[0].Email)

	_, err = uc.Execute(context.Background(), ListSubmissionsQuery{Status: "read"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, vo.SubmissionStatusRead, *got)

	_, err = uc.Execute(context.Background(), ListSubmissionsQuery{Status: "archived"})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateSubmissionStatusUseCase_Execute(t *testing.T) {
	later := testNow.Add(time.Hour)

	t.Run("changes status", func(t *testing.T) {
		var updated *contact.Submission
		repo := &mockContactRepository{
			GetByIDFunc: func(context.Context, string) (*contact.Submission, error) { return storedSubmission(t), nil },
			UpdateStatusFunc: func(_ context.Context, s *contact.Submission) error {
				updated = s
				return nil
			},
		}
		uc := NewUpdateSubmissionStatusUseCase(repo, logger.Discard())
		uc.now = biztime.Fixed(later)

		result, err := uc.Execute(context.Background(), UpdateSubmissionStatusCommand{ID: "s-1", Status: "replied"})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "replied", result.Status)
		assert.Equal(t, later, result.UpdatedAt)
	})

	t.Run("invalid status never hits the store", func(t *testing.T) {
		repo := &mockContactRepository{
			GetByIDFunc: func(context.Context, string) (*contact.Submission, error) {
				t.Fatal("repository must not be called")
				return nil, nil
			},
		}
		uc := NewUpdateSubmissionStatusUseCase(repo, logger.Discard())
		_, err := uc.Execute(context.Background(), UpdateSubmissionStatusCommand{ID: "s-1", Status: "spam"})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &mockContactRepository{
			GetByIDFunc: func(context.Context, string) (*contact.Submission, error) {
				return nil, errors.NewNotFoundError("contact submission not found")
			},
		}
		uc := NewUpdateSubmissionStatusUseCase(repo, logger.Discard())
		_, err := uc.Execute(context.Background(), UpdateSubmissionStatusCommand{ID: "x", Status: "read"})
		assert.True(t, errors.IsNotFoundError(err))
	})
}
