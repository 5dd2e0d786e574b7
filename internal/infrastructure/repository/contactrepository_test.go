package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfolio/inkfolio/internal/domain/contact"
	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
	apperrors "github.com/inkfolio/inkfolio/internal/shared/errors"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

func createTestSubmission(t *testing.T, name string, submittedAt time.Time) *contact.Submission {
	t.Helper()
	s, err := contact.NewSubmission(name, name+"@example.com", vo.ReasonCollaboration,
		"Would love to work together.", submittedAt)
	require.NoError(t, err)
	return s
}

func TestContactRepository_CreateAndGet(t *testing.T) {
	repo := NewContactRepository(setupTestDB(t), logger.Discard())
	ctx := context.Background()

	s := createTestSubmission(t, "ada", baseTime)
	require.NoError(t, repo.Create(ctx, s))

	found, err := repo.GetByID(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, "ada", found.Name())
	assert.Equal(t, "ada@example.com", found.Email())
	assert.Equal(t, vo.ReasonCollaboration, found.Reason())
	assert.Equal(t, vo.SubmissionStatusNew, found.Status())
	assert.True(t, baseTime.Equal(found.SubmittedAt()))

	_, err = repo.GetByID(ctx, "nope")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestContactRepository_List(t *testing.T) {
	repo := NewContactRepository(setupTestDB(t), logger.Discard())
	ctx := context.Background()

	first := createTestSubmission(t, "first", baseTime.Add(-2*time.Hour))
	second := createTestSubmission(t, "second", baseTime.Add(-time.Hour))
	third := createTestSubmission(t, "third", baseTime)
	for _, s := range []*contact.Submission{second, third, first} {
		require.NoError(t, repo.Create(ctx, s))
	}

	require.NoError(t, second.ChangeStatus(vo.SubmissionStatusReplied, baseTime.Add(time.Hour)))
	require.NoError(t, repo.UpdateStatus(ctx, second))

	names := func(items []*contact.Submission) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Name())
		}
		return out
	}

	t.Run("newest first", func(t *testing.T) {
		items, err := repo.List(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"third", "second", "first"}, names(items))
	})

	t.Run("filtered by status", func(t *testing.T) {
		status := vo.SubmissionStatusNew
		items, err := repo.List(ctx, &status)
		require.NoError(t, err)
		assert.Equal(t, []string{"third", "first"}, names(items))

		status = vo.SubmissionStatusReplied
		items, err = repo.List(ctx, &status)
		require.NoError(t, err)
		assert.Equal(t, []string{"second"}, names(items))
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		empty := NewContactRepository(setupTestDB(t), logger.Discard())
		items, err := empty.List(ctx, nil)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestContactRepository_UpdateStatus(t *testing.T) {
	repo := NewContactRepository(setupTestDB(t), logger.Discard())
	ctx := context.Background()

	s := createTestSubmission(t, "grace", baseTime)
	require.NoError(t, repo.Create(ctx, s))

	later := baseTime.Add(30 * time.Minute)
	require.NoError(t, s.ChangeStatus(vo.SubmissionStatusRead, later))
	require.NoError(t, repo.UpdateStatus(ctx, s))

	found, err := repo.GetByID(ctx, s.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.SubmissionStatusRead, found.Status())
	assert.True(t, later.Equal(found.UpdatedAt()))

	ghost := createTestSubmission(t, "ghost", baseTime)
	err = repo.UpdateStatus(ctx, ghost)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
