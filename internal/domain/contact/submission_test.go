package contact

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
)

func TestNewSubmission(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("valid submission starts as new", func(t *testing.T) {
		s, err := NewSubmission("  Asha ", "asha@example.com", vo.ReasonYoga, "Hello there", now)
		require.NoError(t, err)

		assert.NotEmpty(t, s.ID())
		assert.Equal(t, "Asha", s.Name())
		assert.Equal(t, vo.SubmissionStatusNew, s.Status())
		assert.Equal(t, now, s.SubmittedAt())
	})

	invalid := []struct {
		name    string
		who     string
		email   string
		reason  vo.Reason
		message string
	}{
		{"empty name", "", "a@b.co", vo.ReasonOther, "hi"},
		{"blank name", "   ", "a@b.co", vo.ReasonOther, "hi"},
		{"name too long", strings.Repeat("n", MaxNameLength+1), "a@b.co", vo.ReasonOther, "hi"},
		{"email without at", "A", "asha.example.com", vo.ReasonOther, "hi"},
		{"email without dot in domain", "A", "asha@example", vo.ReasonOther, "hi"},
		{"email with two ats", "A", "a@b@c.com", vo.ReasonOther, "hi"},
		{"unknown reason", "A", "a@b.co", vo.Reason("sales"), "hi"},
		{"empty message", "A", "a@b.co", vo.ReasonOther, ""},
		{"message too long", "A", "a@b.co", vo.ReasonOther, strings.Repeat("m", MaxMessageLength+1)},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSubmission(tt.who, tt.email, tt.reason, tt.message, now)
			assert.Error(t, err)
		})
	}

	t.Run("boundary lengths are accepted", func(t *testing.T) {
		_, err := NewSubmission(strings.Repeat("n", MaxNameLength), "a@b.co", vo.ReasonInvestment,
			strings.Repeat("m", MaxMessageLength), now)
		assert.NoError(t, err)
	})
}

func TestSubmission_ChangeStatus(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	s, err := NewSubmission("Asha", "asha@example.com", vo.ReasonCollaboration, "Hello", now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, s.ChangeStatus(vo.SubmissionStatusReplied, later))
	assert.Equal(t, vo.SubmissionStatusReplied, s.Status())
	assert.Equal(t, later, s.UpdatedAt())

	assert.Error(t, s.ChangeStatus(vo.SubmissionStatus("archived"), later))
	assert.Equal(t, vo.SubmissionStatusReplied, s.Status())
	assert.Equal(t, later, s.UpdatedAt())

	require.NoError(t, s.ChangeStatus(vo.SubmissionStatusRead, later))
	assert.Equal(t, later.Add(biztime.Resolution), s.UpdatedAt())
}
