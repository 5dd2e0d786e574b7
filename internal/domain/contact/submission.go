package contact

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/biztime"
)

const (
	MaxNameLength    = 100
	MaxMessageLength = 2000
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Submission is a message left through the public contact form. Only its
// status changes after creation.
type Submission struct {
	id          string
	name        string
	email       string
	reason      vo.Reason
	message     string
	status      vo.SubmissionStatus
	submittedAt time.Time
	updatedAt   time.Time
}

func NewSubmission(name, email string, reason vo.Reason, message string, now time.Time) (*Submission, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fmt.Errorf("name exceeds maximum length of %d characters", MaxNameLength)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("email is not a valid address")
	}
	if !reason.IsValid() {
		return nil, fmt.Errorf("invalid contact reason: %s", reason)
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is required")
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, fmt.Errorf("message exceeds maximum length of %d characters", MaxMessageLength)
	}

	return &Submission{
		id:          uuid.NewString(),
		name:        name,
		email:       email,
		reason:      reason,
		message:     message,
		status:      vo.SubmissionStatusNew,
		submittedAt: now,
		updatedAt:   now,
	}, nil
}

func ReconstructSubmission(
	id, name, email string,
	reason vo.Reason,
	message string,
	status vo.SubmissionStatus,
	submittedAt, updatedAt time.Time,
) (*Submission, error) {
	if id == "" {
		return nil, fmt.Errorf("submission ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid submission status: %s", status)
	}

	return &Submission{
		id:          id,
		name:        name,
		email:       email,
		reason:      reason,
		message:     message,
		status:      status,
		submittedAt: submittedAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Submission) ID() string {
	return s.id
}

func (s *Submission) Name() string {
	return s.name
}

func (s *Submission) Email() string {
	return s.email
}

func (s *Submission) Reason() vo.Reason {
	return s.reason
}

func (s *Submission) Message() string {
	return s.message
}

func (s *Submission) Status() vo.SubmissionStatus {
	return s.status
}

func (s *Submission) SubmittedAt() time.Time {
	return s.submittedAt
}

func (s *Submission) UpdatedAt() time.Time {
	return s.updatedAt
}

// ChangeStatus moves the submission to any of the known statuses.
func (s *Submission) ChangeStatus(status vo.SubmissionStatus, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid submission status: %s", status)
	}
	s.status = status
	s.updatedAt = biztime.Touch(s.updatedAt, now)
	return nil
}
