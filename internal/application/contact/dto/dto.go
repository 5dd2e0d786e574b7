package dto

import (
	"time"

	"github.com/inkfolio/inkfolio/internal/domain/contact"
	"github.com/inkfolio/inkfolio/internal/shared/mapper"
)

// ThankYouMessage is returned to the visitor after a successful submission.
const ThankYouMessage = "Thank you for reaching out! I'll get back to you soon."

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,max=255"`
	Reason  string `json:"reason" validate:"required,oneof=yoga investment collaboration other"`
	Message string `json:"message" validate:"required,max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied"`
}

type SubmitContactResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type SubmissionDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Reason      string    `json:"reason"`
	Message     string    `json:"message"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToSubmissionDTO(s *contact.Submission) *SubmissionDTO {
	if s == nil {
		return nil
	}
	return &SubmissionDTO{
		ID:          s.ID(),
		Name:        s.Name(),
		Email:       s.Email(),
		Reason:      s.Reason().String(),
		Message:     s.Message(),
		Status:      s.Status().String(),
		SubmittedAt: s.SubmittedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func ToSubmissionDTOs(items []*contact.Submission) []*SubmissionDTO {
	return mapper.MapSlice(items, ToSubmissionDTO)
}
