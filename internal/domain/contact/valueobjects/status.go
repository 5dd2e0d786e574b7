package valueobjects

import "fmt"

type SubmissionStatus string

const (
	SubmissionStatusNew     SubmissionStatus = "new"
	SubmissionStatusRead    SubmissionStatus = "read"
	SubmissionStatusReplied SubmissionStatus = "replied"
)

var validSubmissionStatuses = map[SubmissionStatus]bool{
	SubmissionStatusNew:     true,
	SubmissionStatusRead:    true,
	SubmissionStatusReplied: true,
}

func (s SubmissionStatus) String() string {
	return string(s)
}

func (s SubmissionStatus) IsValid() bool {
	return validSubmissionStatuses[s]
}

func NewSubmissionStatus(str string) (SubmissionStatus, error) {
	s := SubmissionStatus(str)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid submission status: %s", str)
	}
	return s, nil
}
