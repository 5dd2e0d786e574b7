package valueobjects

import "fmt"

// Reason is why a visitor is getting in touch.
type Reason string

const (
	ReasonYoga          Reason = "yoga"
	ReasonInvestment    Reason = "investment"
	ReasonCollaboration Reason = "collaboration"
	ReasonOther         Reason = "other"
)

var validReasons = map[Reason]bool{
	ReasonYoga:          true,
	ReasonInvestment:    true,
	ReasonCollaboration: true,
	ReasonOther:         true,
}

func (r Reason) String() string {
	return string(r)
}

func (r Reason) IsValid() bool {
	return validReasons[r]
}

func NewReason(str string) (Reason, error) {
	r := Reason(str)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid contact reason: %s", str)
	}
	return r, nil
}
