package booking

// Phase is the workflow step the customer is on
type Phase string

const (
	PhaseInput  Phase = "INPUT"
	PhaseReview Phase = "REVIEW"
)

// IsValid checks if the phase is valid
func (p Phase) IsValid() bool {
	switch p {
	case PhaseInput, PhaseReview:
		return true
	}
	return false
}

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsEditable checks if order fields may be changed in this phase
func (p Phase) IsEditable() bool {
	return p == PhaseInput
}
