package booking

import (
	"errors"
	"fmt"
)

// Validation failures surfaced to the customer. The messages are shown verbatim.
var (
	ErrEmptyOrder      = errors.New("Please add ticket/s to proceed!")
	ErrSameDayCutoff   = errors.New("Booking for the current day is closed after 8 AM.")
	ErrPastDate        = errors.New("Please choose a visit date from today onwards.")
	ErrNameRequired    = errors.New("Please enter your name.")
	ErrInvalidLocation = errors.New("Please select a valid location.")
)

// Workflow misuse; these never change state.
var (
	ErrUnknownCategory     = errors.New("unknown ticket category")
	ErrNotEditable         = errors.New("booking is under review, go back to edit it")
	ErrNotInReview         = errors.New("there is no booking offer to review")
	ErrSubmissionInFlight  = errors.New("a booking request is already in progress")
	ErrSubmissionDiscarded = errors.New("booking request discarded after session reset")
)

// ServiceError wraps any offer service failure. Message is passed through
// from the service unchanged.
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "offer service error"
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a customer-correctable input failure
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyOrder) ||
		errors.Is(err, ErrSameDayCutoff) ||
		errors.Is(err, ErrPastDate) ||
		errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrInvalidLocation)
}

// IsServiceError reports whether err came from the offer service
func IsServiceError(err error) bool {
	var se *ServiceError
	return errors.As(err, &se)
}

// sameDayCutoffError reports a configured cutoff other than the default
// hour while still matching ErrSameDayCutoff.
type sameDayCutoffError struct {
	hour int
}

func (e sameDayCutoffError) Error() string {
	return fmt.Sprintf("Booking for the current day is closed after %s.", clockHour(e.hour))
}

func (e sameDayCutoffError) Is(target error) bool {
	return target == ErrSameDayCutoff
}

func cutoffError(hour int) error {
	if hour == DefaultCutoffHour {
		return ErrSameDayCutoff
	}
	return sameDayCutoffError{hour: hour}
}

// clockHour renders a 24-hour value as "8 AM" / "1 PM"
func clockHour(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
