package booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// DefaultCutoffHour is the local hour from which same-day bookings are closed
const DefaultCutoffHour = 8

// OfferService computes the offer for a submitted booking
type OfferService interface {
	RequestOffer(ctx context.Context, req BookingRequest) (*OfferResult, error)
}

// Options configures a Workflow. Zero values fall back to the defaults,
// except CutoffHour where 0 closes same-day bookings at midnight; values
// outside 0-23 fall back to DefaultCutoffHour.
type Options struct {
	Prices     PriceTable
	Location   *time.Location
	CutoffHour int
	Now        func() time.Time
}

// State is a read-only copy of everything the rendering layer shows
type State struct {
	Phase               Phase
	Name                string
	Location            string
	VisitDate           time.Time
	Tickets             TicketSelection
	TotalTickets        int
	TotalPaid           int
	Message             string
	ChildAdvisory       bool
	Submitting          bool
	Offer               *OfferResult
	Review              *ReviewSummary
	ConfirmationVisible bool
	ConfirmationMessage string
}

// Workflow is the booking workflow controller. All order state lives here and
// changes only through its methods; it is safe for concurrent use.
type Workflow struct {
	offers     OfferService
	prices     PriceTable
	loc        *time.Location
	cutoffHour int
	now        func() time.Time

	mu                  sync.Mutex
	phase               Phase
	tickets             TicketSelection
	snapshot            TicketSelection
	name                string
	location            string
	visitDate           time.Time
	offer               *OfferResult
	message             string
	childAdvisory       bool
	confirmationVisible bool
	confirmationMessage string
	submitting          bool
	generation          uint64
}

// NewWorkflow creates a workflow in the Input phase with default order fields
func NewWorkflow(offers OfferService, opts Options) *Workflow {
	w := &Workflow{
		offers:     offers,
		prices:     opts.Prices,
		loc:        opts.Location,
		cutoffHour: opts.CutoffHour,
		now:        opts.Now,
	}
	if w.prices == (PriceTable{}) {
		w.prices = DefaultPrices
	}
	if w.loc == nil {
		w.loc = time.Local
	}
	if w.cutoffHour < 0 || w.cutoffHour > 23 {
		w.cutoffHour = DefaultCutoffHour
	}
	if w.now == nil {
		w.now = time.Now
	}
	w.resetLocked()
	return w
}

// Prices returns the price table the workflow charges with
func (w *Workflow) Prices() PriceTable {
	return w.prices
}

// SetCount stores the parsed count for a category. The returned flag is true
// when the child count went from zero to positive and the height advisory
// was raised.
func (w *Workflow) SetCount(c Category, raw string) (bool, error) {
	if !c.IsValid() {
		return false, ErrUnknownCategory
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editableLocked(); err != nil {
		return false, err
	}

	n := ParseCount(raw)
	prev := w.tickets.Count(c)
	w.tickets = w.tickets.With(c, n)

	if c == CategoryChild && prev == 0 && n > 0 {
		w.childAdvisory = true
		return true, nil
	}
	return false, nil
}

// SetLocation selects the park. Only the fixed set of cities is accepted.
func (w *Workflow) SetLocation(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editableLocked(); err != nil {
		return err
	}
	if !IsKnownLocation(name) {
		return ErrInvalidLocation
	}
	w.location = name
	return nil
}

// SetDate stores the calendar day of date. Days before today are rejected.
func (w *Workflow) SetDate(date time.Time) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editableLocked(); err != nil {
		return err
	}

	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, w.loc)
	if day.Before(w.todayLocked()) {
		return ErrPastDate
	}
	w.visitDate = day
	return nil
}

// SetName stores the customer name as typed
func (w *Workflow) SetName(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editableLocked(); err != nil {
		return err
	}
	w.name = name
	return nil
}

// Submit validates the order, sends it to the offer service and moves to
// Review on success. Validation and service failures set the status message
// and leave the workflow in Input. Only one submission runs at a time.
func (w *Workflow) Submit(ctx context.Context) (*BookingRequest, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if !w.phase.IsEditable() {
		w.mu.Unlock()
		return nil, ErrNotEditable
	}
	if err := w.validateLocked(); err != nil {
		w.message = err.Error()
		w.mu.Unlock()
		return nil, err
	}

	w.message = ""
	w.snapshot = w.tickets
	req := w.buildRequestLocked()
	w.submitting = true
	gen := w.generation
	w.mu.Unlock()

	result, err := w.offers.RequestOffer(ctx, req)
	if err == nil && result == nil {
		err = errors.New("empty offer response")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.submitting = false
	if gen != w.generation {
		return nil, ErrSubmissionDiscarded
	}

	if err != nil {
		se := toServiceError(err)
		w.message = se.Error()
		return nil, se
	}

	w.offer = result.clone()
	w.phase = PhaseReview
	w.confirmationVisible = false
	w.confirmationMessage = ""
	return &req, nil
}

// Back returns to Input with the selection as it was before the last submit
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseReview {
		return ErrNotInReview
	}
	w.tickets = w.snapshot
	w.offer = nil
	w.phase = PhaseInput
	w.confirmationVisible = false
	w.confirmationMessage = ""
	return nil
}

// Confirm raises the confirmation overlay for the offer under review. No
// further service call is made and the phase stays Review.
func (w *Workflow) Confirm() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.phase != PhaseReview || w.offer == nil {
		return "", ErrNotInReview
	}
	w.confirmationMessage = ConfirmationMessage(*w.offer)
	w.confirmationVisible = true
	return w.confirmationMessage, nil
}

// DismissAdvisory hides the child-ticket advisory
func (w *Workflow) DismissAdvisory() {
	w.mu.Lock()
	w.childAdvisory = false
	w.mu.Unlock()
}

// DismissConfirmation hides the confirmation overlay
func (w *Workflow) DismissConfirmation() {
	w.mu.Lock()
	w.confirmationVisible = false
	w.mu.Unlock()
}

// Reset restarts the session with default order fields. A submission still
// in flight is discarded when it returns and blocks edits until then.
func (w *Workflow) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.generation++
	w.resetLocked()
}

// State returns a copy of the current workflow state
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := State{
		Phase:               w.phase,
		Name:                w.name,
		Location:            w.location,
		VisitDate:           w.visitDate,
		Tickets:             w.tickets,
		TotalTickets:        w.tickets.Total(),
		TotalPaid:           TotalPaid(w.tickets, w.prices),
		Message:             w.message,
		ChildAdvisory:       w.childAdvisory,
		Submitting:          w.submitting,
		Offer:               w.offer.clone(),
		ConfirmationVisible: w.confirmationVisible,
		ConfirmationMessage: w.confirmationMessage,
	}
	if w.phase == PhaseReview && w.offer != nil {
		s.Review = Summarize(*w.offer, w.loc)
	}
	return s
}

func (w *Workflow) resetLocked() {
	w.phase = PhaseInput
	w.tickets = TicketSelection{}
	w.snapshot = TicketSelection{}
	w.name = ""
	w.location = ""
	w.visitDate = w.todayLocked()
	w.offer = nil
	w.message = ""
	w.childAdvisory = false
	w.confirmationVisible = false
	w.confirmationMessage = ""
}

func (w *Workflow) editableLocked() error {
	if w.submitting {
		return ErrSubmissionInFlight
	}
	if !w.phase.IsEditable() {
		return ErrNotEditable
	}
	return nil
}

// validateLocked runs the submission checks in order, stopping at the first failure
func (w *Workflow) validateLocked() error {
	if w.tickets.Total() < 1 {
		return ErrEmptyOrder
	}

	now := w.now().In(w.loc)
	today := startOfDay(now)
	if w.visitDate.Equal(today) && now.Hour() >= w.cutoffHour {
		return cutoffError(w.cutoffHour)
	}
	if w.visitDate.Before(today) {
		return ErrPastDate
	}
	if strings.TrimSpace(w.name) == "" {
		return ErrNameRequired
	}
	if !IsKnownLocation(w.location) {
		return ErrInvalidLocation
	}
	return nil
}

func (w *Workflow) buildRequestLocked() BookingRequest {
	return BookingRequest{
		Name:                     w.name,
		AdultTicket:              w.tickets.Adult,
		SeniorCitizenTicket:      w.tickets.Senior,
		ChildTicket:              w.tickets.Child,
		AdultTicketPrice:         w.prices.Adult,
		SeniorCitizenTicketPrice: w.prices.Senior,
		ChildTicketPrice:         w.prices.Child,
		BookedTicket:             w.tickets.Total(),
		PaidAmount:               TotalPaid(w.tickets, w.prices),
		Location:                 w.location,
		BookedDate:               FormatISO(w.visitDate),
	}
}

func (w *Workflow) todayLocked() time.Time {
	return startOfDay(w.now().In(w.loc))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func toServiceError(err error) *ServiceError {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return &ServiceError{Message: err.Error(), Err: err}
}
