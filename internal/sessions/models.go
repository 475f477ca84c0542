package sessions

import (
	"time"

	"parkpass/internal/booking"
)

// Display text for the overlays the rendering layer shows
const (
	AdvisoryTitle     = "Height Restriction"
	AdvisoryMessage   = "Height should be between 85 cm and 140 cm for Child tickets."
	ConfirmationTitle = "Booking Success!"
)

// dateLayout is the calendar date format used by the API
const dateLayout = "2006-01-02"

// Config configures the session service
type Config struct {
	Workflow   booking.Options
	SessionTTL time.Duration
	Promotion  Promotion
}

// Promotion is the banner advertised to customers. It never affects pricing;
// the Offer Service alone decides what is free.
type Promotion struct {
	Title      string
	ValidFrom  string
	ValidUntil string
}

// session is one customer's booking workflow
type session struct {
	id        string
	workflow  *booking.Workflow
	createdAt time.Time
	lastSeen  time.Time
}
