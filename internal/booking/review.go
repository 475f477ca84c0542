package booking

import (
	"fmt"
	"time"
)

// ReviewSummary is the read-only review of an offer result
type ReviewSummary struct {
	Name                string
	Location            string
	VisitDate           string
	AdultTicket         int
	ChildTicket         int
	SeniorCitizenTicket int
	ShowFreeTicket      bool
	FreeTicketLine      string
	TotalTickets        int
	TotalPaid           int
}

// reviewDateLayout renders dates like "Fri Oct 16 2026"
const reviewDateLayout = "Mon Jan 02 2006"

// Summarize builds the review presentation of r. The free-ticket line only
// appears when the service granted an offer.
func Summarize(r OfferResult, loc *time.Location) *ReviewSummary {
	s := &ReviewSummary{
		Name:                r.Name,
		Location:            r.Location,
		VisitDate:           r.BookedDate,
		AdultTicket:         r.AdultTicket,
		ChildTicket:         r.ChildTicket,
		SeniorCitizenTicket: r.SeniorCitizenTicket,
		ShowFreeTicket:      r.OfferAvailable,
		TotalTickets:        ReviewTotalTickets(r),
		TotalPaid:           r.PaidAmount,
	}
	if t, err := ParseISO(r.BookedDate); err == nil {
		if loc == nil {
			loc = time.Local
		}
		s.VisitDate = t.In(loc).Format(reviewDateLayout)
	}
	if r.OfferAvailable {
		s.FreeTicketLine = fmt.Sprintf("%d (For %s)", r.FreeTicketCount, r.FreeTicketFor)
	}
	return s
}

// ReviewTotalTickets is the booked count plus any free tickets granted
func ReviewTotalTickets(r OfferResult) int {
	if !r.OfferAvailable {
		return r.BookedTicket
	}
	return r.BookedTicket + r.FreeTicketCount
}

// ConfirmationMessage is the text shown on the confirmation overlay
func ConfirmationMessage(r OfferResult) string {
	if !r.OfferAvailable {
		return fmt.Sprintf("We're excited to see you! You have successfully booked %d tickets.", r.BookedTicket)
	}
	free := r.FreeTicketCount
	if free < 1 {
		free = 1
	}
	return fmt.Sprintf("We're excited to see you! You have successfully booked %d + %d tickets.", r.BookedTicket, free)
}
