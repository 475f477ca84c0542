package sessions

import (
	"time"

	"parkpass/internal/booking"
	"parkpass/internal/shared/utils/currency"
)

type SessionResponse struct {
	ID               string                  `json:"id"`
	Phase            booking.Phase           `json:"phase"`
	Name             string                  `json:"name"`
	Location         string                  `json:"location"`
	VisitDate        string                  `json:"visit_date"`
	Tickets          booking.TicketSelection `json:"tickets"`
	TotalTickets     int                     `json:"total_tickets"`
	TotalPaid        int                     `json:"total_paid"`
	TotalPaidDisplay string                  `json:"total_paid_display"`
	Message          string                  `json:"message,omitempty"`
	Submitting       bool                    `json:"submitting"`
	Advisory         *AdvisoryResponse       `json:"advisory,omitempty"`
	Offer            *OfferResponse          `json:"offer,omitempty"`
	Review           *ReviewResponse         `json:"review,omitempty"`
	Confirmation     *ConfirmationResponse   `json:"confirmation,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	ExpiresAt        time.Time               `json:"expires_at"`
}

// OfferResponse is the last offer service result as received
type OfferResponse struct {
	Name                string `json:"name"`
	Location            string `json:"location"`
	BookedDate          string `json:"booked_date"`
	AdultTicket         int    `json:"adult_ticket"`
	ChildTicket         int    `json:"child_ticket"`
	SeniorCitizenTicket int    `json:"senior_citizen_ticket"`
	BookedTicket        int    `json:"booked_ticket"`
	PaidAmount          int    `json:"paid_amount"`
	OfferAvailable      bool   `json:"offer_available"`
	FreeTicketCount     int    `json:"free_ticket_count"`
	FreeTicketFor       string `json:"free_ticket_for"`
}

type ReviewResponse struct {
	Name                string `json:"name"`
	Location            string `json:"location"`
	VisitDate           string `json:"visit_date"`
	AdultTicket         int    `json:"adult_ticket"`
	ChildTicket         int    `json:"child_ticket"`
	SeniorCitizenTicket int    `json:"senior_citizen_ticket"`
	FreeTicket          string `json:"free_ticket,omitempty"`
	TotalTickets        int    `json:"total_tickets"`
	TotalPaid           int    `json:"total_paid"`
	TotalPaidDisplay    string `json:"total_paid_display"`
}

type AdvisoryResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type ConfirmationResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type PriceResponse struct {
	Category booking.Category `json:"category"`
	Price    int              `json:"price"`
	Display  string           `json:"display"`
}

type PromotionResponse struct {
	Title      string `json:"title"`
	ValidFrom  string `json:"valid_from"`
	ValidUntil string `json:"valid_until"`
	Display    string `json:"display,omitempty"`
}

type CatalogResponse struct {
	Prices     []PriceResponse    `json:"prices"`
	Locations  []booking.Location `json:"locations"`
	Promotion  PromotionResponse  `json:"promotion"`
	Advisory   AdvisoryResponse   `json:"advisory"`
	CutoffHour int                `json:"cutoff_hour"`
	TimeZone   string             `json:"time_zone"`
}

func newSessionResponse(id string, state booking.State, createdAt, expiresAt time.Time) *SessionResponse {
	resp := &SessionResponse{
		ID:               id,
		Phase:            state.Phase,
		Name:             state.Name,
		Location:         state.Location,
		VisitDate:        state.VisitDate.Format(dateLayout),
		Tickets:          state.Tickets,
		TotalTickets:     state.TotalTickets,
		TotalPaid:        state.TotalPaid,
		TotalPaidDisplay: currency.FormatRupees(state.TotalPaid),
		Message:          state.Message,
		Submitting:       state.Submitting,
		CreatedAt:        createdAt,
		ExpiresAt:        expiresAt,
	}
	if state.ChildAdvisory {
		resp.Advisory = &AdvisoryResponse{Title: AdvisoryTitle, Message: AdvisoryMessage}
	}
	if o := state.Offer; o != nil {
		resp.Offer = &OfferResponse{
			Name:                o.Name,
			Location:            o.Location,
			BookedDate:          o.BookedDate,
			AdultTicket:         o.AdultTicket,
			ChildTicket:         o.ChildTicket,
			SeniorCitizenTicket: o.SeniorCitizenTicket,
			BookedTicket:        o.BookedTicket,
			PaidAmount:          o.PaidAmount,
			OfferAvailable:      o.OfferAvailable,
			FreeTicketCount:     o.FreeTicketCount,
			FreeTicketFor:       o.FreeTicketFor,
		}
	}
	if r := state.Review; r != nil {
		resp.Review = &ReviewResponse{
			Name:                r.Name,
			Location:            r.Location,
			VisitDate:           r.VisitDate,
			AdultTicket:         r.AdultTicket,
			ChildTicket:         r.ChildTicket,
			SeniorCitizenTicket: r.SeniorCitizenTicket,
			TotalTickets:        r.TotalTickets,
			TotalPaid:           r.TotalPaid,
			TotalPaidDisplay:    currency.FormatRupees(r.TotalPaid),
		}
		if r.ShowFreeTicket {
			resp.Review.FreeTicket = r.FreeTicketLine
		}
	}
	if state.ConfirmationVisible {
		resp.Confirmation = &ConfirmationResponse{Title: ConfirmationTitle, Message: state.ConfirmationMessage}
	}
	return resp
}
