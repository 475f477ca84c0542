package booking

import "time"

// Category is a ticket category
type Category string

const (
	CategoryAdult  Category = "adult"
	CategoryChild  Category = "child"
	CategorySenior Category = "senior"
)

// Categories lists every ticket category in display order
var Categories = []Category{CategoryAdult, CategoryChild, CategorySenior}

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	switch c {
	case CategoryAdult, CategoryChild, CategorySenior:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// TicketSelection holds the ticket count per category. Counts are never negative.
type TicketSelection struct {
	Adult  int `json:"adult"`
	Child  int `json:"child"`
	Senior int `json:"senior"`
}

// Count returns the count for a category; unknown categories count as 0.
func (s TicketSelection) Count(c Category) int {
	switch c {
	case CategoryAdult:
		return s.Adult
	case CategoryChild:
		return s.Child
	case CategorySenior:
		return s.Senior
	}
	return 0
}

// With returns a copy of the selection with the category count replaced.
func (s TicketSelection) With(c Category, n int) TicketSelection {
	switch c {
	case CategoryAdult:
		s.Adult = n
	case CategoryChild:
		s.Child = n
	case CategorySenior:
		s.Senior = n
	}
	return s
}

// Total returns the number of tickets across all categories
func (s TicketSelection) Total() int {
	return s.Adult + s.Child + s.Senior
}

// PriceTable maps each category to its unit price in whole currency units
type PriceTable struct {
	Adult  int `json:"adult"`
	Child  int `json:"child"`
	Senior int `json:"senior"`
}

// DefaultPrices is the park's fixed price list
var DefaultPrices = PriceTable{Adult: 800, Child: 600, Senior: 700}

// Price returns the unit price for a category
func (p PriceTable) Price(c Category) int {
	switch c {
	case CategoryAdult:
		return p.Adult
	case CategoryChild:
		return p.Child
	case CategorySenior:
		return p.Senior
	}
	return 0
}

// BookingRequest is the payload sent to the offer service on submission
type BookingRequest struct {
	Name                     string `json:"name" validate:"required"`
	AdultTicket              int    `json:"adultTicket" validate:"gte=0"`
	SeniorCitizenTicket      int    `json:"seniorCitizenTicket" validate:"gte=0"`
	ChildTicket              int    `json:"childTicket" validate:"gte=0"`
	AdultTicketPrice         int    `json:"adultTicketPrice" validate:"gte=0"`
	SeniorCitizenTicketPrice int    `json:"seniorCitizenTicketPrice" validate:"gte=0"`
	ChildTicketPrice         int    `json:"childTicketPrice" validate:"gte=0"`
	BookedTicket             int    `json:"bookedTicket" validate:"gte=1"`
	PaidAmount               int    `json:"paidAmount" validate:"gte=0"`
	Location                 string `json:"location" validate:"required,park_location"`
	BookedDate               string `json:"bookedDate" validate:"required"`
}

// OfferResult is the offer service's answer to a BookingRequest. It is
// displayed as-is; offer eligibility is never recomputed locally.
type OfferResult struct {
	Name                string `json:"name"`
	Location            string `json:"location"`
	BookedDate          string `json:"bookedDate"`
	AdultTicket         int    `json:"adultTicket" validate:"gte=0"`
	ChildTicket         int    `json:"childTicket" validate:"gte=0"`
	SeniorCitizenTicket int    `json:"seniorCitizenTicket" validate:"gte=0"`
	BookedTicket        int    `json:"bookedTicket" validate:"gte=0"`
	PaidAmount          int    `json:"paidAmount" validate:"gte=0"`
	OfferAvailable      bool   `json:"offerAvailable"`
	FreeTicketCount     int    `json:"freeTicketCount" validate:"gte=0"`
	FreeTicketFor       string `json:"freeTicketFor"`
}

// isoLayout matches the millisecond-precision UTC form used on the wire
const isoLayout = "2006-01-02T15:04:05.000Z"

// FormatISO renders t the way the offer service expects bookedDate
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// ParseISO parses a bookedDate value echoed by the offer service
func ParseISO(s string) (time.Time, error) {
	if t, err := time.Parse(isoLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func (r *OfferResult) clone() *OfferResult {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
