package booking

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	result := OfferResult{
		Name:                "Asha",
		Location:            "Kochi",
		BookedDate:          "2026-10-15T18:30:00.000Z",
		AdultTicket:         3,
		BookedTicket:        3,
		PaidAmount:          2400,
		OfferAvailable:      true,
		FreeTicketCount:     1,
		FreeTicketFor:       "adult",
		SeniorCitizenTicket: 0,
	}

	s := Summarize(result, ist)

	assert.Equal(t, "Fri Oct 16 2026", s.VisitDate)
	assert.True(t, s.ShowFreeTicket)
	assert.Equal(t, "1 (For adult)", s.FreeTicketLine)
	assert.Equal(t, 4, s.TotalTickets)
	assert.Equal(t, 2400, s.TotalPaid)
}

func TestSummarize_KeepsUnparsableDate(t *testing.T) {
	s := Summarize(OfferResult{BookedDate: "next friday", BookedTicket: 2}, time.UTC)

	assert.Equal(t, "next friday", s.VisitDate)
	assert.False(t, s.ShowFreeTicket)
	assert.Equal(t, 2, s.TotalTickets)
}

func TestReviewTotalTickets_IgnoresFreeCountWithoutOffer(t *testing.T) {
	r := OfferResult{BookedTicket: 3, FreeTicketCount: 2}

	assert.Equal(t, 3, ReviewTotalTickets(r))
	r.OfferAvailable = true
	assert.Equal(t, 5, ReviewTotalTickets(r))
}

func TestConfirmationMessage(t *testing.T) {
	assert.Equal(t,
		"We're excited to see you! You have successfully booked 3 tickets.",
		ConfirmationMessage(OfferResult{BookedTicket: 3}))
	assert.Equal(t,
		"We're excited to see you! You have successfully booked 4 + 2 tickets.",
		ConfirmationMessage(OfferResult{BookedTicket: 4, OfferAvailable: true, FreeTicketCount: 2}))
	assert.Equal(t,
		"We're excited to see you! You have successfully booked 3 + 1 tickets.",
		ConfirmationMessage(OfferResult{BookedTicket: 3, OfferAvailable: true}))
}

func TestISODates(t *testing.T) {
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, ist)

	s := FormatISO(day)
	assert.Equal(t, "2026-10-15T18:30:00.000Z", s)

	parsed, err := ParseISO(s)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(day))

	parsed, err = ParseISO("2026-10-15T18:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, 13, parsed.UTC().Hour())

	_, err = ParseISO("16/10/2026")
	assert.Error(t, err)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsValidation(ErrEmptyOrder))
	assert.True(t, IsValidation(cutoffError(11)))
	assert.True(t, IsValidation(fmt.Errorf("submit: %w", ErrInvalidLocation)))
	assert.False(t, IsValidation(ErrNotEditable))

	se := &ServiceError{Message: "boom", Err: errors.New("inner")}
	assert.True(t, IsServiceError(fmt.Errorf("offer: %w", se)))
	assert.False(t, IsServiceError(ErrEmptyOrder))
	assert.Equal(t, "boom", se.Error())
	assert.Equal(t, "inner", (&ServiceError{Err: errors.New("inner")}).Error())
}

func TestClockHour(t *testing.T) {
	assert.Equal(t, "12 AM", clockHour(0))
	assert.Equal(t, "8 AM", clockHour(8))
	assert.Equal(t, "12 PM", clockHour(12))
	assert.Equal(t, "6 PM", clockHour(18))
}
