package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"0", 0},
		{"3", 3},
		{" 7 ", 7},
		{"+4", 4},
		{"12abc", 12},
		{"2.7", 2},
		{"abc", 0},
		{"-1", 0},
		{"-0", 0},
		{"-", 0},
		{"99999999999999999999999", 0},
		{"9223372036854775807", 0},
		{"10000", MaxTicketsPerCategory},
		{"10001", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCount(tt.raw))
		})
	}
}

func TestTotalPaid(t *testing.T) {
	tests := []struct {
		name string
		sel  TicketSelection
		want int
	}{
		{"empty", TicketSelection{}, 0},
		{"adults only", TicketSelection{Adult: 3}, 2400},
		{"mixed", TicketSelection{Adult: 2, Child: 1}, 2200},
		{"all categories", TicketSelection{Adult: 1, Child: 1, Senior: 1}, 2100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPaid(tt.sel, DefaultPrices))
		})
	}
}

func TestTicketSelection(t *testing.T) {
	sel := TicketSelection{}.With(CategorySenior, 2).With(CategoryChild, 1)

	assert.Equal(t, 2, sel.Count(CategorySenior))
	assert.Equal(t, 1, sel.Count(CategoryChild))
	assert.Equal(t, 0, sel.Count(Category("infant")))
	assert.Equal(t, 3, sel.Total())
	assert.Equal(t, sel, sel.With(Category("infant"), 9))
}

func TestLocations(t *testing.T) {
	assert.Len(t, Locations, 6)

	loc, ok := LookupLocation("Bhubaneswar")
	assert.True(t, ok)
	assert.True(t, loc.OfferEligible)

	loc, ok = LookupLocation("Mumbai")
	assert.True(t, ok)
	assert.False(t, loc.OfferEligible)

	assert.False(t, IsKnownLocation("kochi"))
	assert.False(t, IsKnownLocation(""))
}
