package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{0, "₹0"},
		{600, "₹600"},
		{2200, "₹2,200"},
		{12345, "₹12,345"},
		{123456, "₹1,23,456"},
		{10000000, "₹1,00,00,000"},
		{-2200, "-₹2,200"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRupees(tt.amount))
		})
	}
}
