package booking

import (
	"strconv"
	"strings"
)

// MaxTicketsPerCategory bounds a single category count so totals stay exact
const MaxTicketsPerCategory = 10000

// ParseCount turns free-text input into a ticket count. A leading integer is
// taken ("12abc" -> 12, "2.7" -> 2); anything unparsable, negative or above
// MaxTicketsPerCategory becomes 0.
func ParseCount(raw string) int {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 || n > MaxTicketsPerCategory {
		return 0
	}
	return n
}

// TotalPaid is the weighted sum of counts and unit prices
func TotalPaid(sel TicketSelection, prices PriceTable) int {
	total := 0
	for _, c := range Categories {
		total += sel.Count(c) * prices.Price(c)
	}
	return total
}
