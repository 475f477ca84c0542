package currency

import (
	"strconv"
	"strings"
)

// Symbol is the Indian rupee sign
const Symbol = "₹"

// FormatRupees renders a whole-rupee amount with Indian digit grouping,
// e.g. 123456 -> "₹1,23,456".
func FormatRupees(amount int) string {
	sign := ""
	n := int64(amount)
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + Symbol + groupIndian(strconv.FormatInt(n, 10))
}

// groupIndian places a comma before the last three digits and then after
// every two digits to the left of that.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var out strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%2 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	out.WriteByte(',')
	out.WriteString(tail)
	return out.String()
}
